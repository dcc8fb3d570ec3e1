// Package harness provides a fake, in-memory simulator backend used by
// the conformance tests in spec.md §8 and by the cmd/gpi-inspect demo
// binary. It is not one of the three real backends (vpi/vhpi/fli);
// it exists to give the core model (gpi) and its ordering guarantees
// (spec.md §5) something concrete to run against without a real
// simulator attached, the same role the teacher's
// verify.FunctionalSimulator plays for its CGRA core.
//
// Simulator embeds an Akita TickingComponent, but its Tick fires nothing.
// Time advances through AdvancePS, which fires due timers and then the
// read-write, next-time and read-only callbacks, in that order (spec.md
// §5 "Ordering guarantees"). Value-change callbacks fire synchronously
// inside the Set call that changes the value. There is no
// end-of-time-step callback list.
package harness
