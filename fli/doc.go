// Package fli implements the gpi.Backend trait against the Mentor/
// Siemens FLI (Foreign Language Interface), as used by ModelSim/
// Questa.
//
// The simulator's C ABI (mti.h / fli_sample.h) is a pre-existing FFI
// surface out of this module's scope; NativeAPI in native.go is the
// seam a real build would satisfy with cgo bindings. This package
// implements the FLI-specific policies of spec.md §4.C/§4.D/§4.E:
// separate signal and variable native object families classified via
// the acc_* API, no drivers/loads iteration, a subelement-array free
// routine, and — because FLI's native process objects can never be
// destroyed — a per-kind free list that recycles spent callback
// objects instead of releasing them (extended here to every callback
// kind this backend registers, not only timers).
package fli
