// Package vhpi implements the gpi.Backend trait against VHDL's VHPI.
//
// The simulator's C ABI (vhpi_user.h) is a pre-existing FFI surface out
// of this module's scope; NativeAPI in native.go is the seam a real
// build would satisfy with cgo bindings. This package implements the
// VHDL-specific policies of spec.md §4.B/§4.E/§4.G: logic-scalar/vector
// recognition from an enumeration's ordered literal set, the "/"
// hierarchy separator, the unconstrained-array and "2147483647"
// sentinel tolerance in range queries, and force-string construction via
// the shared codec package.
package vhpi
