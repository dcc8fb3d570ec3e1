// Package vpi implements the gpi.Backend trait against Verilog's VPI.
//
// The simulator's actual C ABI (vpi_user.h) is a pre-existing FFI
// surface outside this module's scope; NativeAPI in native.go is the
// seam a real build would satisfy with cgo bindings to libvpi. Every
// type in this package is otherwise a complete, testable implementation
// of the Verilog-specific policies in spec.md §4.E: gen-scope-array
// pseudo-regions, the Icarus internal-scope scan workaround, no-delay
// string writes, and vpiBinStrVal-based value-change comparison.
package vpi
