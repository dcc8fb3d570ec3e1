// Package gpi implements the Generic Procedural Interface: a uniform
// adapter layer that normalizes Verilog VPI, VHDL VHPI, and Mentor/Siemens
// FLI behind a single language-neutral API for a test-orchestration
// runtime.
//
// The package owns the polymorphic handle system (Object), the callback
// lifecycle state machine (Callback), the iterator abstraction
// (Iterator), and the multi-backend dispatcher (Registry). Concrete
// simulator bindings live in the sibling vpi, vhpi, and fli packages,
// each implementing the Backend contract defined here.
package gpi
