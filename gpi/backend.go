package gpi

// SimTime is a 64-bit simulator tick count split as the C ABI returns it:
// the high and low 32 bits of the time, in the simulator's own
// resolution (see GetSimPrecision).
type SimTime struct {
	High uint32
	Low  uint32
}

// Uint64 combines the two halves into a single value.
func (t SimTime) Uint64() uint64 {
	return uint64(t.High)<<32 | uint64(t.Low)
}

// CallbackFunc is the user function invoked by a fired callback.
type CallbackFunc func(data any)

// RawHandle is an opaque, backend-specific identifier used when adopting
// a native object discovered by another backend's iterator (§4.F
// lookup_by_raw). Its meaning is defined entirely by the owning backend.
type RawHandle any

// Backend is the contract each simulator backend satisfies (spec.md
// §4.A). All registry and dispatch logic is built exclusively against
// this interface; no caller above the trait boundary inspects a
// backend's concrete type.
type Backend interface {
	// Name identifies the backend for logging and duplicate-registration
	// checks (e.g. "vpi", "vhpi", "fli").
	Name() string

	// SimEnd requests the simulator terminate gracefully. Idempotent.
	SimEnd()

	GetSimTime() SimTime
	// GetSimPrecision returns the ten's exponent of the simulator's time
	// resolution, clamped to [-15, 2].
	GetSimPrecision() int32

	ProductName() string
	ProductVersion() string

	// GetRootHandle returns the first top-level module whose name
	// matches, or the first top-level module when name is empty.
	GetRootHandle(name string) (Object, bool)

	// CheckCreate* are the backend's native resolvers. They return
	// ok=false (never an error) when this backend cannot produce the
	// requested object, so the Registry can try the next backend.
	CheckCreateByName(name string, parent Object) (Object, bool)
	CheckCreateByIndex(index int64, parent Object) (Object, bool)
	CheckCreateByRaw(raw RawHandle, parent Object) (Object, bool)

	Iterate(parent Object, sel Selector) (Iterator, bool)

	RegisterTimed(delayPS uint64, fn CallbackFunc, data any) Callback
	RegisterReadOnly(fn CallbackFunc, data any) Callback
	RegisterReadWrite(fn CallbackFunc, data any) Callback
	RegisterNextTime(fn CallbackFunc, data any) Callback

	Deregister(cb Callback)

	// ReasonToString is a diagnostics-only helper.
	ReasonToString(reason CallbackReason) string
}
