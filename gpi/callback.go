package gpi

// CallbackState is the callback lifecycle's finite-state machine, per
// spec.md §3 "Callback handle": FREE -> PRIMED -> CALL -> (re-primed |
// DELETE). DeferredDelete is the work-around for simulators (FLI
// wakeups) that cannot cancel a primed native callback: Remove() marks
// it instead of removing it, and the next firing self-releases without
// invoking the user.
type CallbackState int

const (
	CallbackFree CallbackState = iota
	CallbackPrimed
	CallbackCall
	CallbackDelete
	CallbackDeferredDelete
)

func (s CallbackState) String() string {
	switch s {
	case CallbackFree:
		return "Free"
	case CallbackPrimed:
		return "Primed"
	case CallbackCall:
		return "Call"
	case CallbackDelete:
		return "Delete"
	case CallbackDeferredDelete:
		return "DeferredDelete"
	default:
		return "CallbackState(?)"
	}
}

// Callback is a scheduled hook from the simulator back into the core.
// Fire is invoked once per native firing, by Trampoline or by the
// backend or bootstrap code that owns the callback; user code calls Arm
// and Remove.
type Callback interface {
	Arm() error
	Remove() error
	State() CallbackState
	Reason() CallbackReason
	Fire()
}

// BaseCallback holds the state shared by every callback kind. Concrete
// callback types (constructed by this package's New*Callback functions,
// shared across all three backends) embed it and drive `state` directly.
type BaseCallback struct {
	BackendRef Backend
	Fn         CallbackFunc
	Data       any
	reason     CallbackReason
	state      CallbackState

	// ReleaseFn, if set, is called once when a firing leaves the callback
	// in CallbackDelete, whether via normal one-shot completion or a
	// deferred-delete self-release. A Remove that cancels a primed
	// callback outright does not call it. Backends whose
	// native callback object cannot be destroyed (FLI processes) use
	// this to return the object to a per-kind free list instead of
	// actually releasing it (spec.md §4.C "FLI process-callback
	// recycling").
	ReleaseFn func()
}

func (c *BaseCallback) State() CallbackState   { return c.state }
func (c *BaseCallback) Reason() CallbackReason { return c.reason }

func (c *BaseCallback) release() {
	if c.ReleaseFn != nil {
		c.ReleaseFn()
	}
}

// Invoke calls the user function if one was supplied. Split out from
// Fire so every concrete Fire body can decide independently whether this
// firing qualifies (edge match, deferred-delete, etc.).
func (c *BaseCallback) Invoke() {
	if c.Fn != nil {
		c.Fn(c.Data)
	}
}

// Trampoline is the shared lifecycle driver backing each backend's
// exported C entry point (spec.md §4.C "Trampoline"): look up the
// Callback from the native user_data pointer, then call Trampoline(cb).
func Trampoline(cb Callback) {
	cb.Fire()
}

// TimerCallback implements the Timer callback kind (spec.md §4.C). It
// fires once per arm and is deleted unless the user function re-arms it.
type TimerCallback struct {
	BaseCallback
	DelayPS uint64

	// CancelSupported is false on backends (FLI) whose native wakeup
	// cannot be cancelled once primed; Remove then defers instead.
	CancelSupported bool

	ArmFn    func(delayPS uint64) error
	RemoveFn func() error
}

// NewTimerCallback constructs a free timer callback armed for delayPS.
// armFn/removeFn wrap the owning backend's native registration
// primitive. To re-arm with a different delay inside the user function,
// set DelayPS then call Arm again.
func NewTimerCallback(
	backend Backend, delayPS uint64, fn CallbackFunc, data any, cancelSupported bool,
	armFn func(delayPS uint64) error, removeFn func() error,
) *TimerCallback {
	return &TimerCallback{
		BaseCallback:    BaseCallback{BackendRef: backend, Fn: fn, Data: data, reason: ReasonTimed},
		DelayPS:         delayPS,
		CancelSupported: cancelSupported,
		ArmFn:           armFn,
		RemoveFn:        removeFn,
	}
}

func (c *TimerCallback) Arm() error {
	if err := c.ArmFn(c.DelayPS); err != nil {
		return err
	}
	c.state = CallbackPrimed
	return nil
}

func (c *TimerCallback) Remove() error {
	switch c.state {
	case CallbackPrimed:
		if c.CancelSupported {
			err := c.RemoveFn()
			c.state = CallbackDelete
			return err
		}
		c.state = CallbackDeferredDelete
		return nil
	default:
		// Already fired, already deleted, or already deferred: always safe.
		return nil
	}
}

func (c *TimerCallback) Fire() {
	if c.state == CallbackDeferredDelete {
		c.state = CallbackDelete
		c.release()
		return
	}
	c.state = CallbackCall
	c.Invoke()
	if c.state == CallbackPrimed {
		return
	}
	c.state = CallbackDelete
	c.release()
}

// ValueChangeCallback implements the Value-change callback kind. Unlike
// a timer, it is recurring by default: every firing re-primes itself
// unless the user function (or an external caller) removed it.
type ValueChangeCallback struct {
	BaseCallback
	Target     Object
	EdgeValue  Edge
	ArmFn      func() error
	RemoveFn   func() error
}

func NewValueChangeCallback(
	backend Backend, target Object, edge Edge, fn CallbackFunc, data any,
	armFn, removeFn func() error,
) *ValueChangeCallback {
	return &ValueChangeCallback{
		BaseCallback: BaseCallback{BackendRef: backend, Fn: fn, Data: data, reason: ReasonValueChange},
		Target:       target,
		EdgeValue:    edge,
		ArmFn:        armFn,
		RemoveFn:     removeFn,
	}
}

func (c *ValueChangeCallback) Arm() error {
	if err := c.ArmFn(); err != nil {
		return err
	}
	c.state = CallbackPrimed
	return nil
}

func (c *ValueChangeCallback) Remove() error {
	if c.state != CallbackPrimed && c.state != CallbackCall {
		return nil
	}
	err := c.RemoveFn()
	c.state = CallbackDelete
	return err
}

func (c *ValueChangeCallback) Fire() {
	if c.state == CallbackDeferredDelete {
		c.state = CallbackDelete
		c.release()
		return
	}
	c.state = CallbackCall

	s, err := c.Target.GetBinstr()
	if err == nil && len(s) > 0 && c.EdgeValue.Matches(s[len(s)-1]) {
		c.Invoke()
	}

	if c.state == CallbackDelete {
		c.release()
		return
	}
	c.state = CallbackPrimed
}

// PhaseCallback implements READ-ONLY, READ-WRITE, and NEXT-TIME. Like a
// timer it is one-shot unless re-armed inside the user function.
type PhaseCallback struct {
	BaseCallback
	Priority Priority

	// CancelSupported is false on backends (FLI) whose native sensitized
	// process cannot be cancelled once primed; Remove then defers.
	CancelSupported bool

	ArmFn    func() error
	RemoveFn func() error
}

func NewPhaseCallback(
	backend Backend, reason CallbackReason, fn CallbackFunc, data any,
	armFn, removeFn func() error,
) *PhaseCallback {
	return &PhaseCallback{
		BaseCallback:    BaseCallback{BackendRef: backend, Fn: fn, Data: data, reason: reason},
		CancelSupported: true,
		ArmFn:           armFn,
		RemoveFn:        removeFn,
	}
}

func (c *PhaseCallback) Arm() error {
	if err := c.ArmFn(); err != nil {
		return err
	}
	c.state = CallbackPrimed
	return nil
}

func (c *PhaseCallback) Remove() error {
	switch c.state {
	case CallbackPrimed:
		if c.CancelSupported {
			err := c.RemoveFn()
			c.state = CallbackDelete
			return err
		}
		c.state = CallbackDeferredDelete
		return nil
	default:
		return nil
	}
}

func (c *PhaseCallback) Fire() {
	if c.state == CallbackDeferredDelete {
		c.state = CallbackDelete
		c.release()
		return
	}
	c.state = CallbackCall
	c.Invoke()
	if c.state == CallbackPrimed {
		return
	}
	c.state = CallbackDelete
	c.release()
}

// StartupCallback fires exactly once at start-of-simulation, handing the
// simulator's argv to the user runtime.
type StartupCallback struct {
	BaseCallback
	Argv []string
}

func NewStartupCallback(backend Backend, fn CallbackFunc, data any) *StartupCallback {
	return &StartupCallback{BaseCallback: BaseCallback{BackendRef: backend, Fn: fn, Data: data, reason: ReasonStartup}}
}

func (c *StartupCallback) Arm() error {
	c.state = CallbackPrimed
	return nil
}

func (c *StartupCallback) Remove() error {
	c.state = CallbackDelete
	return nil
}

func (c *StartupCallback) Fire() {
	if c.state == CallbackDelete {
		return
	}
	c.state = CallbackCall
	c.Invoke()
	c.state = CallbackDelete
}

// ShutdownCallback fires at end-of-simulation. MarkConsumed lets an
// orderly shutdown (each backend package's Shutdown function, or
// harness.Simulator.SimEnd) preempt a later native shutdown-reason firing so the
// user's cleanup hook never runs twice (spec.md §8 scenario 6).
type ShutdownCallback struct {
	BaseCallback
}

func NewShutdownCallback(backend Backend, fn CallbackFunc, data any) *ShutdownCallback {
	return &ShutdownCallback{BaseCallback: BaseCallback{BackendRef: backend, Fn: fn, Data: data, reason: ReasonShutdown}}
}

func (c *ShutdownCallback) Arm() error {
	c.state = CallbackPrimed
	return nil
}

func (c *ShutdownCallback) Remove() error {
	c.state = CallbackDelete
	return nil
}

func (c *ShutdownCallback) Fire() {
	if c.state == CallbackDelete {
		return
	}
	c.state = CallbackCall
	c.Invoke()
	c.state = CallbackDelete
}

// MarkConsumed fires the shutdown hook immediately (used by an orderly
// sim_end()) and marks it delete so a later native end-of-simulation
// callback from the same process is a silent no-op.
func (c *ShutdownCallback) MarkConsumed() {
	c.Fire()
}
