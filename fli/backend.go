package fli

import "github.com/sarchlab/gogpi/gpi"

// Backend implements gpi.Backend against FLI (spec.md §4.E "Mentor
// FLI"). Its registration methods draw from a per-reason free list
// instead of creating a fresh native process every time, since FLI
// process objects can never be destroyed (spec.md §4.C "FLI
// process-callback recycling", extended here to every reason this
// backend registers).
type Backend struct {
	native NativeAPI

	productName    string
	productVersion string
	haveProduct    bool

	pools map[gpi.CallbackReason][]gpi.RawHandle
}

// New constructs an FLI backend over native.
func New(native NativeAPI) *Backend {
	return &Backend{native: native, pools: make(map[gpi.CallbackReason][]gpi.RawHandle)}
}

// acquireProcess pops a recycled native process for reason if the free
// list is non-empty, else reports reused=false so the caller creates
// one via NativeAPI.CreateProcess.
func (b *Backend) acquireProcess(reason gpi.CallbackReason) (proc gpi.RawHandle, reused bool) {
	pool := b.pools[reason]
	if len(pool) == 0 {
		return nil, false
	}
	proc = pool[len(pool)-1]
	b.pools[reason] = pool[:len(pool)-1]
	return proc, true
}

// releaseProcess returns proc to the tail of reason's free list. Called
// only from a callback's Fire/release path, preserving the single-
// threaded, trampoline-only touch point (spec.md §5).
func (b *Backend) releaseProcess(reason gpi.CallbackReason, proc gpi.RawHandle) {
	b.pools[reason] = append(b.pools[reason], proc)
}

func (b *Backend) Name() string { return "fli" }

func (b *Backend) SimEnd() { b.native.ControlFinish() }

func (b *Backend) GetSimTime() gpi.SimTime {
	high, low := b.native.GetTime()
	return gpi.SimTime{High: high, Low: low}
}

func (b *Backend) GetSimPrecision() int32 {
	p := b.native.GetTimePrecision()
	if p < -15 {
		return -15
	}
	if p > 2 {
		return 2
	}
	return p
}

func (b *Backend) ProductName() string {
	b.cacheProduct()
	return b.productName
}

func (b *Backend) ProductVersion() string {
	b.cacheProduct()
	return b.productVersion
}

func (b *Backend) cacheProduct() {
	if b.haveProduct {
		return
	}
	b.productName = b.native.ProductName()
	b.productVersion = b.native.ProductVersion()
	b.haveProduct = true
}

func (b *Backend) GetRootHandle(name string) (gpi.Object, bool) {
	for _, raw := range b.native.IterateTopRegions() {
		if name == "" || b.native.GetName(raw) == name {
			return b.wrap(raw, nil), true
		}
	}
	return nil, false
}

func (b *Backend) CheckCreateByName(name string, parent gpi.Object) (gpi.Object, bool) {
	var parentRaw gpi.RawHandle
	if parent != nil {
		po, ok := parent.(*Object)
		if !ok {
			return nil, false
		}
		parentRaw = po.raw
	}
	raw, ok := b.native.HandleByName(name, parentRaw)
	if !ok {
		return nil, false
	}
	return b.wrap(raw, parent), true
}

func (b *Backend) CheckCreateByIndex(index int64, parent gpi.Object) (gpi.Object, bool) {
	po, ok := parent.(*Object)
	if !ok {
		return nil, false
	}
	offset := po.ObjRange.Offset(index)
	raw, ok := b.native.HandleByIndex(po.raw, offset)
	if !ok {
		return nil, false
	}
	return b.wrap(raw, parent), true
}

func (b *Backend) CheckCreateByRaw(raw gpi.RawHandle, parent gpi.Object) (gpi.Object, bool) {
	if raw == nil {
		return nil, false
	}
	return b.wrap(raw, parent), true
}

// Iterate supports only OBJECTS: FLI has no drivers/loads relationship
// (spec.md §4.E).
func (b *Backend) Iterate(parent gpi.Object, sel gpi.Selector) (gpi.Iterator, bool) {
	if sel != gpi.SelObjects {
		return nil, false
	}
	po, ok := parent.(*Object)
	if !ok {
		return nil, false
	}
	return newRegionIterator(b, po), true
}

func (b *Backend) RegisterTimed(delayPS uint64, fn gpi.CallbackFunc, data any) gpi.Callback {
	cb := gpi.NewTimerCallback(b, delayPS, fn, data, false, nil, nil)
	var proc gpi.RawHandle
	cb.ArmFn = func(delay uint64) error {
		var reused bool
		proc, reused = b.acquireProcess(gpi.ReasonTimed)
		trampoline := func() { gpi.Trampoline(cb) }
		if reused {
			b.native.ReconfigureProcess(proc, trampoline)
		} else {
			proc = b.native.CreateProcess(trampoline)
		}
		return b.native.ScheduleWakeup(proc, delay)
	}
	cb.ReleaseFn = func() { b.releaseProcess(gpi.ReasonTimed, proc) }
	return cb
}

func (b *Backend) RegisterReadOnly(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonReadOnly, fn, data, func(proc gpi.RawHandle) error {
		return b.native.SensitizeToReadOnlySync(proc)
	})
}

func (b *Backend) RegisterReadWrite(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonReadWrite, fn, data, func(proc gpi.RawHandle) error {
		return b.native.SensitizeToReadWriteSync(proc)
	})
}

func (b *Backend) RegisterNextTime(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonNextTime, fn, data, func(proc gpi.RawHandle) error {
		return b.native.SensitizeToNextSimTime(proc)
	})
}

func (b *Backend) newPhaseCallback(reason gpi.CallbackReason, fn gpi.CallbackFunc, data any, sensitize func(gpi.RawHandle) error) gpi.Callback {
	cb := gpi.NewPhaseCallback(b, reason, fn, data, nil, nil)
	cb.CancelSupported = false
	var proc gpi.RawHandle
	cb.ArmFn = func() error {
		var reused bool
		proc, reused = b.acquireProcess(reason)
		trampoline := func() { gpi.Trampoline(cb) }
		if reused {
			b.native.ReconfigureProcess(proc, trampoline)
		} else {
			proc = b.native.CreateProcess(trampoline)
		}
		return sensitize(proc)
	}
	cb.ReleaseFn = func() { b.releaseProcess(reason, proc) }
	return cb
}

func (b *Backend) Deregister(cb gpi.Callback) {
	_ = cb.Remove()
}

func (b *Backend) ReasonToString(reason gpi.CallbackReason) string {
	return "fli:" + reason.String()
}

func (b *Backend) registerValueChange(target *Object, edge gpi.Edge, fn gpi.CallbackFunc, data any) (gpi.Callback, error) {
	cb := gpi.NewValueChangeCallback(b, target, edge, fn, data, nil, nil)
	var proc gpi.RawHandle
	cb.ArmFn = func() error {
		var reused bool
		proc, reused = b.acquireProcess(gpi.ReasonValueChange)
		trampoline := func() { gpi.Trampoline(cb) }
		if reused {
			b.native.ReconfigureProcess(proc, trampoline)
		} else {
			proc = b.native.CreateProcess(trampoline)
		}
		return b.native.SensitizeToSignal(proc, target.raw)
	}
	cb.RemoveFn = func() error {
		b.releaseProcess(gpi.ReasonValueChange, proc)
		return nil
	}
	return cb, nil
}
