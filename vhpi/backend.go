package vhpi

import "github.com/sarchlab/gogpi/gpi"

// Backend implements gpi.Backend against VHPI (spec.md §4.E "VHDL
// interface").
type Backend struct {
	native NativeAPI

	productName    string
	productVersion string
	haveProduct    bool
}

// New constructs a VHPI backend over native.
func New(native NativeAPI) *Backend {
	return &Backend{native: native}
}

func (b *Backend) Name() string { return "vhpi" }

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
	cb := gpi.NewTimerCallback(b, delayPS, fn, data, true, nil, nil)
	var nativeCb gpi.RawHandle
	cb.ArmFn = func(delay uint64) error {
		nativeCb = b.native.RegisterCbTimed(delay, func() { gpi.Trampoline(cb) })
		return nil
	}
	cb.RemoveFn = func() error {
		b.native.RemoveCallback(nativeCb)
		return nil
	}
	return cb
}

func (b *Backend) RegisterReadOnly(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonReadOnly, fn, data, b.native.RegisterCbReadOnlySync)
}

func (b *Backend) RegisterReadWrite(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonReadWrite, fn, data, b.native.RegisterCbReadWriteSync)
}

func (b *Backend) RegisterNextTime(fn gpi.CallbackFunc, data any) gpi.Callback {
	return b.newPhaseCallback(gpi.ReasonNextTime, fn, data, b.native.RegisterCbNextSimTime)
}

func (b *Backend) newPhaseCallback(reason gpi.CallbackReason, fn gpi.CallbackFunc, data any, register func(func()) gpi.RawHandle) gpi.Callback {
	var nativeCb gpi.RawHandle
	cb := gpi.NewPhaseCallback(b, reason, fn, data, nil, nil)
	cb.ArmFn = func() error {
		nativeCb = register(func() { gpi.Trampoline(cb) })
		return nil
	}
	cb.RemoveFn = func() error {
		b.native.RemoveCallback(nativeCb)
		return nil
	}
	return cb
}

func (b *Backend) Deregister(cb gpi.Callback) {
	_ = cb.Remove()
}

func (b *Backend) ReasonToString(reason gpi.CallbackReason) string {
	return "vhpi:" + reason.String()
}

func (b *Backend) registerValueChange(target *Object, edge gpi.Edge, fn gpi.CallbackFunc, data any) (gpi.Callback, error) {
	var nativeCb gpi.RawHandle
	cb := gpi.NewValueChangeCallback(b, target, edge, fn, data, nil, nil)
	cb.ArmFn = func() error {
		nativeCb = b.native.RegisterCbValueChange(target.raw, func() { gpi.Trampoline(cb) })
		return nil
	}
	cb.RemoveFn = func() error {
		b.native.RemoveCallback(nativeCb)
		return nil
	}
	return cb, nil
}
