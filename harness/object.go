package harness

import (
	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/gpi/codec"
)

// valueState is the mutable value slot behind a signal-like leaf Object.
// A bit-view into a vector shares its parent's valueState instead of
// holding its own.
type valueState struct {
	binstr string
	long   int64
	real   float64
	str    string
	forced bool
}

// Object is the harness's only gpi.Object implementation: a plain,
// in-memory design-tree node. It never touches a NativeAPI seam, unlike
// vpi/vhpi/fli's Object types, since the harness backend and the object
// model are the same thing (spec.md §9 "Coroutine-free scheduling": the
// simulator is the event loop here too).
type Object struct {
	gpi.BaseObject

	backend *Simulator

	children    map[string]*Object
	childOrder  []string
	indexed     []*Object

	bitParent *Object
	bitOffset int64

	value *valueState

	vcCallbacks []gpi.Callback
}

func (o *Object) ChildByName(name string) (gpi.Object, bool) {
	c, ok := o.children[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func (o *Object) ChildByIndex(index int64) (gpi.Object, bool) {
	if !o.IndexableFlag || !o.ObjRange.Contains(index) {
		return nil, false
	}
	offset := o.ObjRange.Offset(index)
	if o.indexed != nil {
		if offset < 0 || int(offset) >= len(o.indexed) {
			return nil, false
		}
		return o.indexed[offset], true
	}
	// A bit-view shares the parent's valueState and reports its own
	// offset for Get/SetBinstr.
	bit := &Object{backend: o.backend, bitParent: o, bitOffset: offset}
	bit.BackendRef = o.backend
	bit.KindValue = gpi.KindLogic
	bit.ConstFlag = o.ConstFlag
	bit.LeafName = o.LeafName
	bit.FullPath = o.FullPath
	return bit, true
}

func (o *Object) Iterate(sel gpi.Selector) (gpi.Iterator, bool) {
	if sel != gpi.SelObjects {
		return nil, false
	}
	if o.indexed != nil {
		return newSliceIterator(o, o.backend, o.indexed), true
	}
	children := make([]*Object, 0, len(o.childOrder))
	for _, name := range o.childOrder {
		children = append(children, o.children[name])
	}
	return newSliceIterator(o, o.backend, children), true
}

func (o *Object) root() *Object {
	if o.bitParent != nil {
		return o.bitParent
	}
	return o
}

func (o *Object) GetBinstr() (string, error) {
	if !o.KindValue.IsSignalLike() && o.bitParent == nil {
		return "", &gpi.UnsupportedError{Operation: "get_binstr", Kind: o.KindValue}
	}
	r := o.root()
	if o.bitParent != nil {
		s := r.value.binstr
		pos := int(o.bitOffset)
		if pos < 0 || pos >= len(s) {
			return "", &gpi.CoercionError{Operation: "get_binstr", Reason: "bit offset out of range"}
		}
		return string(s[pos]), nil
	}
	return r.value.binstr, nil
}

func (o *Object) GetLong() (int64, error) {
	if o.KindValue != gpi.KindInteger {
		return 0, &gpi.UnsupportedError{Operation: "get_long", Kind: o.KindValue}
	}
	return o.value.long, nil
}

func (o *Object) GetReal() (float64, error) {
	if o.KindValue != gpi.KindReal {
		return 0, &gpi.UnsupportedError{Operation: "get_real", Kind: o.KindValue}
	}
	return o.value.real, nil
}

func (o *Object) GetStr() (string, error) {
	if o.KindValue != gpi.KindString {
		return "", &gpi.UnsupportedError{Operation: "get_str", Kind: o.KindValue}
	}
	return o.value.str, nil
}

func (o *Object) SetBinstr(value string, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_binstr", Reason: "handle is const"}
	}
	if o.bitParent != nil {
		r := o.root()
		pos := int(o.bitOffset)
		if len(value) != 1 || pos < 0 || pos >= len(r.value.binstr) {
			return &gpi.CoercionError{Operation: "set_binstr", Reason: "bit-view takes one character within range"}
		}
		if action != gpi.ActionRelease {
			s := []byte(r.value.binstr)
			s[pos] = value[0]
			r.value.binstr = string(s)
			r.notifyValueChange()
		}
		return nil
	}
	if o.NumElems() > 1 && int64(len(value)) != o.NumElems() {
		return &gpi.CoercionError{Operation: "set_binstr", Reason: "length does not match num_elems"}
	}
	switch action {
	case gpi.ActionRelease:
		o.value.forced = false
		return nil
	default:
		o.value.binstr = value
		o.value.forced = action == gpi.ActionForce
		o.notifyValueChange()
		return nil
	}
}

func (o *Object) SetLong(value int64, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_long", Reason: "handle is const"}
	}
	if o.KindValue != gpi.KindInteger && !o.KindValue.IsSignalLike() {
		return &gpi.UnsupportedError{Operation: "set_long", Kind: o.KindValue}
	}
	switch action {
	case gpi.ActionRelease:
		o.value.forced = false
		return nil
	default:
		o.value.long = value
		o.value.forced = action == gpi.ActionForce
		if o.KindValue.IsSignalLike() && o.KindValue != gpi.KindInteger {
			width := int(o.NumElems())
			if width <= 0 {
				width = 1
			}
			o.value.binstr = codec.IntToBinstr(value, width)
		}
		o.notifyValueChange()
		return nil
	}
}

func (o *Object) SetReal(value float64, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_real", Reason: "handle is const"}
	}
	o.value.real = value
	o.value.forced = action == gpi.ActionForce
	return nil
}

func (o *Object) SetStr(value string, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_str", Reason: "handle is const"}
	}
	o.value.str = value
	return nil
}

func (o *Object) RegisterValueChangeCB(edge gpi.Edge, fn gpi.CallbackFunc, data any) (gpi.Callback, error) {
	if o.ConstFlag || !o.KindValue.IsSignalLike() {
		return nil, &gpi.UnsupportedError{Operation: "register_value_change_cb", Kind: o.KindValue}
	}
	target := o
	var cb *gpi.ValueChangeCallback
	cb = gpi.NewValueChangeCallback(o.backend, target, edge, fn, data,
		func() error {
			target.vcCallbacks = append(target.vcCallbacks, cb)
			return nil
		},
		func() error {
			filtered := target.vcCallbacks[:0]
			for _, existing := range target.vcCallbacks {
				if existing != gpi.Callback(cb) {
					filtered = append(filtered, existing)
				}
			}
			target.vcCallbacks = filtered
			return nil
		},
	)
	return cb, nil
}

// notifyValueChange fires every primed value-change callback armed on
// this leaf, synchronously, modeling the zero-delay delta a real
// simulator's scheduler would interpose (spec.md §5 "value-change" is
// first in the declared per-step order after immediate events).
func (o *Object) notifyValueChange() {
	r := o.root()
	for _, cb := range r.vcCallbacks {
		if cb.State() == gpi.CallbackPrimed || cb.State() == gpi.CallbackCall {
			cb.Fire()
		}
	}
}
