package fli

import (
	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/gpi/codec"
)

// Object implements gpi.Object over a native FLI handle. family records
// which of FLI's two native object hierarchies raw belongs to, since
// signals and variables are separate C types with separate accessor
// families (spec.md §4.E).
type Object struct {
	gpi.BaseObject
	backend    *Backend
	raw        gpi.RawHandle
	family     Family
	isLogic    bool
	isLogicVec bool
	isEnum     bool
}

func (b *Backend) wrap(raw gpi.RawHandle, parent gpi.Object) *Object {
	family := b.native.GetFamily(raw)
	acc := b.native.GetAccType(raw)
	lits := b.native.EnumLiterals(raw)

	obj := &Object{backend: b, raw: raw, family: family}
	obj.BackendRef = b
	obj.LeafName = b.native.GetName(raw)
	obj.FullPath = b.native.GetFullName(raw)
	obj.DefName = b.native.GetDefName(raw)
	obj.DefFile = b.native.GetFile(raw)
	obj.ConstFlag = b.native.GetConst(raw) || acc == AccGeneric

	switch {
	case family == FamilyRegion && acc == AccForGenerate:
		obj.KindValue = gpi.KindGenArray
		obj.IndexableFlag = true
		obj.ConstFlag = true
		return obj
	case family == FamilyRegion:
		obj.KindValue = gpi.KindModule
		return obj
	case acc == AccRecord:
		obj.KindValue = gpi.KindStructure
		return obj
	}

	size := b.native.GetSize(raw)
	switch {
	case codec.IsBooleanLiteralSet(lits), codec.IsCharacterLiteralSet(lits):
		obj.KindValue = gpi.KindInteger
	case codec.IsLogicLiteralSet(lits):
		if size > 1 {
			obj.KindValue = gpi.KindArray
			obj.isLogicVec = true
		} else {
			obj.KindValue = gpi.KindLogic
			obj.isLogic = true
		}
	case len(lits) > 0:
		obj.KindValue = gpi.KindEnum
		obj.isEnum = true
	default:
		obj.KindValue = gpi.KindInteger
	}

	if left, right, ok := b.native.GetRange(raw); ok {
		obj.IndexableFlag = true
		dir := gpi.DirTo
		if left > right {
			dir = gpi.DirDownto
		}
		obj.ObjRange = gpi.Range{Left: left, Right: right, Direction: dir}
	} else if size > 1 {
		obj.IndexableFlag = true
		obj.ObjRange = gpi.Range{Left: 0, Right: size - 1, Direction: gpi.DirTo}
	}

	return obj
}

func (o *Object) ChildByName(name string) (gpi.Object, bool) {
	return o.backend.CheckCreateByName(name, o)
}

func (o *Object) ChildByIndex(index int64) (gpi.Object, bool) {
	obj, ok := o.backend.CheckCreateByIndex(index, o)
	return obj, ok
}

func (o *Object) Iterate(sel gpi.Selector) (gpi.Iterator, bool) {
	return o.backend.Iterate(o, sel)
}

func (o *Object) GetBinstr() (string, error) {
	if !o.KindValue.IsSignalLike() {
		return "", &gpi.UnsupportedError{Operation: "get_binstr", Kind: o.KindValue}
	}
	if o.isLogic || o.isLogicVec {
		return o.backend.native.GetBinStrVal(o.raw), nil
	}
	width := int(o.NumElems())
	if width <= 0 {
		width = 32
	}
	v, err := o.GetLong()
	if err != nil {
		return "", err
	}
	return codec.IntToBinstr(v, width), nil
}

func (o *Object) GetStr() (string, error) {
	if o.KindValue != gpi.KindString {
		return "", &gpi.UnsupportedError{Operation: "get_str", Kind: o.KindValue}
	}
	return o.backend.native.GetStrVal(o.raw), nil
}

func (o *Object) GetReal() (float64, error) {
	if o.KindValue != gpi.KindReal {
		return 0, &gpi.UnsupportedError{Operation: "get_real", Kind: o.KindValue}
	}
	return o.backend.native.GetRealVal(o.raw), nil
}

func (o *Object) GetLong() (int64, error) {
	switch {
	case o.KindValue == gpi.KindInteger:
		return o.backend.native.GetLongVal(o.raw), nil
	case o.isEnum:
		return o.backend.native.GetEnumPos(o.raw), nil
	case (o.isLogic || o.isLogicVec) && o.NumElems() <= 32:
		return codec.BinstrToInt(o.backend.native.GetBinStrVal(o.raw)), nil
	default:
		return 0, &gpi.UnsupportedError{Operation: "get_long", Kind: o.KindValue}
	}
}

func (o *Object) SetBinstr(value string, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_binstr", Reason: "handle is const"}
	}
	if !(o.isLogic || o.isLogicVec) {
		return &gpi.UnsupportedError{Operation: "set_binstr", Kind: o.KindValue}
	}
	if int64(len(value)) != o.NumElems() && o.NumElems() > 1 {
		return &gpi.CoercionError{Operation: "set_binstr", Reason: "length does not match num_elems"}
	}
	switch action {
	case gpi.ActionForce:
		return o.backend.native.PutForceLiteral(o.raw, codec.VHDLForceLogic(value))
	case gpi.ActionRelease:
		return o.backend.native.Release(o.raw)
	default:
		return o.backend.native.PutBinStrVal(o.raw, value, PutDeposit)
	}
}

func (o *Object) SetStr(value string, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_str", Reason: "handle is const"}
	}
	if o.KindValue != gpi.KindString {
		return &gpi.UnsupportedError{Operation: "set_str", Kind: o.KindValue}
	}
	return o.backend.native.PutStrVal(o.raw, value, toPutMode(action))
}

func (o *Object) SetReal(value float64, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_real", Reason: "handle is const"}
	}
	if o.KindValue != gpi.KindReal {
		return &gpi.UnsupportedError{Operation: "set_real", Kind: o.KindValue}
	}
	return o.backend.native.PutRealVal(o.raw, value, toPutMode(action))
}

func (o *Object) SetLong(value int64, action gpi.Action) error {
	if o.ConstFlag {
		return &gpi.CoercionError{Operation: "set_long", Reason: "handle is const"}
	}
	if o.KindValue != gpi.KindInteger && !o.isEnum {
		return &gpi.UnsupportedError{Operation: "set_long", Kind: o.KindValue}
	}
	switch action {
	case gpi.ActionForce:
		return o.backend.native.PutForceLiteral(o.raw, codec.VHDLForceInteger(value))
	case gpi.ActionRelease:
		return o.backend.native.Release(o.raw)
	default:
		return o.backend.native.PutLongVal(o.raw, value, PutDeposit)
	}
}

func toPutMode(action gpi.Action) PutMode {
	switch action {
	case gpi.ActionForce:
		return PutForce
	case gpi.ActionRelease:
		return PutRelease
	default:
		return PutDeposit
	}
}

func (o *Object) RegisterValueChangeCB(edge gpi.Edge, fn gpi.CallbackFunc, data any) (gpi.Callback, error) {
	if o.ConstFlag || !o.KindValue.IsSignalLike() || o.family != FamilySignal {
		return nil, &gpi.UnsupportedError{Operation: "register_value_change_cb", Kind: o.KindValue}
	}
	return o.backend.registerValueChange(o, edge, fn, data)
}
