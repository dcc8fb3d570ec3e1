package vpi_test

import (
	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/vpi"
)

// fakeHandle is the RawHandle concrete type the fake NativeAPI hands
// out: a simple in-memory node, good enough to drive the backend's
// dispatch logic without a real simulator.
type fakeHandle struct {
	name     string
	full     string
	defName  string
	defFile  string
	vtype    vpi.VpiType
	isConst  bool
	left     int64
	right    int64
	hasRange bool
	size     int64
	binstr   string
	str      string
	real     float64
	long     int64
	children map[vpi.VpiRelation][]*fakeHandle
}

type fakeNative struct {
	roots        []*fakeHandle
	time         uint64
	precision    int32
	product      string
	version      string
	finished     bool
	removed      []gpi.RawHandle
	lastPutValue string
	lastPutFlag  vpi.PutFlag
}

func (f *fakeNative) GetTime() (uint32, uint32) {
	return uint32(f.time >> 32), uint32(f.time)
}
func (f *fakeNative) GetTimePrecision() int32 { return f.precision }
func (f *fakeNative) ProductName() string     { return f.product }
func (f *fakeNative) ProductVersion() string  { return f.version }

func (f *fakeNative) IterateTopModules() []gpi.RawHandle {
	out := make([]gpi.RawHandle, len(f.roots))
	for i, r := range f.roots {
		out[i] = r
	}
	return out
}

func (f *fakeNative) HandleByName(name string, parent gpi.RawHandle) (gpi.RawHandle, bool) {
	p, _ := parent.(*fakeHandle)
	var pool []*fakeHandle
	if p == nil {
		pool = f.roots
	} else {
		for _, list := range p.children {
			pool = append(pool, list...)
		}
	}
	for _, h := range pool {
		if h.name == name {
			return h, true
		}
	}
	return nil, false
}

func (f *fakeNative) HandleByIndex(parent gpi.RawHandle, index int64) (gpi.RawHandle, bool) {
	p, ok := parent.(*fakeHandle)
	if !ok {
		return nil, false
	}
	for _, list := range p.children {
		if index >= 0 && int(index) < len(list) {
			return list[index], true
		}
	}
	return nil, false
}

func (f *fakeNative) GetType(h gpi.RawHandle) vpi.VpiType { return h.(*fakeHandle).vtype }
func (f *fakeNative) GetSize(h gpi.RawHandle) int64       { return h.(*fakeHandle).size }
func (f *fakeNative) GetConst(h gpi.RawHandle) bool       { return h.(*fakeHandle).isConst }
func (f *fakeNative) GetName(h gpi.RawHandle) string      { return h.(*fakeHandle).name }
func (f *fakeNative) GetFullName(h gpi.RawHandle) string  { return h.(*fakeHandle).full }
func (f *fakeNative) GetDefName(h gpi.RawHandle) string   { return h.(*fakeHandle).defName }
func (f *fakeNative) GetFile(h gpi.RawHandle) string      { return h.(*fakeHandle).defFile }
func (f *fakeNative) GetBinStrVal(h gpi.RawHandle) string { return h.(*fakeHandle).binstr }
func (f *fakeNative) GetStrVal(h gpi.RawHandle) string    { return h.(*fakeHandle).str }
func (f *fakeNative) GetRealVal(h gpi.RawHandle) float64  { return h.(*fakeHandle).real }
func (f *fakeNative) GetLongVal(h gpi.RawHandle) int64    { return h.(*fakeHandle).long }

func (f *fakeNative) GetRange(h gpi.RawHandle) (int64, int64, bool) {
	fh := h.(*fakeHandle)
	return fh.left, fh.right, fh.hasRange
}

func (f *fakeNative) PutBinStrVal(h gpi.RawHandle, value string, flag vpi.PutFlag) error {
	h.(*fakeHandle).binstr = value
	f.lastPutValue, f.lastPutFlag = value, flag
	return nil
}
func (f *fakeNative) PutStrVal(h gpi.RawHandle, value string, flag vpi.PutFlag) error {
	h.(*fakeHandle).str = value
	f.lastPutValue, f.lastPutFlag = value, flag
	return nil
}
func (f *fakeNative) PutRealVal(h gpi.RawHandle, value float64, flag vpi.PutFlag) error {
	h.(*fakeHandle).real = value
	return nil
}
func (f *fakeNative) PutLongVal(h gpi.RawHandle, value int64, flag vpi.PutFlag) error {
	h.(*fakeHandle).long = value
	return nil
}

type fakeIter struct {
	items []*fakeHandle
	pos   int
}

func (f *fakeNative) Iterate(parent gpi.RawHandle, rel vpi.VpiRelation) (gpi.RawHandle, bool) {
	p, ok := parent.(*fakeHandle)
	if !ok {
		return nil, false
	}
	items, ok := p.children[rel]
	if !ok {
		return nil, false
	}
	return &fakeIter{items: items}, true
}

func (f *fakeNative) Scan(iter gpi.RawHandle) (gpi.RawHandle, bool) {
	it := iter.(*fakeIter)
	if it.pos >= len(it.items) {
		return nil, false
	}
	h := it.items[it.pos]
	it.pos++
	return h, true
}

func (f *fakeNative) FreeObject(h gpi.RawHandle) {}

func (f *fakeNative) RegisterCbTimed(delayPS uint64, trampoline func()) gpi.RawHandle {
	return &fakeCallbackHandle{trampoline: trampoline}
}
func (f *fakeNative) RegisterCbValueChange(h gpi.RawHandle, trampoline func()) gpi.RawHandle {
	return &fakeCallbackHandle{trampoline: trampoline}
}
func (f *fakeNative) RegisterCbReadOnlySync(trampoline func()) gpi.RawHandle {
	return &fakeCallbackHandle{trampoline: trampoline}
}
func (f *fakeNative) RegisterCbReadWriteSync(trampoline func()) gpi.RawHandle {
	return &fakeCallbackHandle{trampoline: trampoline}
}
func (f *fakeNative) RegisterCbNextSimTime(trampoline func()) gpi.RawHandle {
	return &fakeCallbackHandle{trampoline: trampoline}
}
func (f *fakeNative) RemoveCallback(cb gpi.RawHandle) bool {
	f.removed = append(f.removed, cb)
	return true
}

func (f *fakeNative) ControlFinish() { f.finished = true }

type fakeCallbackHandle struct {
	trampoline func()
}
