package fli_test

import (
	"github.com/sarchlab/gogpi/fli"
	"github.com/sarchlab/gogpi/gpi"
)

type fakeHandle struct {
	name     string
	full     string
	defName  string
	defFile  string
	family   fli.Family
	acc      fli.AccType
	isConst  bool
	left     int64
	right    int64
	hasRange bool
	size     int64
	literals []string
	binstr   string
	str      string
	real     float64
	long     int64
	enumPos  int64
	children map[fli.Relation][]*fakeHandle
}

type fakeProcess struct {
	trampoline func()
	armedWith  gpi.RawHandle // signal sensitized to, for value-change
	delayPS    uint64
	createdN   int
}

type fakeNative struct {
	roots        []*fakeHandle
	time         uint64
	precision    int32
	product      string
	version      string
	finished     bool
	created      int
	reconfigured int
}

func (f *fakeNative) GetTime() (uint32, uint32) { return uint32(f.time >> 32), uint32(f.time) }
func (f *fakeNative) GetTimePrecision() int32   { return f.precision }
func (f *fakeNative) ProductName() string       { return f.product }
func (f *fakeNative) ProductVersion() string    { return f.version }

func (f *fakeNative) IterateTopRegions() []gpi.RawHandle {
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

func (f *fakeNative) GetFamily(h gpi.RawHandle) fli.Family    { return h.(*fakeHandle).family }
func (f *fakeNative) GetAccType(h gpi.RawHandle) fli.AccType  { return h.(*fakeHandle).acc }
func (f *fakeNative) GetSize(h gpi.RawHandle) int64           { return h.(*fakeHandle).size }
func (f *fakeNative) GetConst(h gpi.RawHandle) bool           { return h.(*fakeHandle).isConst }
func (f *fakeNative) GetName(h gpi.RawHandle) string          { return h.(*fakeHandle).name }
func (f *fakeNative) GetFullName(h gpi.RawHandle) string      { return h.(*fakeHandle).full }
func (f *fakeNative) GetDefName(h gpi.RawHandle) string       { return h.(*fakeHandle).defName }
func (f *fakeNative) GetFile(h gpi.RawHandle) string          { return h.(*fakeHandle).defFile }
func (f *fakeNative) EnumLiterals(h gpi.RawHandle) []string   { return h.(*fakeHandle).literals }
func (f *fakeNative) GetBinStrVal(h gpi.RawHandle) string     { return h.(*fakeHandle).binstr }
func (f *fakeNative) GetStrVal(h gpi.RawHandle) string        { return h.(*fakeHandle).str }
func (f *fakeNative) GetRealVal(h gpi.RawHandle) float64      { return h.(*fakeHandle).real }
func (f *fakeNative) GetLongVal(h gpi.RawHandle) int64        { return h.(*fakeHandle).long }
func (f *fakeNative) GetEnumPos(h gpi.RawHandle) int64        { return h.(*fakeHandle).enumPos }

func (f *fakeNative) GetRange(h gpi.RawHandle) (int64, int64, bool) {
	fh := h.(*fakeHandle)
	return fh.left, fh.right, fh.hasRange
}

func (f *fakeNative) PutBinStrVal(h gpi.RawHandle, value string, mode fli.PutMode) error {
	h.(*fakeHandle).binstr = value
	return nil
}
func (f *fakeNative) PutStrVal(h gpi.RawHandle, value string, mode fli.PutMode) error {
	h.(*fakeHandle).str = value
	return nil
}
func (f *fakeNative) PutRealVal(h gpi.RawHandle, value float64, mode fli.PutMode) error {
	h.(*fakeHandle).real = value
	return nil
}
func (f *fakeNative) PutLongVal(h gpi.RawHandle, value int64, mode fli.PutMode) error {
	h.(*fakeHandle).long = value
	return nil
}
func (f *fakeNative) PutForceLiteral(h gpi.RawHandle, literal string) error { return nil }
func (f *fakeNative) Release(h gpi.RawHandle) error                        { return nil }

func (f *fakeNative) IterateRegion(parent gpi.RawHandle, rel fli.Relation) []gpi.RawHandle {
	p, ok := parent.(*fakeHandle)
	if !ok {
		return nil
	}
	items := p.children[rel]
	out := make([]gpi.RawHandle, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (f *fakeNative) FreeSubelements(h gpi.RawHandle) {}

func (f *fakeNative) CreateProcess(trampoline func()) gpi.RawHandle {
	f.created++
	return &fakeProcess{trampoline: trampoline, createdN: f.created}
}

func (f *fakeNative) ReconfigureProcess(proc gpi.RawHandle, trampoline func()) {
	f.reconfigured++
	proc.(*fakeProcess).trampoline = trampoline
}

func (f *fakeNative) ScheduleWakeup(proc gpi.RawHandle, delayPS uint64) error {
	proc.(*fakeProcess).delayPS = delayPS
	return nil
}

func (f *fakeNative) SensitizeToSignal(proc gpi.RawHandle, sig gpi.RawHandle) error {
	proc.(*fakeProcess).armedWith = sig
	return nil
}

func (f *fakeNative) SensitizeToReadOnlySync(proc gpi.RawHandle) error  { return nil }
func (f *fakeNative) SensitizeToReadWriteSync(proc gpi.RawHandle) error { return nil }
func (f *fakeNative) SensitizeToNextSimTime(proc gpi.RawHandle) error   { return nil }

func (f *fakeNative) ControlFinish() { f.finished = true }
