package vpi

import "github.com/sarchlab/gogpi/gpi"

// VpiType mirrors the object-type codes vpi_user.h defines; only the
// handful this backend classifies against are named here.
type VpiType int32

const (
	VpiModule       VpiType = 32
	VpiNet          VpiType = 36
	VpiReg          VpiType = 48
	VpiMemory       VpiType = 29
	VpiMemoryWord   VpiType = 30
	VpiParameter    VpiType = 41
	VpiIntegerVar   VpiType = 25
	VpiRealVar      VpiType = 47
	VpiNamedEvent   VpiType = 26
	VpiPort         VpiType = 44
	VpiGenScope     VpiType = 132
	VpiGenScopeArray VpiType = 133
)

// VpiRelation mirrors the one-to-many relation codes used to drive
// vpi_iterate for each relationship of the per-kind iteration table.
type VpiRelation int32

const (
	RelModule    VpiRelation = 1
	RelNet       VpiRelation = 2
	RelReg       VpiRelation = 3
	RelMemory    VpiRelation = 4
	RelParameter VpiRelation = 5
	RelPort      VpiRelation = 6
	RelInternal  VpiRelation = 7 // named events, gen-scope(-array), etc.
)

// PutFlag mirrors vpi_put_value's delay/force/release mode constants.
type PutFlag int32

const (
	PutNoDelay PutFlag = iota
	PutInertialDelay
	PutForce
	PutRelease
)

// NativeAPI is the seam a real build satisfies with cgo bindings against
// vpi_user.h. It is the entire FFI surface this package depends on; every
// method maps to one or a small fixed sequence of real vpi_* calls. Fakes
// implementing this interface drive the backend's tests.
type NativeAPI interface {
	GetTime() (high, low uint32)
	GetTimePrecision() int32
	ProductName() string
	ProductVersion() string

	IterateTopModules() []gpi.RawHandle

	HandleByName(name string, parent gpi.RawHandle) (gpi.RawHandle, bool)
	HandleByIndex(parent gpi.RawHandle, index int64) (gpi.RawHandle, bool)

	GetType(h gpi.RawHandle) VpiType
	GetSize(h gpi.RawHandle) int64
	GetConst(h gpi.RawHandle) bool
	GetRange(h gpi.RawHandle) (left, right int64, ok bool)
	GetName(h gpi.RawHandle) string
	GetFullName(h gpi.RawHandle) string
	GetDefName(h gpi.RawHandle) string
	GetFile(h gpi.RawHandle) string

	GetBinStrVal(h gpi.RawHandle) string
	GetStrVal(h gpi.RawHandle) string
	GetRealVal(h gpi.RawHandle) float64
	GetLongVal(h gpi.RawHandle) int64

	PutBinStrVal(h gpi.RawHandle, value string, flag PutFlag) error
	PutStrVal(h gpi.RawHandle, value string, flag PutFlag) error
	PutRealVal(h gpi.RawHandle, value float64, flag PutFlag) error
	PutLongVal(h gpi.RawHandle, value int64, flag PutFlag) error

	// Iterate opens a native vpi_iterate over rel under parent, returning
	// ok=false when the simulator reports no such relation for this kind
	// (a normal, expected miss, not an error).
	Iterate(parent gpi.RawHandle, rel VpiRelation) (iter gpi.RawHandle, ok bool)
	// Scan advances an iterator opened by Iterate; ok=false means the
	// iterator is exhausted.
	Scan(iter gpi.RawHandle) (item gpi.RawHandle, ok bool)

	FreeObject(h gpi.RawHandle)

	RegisterCbTimed(delayPS uint64, trampoline func()) gpi.RawHandle
	RegisterCbValueChange(h gpi.RawHandle, trampoline func()) gpi.RawHandle
	RegisterCbReadOnlySync(trampoline func()) gpi.RawHandle
	RegisterCbReadWriteSync(trampoline func()) gpi.RawHandle
	RegisterCbNextSimTime(trampoline func()) gpi.RawHandle
	RemoveCallback(cb gpi.RawHandle) bool

	ControlFinish()
}
