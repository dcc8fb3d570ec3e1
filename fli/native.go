package fli

import "github.com/sarchlab/gogpi/gpi"

// Family distinguishes FLI's two separate native object hierarchies:
// mtiSignalIdT and mtiVariableIdT are different C types with different
// accessor function families, unlike VPI/VHPI's single handle type
// (spec.md §4.E "Mentor FLI").
type Family int

const (
	FamilySignal Family = iota
	FamilyVariable
	FamilyRegion
)

// AccType mirrors the handful of acc_* type codes this backend
// classifies against; acc_* is FLI's separate API used purely for type
// classification, distinct from the mti_* value/region API.
type AccType int32

const (
	AccArchitecture AccType = 1
	AccGeneric      AccType = 2
	AccRecord       AccType = 3
	AccForGenerate  AccType = 4
)

// PutMode mirrors mti_ScheduleDriver / mti_SetSignalValue's deposit vs.
// force/release semantics.
type PutMode int32

const (
	PutDeposit PutMode = iota
	PutForce
	PutRelease
)

// NativeAPI is the cgo seam a real build satisfies against mti.h.
type NativeAPI interface {
	GetTime() (high, low uint32)
	GetTimePrecision() int32
	ProductName() string
	ProductVersion() string

	IterateTopRegions() []gpi.RawHandle

	HandleByName(name string, parent gpi.RawHandle) (gpi.RawHandle, bool)
	HandleByIndex(parent gpi.RawHandle, index int64) (gpi.RawHandle, bool)

	GetFamily(h gpi.RawHandle) Family
	GetAccType(h gpi.RawHandle) AccType
	GetSize(h gpi.RawHandle) int64
	GetConst(h gpi.RawHandle) bool
	GetRange(h gpi.RawHandle) (left, right int64, ok bool)
	GetName(h gpi.RawHandle) string
	GetFullName(h gpi.RawHandle) string
	GetDefName(h gpi.RawHandle) string
	GetFile(h gpi.RawHandle) string
	EnumLiterals(h gpi.RawHandle) []string

	GetBinStrVal(h gpi.RawHandle) string
	GetStrVal(h gpi.RawHandle) string
	GetRealVal(h gpi.RawHandle) float64
	GetLongVal(h gpi.RawHandle) int64
	GetEnumPos(h gpi.RawHandle) int64

	PutBinStrVal(h gpi.RawHandle, value string, mode PutMode) error
	PutStrVal(h gpi.RawHandle, value string, mode PutMode) error
	PutRealVal(h gpi.RawHandle, value float64, mode PutMode) error
	PutLongVal(h gpi.RawHandle, value int64, mode PutMode) error
	PutForceLiteral(h gpi.RawHandle, literal string) error
	Release(h gpi.RawHandle) error

	// IterateRegion returns a region's children for one relationship of
	// the FLI per-kind iteration table: constants/generics, signals,
	// sub-regions. There is deliberately no drivers/loads relationship
	// (spec.md §4.E "Mentor FLI": "No iterator for drivers/loads").
	IterateRegion(parent gpi.RawHandle, rel Relation) []gpi.RawHandle

	// FreeSubelements releases a subelement array using the FLI-specific
	// free routine (mti_VsimFree or equivalent). Nothing in this module
	// calls it: handles are not reference-counted, so subelement arrays
	// are not freed.
	FreeSubelements(h gpi.RawHandle)

	// CreateProcess creates a new native sensitized process running
	// trampoline when woken. Used only when the per-kind free list
	// (Backend.acquireProcess) is empty.
	CreateProcess(trampoline func()) gpi.RawHandle
	// ReconfigureProcess rebinds a recycled process to a new trampoline
	// closure before it is re-armed.
	ReconfigureProcess(proc gpi.RawHandle, trampoline func())
	ScheduleWakeup(proc gpi.RawHandle, delayPS uint64) error
	SensitizeToSignal(proc gpi.RawHandle, sig gpi.RawHandle) error
	SensitizeToReadOnlySync(proc gpi.RawHandle) error
	SensitizeToReadWriteSync(proc gpi.RawHandle) error
	SensitizeToNextSimTime(proc gpi.RawHandle) error

	ControlFinish()
}

// Relation selects one step of the FLI per-kind iteration table.
type Relation int32

const (
	RelConstsGenerics Relation = iota
	RelSignals
	RelSubRegions
)
