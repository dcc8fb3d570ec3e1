package vhpi

import "github.com/sarchlab/gogpi/gpi"

// VhpiClass mirrors the handful of vhpiClassKindT values this backend
// classifies against.
type VhpiClass int32

const (
	ClassRootInst    VhpiClass = 1
	ClassBlockStmt   VhpiClass = 2
	ClassCompInst    VhpiClass = 3
	ClassSigDecl     VhpiClass = 4
	ClassVarDecl     VhpiClass = 5
	ClassPortDecl    VhpiClass = 6
	ClassGenericDecl VhpiClass = 7
	ClassConstDecl   VhpiClass = 8
	ClassForGenerate VhpiClass = 9
)

// VhpiRelation mirrors vhpiOneToManyT selectors used to drive an
// iteration step for a region.
type VhpiRelation int32

const (
	RelInternalRegions VhpiRelation = 1
	RelSigDecls        VhpiRelation = 2
	RelVarDecls        VhpiRelation = 3
	RelPortDecls       VhpiRelation = 4
	RelGenericDecls    VhpiRelation = 5
	RelConstDecls      VhpiRelation = 6
	RelCompInstStmts   VhpiRelation = 7
	RelBlockStmts      VhpiRelation = 8
)

// UnconstrainedSentinel is the out-of-band "no bound" value one VHPI
// implementation returns from a range query on an unconstrained array
// type, instead of reporting failure (spec.md §4.E "VHDL interface").
const UnconstrainedSentinel = 2147483647

// PutMode mirrors vhpi_put_value's mode argument.
type PutMode int32

const (
	PutDeposit PutMode = iota
	PutForce
	PutRelease
)

// NativeAPI is the cgo seam a real build satisfies against vhpi_user.h.
type NativeAPI interface {
	GetTime() (high, low uint32)
	GetTimePrecision() int32
	ProductName() string
	ProductVersion() string

	IterateTopRegions() []gpi.RawHandle

	HandleByName(name string, parent gpi.RawHandle) (gpi.RawHandle, bool)
	HandleByIndex(parent gpi.RawHandle, index int64) (gpi.RawHandle, bool)

	GetClass(h gpi.RawHandle) VhpiClass
	GetSize(h gpi.RawHandle) int64
	GetConst(h gpi.RawHandle) bool
	// GetRange reports ok=false for a type the simulator cannot bound
	// (unconstrained) OR when it returns UnconstrainedSentinel in left or
	// right; the caller must treat both identically.
	GetRange(h gpi.RawHandle) (left, right int64, ok bool)
	GetName(h gpi.RawHandle) string
	GetFullName(h gpi.RawHandle) string
	GetDefName(h gpi.RawHandle) string
	GetFile(h gpi.RawHandle) string

	// EnumLiterals returns a signal or variable's base type's ordered
	// enumeration literal set, used for the Logic mapping policy
	// (spec.md §4.B). Empty for a non-enumeration type.
	EnumLiterals(h gpi.RawHandle) []string

	GetBinStrVal(h gpi.RawHandle) string
	GetStrVal(h gpi.RawHandle) string
	// GetRealVal reads through the simulator's "indirect" physical
	// accessor into a pre-allocated double slot (spec.md §4.G).
	GetRealVal(h gpi.RawHandle) float64
	GetLongVal(h gpi.RawHandle) int64
	// GetEnumPos returns a packed enum's ordinal position, used for
	// get_long on ENUM-kind handles (spec.md §4.G).
	GetEnumPos(h gpi.RawHandle) int64

	PutBinStrVal(h gpi.RawHandle, value string, mode PutMode) error
	PutStrVal(h gpi.RawHandle, value string, mode PutMode) error
	PutRealVal(h gpi.RawHandle, value float64, mode PutMode) error
	PutLongVal(h gpi.RawHandle, value int64, mode PutMode) error
	// PutForceLiteral forces h to the VHDL literal built by the codec
	// package (spec.md §4.G Force-string construction).
	PutForceLiteral(h gpi.RawHandle, literal string) error
	Release(h gpi.RawHandle) error

	Iterate(parent gpi.RawHandle, rel VhpiRelation) (iter gpi.RawHandle, ok bool)
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
