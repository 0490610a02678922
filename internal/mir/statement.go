package mir

import "smir/internal/ty"

// StatementKind is the closed union of non-branching instructions. Every
// variant must have a matching arm in SuperStatement; the traversal engine
// treats a missing arm as a bug, not a default.
type StatementKind interface {
	isStatementKind()
}

// AssignStmt stores the value of an rvalue into a place.
type AssignStmt struct {
	Place  Place
	Rvalue Rvalue
}

// FakeReadStmt marks a read inserted for borrow-checking; it has no runtime
// effect.
type FakeReadStmt struct {
	Cause FakeReadCause
	Place Place
}

// FakeReadCause records why a fake read was inserted.
type FakeReadCause int

const (
	FakeReadForMatchGuard FakeReadCause = iota
	FakeReadForMatchedPlace
	FakeReadForGuardBinding
	FakeReadForLet
	FakeReadForIndex
)

// SetDiscriminantStmt writes the discriminant of an enum place.
type SetDiscriminantStmt struct {
	Place   Place
	Variant ty.VariantIdx
}

// DeinitStmt marks a place as deinitialized.
type DeinitStmt struct {
	Place Place
}

// StorageLiveStmt begins the storage lifetime of a local.
type StorageLiveStmt struct {
	Local Local
}

// StorageDeadStmt ends the storage lifetime of a local.
type StorageDeadStmt struct {
	Local Local
}

// RetagStmt refreshes the borrow tag of a place (only emitted under certain
// memory models).
type RetagStmt struct {
	Kind  RetagKind
	Place Place
}

// RetagKind selects the retagging flavor.
type RetagKind int

const (
	RetagFnEntry RetagKind = iota
	RetagTwoPhase
	RetagRaw
	RetagDefault
)

// PlaceMentionStmt records that a place was mentioned without being read or
// written.
type PlaceMentionStmt struct {
	Place Place
}

// AscribeUserTypeStmt pins a user-written type onto a place for inference
// bookkeeping.
type AscribeUserTypeStmt struct {
	Place       Place
	Projections UserTypeProjection
	Variance    Variance
}

// Variance of a user type ascription.
type Variance int

const (
	Covariant Variance = iota
	Invariant
	Contravariant
	Bivariant
)

// UserTypeProjection refines a user-ascribed type; the projection payload is
// not modeled yet.
type UserTypeProjection struct {
	Base       ty.UserTypeAnnotationIndex
	Projection ty.Opaque
}

// CoverageStmt carries coverage instrumentation data. The payload is opaque;
// traversal never inspects it.
type CoverageStmt struct {
	Coverage ty.Opaque
}

// IntrinsicStmt is a non-diverging intrinsic call lowered to a statement.
type IntrinsicStmt struct {
	Intrinsic NonDivergingIntrinsic
}

// NonDivergingIntrinsic is the union of intrinsics that cannot unwind or
// diverge.
type NonDivergingIntrinsic interface {
	isNonDivergingIntrinsic()
}

// AssumeIntrinsic tells optimizers the operand is true.
type AssumeIntrinsic struct {
	Operand Operand
}

// CopyNonOverlappingIntrinsic copies Count elements from Src to Dst; the
// ranges must not overlap.
type CopyNonOverlappingIntrinsic struct {
	Src   Operand
	Dst   Operand
	Count Operand
}

func (AssumeIntrinsic) isNonDivergingIntrinsic()             {}
func (CopyNonOverlappingIntrinsic) isNonDivergingIntrinsic() {}

// ConstEvalCounterStmt ticks the const-eval step limit.
type ConstEvalCounterStmt struct{}

// NopStmt does nothing.
type NopStmt struct{}

func (*AssignStmt) isStatementKind()          {}
func (*FakeReadStmt) isStatementKind()        {}
func (*SetDiscriminantStmt) isStatementKind() {}
func (*DeinitStmt) isStatementKind()          {}
func (*StorageLiveStmt) isStatementKind()     {}
func (*StorageDeadStmt) isStatementKind()     {}
func (*RetagStmt) isStatementKind()           {}
func (*PlaceMentionStmt) isStatementKind()    {}
func (*AscribeUserTypeStmt) isStatementKind() {}
func (*CoverageStmt) isStatementKind()        {}
func (*IntrinsicStmt) isStatementKind()       {}
func (*ConstEvalCounterStmt) isStatementKind() {}
func (*NopStmt) isStatementKind()             {}
