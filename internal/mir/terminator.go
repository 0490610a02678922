package mir

import "smir/internal/ty"

// TerminatorKind is the closed union of block-ending instructions.
type TerminatorKind interface {
	isTerminatorKind()
}

// GotoTerm jumps unconditionally.
type GotoTerm struct {
	Target BasicBlockIdx
}

// SwitchIntTerm branches on an integer discriminant.
type SwitchIntTerm struct {
	Discr   Operand
	Targets SwitchTargets
}

// SwitchTargets maps discriminant values to blocks, with a fallback.
type SwitchTargets struct {
	Branches  []SwitchBranch
	Otherwise BasicBlockIdx
}

// SwitchBranch is one (value, target) pair of a switch.
type SwitchBranch struct {
	Value  uint64
	Target BasicBlockIdx
}

// ResumeTerm continues unwinding from a landing pad.
type ResumeTerm struct{}

// AbortTerm terminates the process during unwinding.
type AbortTerm struct{}

// ReturnTerm returns the value in the return-value slot.
type ReturnTerm struct{}

// UnreachableTerm marks control flow the host proved impossible.
type UnreachableTerm struct{}

// UnwindAction says where control goes when an operation unwinds.
type UnwindAction struct {
	Kind UnwindKind
	// Target is meaningful only for UnwindCleanup.
	Target BasicBlockIdx
}

// UnwindKind classifies an UnwindAction.
type UnwindKind int

const (
	UnwindContinue UnwindKind = iota
	UnwindUnreachable
	UnwindTerminate
	UnwindCleanup
)

// DropTerm runs the destructor of a place.
type DropTerm struct {
	Place  Place
	Target BasicBlockIdx
	Unwind UnwindAction
}

// CallTerm invokes a function-typed operand.
type CallTerm struct {
	Func Operand
	Args []Operand

	// Destination receives the return value.
	Destination Place

	// Target is nil for diverging calls.
	Target *BasicBlockIdx
	Unwind UnwindAction
}

// AssertTerm checks a condition and panics with Msg when it does not match
// Expected.
type AssertTerm struct {
	Cond     Operand
	Expected bool
	Msg      AssertMessage
	Target   BasicBlockIdx
	Unwind   UnwindAction
}

// InlineAsmTerm embeds machine code.
type InlineAsmTerm struct {
	Template string
	Operands []InlineAsmOperand
	Options  string
	// LineSpans records the source spans of the template lines, rendered
	// by the host.
	LineSpans string
	// Destination is nil when the assembly diverges.
	Destination *BasicBlockIdx
	Unwind      UnwindAction
}

// InlineAsmOperand is one input/output slot of an inline-assembly block.
// RawRpr keeps the host's full rendering, which the node model does not
// break down further.
type InlineAsmOperand struct {
	InValue  *Operand
	OutPlace *Place
	RawRpr   ty.Opaque
}

// AssertMessage is the closed union of assertion payloads.
type AssertMessage interface {
	isAssertMessage()
}

// BoundsCheckMsg reports an out-of-bounds index.
type BoundsCheckMsg struct {
	Len   Operand
	Index Operand
}

// OverflowMsg reports arithmetic overflow of a binary operation.
type OverflowMsg struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// OverflowNegMsg reports overflow of a negation.
type OverflowNegMsg struct {
	Operand Operand
}

// DivisionByZeroMsg reports a zero divisor.
type DivisionByZeroMsg struct {
	Operand Operand
}

// RemainderByZeroMsg reports a zero divisor of a remainder operation.
type RemainderByZeroMsg struct {
	Operand Operand
}

// ResumedAfterReturnMsg reports resuming a coroutine that already returned.
type ResumedAfterReturnMsg struct {
	Coroutine CoroutineKind
}

// ResumedAfterPanicMsg reports resuming a coroutine that panicked.
type ResumedAfterPanicMsg struct {
	Coroutine CoroutineKind
}

// MisalignedPointerDereferenceMsg reports a dereference below the required
// alignment.
type MisalignedPointerDereferenceMsg struct {
	Required Operand
	Found    Operand
}

// CoroutineKind classifies the syntactic flavor of a coroutine.
type CoroutineKind int

const (
	CoroutinePlain CoroutineKind = iota
	CoroutineAsync
	CoroutineGen
	CoroutineAsyncGen
)

func (*GotoTerm) isTerminatorKind()        {}
func (*SwitchIntTerm) isTerminatorKind()   {}
func (*ResumeTerm) isTerminatorKind()      {}
func (*AbortTerm) isTerminatorKind()       {}
func (*ReturnTerm) isTerminatorKind()      {}
func (*UnreachableTerm) isTerminatorKind() {}
func (*DropTerm) isTerminatorKind()        {}
func (*CallTerm) isTerminatorKind()        {}
func (*AssertTerm) isTerminatorKind()      {}
func (*InlineAsmTerm) isTerminatorKind()   {}

func (*BoundsCheckMsg) isAssertMessage()                 {}
func (*OverflowMsg) isAssertMessage()                    {}
func (*OverflowNegMsg) isAssertMessage()                 {}
func (*DivisionByZeroMsg) isAssertMessage()              {}
func (*RemainderByZeroMsg) isAssertMessage()             {}
func (*ResumedAfterReturnMsg) isAssertMessage()          {}
func (*ResumedAfterPanicMsg) isAssertMessage()           {}
func (*MisalignedPointerDereferenceMsg) isAssertMessage() {}
