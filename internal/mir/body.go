// Package mir defines the mid-level IR body shape and the traversal engine
// over it. The host compiler context produces bodies; everything here is a
// read-only view.
package mir

import (
	"fmt"

	"smir/internal/errors"
	"smir/internal/ty"
)

// Span is an interned source location tag. Resolving it to file/line data is
// a host context concern; the core only carries it around.
type Span int

// Local addresses one local variable slot of a body.
type Local int

// ReturnLocal is the slot holding the return value.
const ReturnLocal Local = 0

// BasicBlockIdx addresses a block inside its body.
type BasicBlockIdx int

// SourceInfo ties a span to the scope it was written in.
type SourceInfo struct {
	Span  Span
	Scope SourceScope
}

// SourceScope addresses a lexical scope in the body's scope tree.
type SourceScope int

// Body is the control-flow-graph-plus-locals representation of one compiled
// item.
//
// Locals are dense and contiguous: slot 0 is the return value, slots
// 1..=ArgCount are the arguments, and the remainder are interior locals. No
// slot is reused with a different meaning.
type Body struct {
	Blocks []BasicBlock

	// Locals holds the declarations in the fixed numbering convention
	// above. Use RetLocal, ArgLocals and InnerLocals for the three regions.
	Locals []LocalDecl

	ArgCount int

	VarDebugInfo []VarDebugInfo

	// SpreadArg marks the local whose tuple fields become the arguments of
	// the actual call, when the body was built for such an ABI.
	SpreadArg *Local

	Span Span
}

// RetLocal returns the declaration of the return-value slot.
func (b *Body) RetLocal() *LocalDecl {
	return &b.Locals[ReturnLocal]
}

// ArgLocals returns the declarations of the argument slots.
func (b *Body) ArgLocals() []LocalDecl {
	return b.Locals[1 : b.ArgCount+1]
}

// InnerLocals returns the declarations of the interior slots.
func (b *Body) InnerLocals() []LocalDecl {
	return b.Locals[b.ArgCount+1:]
}

// LocalDecl returns the declaration for the given slot, or an error when the
// slot is out of range.
func (b *Body) LocalDecl(local Local) (*LocalDecl, error) {
	if int(local) < 0 || int(local) >= len(b.Locals) {
		return nil, errors.Newf(errors.ErrorUnknownLocal,
			"local _%d out of range (body has %d locals)", local, len(b.Locals))
	}
	return &b.Locals[local], nil
}

// LocalDecl describes one local variable slot.
type LocalDecl struct {
	Ty         *ty.Ty
	Span       Span
	Mutability ty.Mutability
}

// BasicBlock is an ordered run of statements closed by exactly one
// terminator.
type BasicBlock struct {
	Statements []Statement
	Terminator Terminator
}

// Statement is one non-branching instruction together with its source span.
type Statement struct {
	Kind StatementKind
	Span Span
}

// Terminator is the single branching instruction ending a block.
type Terminator struct {
	Kind TerminatorKind
	Span Span
}

// Location names the statement or terminator a nested visit originated from.
type Location struct {
	span Span
}

func newLocation(span Span) Location {
	return Location{span: span}
}

// Span returns the enclosing statement/terminator span.
func (l Location) Span() Span { return l.span }

func (l Location) String() string {
	return fmt.Sprintf("span(%d)", l.span)
}

// VarDebugInfo binds a source variable name to where its value lives.
type VarDebugInfo struct {
	Name       ty.Symbol
	SourceInfo SourceInfo

	// Composite is set when the variable is spread across a projection of
	// a wider composite value.
	Composite *VarDebugInfoFragment

	Value VarDebugInfoContents

	// ArgumentIndex is the 1-based argument number, when the variable is an
	// argument.
	ArgumentIndex *int
}

// VarDebugInfoFragment narrows a composite debug binding to a part of its
// type.
type VarDebugInfoFragment struct {
	Ty         *ty.Ty
	Projection []ProjectionElem
}

// VarDebugInfoContents is where a debug-bound value lives: a place or a
// constant.
type VarDebugInfoContents interface {
	isVarDebugInfoContents()
}

type PlaceDebug struct {
	Place Place
}

type ConstDebug struct {
	Constant Constant
}

func (PlaceDebug) isVarDebugInfoContents() {}
func (ConstDebug) isVarDebugInfoContents() {}
