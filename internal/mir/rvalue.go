package mir

import "smir/internal/ty"

// Operand is a value consumed by an instruction: a place read by copy or
// move, or an inline constant.
type Operand interface {
	isOperand()
}

type CopyOperand struct {
	Place Place
}

type MoveOperand struct {
	Place Place
}

type ConstantOperand struct {
	Constant Constant
}

func (*CopyOperand) isOperand()     {}
func (*MoveOperand) isOperand()     {}
func (*ConstantOperand) isOperand() {}

// Constant is a literal occurrence in the body: the value, an optional
// user-ascribed type, and where it was written.
type Constant struct {
	Span    Span
	UserTy  *ty.UserTypeAnnotationIndex
	Literal *ty.Const
}

// Rvalue is the closed union of computations producing a value to store.
type Rvalue interface {
	isRvalue()
}

// AddressOfRvalue takes a raw pointer to a place.
type AddressOfRvalue struct {
	Mutability ty.Mutability
	Place      Place
}

// AggregateRvalue builds a composite value from operands.
type AggregateRvalue struct {
	Kind     AggregateKind
	Operands []Operand
}

// BinaryOpRvalue applies a binary operation.
type BinaryOpRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// CheckedBinaryOpRvalue applies a binary operation and also yields an
// overflow flag.
type CheckedBinaryOpRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// CastRvalue converts an operand to another type.
type CastRvalue struct {
	Kind    CastKind
	Operand Operand
	Ty      *ty.Ty
}

// CopyForDerefRvalue copies a place that will immediately be dereferenced.
type CopyForDerefRvalue struct {
	Place Place
}

// DiscriminantRvalue reads the discriminant of an enum place.
type DiscriminantRvalue struct {
	Place Place
}

// LenRvalue reads the length of an array or slice place.
type LenRvalue struct {
	Place Place
}

// RefRvalue takes a reference to a place.
type RefRvalue struct {
	Region ty.Region
	Kind   BorrowKind
	Place  Place
}

// RepeatRvalue builds an array by repeating an operand Count times.
type RepeatRvalue struct {
	Operand Operand
	Count   *ty.Const
}

// ShallowInitBoxRvalue transmutes a raw pointer into a box without
// initializing the contents.
type ShallowInitBoxRvalue struct {
	Operand Operand
	Ty      *ty.Ty
}

// ThreadLocalRefRvalue takes the address of a thread-local static.
type ThreadLocalRefRvalue struct {
	Def ty.StaticDef
}

// NullaryOpRvalue computes a property of a type (size, alignment, ...).
type NullaryOpRvalue struct {
	Op NullOp
	Ty *ty.Ty
}

// UnaryOpRvalue applies a unary operation.
type UnaryOpRvalue struct {
	Op      UnOp
	Operand Operand
}

// UseRvalue yields the operand unchanged.
type UseRvalue struct {
	Operand Operand
}

func (*AddressOfRvalue) isRvalue()       {}
func (*AggregateRvalue) isRvalue()       {}
func (*BinaryOpRvalue) isRvalue()        {}
func (*CheckedBinaryOpRvalue) isRvalue() {}
func (*CastRvalue) isRvalue()            {}
func (*CopyForDerefRvalue) isRvalue()    {}
func (*DiscriminantRvalue) isRvalue()    {}
func (*LenRvalue) isRvalue()             {}
func (*RefRvalue) isRvalue()             {}
func (*RepeatRvalue) isRvalue()          {}
func (*ShallowInitBoxRvalue) isRvalue()  {}
func (*ThreadLocalRefRvalue) isRvalue()  {}
func (*NullaryOpRvalue) isRvalue()       {}
func (*UnaryOpRvalue) isRvalue()         {}
func (*UseRvalue) isRvalue()             {}

// AggregateKind selects what composite an AggregateRvalue builds. The
// traversal does not descend into it; the operands carry the visited data.
type AggregateKind interface {
	isAggregateKind()
}

type ArrayAgg struct {
	ElemTy *ty.Ty
}

type TupleAgg struct{}

type AdtAgg struct {
	Def         ty.AdtDef
	Variant     ty.VariantIdx
	Args        ty.GenericArgs
	UserTy      *ty.UserTypeAnnotationIndex
	ActiveField *int
}

type ClosureAgg struct {
	Def  ty.ClosureDef
	Args ty.GenericArgs
}

type CoroutineAgg struct {
	Def        ty.CoroutineDef
	Args       ty.GenericArgs
	Movability ty.Movability
}

type RawPtrAgg struct {
	ElemTy     *ty.Ty
	Mutability ty.Mutability
}

func (*ArrayAgg) isAggregateKind()     {}
func (*TupleAgg) isAggregateKind()     {}
func (*AdtAgg) isAggregateKind()       {}
func (*ClosureAgg) isAggregateKind()   {}
func (*CoroutineAgg) isAggregateKind() {}
func (*RawPtrAgg) isAggregateKind()    {}

// BorrowKind classifies a reference-taking operation.
type BorrowKind int

const (
	BorrowShared BorrowKind = iota
	BorrowFake
	BorrowMut
	BorrowMutTwoPhase
	BorrowMutClosureCapture
)

// IsMutating reports whether the borrow can write through the reference.
func (k BorrowKind) IsMutating() bool { return k >= BorrowMut }

func (k BorrowKind) String() string {
	return [...]string{"&", "&fake ", "&mut ", "&two-phase ", "&capture "}[k]
}

// BinOp enumerates binary operations.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
	BinOffset
)

func (op BinOp) String() string {
	return [...]string{
		"Add", "Sub", "Mul", "Div", "Rem", "BitXor", "BitAnd", "BitOr",
		"Shl", "Shr", "Eq", "Lt", "Le", "Ne", "Ge", "Gt", "Offset",
	}[op]
}

// UnOp enumerates unary operations.
type UnOp int

const (
	UnNot UnOp = iota
	UnNeg
)

func (op UnOp) String() string {
	return [...]string{"Not", "Neg"}[op]
}

// NullOp enumerates type-property operations.
type NullOp int

const (
	NullSizeOf NullOp = iota
	NullAlignOf
	NullOffsetOf
	NullUbChecks
)

func (op NullOp) String() string {
	return [...]string{"SizeOf", "AlignOf", "OffsetOf", "UbChecks"}[op]
}

// CastKind enumerates conversion flavors.
type CastKind int

const (
	CastIntToInt CastKind = iota
	CastFloatToInt
	CastIntToFloat
	CastFloatToFloat
	CastPtrToPtr
	CastFnPtrToPtr
	CastPointerExposeProvenance
	CastPointerWithExposedProvenance
	CastPointerCoercion
	CastTransmute
)

func (k CastKind) String() string {
	return [...]string{
		"IntToInt", "FloatToInt", "IntToFloat", "FloatToFloat", "PtrToPtr",
		"FnPtrToPtr", "PointerExposeProvenance", "PointerWithExposedProvenance",
		"PointerCoercion", "Transmute",
	}[k]
}
