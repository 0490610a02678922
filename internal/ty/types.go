// Package ty models the type system of the mid-level IR: rigid types,
// aliases, parameters and bound variables, plus the constants and global
// allocations the IR references. The host compiler context owns interning;
// this package only mirrors the shape of interned values.
package ty

import (
	"fmt"
	"strings"
)

// Ty is a handle to an interned type. Two structurally equal types resolved
// through the same host context share one *Ty, which is what keeps default
// traversal of recursive type definitions finite.
type Ty struct {
	Kind TyKind
}

func NewTy(kind TyKind) *Ty {
	return &Ty{Kind: kind}
}

func (t *Ty) String() string {
	if t == nil || t.Kind == nil {
		return "<unknown-ty>"
	}
	return t.Kind.String()
}

// TyKind is the closed union over every type kind. Adding a variant requires
// touching the traversal engine's structural descent; that is deliberate.
type TyKind interface {
	isTyKind()
	String() string
}

// RigidTy marks the primitive / non-alias subset of TyKind.
type RigidTy interface {
	TyKind
	isRigidTy()
}

// Mutability of a pointer or binding.
type Mutability int

const (
	MutNot Mutability = iota
	MutMut
)

func (m Mutability) String() string {
	if m == MutMut {
		return "mut"
	}
	return ""
}

// IsMut reports whether this is the mutable flavor.
func (m Mutability) IsMut() bool { return m == MutMut }

// IntKind enumerates the signed integer widths.
type IntKind int

const (
	Isize IntKind = iota
	I8
	I16
	I32
	I64
	I128
)

func (k IntKind) String() string {
	return [...]string{"isize", "i8", "i16", "i32", "i64", "i128"}[k]
}

// UintKind enumerates the unsigned integer widths.
type UintKind int

const (
	Usize UintKind = iota
	U8
	U16
	U32
	U64
	U128
)

func (k UintKind) String() string {
	return [...]string{"usize", "u8", "u16", "u32", "u64", "u128"}[k]
}

// FloatKind enumerates the floating point widths.
type FloatKind int

const (
	F32 FloatKind = iota
	F64
)

func (k FloatKind) String() string {
	return [...]string{"f32", "f64"}[k]
}

// Region is a lifetime annotation on references and trait objects. The core
// visits regions and stops; their internal structure stays with the host.
type Region struct {
	Kind RegionKind
}

// RegionKind classifies a region.
type RegionKind int

const (
	RegionErased RegionKind = iota
	RegionStatic
	RegionEarlyParam
	RegionBound
)

func (r Region) String() string {
	switch r.Kind {
	case RegionStatic:
		return "'static"
	case RegionEarlyParam, RegionBound:
		return "'_"
	default:
		return ""
	}
}

// DynKind distinguishes the trait-object flavors.
type DynKind int

const (
	Dyn DynKind = iota
	DynStar
)

// Movability of a coroutine.
type Movability int

const (
	Movable Movability = iota
	Static
)

// Pattern is the refinement carried by a pattern type. Its real shape is not
// modeled yet.
type Pattern = Opaque

// Rigid type kinds.

type BoolTy struct{}

type CharTy struct{}

type IntTy struct{ Kind IntKind }

type UintTy struct{ Kind UintKind }

type FloatTy struct{ Kind FloatKind }

// AdtTy is a reference to an algebraic data type with its generic arguments.
// The definition itself can recursively mention this type; descent relies on
// interning rather than re-walking the definition.
type AdtTy struct {
	Def  AdtDef
	Args GenericArgs
}

type ForeignTy struct{ Def ForeignDef }

type StrTy struct{}

type ArrayTy struct {
	Elem *Ty
	Len  *Const
}

type PatTy struct {
	Base    *Ty
	Pattern Pattern
}

type SliceTy struct{ Elem *Ty }

type RawPtrTy struct {
	Pointee    *Ty
	Mutability Mutability
}

type RefTy struct {
	Region     Region
	Pointee    *Ty
	Mutability Mutability
}

type FnDefTy struct {
	Def  FnDef
	Args GenericArgs
}

type FnPtrTy struct{ Sig PolyFnSig }

type ClosureTy struct {
	Def  ClosureDef
	Args GenericArgs
}

type CoroutineTy struct {
	Def        CoroutineDef
	Args       GenericArgs
	Movability Movability
}

// DynamicTy is a trait object: a set of existential predicate binders plus
// the region the object is valid for.
type DynamicTy struct {
	Predicates []Binder[ExistentialPredicate]
	Region     Region
	Kind       DynKind
}

type NeverTy struct{}

type TupleTy struct{ Elems []*Ty }

// CoroutineWitnessTy captures the types live across a coroutine's suspension
// points; like AdtTy it can recurse into the surrounding type graph.
type CoroutineWitnessTy struct {
	Def  CoroutineWitnessDef
	Args GenericArgs
}

// Non-rigid type kinds.

// AliasKind selects the alias flavor of an AliasType.
type AliasKind int

const (
	AliasProjection AliasKind = iota
	AliasInherent
	AliasOpaque
	AliasWeak
)

func (k AliasKind) String() string {
	return [...]string{"projection", "inherent", "opaque", "weak"}[k]
}

// AliasTy is the target of an alias type kind.
type AliasTy struct {
	Def  AliasDef
	Args GenericArgs
}

// AliasType wraps an AliasTy with its flavor.
type AliasType struct {
	Kind AliasKind
	Ty   AliasTy
}

// ParamTy is a generic type parameter in scope.
type ParamTy struct {
	Index int
	Name  Symbol
}

// BoundTyType is a de Bruijn-indexed bound type variable.
type BoundTyType struct {
	DeBruijn int
	Ty       BoundTy
}

// BoundTy is the variable payload of a BoundTyType.
type BoundTy struct {
	Var  int
	Kind BoundTyKind
}

// BoundTyKind is the binder flavor of a bound type variable.
type BoundTyKind interface {
	isBoundTyKind()
}

type BoundTyAnon struct{}

type BoundTyParam struct {
	Def  ParamDef
	Name Symbol
}

func (BoundTyAnon) isBoundTyKind()  {}
func (BoundTyParam) isBoundTyKind() {}

func (*BoolTy) isTyKind()              {}
func (*CharTy) isTyKind()              {}
func (*IntTy) isTyKind()               {}
func (*UintTy) isTyKind()              {}
func (*FloatTy) isTyKind()             {}
func (*AdtTy) isTyKind()               {}
func (*ForeignTy) isTyKind()           {}
func (*StrTy) isTyKind()               {}
func (*ArrayTy) isTyKind()             {}
func (*PatTy) isTyKind()               {}
func (*SliceTy) isTyKind()             {}
func (*RawPtrTy) isTyKind()            {}
func (*RefTy) isTyKind()               {}
func (*FnDefTy) isTyKind()             {}
func (*FnPtrTy) isTyKind()             {}
func (*ClosureTy) isTyKind()           {}
func (*CoroutineTy) isTyKind()         {}
func (*DynamicTy) isTyKind()           {}
func (*NeverTy) isTyKind()             {}
func (*TupleTy) isTyKind()             {}
func (*CoroutineWitnessTy) isTyKind()  {}
func (*AliasType) isTyKind()           {}
func (*ParamTy) isTyKind()             {}
func (*BoundTyType) isTyKind()         {}

func (*BoolTy) isRigidTy()             {}
func (*CharTy) isRigidTy()             {}
func (*IntTy) isRigidTy()              {}
func (*UintTy) isRigidTy()             {}
func (*FloatTy) isRigidTy()            {}
func (*AdtTy) isRigidTy()              {}
func (*ForeignTy) isRigidTy()          {}
func (*StrTy) isRigidTy()              {}
func (*ArrayTy) isRigidTy()            {}
func (*PatTy) isRigidTy()              {}
func (*SliceTy) isRigidTy()            {}
func (*RawPtrTy) isRigidTy()           {}
func (*RefTy) isRigidTy()              {}
func (*FnDefTy) isRigidTy()            {}
func (*FnPtrTy) isRigidTy()            {}
func (*ClosureTy) isRigidTy()          {}
func (*CoroutineTy) isRigidTy()        {}
func (*DynamicTy) isRigidTy()          {}
func (*NeverTy) isRigidTy()            {}
func (*TupleTy) isRigidTy()            {}
func (*CoroutineWitnessTy) isRigidTy() {}

func (*BoolTy) String() string   { return "bool" }
func (*CharTy) String() string   { return "char" }
func (t *IntTy) String() string  { return t.Kind.String() }
func (t *UintTy) String() string { return t.Kind.String() }
func (t *FloatTy) String() string {
	return t.Kind.String()
}
func (t *AdtTy) String() string {
	return t.Def.Name + t.Args.String()
}
func (t *ForeignTy) String() string { return "extern " + t.Def.Name }
func (*StrTy) String() string       { return "str" }
func (t *ArrayTy) String() string {
	return fmt.Sprintf("[%s; %s]", t.Elem, t.Len)
}
func (t *PatTy) String() string {
	return fmt.Sprintf("pattern_type(%s is %s)", t.Base, t.Pattern)
}
func (t *SliceTy) String() string { return fmt.Sprintf("[%s]", t.Elem) }
func (t *RawPtrTy) String() string {
	if t.Mutability.IsMut() {
		return fmt.Sprintf("*mut %s", t.Pointee)
	}
	return fmt.Sprintf("*const %s", t.Pointee)
}
func (t *RefTy) String() string {
	if t.Mutability.IsMut() {
		return fmt.Sprintf("&mut %s", t.Pointee)
	}
	return fmt.Sprintf("&%s", t.Pointee)
}
func (t *FnDefTy) String() string { return "fn " + t.Def.Name + t.Args.String() }
func (t *FnPtrTy) String() string {
	sig := t.Sig.Value
	n := len(sig.InputsAndOutput)
	if n == 0 {
		return "fn()"
	}
	params := make([]string, 0, n-1)
	for _, in := range sig.InputsAndOutput[:n-1] {
		params = append(params, in.String())
	}
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), sig.InputsAndOutput[n-1])
}
func (t *ClosureTy) String() string   { return "closure " + t.Def.Name }
func (t *CoroutineTy) String() string { return "coroutine " + t.Def.Name }
func (t *DynamicTy) String() string {
	parts := make([]string, 0, len(t.Predicates))
	for _, p := range t.Predicates {
		parts = append(parts, p.Value.String())
	}
	return "dyn " + strings.Join(parts, " + ")
}
func (*NeverTy) String() string { return "!" }
func (t *TupleTy) String() string {
	parts := make([]string, 0, len(t.Elems))
	for _, e := range t.Elems {
		parts = append(parts, e.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *CoroutineWitnessTy) String() string { return "witness " + t.Def.Name }
func (t *AliasType) String() string {
	return fmt.Sprintf("<%s alias %s>", t.Kind, t.Ty.Def.Name)
}
func (t *ParamTy) String() string { return t.Name }
func (t *BoundTyType) String() string {
	return fmt.Sprintf("^%d_%d", t.DeBruijn, t.Ty.Var)
}

// GenericArgs is the ordered list of arguments applied to a generic item.
type GenericArgs []GenericArg

func (a GenericArgs) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a))
	for _, arg := range a {
		parts = append(parts, arg.String())
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// GenericArg is one generic argument: a type, a region, or a constant.
type GenericArg interface {
	isGenericArg()
	String() string
}

type TypeArg struct{ Ty *Ty }

type RegionArg struct{ Region Region }

type ConstArg struct{ Const *Const }

func (TypeArg) isGenericArg()   {}
func (RegionArg) isGenericArg() {}
func (ConstArg) isGenericArg()  {}

func (a TypeArg) String() string   { return a.Ty.String() }
func (a RegionArg) String() string { return a.Region.String() }
func (a ConstArg) String() string  { return a.Const.String() }

// Binder wraps a value together with the variables bound inside it.
type Binder[T any] struct {
	Value     T
	BoundVars []BoundVariableKind
}

// BoundVariableKind classifies one variable bound by a Binder.
type BoundVariableKind interface {
	isBoundVariableKind()
}

type BoundVarTy struct{ Kind BoundTyKind }

type BoundVarRegion struct{ Kind BoundRegionKind }

type BoundVarConst struct{}

func (BoundVarTy) isBoundVariableKind()     {}
func (BoundVarRegion) isBoundVariableKind() {}
func (BoundVarConst) isBoundVariableKind()  {}

// BoundRegionKind is the binder flavor of a bound region.
type BoundRegionKind int

const (
	BrAnon BoundRegionKind = iota
	BrNamed
	BrEnv
)

// ExistentialPredicate is one obligation of a trait object, with the Self
// type erased.
type ExistentialPredicate interface {
	isExistentialPredicate()
	String() string
}

// ExistentialTraitRef is a trait reference without its Self type.
type ExistentialTraitRef struct {
	Def  TraitDef
	Args GenericArgs
}

// ExistentialProjection constrains an associated type of a trait object.
type ExistentialProjection struct {
	Def  TraitDef
	Args GenericArgs
	Term *Ty
}

// AutoTraitPredicate is an auto-trait obligation (e.g. thread safety
// markers); it carries no arguments.
type AutoTraitPredicate struct {
	Def TraitDef
}

func (ExistentialTraitRef) isExistentialPredicate()   {}
func (ExistentialProjection) isExistentialPredicate() {}
func (AutoTraitPredicate) isExistentialPredicate()    {}

func (p ExistentialTraitRef) String() string { return p.Def.Name + p.Args.String() }
func (p ExistentialProjection) String() string {
	return fmt.Sprintf("%s%s = %s", p.Def.Name, p.Args, p.Term)
}
func (p AutoTraitPredicate) String() string { return p.Def.Name }

// FnSig is a function signature; the last entry of InputsAndOutput is the
// return type.
type FnSig struct {
	InputsAndOutput []*Ty
	IsUnsafe        bool
	Abi             string
}

// PolyFnSig is a signature together with its late-bound variables.
type PolyFnSig = Binder[FnSig]
