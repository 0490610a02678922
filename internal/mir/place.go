package mir

import (
	"fmt"

	"smir/internal/errors"
	"smir/internal/ty"
)

// Place is a storage location: a local plus an ordered run of projection
// steps refining it.
type Place struct {
	Local      Local
	Projection []ProjectionElem
}

func (p Place) String() string {
	s := fmt.Sprintf("_%d", p.Local)
	for _, elem := range p.Projection {
		s = elem.apply(s)
	}
	return s
}

// Ty folds the projection steps left-to-right starting from the local's
// declared type. An inapplicable step is a recoverable fault identifying the
// offending place.
func (p Place) Ty(locals []LocalDecl) (*ty.Ty, error) {
	return PlaceRef{Local: p.Local, Projection: p.Projection}.Ty(locals)
}

// PlaceRef views a place truncated to a prefix of its projections; it is
// what a projection-step visit receives as "everything before this step".
type PlaceRef struct {
	Local      Local
	Projection []ProjectionElem
}

// Ty computes the type of the partial place by folding its projection steps
// onto the local's declared type.
func (r PlaceRef) Ty(locals []LocalDecl) (*ty.Ty, error) {
	if int(r.Local) < 0 || int(r.Local) >= len(locals) {
		return nil, errors.Newf(errors.ErrorUnknownLocal,
			"local _%d out of range (%d locals declared)", r.Local, len(locals))
	}
	cur := locals[r.Local].Ty
	for _, elem := range r.Projection {
		next, err := elem.Ty(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ProjectionElem is one access refinement on a place. Each variant knows how
// it transforms the type it is applied to.
type ProjectionElem interface {
	isProjectionElem()

	// Ty returns the type this step yields when applied to base, or a
	// projection fault when the step is inapplicable.
	Ty(base *ty.Ty) (*ty.Ty, error)

	// apply renders the step onto a textual place for diagnostics.
	apply(place string) string
}

// DerefElem follows a pointer or reference.
type DerefElem struct{}

// FieldElem selects a field; the field's type is carried so computing place
// types does not require the ADT definition.
type FieldElem struct {
	Field   int
	FieldTy *ty.Ty
}

// IndexElem indexes with the value of another local.
type IndexElem struct {
	Local Local
}

// ConstantIndexElem indexes with a constant, optionally from the end.
type ConstantIndexElem struct {
	Offset    uint64
	MinLength uint64
	FromEnd   bool
}

// SubsliceElem takes a subslice [From..To] (or [From..len-To] when FromEnd).
type SubsliceElem struct {
	From    uint64
	To      uint64
	FromEnd bool
}

// DowncastElem refines an enum place to one variant.
type DowncastElem struct {
	Variant ty.VariantIdx
}

// OpaqueCastElem changes the type without changing the layout.
type OpaqueCastElem struct {
	CastTy *ty.Ty
}

// SubtypeElem adjusts to a subtype, as produced by type coercions.
type SubtypeElem struct {
	SubtypeTy *ty.Ty
}

func (*DerefElem) isProjectionElem()         {}
func (*FieldElem) isProjectionElem()         {}
func (*IndexElem) isProjectionElem()         {}
func (*ConstantIndexElem) isProjectionElem() {}
func (*SubsliceElem) isProjectionElem()      {}
func (*DowncastElem) isProjectionElem()      {}
func (*OpaqueCastElem) isProjectionElem()    {}
func (*SubtypeElem) isProjectionElem()       {}

func (*DerefElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	switch k := base.Kind.(type) {
	case *ty.RefTy:
		return k.Pointee, nil
	case *ty.RawPtrTy:
		return k.Pointee, nil
	default:
		return nil, errors.Newf(errors.ErrorInvalidProjection,
			"cannot dereference non-pointer type %s", base)
	}
}

func (e *FieldElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	switch k := base.Kind.(type) {
	case *ty.AdtTy, *ty.ClosureTy, *ty.CoroutineTy:
		if e.FieldTy == nil {
			return nil, errors.Newf(errors.ErrorInvalidProjection,
				"field %d of %s has no recorded type", e.Field, base)
		}
		return e.FieldTy, nil
	case *ty.TupleTy:
		if e.Field < 0 || e.Field >= len(k.Elems) {
			return nil, errors.Newf(errors.ErrorInvalidProjection,
				"tuple %s has no field %d", base, e.Field)
		}
		// Tuple field types are derivable; a recorded one wins.
		if e.FieldTy != nil {
			return e.FieldTy, nil
		}
		return k.Elems[e.Field], nil
	default:
		return nil, errors.Newf(errors.ErrorInvalidProjection,
			"cannot project field %d out of %s", e.Field, base)
	}
}

func elementType(base *ty.Ty) (*ty.Ty, error) {
	switch k := base.Kind.(type) {
	case *ty.ArrayTy:
		return k.Elem, nil
	case *ty.SliceTy:
		return k.Elem, nil
	default:
		return nil, errors.Newf(errors.ErrorInvalidProjection,
			"cannot index into non-indexable type %s", base)
	}
}

func (*IndexElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	return elementType(base)
}

func (*ConstantIndexElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	return elementType(base)
}

func (*SubsliceElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	switch k := base.Kind.(type) {
	case *ty.SliceTy:
		return base, nil
	case *ty.ArrayTy:
		// The subslice of an array is a slice; its length is no longer a
		// type-level constant.
		return ty.NewTy(&ty.SliceTy{Elem: k.Elem}), nil
	default:
		return nil, errors.Newf(errors.ErrorInvalidProjection,
			"cannot take a subslice of %s", base)
	}
}

func (*DowncastElem) Ty(base *ty.Ty) (*ty.Ty, error) {
	if _, ok := base.Kind.(*ty.AdtTy); !ok {
		return nil, errors.Newf(errors.ErrorInvalidProjection,
			"cannot downcast non-ADT type %s", base)
	}
	return base, nil
}

func (e *OpaqueCastElem) Ty(*ty.Ty) (*ty.Ty, error) { return e.CastTy, nil }

func (e *SubtypeElem) Ty(*ty.Ty) (*ty.Ty, error) { return e.SubtypeTy, nil }

func (*DerefElem) apply(place string) string { return "(*" + place + ")" }
func (e *FieldElem) apply(place string) string {
	return fmt.Sprintf("%s.%d", place, e.Field)
}
func (e *IndexElem) apply(place string) string {
	return fmt.Sprintf("%s[_%d]", place, e.Local)
}
func (e *ConstantIndexElem) apply(place string) string {
	if e.FromEnd {
		return fmt.Sprintf("%s[-%d of %d]", place, e.Offset, e.MinLength)
	}
	return fmt.Sprintf("%s[%d of %d]", place, e.Offset, e.MinLength)
}
func (e *SubsliceElem) apply(place string) string {
	if e.FromEnd {
		return fmt.Sprintf("%s[%d:-%d]", place, e.From, e.To)
	}
	return fmt.Sprintf("%s[%d:%d]", place, e.From, e.To)
}
func (e *DowncastElem) apply(place string) string {
	return fmt.Sprintf("(%s as variant#%d)", place, e.Variant)
}
func (e *OpaqueCastElem) apply(place string) string {
	return fmt.Sprintf("(%s as %s)", place, e.CastTy)
}
func (e *SubtypeElem) apply(place string) string {
	return fmt.Sprintf("(%s as subtype %s)", place, e.SubtypeTy)
}

// PlaceContext flags how a visited place or local is being used. Mutability
// is kept behind an accessor so new usage classes can be added without
// breaking callers.
type PlaceContext struct {
	isMut bool
	isUse bool
}

var (
	// PlaceMutating marks writes: assignment and call/drop destinations,
	// discriminant writes, deinitialization, retags.
	PlaceMutating = PlaceContext{isMut: true, isUse: true}

	// PlaceNonMutating marks reads: copy/move operands, fake reads, place
	// mentions.
	PlaceNonMutating = PlaceContext{isMut: false, isUse: true}

	// PlaceNonUse marks appearances that neither read nor write the place:
	// storage markers, debug bindings, type ascriptions.
	PlaceNonUse = PlaceContext{isMut: false, isUse: false}
)

// borrowContext classifies the place of a reference-taking or address-of
// operation by its declared pointer mutability.
func borrowContext(isMut bool) PlaceContext {
	return PlaceContext{isMut: isMut, isUse: true}
}

// IsMutating reports whether the access may write the place.
func (c PlaceContext) IsMutating() bool { return c.isMut }

// IsUse reports whether the access reads or writes the place at runtime.
func (c PlaceContext) IsUse() bool { return c.isUse }
