package ty

import "fmt"

// Symbol is an interned name. String is good enough until profiling says
// otherwise.
type Symbol = string

// DefId identifies an item definition inside the host compiler context. The
// raw value is host-internal and unstable across sessions; never persist it
// without the surrogate index the serializer assigns.
type DefId struct {
	Id   uint64
	Name Symbol
}

func (d DefId) String() string {
	return fmt.Sprintf("%s#%d", d.Name, d.Id)
}

// Typed wrappers around DefId. Each names the item kind it may point at, so
// a vtable definition cannot be handed where a static is expected.

type AdtDef struct{ DefId }

type ForeignDef struct{ DefId }

type FnDef struct{ DefId }

type ClosureDef struct{ DefId }

type CoroutineDef struct{ DefId }

type CoroutineWitnessDef struct{ DefId }

type AliasDef struct{ DefId }

type TraitDef struct{ DefId }

type ParamDef struct{ DefId }

// StaticDef identifies a static item whose value may not have been computed
// yet; the allocation graph uses it to break cycles through recursive
// statics.
type StaticDef struct{ DefId }

// VariantIdx addresses one variant of an algebraic data type.
type VariantIdx int

// UserTypeAnnotationIndex addresses a user-ascribed type in the body's
// side table.
type UserTypeAnnotationIndex int
