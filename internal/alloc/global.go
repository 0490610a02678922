// Package alloc flattens the global allocation graph into a stable,
// cycle-safe order and serializes it. Allocation ids are host addresses in
// disguise; everything leaving the process carries the flattened index next
// to the raw id so consumers never depend on the unstable value.
package alloc

import (
	"smir/internal/mir"
	"smir/internal/ty"
)

// GlobalAlloc is the closed union of things an allocation id can name.
type GlobalAlloc interface {
	isGlobalAlloc()
}

// FunctionAlloc is the allocation behind a function pointer.
type FunctionAlloc struct {
	Instance mir.Instance
}

// VTableAlloc is the allocation behind a trait-object vtable pointer.
// TraitRef is nil for vtables of auto-trait-only objects.
type VTableAlloc struct {
	Ty       *ty.Ty
	TraitRef *ty.Binder[ty.ExistentialTraitRef]
}

// StaticAlloc names a static item whose value may not be computed yet; it
// stands in for the static's memory and is how cycles through recursive
// statics stay representable.
type StaticAlloc struct {
	Def ty.StaticDef
}

// MemoryAlloc is concrete bytes. Its provenance entries are the graph's
// edges.
type MemoryAlloc struct {
	Allocation *ty.Allocation
}

func (*FunctionAlloc) isGlobalAlloc() {}
func (*VTableAlloc) isGlobalAlloc()   {}
func (*StaticAlloc) isGlobalAlloc()   {}
func (*MemoryAlloc) isGlobalAlloc()   {}

// Resolver answers what an allocation id names. The host compiler context
// implements it.
type Resolver interface {
	GlobalAlloc(id ty.AllocId) (GlobalAlloc, error)
}
