package mir

import "smir/internal/ty"

// InstanceKind classifies how a monomorphized function instance came to be.
type InstanceKind int

const (
	InstanceItem InstanceKind = iota
	InstanceIntrinsic
	InstanceVirtual
	InstanceShim
)

func (k InstanceKind) String() string {
	return [...]string{"item", "intrinsic", "virtual", "shim"}[k]
}

// Instance is a monomorphized function: the thing a function pointer in the
// allocation graph ultimately names.
type Instance struct {
	Kind InstanceKind
	Def  ty.DefId

	// VTableIndex is meaningful only for InstanceVirtual.
	VTableIndex int
}

func (i Instance) String() string {
	return i.Kind.String() + " " + i.Def.String()
}
