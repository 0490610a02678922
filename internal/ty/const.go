package ty

import "fmt"

// ConstId identifies an interned constant inside the host context.
type ConstId int

// Const is an evaluated or still-symbolic constant together with its type.
type Const struct {
	Kind ConstKind
	Ty   *Ty
	Id   ConstId
}

func (c *Const) String() string {
	if c == nil {
		return "<unknown-const>"
	}
	switch k := c.Kind.(type) {
	case *AllocatedConst:
		return fmt.Sprintf("{alloc %d bytes}: %s", len(k.Allocation.Bytes), c.Ty)
	case *UnevaluatedConst:
		return fmt.Sprintf("{unevaluated %s}: %s", k.Def, c.Ty)
	case *ParamConst:
		return k.Name
	case *ZeroSizedConst:
		return fmt.Sprintf("<ZST>: %s", c.Ty)
	default:
		return fmt.Sprintf("<const>: %s", c.Ty)
	}
}

// ConstKind is the closed union over constant representations.
type ConstKind interface {
	isConstKind()
}

// AllocatedConst is a constant whose value has been laid out in memory.
// Through the allocation's provenance it can reference the global
// allocation graph.
type AllocatedConst struct {
	Allocation *Allocation
}

// UnevaluatedConst is a constant the host has not evaluated yet.
type UnevaluatedConst struct {
	Def  DefId
	Args GenericArgs
}

// ParamConst is a const generic parameter in scope.
type ParamConst struct {
	Index int
	Name  Symbol
}

// ZeroSizedConst is a constant of a zero-sized type; it has no bytes.
type ZeroSizedConst struct{}

func (*AllocatedConst) isConstKind()   {}
func (*UnevaluatedConst) isConstKind() {}
func (*ParamConst) isConstKind()       {}
func (*ZeroSizedConst) isConstKind()   {}
