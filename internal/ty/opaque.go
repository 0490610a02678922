package ty

import "fmt"

// Opaque carries host-internal data the node model does not (yet) describe.
// It is only good for debugging output. When a payload gains a real
// representation, replace the Opaque field with it; every traversal site
// that no-ops over the field must then be revisited by hand.
type Opaque struct {
	desc string
}

// MakeOpaque captures a debug rendering of the value.
func MakeOpaque(value interface{}) Opaque {
	return Opaque{desc: fmt.Sprintf("%v", value)}
}

func (o Opaque) String() string { return o.desc }
