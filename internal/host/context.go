// Package host defines what the core expects from a compiler context and
// provides an in-memory stand-in for tools and tests. A real frontend
// implements Context over its own item tables; nothing in the core knows the
// difference.
package host

import (
	"smir/internal/alloc"
	"smir/internal/mir"
	"smir/internal/target"
)

// Context is the query surface of the compiler host.
type Context interface {
	alloc.Resolver

	// Machine describes the compilation target's byte order and pointer
	// width.
	Machine() target.MachineInfo

	// Items lists the names of the compiled items with a body.
	Items() []string

	// Body returns the body of the named item.
	Body(name string) (*mir.Body, error)
}
