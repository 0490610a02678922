package host

import (
	"encoding/json"
	"io"
	"sort"

	"smir/internal/alloc"
	"smir/internal/errors"
	"smir/internal/mir"
	"smir/internal/target"
	"smir/internal/ty"
)

// Fixture is an in-memory Context. Allocations and machine data can come
// from a JSON document; bodies are registered programmatically.
type Fixture struct {
	machine target.MachineInfo
	allocs  map[ty.AllocId]alloc.GlobalAlloc
	bodies  map[string]*mir.Body
	roots   []ty.AllocId
}

// NewFixture creates an empty fixture for the given machine.
func NewFixture(machine target.MachineInfo) *Fixture {
	return &Fixture{
		machine: machine,
		allocs:  make(map[ty.AllocId]alloc.GlobalAlloc),
		bodies:  make(map[string]*mir.Body),
	}
}

func (f *Fixture) Machine() target.MachineInfo { return f.machine }

func (f *Fixture) GlobalAlloc(id ty.AllocId) (alloc.GlobalAlloc, error) {
	g, ok := f.allocs[id]
	if !ok {
		return nil, errors.Newf(errors.ErrorUnknownItem, "no allocation with id %d", id)
	}
	return g, nil
}

func (f *Fixture) Items() []string {
	names := make([]string, 0, len(f.bodies))
	for name := range f.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Fixture) Body(name string) (*mir.Body, error) {
	body, ok := f.bodies[name]
	if !ok {
		return nil, errors.Newf(errors.ErrorUnknownItem, "no item named %q", name)
	}
	return body, nil
}

// Roots returns the allocation ids the fixture marks as serialization
// entry points.
func (f *Fixture) Roots() []ty.AllocId { return f.roots }

// SetAlloc registers (or replaces) an allocation.
func (f *Fixture) SetAlloc(id ty.AllocId, g alloc.GlobalAlloc) {
	f.allocs[id] = g
}

// SetBody registers (or replaces) an item body.
func (f *Fixture) SetBody(name string, body *mir.Body) {
	f.bodies[name] = body
}

// AddRoot marks id as a serialization entry point.
func (f *Fixture) AddRoot(id ty.AllocId) {
	f.roots = append(f.roots, id)
}

// The fixture document. VTable allocations have no document form; register
// them with SetAlloc when a test needs one.

type fixtureJSON struct {
	Machine     machineJSON         `json:"machine"`
	Allocations []fixtureAllocJSON  `json:"allocations"`
	Roots       []uint64            `json:"roots"`
}

type machineJSON struct {
	Endian       string `json:"endian"`
	PointerWidth int    `json:"pointer_width"`
}

type fixtureAllocJSON struct {
	Id   uint64 `json:"id"`
	Kind string `json:"kind"`

	// memory
	Bytes      []byte               `json:"bytes,omitempty"`
	InitMask   []bool               `json:"init_mask,omitempty"`
	Provenance []fixtureEdgeJSON    `json:"provenance,omitempty"`
	Align      uint64               `json:"align,omitempty"`
	Mutable    bool                 `json:"mutable,omitempty"`

	// function and static
	Name  string `json:"name,omitempty"`
	DefId uint64 `json:"def_id,omitempty"`
}

type fixtureEdgeJSON struct {
	Offset int    `json:"offset"`
	Alloc  uint64 `json:"alloc"`
}

// LoadFixture reads a fixture document. Faults in the document itself come
// back as bad-fixture errors; JSON syntax errors pass through unwrapped.
func LoadFixture(r io.Reader) (*Fixture, error) {
	var doc fixtureJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	machine, err := parseMachine(doc.Machine)
	if err != nil {
		return nil, err
	}
	f := NewFixture(machine)

	for _, a := range doc.Allocations {
		g, err := parseAlloc(a)
		if err != nil {
			return nil, err
		}
		f.SetAlloc(ty.AllocId(a.Id), g)
	}

	for _, root := range doc.Roots {
		id := ty.AllocId(root)
		if _, ok := f.allocs[id]; !ok {
			return nil, errors.Newf(errors.ErrorBadFixture,
				"root %d names no declared allocation", root)
		}
		f.AddRoot(id)
	}
	return f, nil
}

func parseMachine(m machineJSON) (target.MachineInfo, error) {
	var machine target.MachineInfo
	switch m.Endian {
	case "little", "":
		machine.Endian = target.LittleEndian
	case "big":
		machine.Endian = target.BigEndian
	default:
		return machine, errors.Newf(errors.ErrorBadFixture,
			"unknown endianness %q", m.Endian)
	}

	machine.PointerWidth = m.PointerWidth
	if machine.PointerWidth == 0 {
		machine.PointerWidth = target.DefaultMachine().PointerWidth
	}
	if machine.PointerWidth < 1 || machine.PointerWidth > 8 {
		return machine, errors.Newf(errors.ErrorBadFixture,
			"unsupported pointer width %d", machine.PointerWidth)
	}
	return machine, nil
}

func parseAlloc(a fixtureAllocJSON) (alloc.GlobalAlloc, error) {
	switch a.Kind {
	case "memory":
		allocation := &ty.Allocation{
			Bytes:    a.Bytes,
			InitMask: a.InitMask,
			Align:    a.Align,
		}
		if a.Mutable {
			allocation.Mutability = ty.MutMut
		}
		if a.InitMask != nil && len(a.InitMask) != len(a.Bytes) {
			return nil, errors.Newf(errors.ErrorBadFixture,
				"allocation %d: init mask covers %d bytes, allocation has %d",
				a.Id, len(a.InitMask), len(a.Bytes))
		}
		for _, edge := range a.Provenance {
			if edge.Offset < 0 || edge.Offset >= len(a.Bytes) {
				return nil, errors.Newf(errors.ErrorBadFixture,
					"allocation %d: provenance offset %d outside %d bytes",
					a.Id, edge.Offset, len(a.Bytes))
			}
			allocation.Provenance.Ptrs = append(allocation.Provenance.Ptrs,
				ty.ProvenanceEntry{Offset: edge.Offset, Alloc: ty.AllocId(edge.Alloc)})
		}
		return &alloc.MemoryAlloc{Allocation: allocation}, nil
	case "function":
		if a.Name == "" {
			return nil, errors.Newf(errors.ErrorBadFixture,
				"allocation %d: function allocation needs a name", a.Id)
		}
		return &alloc.FunctionAlloc{Instance: mir.Instance{
			Kind: mir.InstanceItem,
			Def:  ty.DefId{Id: a.DefId, Name: a.Name},
		}}, nil
	case "static":
		if a.Name == "" {
			return nil, errors.Newf(errors.ErrorBadFixture,
				"allocation %d: static allocation needs a name", a.Id)
		}
		return &alloc.StaticAlloc{
			Def: ty.StaticDef{DefId: ty.DefId{Id: a.DefId, Name: a.Name}},
		}, nil
	default:
		return nil, errors.Newf(errors.ErrorBadFixture,
			"allocation %d: unknown kind %q", a.Id, a.Kind)
	}
}
