package alloc

import (
	"encoding/json"
	"io"

	"smir/internal/mir"
	"smir/internal/ty"
)

// The wire form. Every allocation id is emitted as a ref pairing the raw id
// with its flattened index; only the index is stable across runs.

type refJSON struct {
	Id    uint64 `json:"id"`
	Index int    `json:"index"`
}

type defJSON struct {
	Id   uint64 `json:"id"`
	Name string `json:"name"`
}

type provenanceJSON struct {
	Offset int     `json:"offset"`
	Alloc  refJSON `json:"alloc"`
}

type memoryJSON struct {
	Bytes      []byte           `json:"bytes"`
	InitMask   []bool           `json:"init_mask,omitempty"`
	Provenance []provenanceJSON `json:"provenance,omitempty"`
	Align      uint64           `json:"align"`
	Mutable    bool             `json:"mutable"`
}

type functionJSON struct {
	Kind        string  `json:"kind"`
	Def         defJSON `json:"def"`
	VTableIndex *int    `json:"vtable_index,omitempty"`
}

type vtableJSON struct {
	Ty    string `json:"ty"`
	Trait string `json:"trait,omitempty"`
}

type staticJSON struct {
	Def defJSON `json:"def"`
}

type entryJSON struct {
	Ref      refJSON       `json:"ref"`
	Kind     string        `json:"kind"`
	Function *functionJSON `json:"function,omitempty"`
	VTable   *vtableJSON   `json:"vtable,omitempty"`
	Static   *staticJSON   `json:"static,omitempty"`
	Memory   *memoryJSON   `json:"memory,omitempty"`
}

type graphJSON struct {
	Roots       []refJSON   `json:"roots"`
	Allocations []entryJSON `json:"allocations"`
}

// EncodeGraph interns roots into the active session, then writes every
// allocation the session has seen, in flattened order, as one JSON document.
func EncodeGraph(s *Session, roots []ty.AllocId, w io.Writer) error {
	rootRefs := make([]refJSON, 0, len(roots))
	for _, id := range roots {
		ref, err := s.ref(id)
		if err != nil {
			return err
		}
		rootRefs = append(rootRefs, ref)
	}

	order := s.Order()
	entries := make([]entryJSON, 0, len(order))
	for _, id := range order {
		entry, err := s.entry(id)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(graphJSON{Roots: rootRefs, Allocations: entries})
}

// WriteGraph runs a whole pass: a fresh session over resolver, rooted at
// roots, written to w.
func WriteGraph(resolver Resolver, roots []ty.AllocId, w io.Writer) error {
	s := NewSession(resolver)
	s.Begin()
	defer s.End()
	return EncodeGraph(s, roots, w)
}

func (s *Session) ref(id ty.AllocId) (refJSON, error) {
	index, err := s.Index(id)
	if err != nil {
		return refJSON{}, err
	}
	return refJSON{Id: uint64(id), Index: index}, nil
}

func (s *Session) entry(id ty.AllocId) (entryJSON, error) {
	ref, err := s.ref(id)
	if err != nil {
		return entryJSON{}, err
	}
	global, err := s.resolver.GlobalAlloc(id)
	if err != nil {
		return entryJSON{}, err
	}

	switch g := global.(type) {
	case *FunctionAlloc:
		return entryJSON{Ref: ref, Kind: "function", Function: functionJSON{
			Kind: g.Instance.Kind.String(),
			Def:  defJSON{Id: g.Instance.Def.Id, Name: g.Instance.Def.Name},
		}.withVTableIndex(g.Instance)}, nil
	case *VTableAlloc:
		vt := &vtableJSON{Ty: g.Ty.String()}
		if g.TraitRef != nil {
			vt.Trait = g.TraitRef.Value.Def.Name
		}
		return entryJSON{Ref: ref, Kind: "vtable", VTable: vt}, nil
	case *StaticAlloc:
		return entryJSON{Ref: ref, Kind: "static", Static: &staticJSON{
			Def: defJSON{Id: g.Def.Id, Name: g.Def.Name},
		}}, nil
	case *MemoryAlloc:
		mem, err := s.memory(g.Allocation)
		if err != nil {
			return entryJSON{}, err
		}
		return entryJSON{Ref: ref, Kind: "memory", Memory: mem}, nil
	default:
		return entryJSON{}, nil
	}
}

func (f functionJSON) withVTableIndex(instance mir.Instance) *functionJSON {
	if instance.Kind == mir.InstanceVirtual {
		idx := instance.VTableIndex
		f.VTableIndex = &idx
	}
	return &f
}

func (s *Session) memory(a *ty.Allocation) (*memoryJSON, error) {
	mem := &memoryJSON{
		Bytes:    a.Bytes,
		InitMask: a.InitMask,
		Align:    a.Align,
		Mutable:  a.Mutability.IsMut(),
	}
	for _, entry := range a.Provenance.Ptrs {
		ref, err := s.ref(entry.Alloc)
		if err != nil {
			return nil, err
		}
		mem.Provenance = append(mem.Provenance, provenanceJSON{Offset: entry.Offset, Alloc: ref})
	}
	return mem, nil
}
