package alloc

import (
	"smir/internal/ty"
)

// Session is one serialization pass over the allocation graph. It owns the
// seen-set and the flattened order, so two sessions never contaminate each
// other's indices.
//
// A session must be explicitly bracketed: Begin before the first Index, End
// when the output is finished. Misuse is a programming error and panics; a
// bad fixture or an unknown id is the host's fault and comes back as an
// error value instead.
//
// Session is not safe for concurrent use.
type Session struct {
	resolver Resolver
	seen     map[ty.AllocId]int
	order    []ty.AllocId
	active   bool
}

// NewSession creates an inactive session over the given resolver.
func NewSession(resolver Resolver) *Session {
	return &Session{
		resolver: resolver,
		seen:     make(map[ty.AllocId]int),
	}
}

// Begin starts the pass. Beginning an already-active session panics: nested
// passes would interleave their orders and emit dangling indices.
func (s *Session) Begin() {
	if s.active {
		panic("alloc: Begin on an active session")
	}
	s.active = true
}

// End closes the pass and returns the flattened order. The session keeps
// its state so the caller can still map ids after the pass; a fresh pass
// needs a fresh session.
func (s *Session) End() []ty.AllocId {
	if !s.active {
		panic("alloc: End on an inactive session")
	}
	s.active = false
	return s.order
}

// Index returns the position of id in the flattened order, interning it on
// first sight.
//
// The position is assigned before descending into the allocation's
// provenance: an allocation that (transitively) points back at itself finds
// its own id already interned and the recursion stops. The assigned position
// is remembered at append time, so re-indexing an id always returns the
// position of its first appearance no matter how many descendants the
// descent added in between.
func (s *Session) Index(id ty.AllocId) (int, error) {
	if !s.active {
		panic("alloc: Index outside an active session")
	}

	if pos, ok := s.seen[id]; ok {
		return pos, nil
	}

	pos := len(s.order)
	s.seen[id] = pos
	s.order = append(s.order, id)

	global, err := s.resolver.GlobalAlloc(id)
	if err != nil {
		return 0, err
	}
	if mem, ok := global.(*MemoryAlloc); ok {
		for _, entry := range mem.Allocation.Provenance.Ptrs {
			if _, err := s.Index(entry.Alloc); err != nil {
				return 0, err
			}
		}
	}
	return pos, nil
}

// Seen reports whether id was already interned.
func (s *Session) Seen(id ty.AllocId) bool {
	_, ok := s.seen[id]
	return ok
}

// Order returns the flattened order so far.
func (s *Session) Order() []ty.AllocId {
	return s.order
}
