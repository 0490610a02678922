package mir

import (
	"smir/internal/ty"
)

// BodyStats summarizes one traversal of a body: node counts and the
// mutation profile of every place use.
type BodyStats struct {
	Statements  int
	Terminators int
	Constants   int
	Types       int

	// Place uses bucketed by context.
	MutatingUses    int
	NonMutatingUses int
	NonUses         int

	// LocalUses counts per-local appearances, storage markers included.
	LocalUses map[Local]int
}

// CollectStats walks body and returns its statistics.
func CollectStats(body *Body) *BodyStats {
	c := &statCollector{
		stats: &BodyStats{LocalUses: make(map[Local]int)},
	}
	c.Walker = NewWalker(c)
	c.VisitBody(body)
	return c.stats
}

// statCollector overrides the counting hooks and lets Walker drive
// everything else.
type statCollector struct {
	Walker
	stats *BodyStats
}

func (c *statCollector) VisitStatement(stmt *Statement, loc Location) {
	c.stats.Statements++
	SuperStatement(c, stmt, loc)
}

func (c *statCollector) VisitTerminator(term *Terminator, loc Location) {
	c.stats.Terminators++
	SuperTerminator(c, term, loc)
}

func (c *statCollector) VisitPlace(place *Place, ptx PlaceContext, loc Location) {
	switch {
	case !ptx.IsUse():
		c.stats.NonUses++
	case ptx.IsMutating():
		c.stats.MutatingUses++
	default:
		c.stats.NonMutatingUses++
	}
	SuperPlace(c, place, ptx, loc)
}

func (c *statCollector) VisitLocal(local Local, ptx PlaceContext, loc Location) {
	_, _ = ptx, loc
	c.stats.LocalUses[local]++
}

func (c *statCollector) VisitConst(constant *ty.Const, loc Location) {
	c.stats.Constants++
	SuperConst(c, constant, loc)
}

// VisitTy counts the handle without entering the kind: counting does not
// need kind structure, and some kinds have no structural descent.
func (c *statCollector) VisitTy(t *ty.Ty, loc Location) {
	_ = loc
	c.stats.Types++
	SuperTy(c, t)
}
