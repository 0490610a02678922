package mir

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smir/internal/ty"
)

func i32Ty() *ty.Ty { return ty.NewTy(&ty.IntTy{Kind: ty.I32}) }

func refTo(pointee *ty.Ty) *ty.Ty {
	return ty.NewTy(&ty.RefTy{
		Region:     ty.Region{Kind: ty.RegionErased},
		Pointee:    pointee,
		Mutability: ty.MutNot,
	})
}

func localPlace(local Local) Place {
	return Place{Local: local}
}

func copyOf(local Local) Operand {
	return &CopyOperand{Place: localPlace(local)}
}

func zstConstant() Constant {
	return Constant{
		Span:    0,
		Literal: &ty.Const{Kind: &ty.ZeroSizedConst{}, Ty: i32Ty()},
	}
}

// newTestBody builds `fn f(_1: i32) -> i32` with one empty block ending in
// return, plus one interior local.
func newTestBody(stmts []Statement, term TerminatorKind) *Body {
	return &Body{
		Blocks: []BasicBlock{{
			Statements: stmts,
			Terminator: Terminator{Kind: term, Span: 99},
		}},
		Locals: []LocalDecl{
			{Ty: i32Ty()},
			{Ty: i32Ty()},
			{Ty: i32Ty(), Mutability: ty.MutMut},
		},
		ArgCount: 1,
		Span:     100,
	}
}

// recorder logs the concrete kind of every node the walk reaches.
type recorder struct {
	Walker
	statements  []string
	terminators []string
	rvalues     []string
	operands    []string
	places      []placeUse
	locals      []localUse
	spans       []Span
}

type placeUse struct {
	place string
	ptx   PlaceContext
	span  Span
}

type localUse struct {
	local Local
	ptx   PlaceContext
}

func newRecorder() *recorder {
	r := &recorder{}
	r.Walker = NewWalker(r)
	return r
}

func (r *recorder) VisitStatement(stmt *Statement, loc Location) {
	r.statements = append(r.statements, fmt.Sprintf("%T", stmt.Kind))
	SuperStatement(r, stmt, loc)
}

func (r *recorder) VisitTerminator(term *Terminator, loc Location) {
	r.terminators = append(r.terminators, fmt.Sprintf("%T", term.Kind))
	SuperTerminator(r, term, loc)
}

func (r *recorder) VisitRvalue(rvalue Rvalue, loc Location) {
	r.rvalues = append(r.rvalues, fmt.Sprintf("%T", rvalue))
	SuperRvalue(r, rvalue, loc)
}

func (r *recorder) VisitOperand(operand Operand, loc Location) {
	r.operands = append(r.operands, fmt.Sprintf("%T", operand))
	SuperOperand(r, operand, loc)
}

func (r *recorder) VisitPlace(place *Place, ptx PlaceContext, loc Location) {
	r.places = append(r.places, placeUse{place: place.String(), ptx: ptx, span: loc.Span()})
	SuperPlace(r, place, ptx, loc)
}

func (r *recorder) VisitLocal(local Local, ptx PlaceContext, loc Location) {
	_ = loc
	r.locals = append(r.locals, localUse{local: local, ptx: ptx})
}

func (r *recorder) VisitSpan(span Span) {
	r.spans = append(r.spans, span)
}

func TestWalkReachesEveryStatementKind(t *testing.T) {
	projection := UserTypeProjection{Base: 0, Projection: ty.MakeOpaque("proj")}
	stmts := []Statement{
		{Kind: &AssignStmt{Place: localPlace(0), Rvalue: &UseRvalue{Operand: copyOf(1)}}},
		{Kind: &FakeReadStmt{Cause: FakeReadForLet, Place: localPlace(1)}},
		{Kind: &SetDiscriminantStmt{Place: localPlace(2), Variant: 1}},
		{Kind: &DeinitStmt{Place: localPlace(2)}},
		{Kind: &StorageLiveStmt{Local: 2}},
		{Kind: &StorageDeadStmt{Local: 2}},
		{Kind: &RetagStmt{Kind: RetagDefault, Place: localPlace(2)}},
		{Kind: &PlaceMentionStmt{Place: localPlace(1)}},
		{Kind: &AscribeUserTypeStmt{Place: localPlace(1), Projections: projection, Variance: Covariant}},
		{Kind: &CoverageStmt{Coverage: ty.MakeOpaque("counter")}},
		{Kind: &IntrinsicStmt{Intrinsic: AssumeIntrinsic{Operand: copyOf(1)}}},
		{Kind: &IntrinsicStmt{Intrinsic: CopyNonOverlappingIntrinsic{
			Src: copyOf(1), Dst: copyOf(2), Count: copyOf(1),
		}}},
		{Kind: &ConstEvalCounterStmt{}},
		{Kind: &NopStmt{}},
	}
	body := newTestBody(stmts, &ReturnTerm{})

	r := newRecorder()
	assert.NotPanics(t, func() { r.VisitBody(body) })

	require.Len(t, r.statements, len(stmts))
	assert.Equal(t, "*mir.AssignStmt", r.statements[0])
	assert.Equal(t, "*mir.NopStmt", r.statements[len(stmts)-1])
	assert.Equal(t, []string{"*mir.ReturnTerm"}, r.terminators)
}

func TestWalkReachesEveryTerminatorKind(t *testing.T) {
	target := BasicBlockIdx(0)
	terms := []TerminatorKind{
		&GotoTerm{Target: 0},
		&SwitchIntTerm{Discr: copyOf(1), Targets: SwitchTargets{
			Branches:  []SwitchBranch{{Value: 0, Target: 0}},
			Otherwise: 0,
		}},
		&ResumeTerm{},
		&AbortTerm{},
		&ReturnTerm{},
		&UnreachableTerm{},
		&DropTerm{Place: localPlace(2), Target: 0},
		&CallTerm{
			Func:        &ConstantOperand{Constant: zstConstant()},
			Args:        []Operand{copyOf(1)},
			Destination: localPlace(0),
			Target:      &target,
		},
		&AssertTerm{
			Cond:     copyOf(1),
			Expected: true,
			Msg:      &BoundsCheckMsg{Len: copyOf(1), Index: copyOf(2)},
			Target:   0,
		},
		&InlineAsmTerm{
			Template: "nop",
			Operands: []InlineAsmOperand{{RawRpr: ty.MakeOpaque("nop")}},
		},
	}

	r := newRecorder()
	for _, term := range terms {
		body := newTestBody(nil, term)
		assert.NotPanics(t, func() { r.VisitBody(body) }, "%T", term)
	}
	require.Len(t, r.terminators, len(terms))
	assert.Equal(t, "*mir.GotoTerm", r.terminators[0])
	assert.Equal(t, "*mir.InlineAsmTerm", r.terminators[len(terms)-1])
}

func TestWalkReachesEveryRvalueKind(t *testing.T) {
	rvalues := []Rvalue{
		&AddressOfRvalue{Mutability: ty.MutMut, Place: localPlace(2)},
		&AggregateRvalue{Kind: &TupleAgg{}, Operands: []Operand{copyOf(1), copyOf(2)}},
		&BinaryOpRvalue{Op: BinAdd, Left: copyOf(1), Right: copyOf(2)},
		&CheckedBinaryOpRvalue{Op: BinMul, Left: copyOf(1), Right: copyOf(2)},
		&CastRvalue{Kind: CastIntToInt, Operand: copyOf(1), Ty: i32Ty()},
		&CopyForDerefRvalue{Place: localPlace(1)},
		&DiscriminantRvalue{Place: localPlace(1)},
		&LenRvalue{Place: localPlace(1)},
		&RefRvalue{Region: ty.Region{Kind: ty.RegionErased}, Kind: BorrowShared, Place: localPlace(1)},
		&RepeatRvalue{Operand: copyOf(1), Count: &ty.Const{Kind: &ty.ZeroSizedConst{}, Ty: i32Ty()}},
		&ShallowInitBoxRvalue{Operand: copyOf(1), Ty: i32Ty()},
		&ThreadLocalRefRvalue{},
		&NullaryOpRvalue{Op: NullSizeOf, Ty: i32Ty()},
		&UnaryOpRvalue{Op: UnNeg, Operand: copyOf(1)},
		&UseRvalue{Operand: copyOf(1)},
	}

	stmts := make([]Statement, 0, len(rvalues))
	for _, rv := range rvalues {
		stmts = append(stmts, Statement{Kind: &AssignStmt{Place: localPlace(0), Rvalue: rv}})
	}
	body := newTestBody(stmts, &ReturnTerm{})

	r := newRecorder()
	assert.NotPanics(t, func() { r.VisitBody(body) })
	require.Len(t, r.rvalues, len(rvalues))
	assert.Equal(t, "*mir.AddressOfRvalue", r.rvalues[0])
	assert.Equal(t, "*mir.UseRvalue", r.rvalues[len(rvalues)-1])
}

func TestPlaceContextClassification(t *testing.T) {
	stmts := []Statement{
		{Kind: &AssignStmt{Place: localPlace(0), Rvalue: &UseRvalue{Operand: copyOf(1)}}},
		{Kind: &StorageLiveStmt{Local: 2}},
		{Kind: &FakeReadStmt{Cause: FakeReadForLet, Place: localPlace(1)}},
		{Kind: &StorageDeadStmt{Local: 2}},
	}
	body := newTestBody(stmts, &ReturnTerm{})

	r := newRecorder()
	r.VisitBody(body)

	byPlace := map[string]PlaceContext{}
	for _, use := range r.places {
		byPlace[use.place] = use.ptx
	}
	assert.True(t, byPlace["_0"].IsMutating(), "assignment destination must be mutating")
	assert.False(t, byPlace["_1"].IsMutating(), "read operand must not be mutating")
	assert.True(t, byPlace["_1"].IsUse())

	var storage []localUse
	for _, use := range r.locals {
		if use.local == 2 {
			storage = append(storage, use)
		}
	}
	require.Len(t, storage, 2)
	for _, use := range storage {
		assert.False(t, use.ptx.IsUse(), "storage markers are not uses")
	}

	// The implicit read of the return slot at the return terminator.
	last := r.locals[len(r.locals)-1]
	assert.Equal(t, ReturnLocal, last.local)
	assert.True(t, last.ptx.IsUse())
	assert.False(t, last.ptx.IsMutating())
}

func TestBorrowClassification(t *testing.T) {
	cases := []struct {
		name    string
		rvalue  Rvalue
		wantMut bool
	}{
		{"shared ref", &RefRvalue{Kind: BorrowShared, Place: localPlace(1)}, false},
		{"fake ref", &RefRvalue{Kind: BorrowFake, Place: localPlace(1)}, false},
		{"mut ref", &RefRvalue{Kind: BorrowMut, Place: localPlace(2)}, true},
		{"two-phase ref", &RefRvalue{Kind: BorrowMutTwoPhase, Place: localPlace(2)}, true},
		{"const addr", &AddressOfRvalue{Mutability: ty.MutNot, Place: localPlace(1)}, false},
		{"mut addr", &AddressOfRvalue{Mutability: ty.MutMut, Place: localPlace(2)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder()
			SuperRvalue(r, tc.rvalue, newLocation(0))
			require.Len(t, r.places, 1)
			assert.Equal(t, tc.wantMut, r.places[0].ptx.IsMutating())
		})
	}
}

func TestOverrideStopsDescentUnlessSuperCalled(t *testing.T) {
	body := newTestBody([]Statement{
		{Kind: &AssignStmt{Place: localPlace(0), Rvalue: &UseRvalue{Operand: copyOf(1)}}},
	}, &ReturnTerm{})

	stopped := &stopAtRvalue{}
	stopped.Walker = NewWalker(stopped)
	stopped.VisitBody(body)
	assert.Zero(t, stopped.operands, "skipping Super must prune the subtree")

	r := newRecorder()
	r.VisitBody(body)
	assert.Contains(t, r.operands, "*mir.CopyOperand")
}

type stopAtRvalue struct {
	Walker
	operands int
}

func (s *stopAtRvalue) VisitRvalue(rvalue Rvalue, loc Location) {
	_, _ = rvalue, loc
}

func (s *stopAtRvalue) VisitOperand(operand Operand, loc Location) {
	_, _ = operand, loc
	s.operands++
}

func TestLocationCarriesEnclosingSpan(t *testing.T) {
	stmt := Statement{
		Kind: &AssignStmt{Place: localPlace(0), Rvalue: &UseRvalue{Operand: copyOf(1)}},
		Span: 42,
	}
	body := newTestBody([]Statement{stmt}, &ReturnTerm{})

	r := newRecorder()
	r.VisitBody(body)

	require.NotEmpty(t, r.places)
	for _, use := range r.places[:2] {
		assert.Equal(t, Span(42), use.span)
	}
}

func TestTypeDescentIsOneLevel(t *testing.T) {
	body := &Body{
		Blocks: []BasicBlock{{Terminator: Terminator{Kind: &ReturnTerm{}}}},
		Locals: []LocalDecl{{Ty: refTo(i32Ty())}},
	}

	tys := &tyRecorder{}
	tys.Walker = NewWalker(tys)
	tys.VisitBody(body)

	require.Len(t, tys.seen, 2)
	assert.Equal(t, "&i32", tys.seen[0])
	assert.Equal(t, "i32", tys.seen[1])
	assert.Equal(t, 1, tys.regions)
}

type tyRecorder struct {
	Walker
	seen    []string
	regions int
}

func (r *tyRecorder) VisitTy(t *ty.Ty, loc Location) {
	r.seen = append(r.seen, t.String())
	r.Walker.VisitTy(t, loc)
}

func (r *tyRecorder) VisitRegion(region ty.Region, loc Location) {
	_, _ = region, loc
	r.regions++
}

func TestUnfinishedTypeDescentIsFatal(t *testing.T) {
	body := &Body{
		Blocks: []BasicBlock{{Terminator: Terminator{Kind: &ReturnTerm{}}}},
		Locals: []LocalDecl{{Ty: ty.NewTy(&ty.SliceTy{Elem: i32Ty()})}},
	}

	r := newRecorder()
	assert.Panics(t, func() { r.VisitBody(body) })
}

func TestOpaquePayloadsAreSkipped(t *testing.T) {
	body := newTestBody([]Statement{
		{Kind: &CoverageStmt{Coverage: ty.MakeOpaque(struct{ Counter int }{7})}},
	}, &ReturnTerm{})

	r := newRecorder()
	assert.NotPanics(t, func() { r.VisitBody(body) })
	assert.Empty(t, r.places)
	assert.Empty(t, r.operands)
}

func TestProjectionStepsSeePrecedingPrefix(t *testing.T) {
	place := Place{
		Local: 1,
		Projection: []ProjectionElem{
			&DerefElem{},
			&FieldElem{Field: 0, FieldTy: i32Ty()},
		},
	}

	pr := &prefixRecorder{}
	pr.Walker = NewWalker(pr)
	SuperPlace(pr, &place, PlaceNonMutating, newLocation(0))

	require.Len(t, pr.prefixes, 2)
	assert.Equal(t, 0, pr.prefixes[0], "first step sees the bare local")
	assert.Equal(t, 1, pr.prefixes[1], "second step sees one preceding step")
}

type prefixRecorder struct {
	Walker
	prefixes []int
}

func (p *prefixRecorder) VisitProjectionElem(ref PlaceRef, elem ProjectionElem, ptx PlaceContext, loc Location) {
	p.prefixes = append(p.prefixes, len(ref.Projection))
	SuperProjectionElem(p, elem, ptx, loc)
}

func TestCollectStats(t *testing.T) {
	stmts := []Statement{
		{Kind: &AssignStmt{Place: localPlace(0), Rvalue: &BinaryOpRvalue{
			Op: BinAdd, Left: copyOf(1), Right: copyOf(1),
		}}},
		{Kind: &StorageLiveStmt{Local: 2}},
		{Kind: &StorageDeadStmt{Local: 2}},
	}
	body := newTestBody(stmts, &ReturnTerm{})

	stats := CollectStats(body)

	assert.Equal(t, 3, stats.Statements)
	assert.Equal(t, 1, stats.Terminators)
	assert.Equal(t, 1, stats.MutatingUses)
	assert.Equal(t, 2, stats.NonMutatingUses)
	assert.Equal(t, 2, stats.LocalUses[2], "both storage markers count")
	assert.Equal(t, 2, stats.LocalUses[1], "both operand reads count")
	assert.Equal(t, 2, stats.LocalUses[0], "write plus return-slot read")
	assert.Equal(t, 3, stats.Types, "one declared type per local")
}