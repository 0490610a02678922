package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smir/internal/ty"
)

func TestPrintBody(t *testing.T) {
	target := BasicBlockIdx(1)
	body := &Body{
		Blocks: []BasicBlock{
			{
				Statements: []Statement{
					{Kind: &StorageLiveStmt{Local: 2}},
					{Kind: &AssignStmt{
						Place:  localPlace(2),
						Rvalue: &BinaryOpRvalue{Op: BinAdd, Left: copyOf(1), Right: copyOf(1)},
					}},
				},
				Terminator: Terminator{Kind: &CallTerm{
					Func:        &ConstantOperand{Constant: zstConstant()},
					Args:        []Operand{&MoveOperand{Place: localPlace(2)}},
					Destination: localPlace(0),
					Target:      &target,
				}},
			},
			{
				Terminator: Terminator{Kind: &ReturnTerm{}},
			},
		},
		Locals: []LocalDecl{
			{Ty: i32Ty()},
			{Ty: i32Ty()},
			{Ty: i32Ty(), Mutability: ty.MutMut},
		},
		ArgCount: 1,
		VarDebugInfo: []VarDebugInfo{
			{Name: "x", Value: PlaceDebug{Place: localPlace(1)}},
		},
	}

	out := Print("double", body)

	assert.Contains(t, out, "fn double(_1: i32) -> i32 {")
	assert.Contains(t, out, "let _0: i32;")
	assert.Contains(t, out, "let mut _2: i32;")
	assert.Contains(t, out, "debug x => _1;")
	assert.Contains(t, out, "bb0: {")
	assert.Contains(t, out, "StorageLive(_2);")
	assert.Contains(t, out, "_2 = Add(copy _1, copy _1);")
	assert.Contains(t, out, "(move _2) -> bb1;")
	assert.Contains(t, out, "bb1: {")
	assert.Contains(t, out, "return;")
}

func TestRenderTerminatorEdges(t *testing.T) {
	sw := &Terminator{Kind: &SwitchIntTerm{
		Discr: copyOf(1),
		Targets: SwitchTargets{
			Branches:  []SwitchBranch{{Value: 0, Target: 2}, {Value: 1, Target: 3}},
			Otherwise: 4,
		},
	}}
	assert.Equal(t, "switchInt(copy _1) -> [0: bb2, 1: bb3, otherwise: bb4]", RenderTerminator(sw))

	drop := &Terminator{Kind: &DropTerm{
		Place:  localPlace(2),
		Target: 1,
		Unwind: UnwindAction{Kind: UnwindCleanup, Target: 5},
	}}
	assert.Equal(t, "drop(_2) -> bb1, unwind: bb5", RenderTerminator(drop))

	assert.Equal(t, "unreachable", RenderTerminator(&Terminator{Kind: &UnreachableTerm{}}))
}

func TestRenderRvalueForms(t *testing.T) {
	assert.Equal(t, "&_1", RenderRvalue(&RefRvalue{Kind: BorrowShared, Place: localPlace(1)}))
	assert.Equal(t, "&mut _2", RenderRvalue(&RefRvalue{Kind: BorrowMut, Place: localPlace(2)}))
	assert.Equal(t, "&raw const _1", RenderRvalue(&AddressOfRvalue{Mutability: ty.MutNot, Place: localPlace(1)}))
	assert.Equal(t, "Len(_1)", RenderRvalue(&LenRvalue{Place: localPlace(1)}))
	assert.Equal(t, "copy _1", RenderRvalue(&UseRvalue{Operand: copyOf(1)}))
}