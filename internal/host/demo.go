package host

import (
	"smir/internal/alloc"
	"smir/internal/mir"
	"smir/internal/target"
	"smir/internal/ty"
)

// DemoFixture builds a self-contained context: one small function body and
// an allocation graph with a pointer cycle, enough to exercise printing,
// traversal and serialization without a frontend.
func DemoFixture() *Fixture {
	f := NewFixture(target.DefaultMachine())

	i32 := ty.NewTy(&ty.IntTy{Kind: ty.I32})

	// fn double(_1: i32) -> i32 { _2 = _1 + _1; _0 = move _2; return }
	f.SetBody("double", &mir.Body{
		Blocks: []mir.BasicBlock{{
			Statements: []mir.Statement{
				{Kind: &mir.StorageLiveStmt{Local: 2}, Span: 1},
				{Kind: &mir.AssignStmt{
					Place: mir.Place{Local: 2},
					Rvalue: &mir.BinaryOpRvalue{
						Op:    mir.BinAdd,
						Left:  &mir.CopyOperand{Place: mir.Place{Local: 1}},
						Right: &mir.CopyOperand{Place: mir.Place{Local: 1}},
					},
				}, Span: 2},
				{Kind: &mir.AssignStmt{
					Place:  mir.Place{Local: 0},
					Rvalue: &mir.UseRvalue{Operand: &mir.MoveOperand{Place: mir.Place{Local: 2}}},
				}, Span: 3},
				{Kind: &mir.StorageDeadStmt{Local: 2}, Span: 4},
			},
			Terminator: mir.Terminator{Kind: &mir.ReturnTerm{}, Span: 5},
		}},
		Locals: []mir.LocalDecl{
			{Ty: i32},
			{Ty: i32},
			{Ty: i32, Mutability: ty.MutMut},
		},
		ArgCount: 1,
		Span:     0,
	})

	// A static whose memory points at a function and back at itself:
	//   NODE: { next: &NODE, op: double }
	node := &ty.Allocation{
		Bytes: make([]byte, 16),
		Align: 8,
		Provenance: ty.ProvenanceMap{Ptrs: []ty.ProvenanceEntry{
			{Offset: 0, Alloc: 1},
			{Offset: 8, Alloc: 2},
		}},
	}
	f.SetAlloc(1, &alloc.MemoryAlloc{Allocation: node})
	f.SetAlloc(2, &alloc.FunctionAlloc{Instance: mir.Instance{
		Kind: mir.InstanceItem,
		Def:  ty.DefId{Id: 7, Name: "double"},
	}})
	f.SetAlloc(3, &alloc.StaticAlloc{
		Def: ty.StaticDef{DefId: ty.DefId{Id: 9, Name: "NODE"}},
	})
	f.AddRoot(1)
	f.AddRoot(3)

	return f
}
