package mir

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for function bodies
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new body printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of a body
func Print(name string, body *Body) string {
	p := NewPrinter()
	p.printBody(name, body)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("    ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

// printBody prints the signature, local declarations and every block
func (p *Printer) printBody(name string, body *Body) {
	args := make([]string, 0, body.ArgCount)
	for i, decl := range body.ArgLocals() {
		args = append(args, fmt.Sprintf("_%d: %s", i+1, decl.Ty))
	}
	p.writeLine("fn %s(%s) -> %s {", name, strings.Join(args, ", "), body.RetLocal().Ty)
	p.indent++

	for local := range body.Locals {
		decl := body.Locals[local]
		mut := "let"
		if decl.Mutability.IsMut() {
			mut = "let mut"
		}
		p.writeLine("%s _%d: %s;", mut, local, decl.Ty)
	}

	for _, info := range body.VarDebugInfo {
		p.writeLine("debug %s => %s;", info.Name, renderDebugContents(info.Value))
	}

	for idx := range body.Blocks {
		p.writeLine("")
		p.printBlock(BasicBlockIdx(idx), &body.Blocks[idx])
	}

	p.indent--
	p.writeLine("}")
}

func (p *Printer) printBlock(idx BasicBlockIdx, bb *BasicBlock) {
	p.writeLine("bb%d: {", idx)
	p.indent++
	for i := range bb.Statements {
		p.writeLine("%s;", RenderStatement(&bb.Statements[i]))
	}
	p.writeLine("%s;", RenderTerminator(&bb.Terminator))
	p.indent--
	p.writeLine("}")
}

// RenderStatement returns the single-line form of a statement.
func RenderStatement(stmt *Statement) string {
	switch k := stmt.Kind.(type) {
	case *AssignStmt:
		return fmt.Sprintf("%s = %s", k.Place, RenderRvalue(k.Rvalue))
	case *FakeReadStmt:
		return fmt.Sprintf("FakeRead(%d, %s)", k.Cause, k.Place)
	case *SetDiscriminantStmt:
		return fmt.Sprintf("discriminant(%s) = %d", k.Place, k.Variant)
	case *DeinitStmt:
		return fmt.Sprintf("Deinit(%s)", k.Place)
	case *StorageLiveStmt:
		return fmt.Sprintf("StorageLive(_%d)", k.Local)
	case *StorageDeadStmt:
		return fmt.Sprintf("StorageDead(_%d)", k.Local)
	case *RetagStmt:
		return fmt.Sprintf("Retag(%d, %s)", k.Kind, k.Place)
	case *PlaceMentionStmt:
		return fmt.Sprintf("PlaceMention(%s)", k.Place)
	case *AscribeUserTypeStmt:
		return fmt.Sprintf("AscribeUserType(%s, %d)", k.Place, k.Projections.Base)
	case *CoverageStmt:
		return fmt.Sprintf("Coverage(%s)", k.Coverage)
	case *IntrinsicStmt:
		return renderIntrinsic(k.Intrinsic)
	case *ConstEvalCounterStmt:
		return "ConstEvalCounter"
	case *NopStmt:
		return "Nop"
	default:
		return fmt.Sprintf("<statement %T>", stmt.Kind)
	}
}

func renderIntrinsic(in NonDivergingIntrinsic) string {
	switch k := in.(type) {
	case AssumeIntrinsic:
		return fmt.Sprintf("assume(%s)", RenderOperand(k.Operand))
	case CopyNonOverlappingIntrinsic:
		return fmt.Sprintf("copy_nonoverlapping(src: %s, dst: %s, count: %s)",
			RenderOperand(k.Src), RenderOperand(k.Dst), RenderOperand(k.Count))
	default:
		return fmt.Sprintf("<intrinsic %T>", in)
	}
}

// RenderTerminator returns the single-line form of a terminator.
func RenderTerminator(term *Terminator) string {
	switch k := term.Kind.(type) {
	case *GotoTerm:
		return fmt.Sprintf("goto -> bb%d", k.Target)
	case *SwitchIntTerm:
		arms := make([]string, 0, len(k.Targets.Branches)+1)
		for _, br := range k.Targets.Branches {
			arms = append(arms, fmt.Sprintf("%d: bb%d", br.Value, br.Target))
		}
		arms = append(arms, fmt.Sprintf("otherwise: bb%d", k.Targets.Otherwise))
		return fmt.Sprintf("switchInt(%s) -> [%s]", RenderOperand(k.Discr), strings.Join(arms, ", "))
	case *ResumeTerm:
		return "resume"
	case *AbortTerm:
		return "abort"
	case *ReturnTerm:
		return "return"
	case *UnreachableTerm:
		return "unreachable"
	case *DropTerm:
		return fmt.Sprintf("drop(%s) -> bb%d%s", k.Place, k.Target, renderUnwind(k.Unwind))
	case *CallTerm:
		args := make([]string, 0, len(k.Args))
		for _, arg := range k.Args {
			args = append(args, RenderOperand(arg))
		}
		tgt := "diverge"
		if k.Target != nil {
			tgt = fmt.Sprintf("bb%d", *k.Target)
		}
		return fmt.Sprintf("%s = %s(%s) -> %s%s",
			k.Destination, RenderOperand(k.Func), strings.Join(args, ", "), tgt, renderUnwind(k.Unwind))
	case *AssertTerm:
		cond := RenderOperand(k.Cond)
		if !k.Expected {
			cond = "!" + cond
		}
		return fmt.Sprintf("assert(%s, %s) -> bb%d%s", cond, renderAssertMsg(k.Msg), k.Target, renderUnwind(k.Unwind))
	case *InlineAsmTerm:
		tgt := "diverge"
		if k.Destination != nil {
			tgt = fmt.Sprintf("bb%d", *k.Destination)
		}
		return fmt.Sprintf("asm!(%q) -> %s%s", k.Template, tgt, renderUnwind(k.Unwind))
	default:
		return fmt.Sprintf("<terminator %T>", term.Kind)
	}
}

func renderUnwind(u UnwindAction) string {
	switch u.Kind {
	case UnwindContinue:
		return ""
	case UnwindUnreachable:
		return ", unwind unreachable"
	case UnwindTerminate:
		return ", unwind terminate"
	case UnwindCleanup:
		return fmt.Sprintf(", unwind: bb%d", u.Target)
	default:
		return ""
	}
}

func renderAssertMsg(msg AssertMessage) string {
	switch k := msg.(type) {
	case *BoundsCheckMsg:
		return fmt.Sprintf("\"index out of bounds: len %s, index %s\"", RenderOperand(k.Len), RenderOperand(k.Index))
	case *OverflowMsg:
		return fmt.Sprintf("\"attempt to %s with overflow: %s, %s\"", k.Op, RenderOperand(k.Left), RenderOperand(k.Right))
	case *OverflowNegMsg:
		return fmt.Sprintf("\"attempt to negate with overflow: %s\"", RenderOperand(k.Operand))
	case *DivisionByZeroMsg:
		return fmt.Sprintf("\"attempt to divide by zero: %s\"", RenderOperand(k.Operand))
	case *RemainderByZeroMsg:
		return fmt.Sprintf("\"attempt to compute remainder with a divisor of zero: %s\"", RenderOperand(k.Operand))
	case *ResumedAfterReturnMsg:
		return "\"coroutine resumed after completion\""
	case *ResumedAfterPanicMsg:
		return "\"coroutine resumed after panicking\""
	case *MisalignedPointerDereferenceMsg:
		return fmt.Sprintf("\"misaligned pointer dereference: required %s, found %s\"",
			RenderOperand(k.Required), RenderOperand(k.Found))
	default:
		return fmt.Sprintf("<assert %T>", msg)
	}
}

// RenderRvalue returns the single-line form of an rvalue.
func RenderRvalue(rvalue Rvalue) string {
	switch k := rvalue.(type) {
	case *AddressOfRvalue:
		if k.Mutability.IsMut() {
			return fmt.Sprintf("&raw mut %s", k.Place)
		}
		return fmt.Sprintf("&raw const %s", k.Place)
	case *AggregateRvalue:
		ops := make([]string, 0, len(k.Operands))
		for _, op := range k.Operands {
			ops = append(ops, RenderOperand(op))
		}
		return fmt.Sprintf("%s(%s)", renderAggregateKind(k.Kind), strings.Join(ops, ", "))
	case *BinaryOpRvalue:
		return fmt.Sprintf("%s(%s, %s)", k.Op, RenderOperand(k.Left), RenderOperand(k.Right))
	case *CheckedBinaryOpRvalue:
		return fmt.Sprintf("Checked%s(%s, %s)", k.Op, RenderOperand(k.Left), RenderOperand(k.Right))
	case *CastRvalue:
		return fmt.Sprintf("%s as %s (%s)", RenderOperand(k.Operand), k.Ty, k.Kind)
	case *CopyForDerefRvalue:
		return fmt.Sprintf("deref_copy %s", k.Place)
	case *DiscriminantRvalue:
		return fmt.Sprintf("discriminant(%s)", k.Place)
	case *LenRvalue:
		return fmt.Sprintf("Len(%s)", k.Place)
	case *RefRvalue:
		return fmt.Sprintf("%s%s", k.Kind, k.Place)
	case *RepeatRvalue:
		return fmt.Sprintf("[%s; %s]", RenderOperand(k.Operand), k.Count)
	case *ShallowInitBoxRvalue:
		return fmt.Sprintf("ShallowInitBox(%s, %s)", RenderOperand(k.Operand), k.Ty)
	case *ThreadLocalRefRvalue:
		return fmt.Sprintf("&/*tls*/ %s", k.Def)
	case *NullaryOpRvalue:
		return fmt.Sprintf("%s(%s)", k.Op, k.Ty)
	case *UnaryOpRvalue:
		return fmt.Sprintf("%s(%s)", k.Op, RenderOperand(k.Operand))
	case *UseRvalue:
		return RenderOperand(k.Operand)
	default:
		return fmt.Sprintf("<rvalue %T>", rvalue)
	}
}

func renderAggregateKind(kind AggregateKind) string {
	switch k := kind.(type) {
	case *ArrayAgg:
		return fmt.Sprintf("[%s]", k.ElemTy)
	case *TupleAgg:
		return "tuple"
	case *AdtAgg:
		return fmt.Sprintf("%s::variant#%d", k.Def.Name, k.Variant)
	case *ClosureAgg:
		return fmt.Sprintf("closure %s", k.Def.Name)
	case *CoroutineAgg:
		return fmt.Sprintf("coroutine %s", k.Def.Name)
	case *RawPtrAgg:
		if k.Mutability.IsMut() {
			return fmt.Sprintf("*mut %s from", k.ElemTy)
		}
		return fmt.Sprintf("*const %s from", k.ElemTy)
	default:
		return fmt.Sprintf("<aggregate %T>", kind)
	}
}

// RenderOperand returns the single-line form of an operand.
func RenderOperand(operand Operand) string {
	switch k := operand.(type) {
	case *CopyOperand:
		return fmt.Sprintf("copy %s", k.Place)
	case *MoveOperand:
		return fmt.Sprintf("move %s", k.Place)
	case *ConstantOperand:
		return fmt.Sprintf("const %s", k.Constant.Literal)
	default:
		return fmt.Sprintf("<operand %T>", operand)
	}
}

func renderDebugContents(contents VarDebugInfoContents) string {
	switch k := contents.(type) {
	case PlaceDebug:
		return k.Place.String()
	case ConstDebug:
		return fmt.Sprintf("const %s", k.Constant.Literal)
	default:
		return fmt.Sprintf("<debug %T>", contents)
	}
}
