// The MIR traversal engine.
//
// For every IR node kind there is a VisitX method on the Visitor interface
// and a SuperX package function:
//   - VisitX, by default (via Walker), calls SuperX;
//   - SuperX destructures X and calls v.VisitY for every sub-structure Y.
//
// To build an analysis, embed Walker, point it back at the outer visitor,
// and override the VisitX methods of interest; call SuperX from inside an
// override to continue the descent. SuperX never calls v.VisitX itself, so
// doing that cannot recurse back into the override.
//
// The Super functions are written in a deliberate style to minimize the
// chance of things being overlooked: every switch over a node-kind union
// lists every variant and names every field. A variant falling through to
// the default arm is a bug and panics rather than being silently skipped.
// The only fields without a visit call are those carrying no sub-structure,
// and opaque payloads, which go through visitOpaque.

package mir

import (
	"fmt"

	"smir/internal/ty"
)

// Visitor is the per-node-kind operation set of the traversal engine. Every
// method is an override point; Walker supplies the defaults.
type Visitor interface {
	VisitBody(body *Body)
	VisitBasicBlock(bb *BasicBlock)
	VisitRetDecl(local Local, decl *LocalDecl)
	VisitArgDecl(local Local, decl *LocalDecl)
	VisitLocalDecl(local Local, decl *LocalDecl)
	VisitStatement(stmt *Statement, loc Location)
	VisitTerminator(term *Terminator, loc Location)
	VisitSpan(span Span)
	VisitPlace(place *Place, ptx PlaceContext, loc Location)
	VisitProjectionElem(ref PlaceRef, elem ProjectionElem, ptx PlaceContext, loc Location)
	VisitLocal(local Local, ptx PlaceContext, loc Location)
	VisitRvalue(rvalue Rvalue, loc Location)
	VisitOperand(operand Operand, loc Location)
	VisitUserTypeProjection(projection *UserTypeProjection)
	VisitTy(t *ty.Ty, loc Location)
	VisitTyKind(kind ty.TyKind, loc Location)
	VisitBinder(binder *ty.Binder[ty.ExistentialPredicate], loc Location)
	VisitConstant(constant *Constant, loc Location)
	VisitConst(constant *ty.Const, loc Location)
	VisitRegion(region ty.Region, loc Location)
	VisitArgs(args ty.GenericArgs, loc Location)
	VisitAssertMsg(msg AssertMessage, loc Location)
	VisitVarDebugInfo(info *VarDebugInfo)

	// Rigid type kinds.
	VisitRigidTy(rigid ty.RigidTy, loc Location)
	VisitBool(t *ty.BoolTy, loc Location)
	VisitChar(t *ty.CharTy, loc Location)
	VisitInt(t *ty.IntTy, loc Location)
	VisitUint(t *ty.UintTy, loc Location)
	VisitFloat(t *ty.FloatTy, loc Location)
	VisitAdt(def ty.AdtDef, args ty.GenericArgs, loc Location)
	VisitForeign(def ty.ForeignDef, loc Location)
	VisitStr(t *ty.StrTy, loc Location)
	VisitArray(elem *ty.Ty, length *ty.Const, loc Location)
	VisitPat(base *ty.Ty, pattern ty.Pattern, loc Location)
	VisitSlice(elem *ty.Ty, loc Location)
	VisitRawPtr(pointee *ty.Ty, mut ty.Mutability, loc Location)
	VisitRef(region ty.Region, pointee *ty.Ty, mut ty.Mutability, loc Location)
	VisitFnDef(def ty.FnDef, args ty.GenericArgs, loc Location)
	VisitFnPtr(sig *ty.PolyFnSig, loc Location)
	VisitClosure(def ty.ClosureDef, args ty.GenericArgs, loc Location)
	VisitCoroutine(def ty.CoroutineDef, args ty.GenericArgs, mov ty.Movability, loc Location)
	VisitDynamic(preds []ty.Binder[ty.ExistentialPredicate], region ty.Region, kind ty.DynKind, loc Location)
	VisitNever(loc Location)
	VisitTuple(elems []*ty.Ty, loc Location)
	VisitCoroutineWitness(def ty.CoroutineWitnessDef, args ty.GenericArgs, loc Location)

	// Alias type kinds.
	VisitAliasTy(kind ty.AliasKind, alias *ty.AliasTy, loc Location)
	VisitAliasProjection(alias *ty.AliasTy, loc Location)
	VisitAliasInherent(alias *ty.AliasTy, loc Location)
	VisitAliasOpaque(alias *ty.AliasTy, loc Location)
	VisitAliasWeak(alias *ty.AliasTy, loc Location)

	// Parameter and bound type kinds.
	VisitParamTy(param *ty.ParamTy, loc Location)
	VisitBoundTy(debruijn int, bound *ty.BoundTy, loc Location)
	VisitBoundTyKind(kind ty.BoundTyKind, loc Location)
	VisitBoundTyAnon(loc Location)
	VisitBoundTyParam(def ty.ParamDef, name ty.Symbol, loc Location)
}

// visitOpaque is a named no-op over payloads the node model keeps opaque.
//
// When an opaque payload gains a real structured type, delete this function
// (or the call for that payload): every call site then fails to compile and
// must be upgraded to a real VisitX, instead of silently continuing to skip
// the new data.
func visitOpaque(ty.Opaque) {}

// Walker supplies the default behavior for every Visitor method: structural
// descent via the matching Super function. V must point at the outermost
// visitor so descent re-enters overridden methods.
type Walker struct {
	V Visitor
}

// NewWalker returns a Walker dispatching through outer.
func NewWalker(outer Visitor) Walker {
	return Walker{V: outer}
}

func (w Walker) VisitBody(body *Body)                  { SuperBody(w.V, body) }
func (w Walker) VisitBasicBlock(bb *BasicBlock)        { SuperBasicBlock(w.V, bb) }
func (w Walker) VisitRetDecl(l Local, d *LocalDecl)    { SuperRetDecl(w.V, l, d) }
func (w Walker) VisitArgDecl(l Local, d *LocalDecl)    { SuperArgDecl(w.V, l, d) }
func (w Walker) VisitLocalDecl(l Local, d *LocalDecl)  { SuperLocalDecl(w.V, l, d) }
func (w Walker) VisitStatement(s *Statement, loc Location) {
	SuperStatement(w.V, s, loc)
}
func (w Walker) VisitTerminator(t *Terminator, loc Location) {
	SuperTerminator(w.V, t, loc)
}
func (w Walker) VisitSpan(span Span) { SuperSpan(w.V, span) }
func (w Walker) VisitPlace(p *Place, ptx PlaceContext, loc Location) {
	SuperPlace(w.V, p, ptx, loc)
}
func (w Walker) VisitProjectionElem(ref PlaceRef, elem ProjectionElem, ptx PlaceContext, loc Location) {
	SuperProjectionElem(w.V, elem, ptx, loc)
}
func (w Walker) VisitLocal(local Local, ptx PlaceContext, loc Location) {
}
func (w Walker) VisitRvalue(r Rvalue, loc Location)  { SuperRvalue(w.V, r, loc) }
func (w Walker) VisitOperand(o Operand, loc Location) { SuperOperand(w.V, o, loc) }
func (w Walker) VisitUserTypeProjection(p *UserTypeProjection) {
	SuperUserTypeProjection(w.V, p)
}
func (w Walker) VisitTy(t *ty.Ty, loc Location) {
	SuperTy(w.V, t)
	w.V.VisitTyKind(t.Kind, loc)
}
func (w Walker) VisitTyKind(kind ty.TyKind, loc Location) {
	SuperTyKind(w.V, kind, loc)
}
func (w Walker) VisitBinder(b *ty.Binder[ty.ExistentialPredicate], loc Location) {
	SuperBinder(w.V, b, loc)
}
func (w Walker) VisitConstant(c *Constant, loc Location) {
	SuperConstant(w.V, c, loc)
}
func (w Walker) VisitConst(c *ty.Const, loc Location) { SuperConst(w.V, c, loc) }
func (w Walker) VisitRegion(r ty.Region, loc Location) {
	SuperRegion(w.V, r)
}
func (w Walker) VisitArgs(args ty.GenericArgs, loc Location) {
	SuperArgs(w.V, args)
}
func (w Walker) VisitAssertMsg(msg AssertMessage, loc Location) {
	SuperAssertMsg(w.V, msg, loc)
}
func (w Walker) VisitVarDebugInfo(info *VarDebugInfo) {
	SuperVarDebugInfo(w.V, info)
}

func (w Walker) VisitRigidTy(rigid ty.RigidTy, loc Location) {
	SuperRigidTy(w.V, rigid, loc)
}
func (w Walker) VisitBool(t *ty.BoolTy, loc Location)   {}
func (w Walker) VisitChar(t *ty.CharTy, loc Location)   {}
func (w Walker) VisitInt(t *ty.IntTy, loc Location)     {}
func (w Walker) VisitUint(t *ty.UintTy, loc Location)   {}
func (w Walker) VisitFloat(t *ty.FloatTy, loc Location) {}
func (w Walker) VisitAdt(def ty.AdtDef, args ty.GenericArgs, loc Location) {
	SuperAdt(w.V, def, args, loc)
}
func (w Walker) VisitForeign(def ty.ForeignDef, loc Location) {}
func (w Walker) VisitStr(t *ty.StrTy, loc Location)           {}
func (w Walker) VisitArray(elem *ty.Ty, length *ty.Const, loc Location) {
	SuperArray(w.V, elem, length, loc)
}
func (w Walker) VisitPat(base *ty.Ty, pattern ty.Pattern, loc Location) {
	SuperPat(w.V, base, pattern, loc)
}
func (w Walker) VisitSlice(elem *ty.Ty, loc Location) {
	SuperSlice(w.V, elem, loc)
}
func (w Walker) VisitRawPtr(pointee *ty.Ty, mut ty.Mutability, loc Location) {
	SuperRawPtr(w.V, pointee, mut, loc)
}
func (w Walker) VisitRef(region ty.Region, pointee *ty.Ty, mut ty.Mutability, loc Location) {
	SuperRef(w.V, region, pointee, mut, loc)
}
func (w Walker) VisitFnDef(def ty.FnDef, args ty.GenericArgs, loc Location) {
	SuperFnDef(w.V, def, args, loc)
}
func (w Walker) VisitFnPtr(sig *ty.PolyFnSig, loc Location) {
	SuperFnPtr(w.V, sig, loc)
}
func (w Walker) VisitClosure(def ty.ClosureDef, args ty.GenericArgs, loc Location) {
	SuperClosure(w.V, def, args, loc)
}
func (w Walker) VisitCoroutine(def ty.CoroutineDef, args ty.GenericArgs, mov ty.Movability, loc Location) {
	SuperCoroutine(w.V, def, args, mov, loc)
}
func (w Walker) VisitDynamic(preds []ty.Binder[ty.ExistentialPredicate], region ty.Region, kind ty.DynKind, loc Location) {
	SuperDynamic(w.V, preds, region, kind, loc)
}
func (w Walker) VisitNever(loc Location) {}
func (w Walker) VisitTuple(elems []*ty.Ty, loc Location) {
	SuperTuple(w.V, elems, loc)
}
func (w Walker) VisitCoroutineWitness(def ty.CoroutineWitnessDef, args ty.GenericArgs, loc Location) {
	SuperCoroutineWitness(w.V, def, args, loc)
}

func (w Walker) VisitAliasTy(kind ty.AliasKind, alias *ty.AliasTy, loc Location) {
	SuperAliasTy(w.V, kind, alias, loc)
}
func (w Walker) VisitAliasProjection(alias *ty.AliasTy, loc Location) {
	SuperAliasProjection(w.V, alias, loc)
}
func (w Walker) VisitAliasInherent(alias *ty.AliasTy, loc Location) {
	SuperAliasInherent(w.V, alias, loc)
}
func (w Walker) VisitAliasOpaque(alias *ty.AliasTy, loc Location) {
	SuperAliasOpaque(w.V, alias, loc)
}
func (w Walker) VisitAliasWeak(alias *ty.AliasTy, loc Location) {
	SuperAliasWeak(w.V, alias, loc)
}

func (w Walker) VisitParamTy(param *ty.ParamTy, loc Location) {
	SuperParamTy(w.V, param, loc)
}
func (w Walker) VisitBoundTy(debruijn int, bound *ty.BoundTy, loc Location) {
	SuperBoundTy(w.V, debruijn, bound, loc)
}
func (w Walker) VisitBoundTyKind(kind ty.BoundTyKind, loc Location) {
	SuperBoundTyKind(w.V, kind, loc)
}
func (w Walker) VisitBoundTyAnon(loc Location) {}
func (w Walker) VisitBoundTyParam(def ty.ParamDef, name ty.Symbol, loc Location) {
	SuperBoundTyParam(w.V, def, name, loc)
}

// SuperBody visits the blocks, the three local regions in slot order, the
// debug bindings, and the body span. Locals as a raw slice and SpreadArg
// carry no sub-structure beyond the declarations visited here.
func SuperBody(v Visitor, body *Body) {
	for i := range body.Blocks {
		v.VisitBasicBlock(&body.Blocks[i])
	}

	v.VisitRetDecl(ReturnLocal, body.RetLocal())

	args := body.ArgLocals()
	for i := range args {
		v.VisitArgDecl(Local(i+1), &args[i])
	}

	localStart := body.ArgCount + 1
	inner := body.InnerLocals()
	for i := range inner {
		v.VisitLocalDecl(Local(localStart+i), &inner[i])
	}

	for i := range body.VarDebugInfo {
		v.VisitVarDebugInfo(&body.VarDebugInfo[i])
	}

	v.VisitSpan(body.Span)
}

// SuperBasicBlock visits every statement and the terminator, threading each
// one's span as the location for everything nested under it.
func SuperBasicBlock(v Visitor, bb *BasicBlock) {
	for i := range bb.Statements {
		stmt := &bb.Statements[i]
		v.VisitStatement(stmt, newLocation(stmt.Span))
	}
	v.VisitTerminator(&bb.Terminator, newLocation(bb.Terminator.Span))
}

// SuperLocalDecl visits the declared type. Mutability carries no
// sub-structure.
func SuperLocalDecl(v Visitor, local Local, decl *LocalDecl) {
	v.VisitTy(decl.Ty, newLocation(decl.Span))
}

func SuperRetDecl(v Visitor, local Local, decl *LocalDecl) {
	SuperLocalDecl(v, local, decl)
}

func SuperArgDecl(v Visitor, local Local, decl *LocalDecl) {
	SuperLocalDecl(v, local, decl)
}

// SuperStatement classifies the statement's places per the mutation rules
// and descends into every sub-value.
func SuperStatement(v Visitor, stmt *Statement, loc Location) {
	v.VisitSpan(stmt.Span)
	switch k := stmt.Kind.(type) {
	case *AssignStmt:
		v.VisitPlace(&k.Place, PlaceMutating, loc)
		v.VisitRvalue(k.Rvalue, loc)
	case *FakeReadStmt:
		// The cause carries no sub-structure.
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *SetDiscriminantStmt:
		// The variant index carries no sub-structure.
		v.VisitPlace(&k.Place, PlaceMutating, loc)
	case *DeinitStmt:
		v.VisitPlace(&k.Place, PlaceMutating, loc)
	case *StorageLiveStmt:
		v.VisitLocal(k.Local, PlaceNonUse, loc)
	case *StorageDeadStmt:
		v.VisitLocal(k.Local, PlaceNonUse, loc)
	case *RetagStmt:
		// The retag kind carries no sub-structure.
		v.VisitPlace(&k.Place, PlaceMutating, loc)
	case *PlaceMentionStmt:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *AscribeUserTypeStmt:
		// Variance carries no sub-structure.
		v.VisitPlace(&k.Place, PlaceNonUse, loc)
		v.VisitUserTypeProjection(&k.Projections)
	case *CoverageStmt:
		visitOpaque(k.Coverage)
	case *IntrinsicStmt:
		switch in := k.Intrinsic.(type) {
		case AssumeIntrinsic:
			v.VisitOperand(in.Operand, loc)
		case CopyNonOverlappingIntrinsic:
			v.VisitOperand(in.Src, loc)
			v.VisitOperand(in.Dst, loc)
			v.VisitOperand(in.Count, loc)
		default:
			panic(fmt.Sprintf("mir: intrinsic %T not handled by structural descent", k.Intrinsic))
		}
	case *ConstEvalCounterStmt:
	case *NopStmt:
	default:
		panic(fmt.Sprintf("mir: statement kind %T not handled by structural descent", stmt.Kind))
	}
}

// SuperTerminator descends into each terminator kind. Block targets and
// unwind actions are CFG edges, not values, and are not visited.
func SuperTerminator(v Visitor, term *Terminator, loc Location) {
	v.VisitSpan(term.Span)
	switch k := term.Kind.(type) {
	case *GotoTerm, *ResumeTerm, *AbortTerm, *UnreachableTerm:
	case *AssertTerm:
		// Expected, target and unwind carry no sub-structure.
		v.VisitOperand(k.Cond, loc)
		v.VisitAssertMsg(k.Msg, loc)
	case *DropTerm:
		v.VisitPlace(&k.Place, PlaceMutating, loc)
	case *CallTerm:
		v.VisitOperand(k.Func, loc)
		for _, arg := range k.Args {
			v.VisitOperand(arg, loc)
		}
		v.VisitPlace(&k.Destination, PlaceMutating, loc)
	case *InlineAsmTerm:
		for i := range k.Operands {
			op := &k.Operands[i]
			if op.InValue != nil {
				v.VisitOperand(*op.InValue, loc)
			}
			if op.OutPlace != nil {
				v.VisitPlace(op.OutPlace, PlaceMutating, loc)
			}
			visitOpaque(op.RawRpr)
		}
	case *ReturnTerm:
		v.VisitLocal(ReturnLocal, PlaceNonMutating, loc)
	case *SwitchIntTerm:
		// Targets are CFG edges.
		v.VisitOperand(k.Discr, loc)
	default:
		panic(fmt.Sprintf("mir: terminator kind %T not handled by structural descent", term.Kind))
	}
}

// SuperSpan is a leaf: spans are interned host data.
func SuperSpan(v Visitor, span Span) {
}

// SuperPlace visits the base local, then each projection step together with
// the partial place preceding it.
func SuperPlace(v Visitor, place *Place, ptx PlaceContext, loc Location) {
	v.VisitLocal(place.Local, ptx, loc)

	for idx, elem := range place.Projection {
		ref := PlaceRef{Local: place.Local, Projection: place.Projection[:idx]}
		v.VisitProjectionElem(ref, elem, ptx, loc)
	}
}

// SuperProjectionElem descends into the step's sub-structure.
func SuperProjectionElem(v Visitor, elem ProjectionElem, ptx PlaceContext, loc Location) {
	switch k := elem.(type) {
	case *DerefElem:
	case *FieldElem:
		// The field index carries no sub-structure.
		v.VisitTy(k.FieldTy, loc)
	case *IndexElem:
		v.VisitLocal(k.Local, ptx, loc)
	case *ConstantIndexElem:
		// Offset, min-length and from-end carry no sub-structure.
	case *SubsliceElem:
		// From, to and from-end carry no sub-structure.
	case *DowncastElem:
		// The variant index carries no sub-structure.
	case *OpaqueCastElem:
		v.VisitTy(k.CastTy, loc)
	case *SubtypeElem:
		v.VisitTy(k.SubtypeTy, loc)
	default:
		panic(fmt.Sprintf("mir: projection elem %T not handled by structural descent", elem))
	}
}

// SuperRvalue descends into each rvalue kind, classifying borrowed places by
// the declared pointer mutability.
func SuperRvalue(v Visitor, rvalue Rvalue, loc Location) {
	switch k := rvalue.(type) {
	case *AddressOfRvalue:
		v.VisitPlace(&k.Place, borrowContext(k.Mutability.IsMut()), loc)
	case *AggregateRvalue:
		// The aggregate kind carries layout choice, not visited values.
		for _, op := range k.Operands {
			v.VisitOperand(op, loc)
		}
	case *BinaryOpRvalue:
		v.VisitOperand(k.Left, loc)
		v.VisitOperand(k.Right, loc)
	case *CheckedBinaryOpRvalue:
		v.VisitOperand(k.Left, loc)
		v.VisitOperand(k.Right, loc)
	case *CastRvalue:
		// The cast kind carries no sub-structure.
		v.VisitOperand(k.Operand, loc)
		v.VisitTy(k.Ty, loc)
	case *CopyForDerefRvalue:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *DiscriminantRvalue:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *LenRvalue:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *RefRvalue:
		v.VisitRegion(k.Region, loc)
		v.VisitPlace(&k.Place, borrowContext(k.Kind.IsMutating()), loc)
	case *RepeatRvalue:
		v.VisitOperand(k.Operand, loc)
		v.VisitConst(k.Count, loc)
	case *ShallowInitBoxRvalue:
		v.VisitTy(k.Ty, loc)
		v.VisitOperand(k.Operand, loc)
	case *ThreadLocalRefRvalue:
		// The static def is a host reference with no sub-structure.
	case *NullaryOpRvalue:
		// The op carries no sub-structure.
		v.VisitTy(k.Ty, loc)
	case *UnaryOpRvalue:
		v.VisitOperand(k.Operand, loc)
	case *UseRvalue:
		v.VisitOperand(k.Operand, loc)
	default:
		panic(fmt.Sprintf("mir: rvalue kind %T not handled by structural descent", rvalue))
	}
}

// SuperOperand visits the read place or the inline constant.
func SuperOperand(v Visitor, operand Operand, loc Location) {
	switch k := operand.(type) {
	case *CopyOperand:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *MoveOperand:
		v.VisitPlace(&k.Place, PlaceNonMutating, loc)
	case *ConstantOperand:
		v.VisitConstant(&k.Constant, loc)
	default:
		panic(fmt.Sprintf("mir: operand kind %T not handled by structural descent", operand))
	}
}

// SuperUserTypeProjection is a leaf: the projection payload is opaque.
func SuperUserTypeProjection(v Visitor, projection *UserTypeProjection) {
	visitOpaque(projection.Projection)
}

// SuperTy is a leaf; Walker.VisitTy follows it with a VisitTyKind so
// overrides of VisitTy alone observe the handle, not the kind.
func SuperTy(v Visitor, t *ty.Ty) {
}

// SuperTyKind dispatches to the kind family.
func SuperTyKind(v Visitor, kind ty.TyKind, loc Location) {
	switch k := kind.(type) {
	case ty.RigidTy:
		v.VisitRigidTy(k, loc)
	case *ty.AliasType:
		v.VisitAliasTy(k.Kind, &k.Ty, loc)
	case *ty.ParamTy:
		v.VisitParamTy(k, loc)
	case *ty.BoundTyType:
		v.VisitBoundTy(k.DeBruijn, &k.Ty, loc)
	default:
		panic(fmt.Sprintf("mir: type kind %T not handled by structural descent", kind))
	}
}

// SuperBinder walks the bound-variable kinds; none carries sub-structure the
// node model describes. The bound value itself is type-specific and visited
// at its use site (see SuperDynamic).
func SuperBinder(v Visitor, binder *ty.Binder[ty.ExistentialPredicate], loc Location) {
	for _, bv := range binder.BoundVars {
		switch bv.(type) {
		case ty.BoundVarTy:
		case ty.BoundVarRegion:
		case ty.BoundVarConst:
		default:
			panic(fmt.Sprintf("mir: bound variable kind %T not handled by structural descent", bv))
		}
	}
}

// SuperConstant visits the span and the literal. The user-ascribed type is
// a side-table index with no sub-structure.
func SuperConstant(v Visitor, constant *Constant, loc Location) {
	v.VisitSpan(constant.Span)
	v.VisitConst(constant.Literal, loc)
}

// SuperConst visits the constant's type. The kind and id stay with the
// host's constant representation.
func SuperConst(v Visitor, constant *ty.Const, loc Location) {
	v.VisitTy(constant.Ty, loc)
}

// SuperRegion is a leaf.
func SuperRegion(v Visitor, region ty.Region) {
}

// SuperArgs is a leaf by default: generic arguments of rigid types are
// interned and deduplicated by the host, so re-walking them structurally
// would revisit shared subgraphs; override VisitArgs to descend on purpose.
func SuperArgs(v Visitor, args ty.GenericArgs) {
}

// SuperVarDebugInfo visits the binding's span, composite type and value.
// The name and argument index carry no sub-structure.
func SuperVarDebugInfo(v Visitor, info *VarDebugInfo) {
	v.VisitSpan(info.SourceInfo.Span)
	loc := newLocation(info.SourceInfo.Span)
	if info.Composite != nil {
		v.VisitTy(info.Composite.Ty, loc)
	}
	switch k := info.Value.(type) {
	case PlaceDebug:
		v.VisitPlace(&k.Place, PlaceNonUse, loc)
	case ConstDebug:
		v.VisitConst(k.Constant.Literal, loc)
	default:
		panic(fmt.Sprintf("mir: debug contents %T not handled by structural descent", info.Value))
	}
}

// SuperAssertMsg descends into each assertion payload.
func SuperAssertMsg(v Visitor, msg AssertMessage, loc Location) {
	switch k := msg.(type) {
	case *BoundsCheckMsg:
		v.VisitOperand(k.Len, loc)
		v.VisitOperand(k.Index, loc)
	case *OverflowMsg:
		// The op carries no sub-structure.
		v.VisitOperand(k.Left, loc)
		v.VisitOperand(k.Right, loc)
	case *OverflowNegMsg:
		v.VisitOperand(k.Operand, loc)
	case *DivisionByZeroMsg:
		v.VisitOperand(k.Operand, loc)
	case *RemainderByZeroMsg:
		v.VisitOperand(k.Operand, loc)
	case *ResumedAfterReturnMsg, *ResumedAfterPanicMsg:
		// Only a coroutine kind; nothing to visit.
	case *MisalignedPointerDereferenceMsg:
		v.VisitOperand(k.Required, loc)
		v.VisitOperand(k.Found, loc)
	default:
		panic(fmt.Sprintf("mir: assert message %T not handled by structural descent", msg))
	}
}

// SuperRigidTy dispatches to the per-kind visit of every rigid type.
func SuperRigidTy(v Visitor, rigid ty.RigidTy, loc Location) {
	switch k := rigid.(type) {
	case *ty.BoolTy:
		v.VisitBool(k, loc)
	case *ty.CharTy:
		v.VisitChar(k, loc)
	case *ty.IntTy:
		v.VisitInt(k, loc)
	case *ty.UintTy:
		v.VisitUint(k, loc)
	case *ty.FloatTy:
		v.VisitFloat(k, loc)
	case *ty.AdtTy:
		v.VisitAdt(k.Def, k.Args, loc)
	case *ty.ForeignTy:
		v.VisitForeign(k.Def, loc)
	case *ty.StrTy:
		v.VisitStr(k, loc)
	case *ty.ArrayTy:
		v.VisitArray(k.Elem, k.Len, loc)
	case *ty.PatTy:
		v.VisitPat(k.Base, k.Pattern, loc)
	case *ty.SliceTy:
		v.VisitSlice(k.Elem, loc)
	case *ty.RawPtrTy:
		v.VisitRawPtr(k.Pointee, k.Mutability, loc)
	case *ty.RefTy:
		v.VisitRef(k.Region, k.Pointee, k.Mutability, loc)
	case *ty.FnDefTy:
		v.VisitFnDef(k.Def, k.Args, loc)
	case *ty.FnPtrTy:
		v.VisitFnPtr(&k.Sig, loc)
	case *ty.ClosureTy:
		v.VisitClosure(k.Def, k.Args, loc)
	case *ty.CoroutineTy:
		v.VisitCoroutine(k.Def, k.Args, k.Movability, loc)
	case *ty.DynamicTy:
		v.VisitDynamic(k.Predicates, k.Region, k.Kind, loc)
	case *ty.NeverTy:
		v.VisitNever(loc)
	case *ty.TupleTy:
		v.VisitTuple(k.Elems, loc)
	case *ty.CoroutineWitnessTy:
		v.VisitCoroutineWitness(k.Def, k.Args, loc)
	default:
		panic(fmt.Sprintf("mir: rigid type %T not handled by structural descent", rigid))
	}
}

// Structural descent for rigid type kinds. ADT, function and coroutine
// definitions can recursively mention the surrounding type graph; descent
// stops at their interned generic arguments (a leaf by default, see
// SuperArgs) instead of re-walking definitions.

func SuperAdt(v Visitor, def ty.AdtDef, args ty.GenericArgs, loc Location) {
	v.VisitArgs(args, loc)
}

func SuperArray(v Visitor, elem *ty.Ty, length *ty.Const, loc Location) {
	v.VisitTy(elem, loc)
	v.VisitConst(length, loc)
}

func SuperRawPtr(v Visitor, pointee *ty.Ty, mut ty.Mutability, loc Location) {
	v.VisitTy(pointee, loc)
}

func SuperRef(v Visitor, region ty.Region, pointee *ty.Ty, mut ty.Mutability, loc Location) {
	v.VisitRegion(region, loc)
	v.VisitTy(pointee, loc)
}

func SuperFnDef(v Visitor, def ty.FnDef, args ty.GenericArgs, loc Location) {
	v.VisitArgs(args, loc)
}

func SuperDynamic(v Visitor, preds []ty.Binder[ty.ExistentialPredicate], region ty.Region, kind ty.DynKind, loc Location) {
	for i := range preds {
		v.VisitBinder(&preds[i], loc)
	}
	v.VisitRegion(region, loc)
}

func SuperTuple(v Visitor, elems []*ty.Ty, loc Location) {
	for _, elem := range elems {
		v.VisitTy(elem, loc)
	}
}

// Structural descent for the remaining type kinds is not implemented yet.
// Analyses that need these kinds must override the corresponding VisitX;
// reaching a default descent is fatal so the gap cannot be papered over by
// silently skipping data.

func SuperPat(v Visitor, base *ty.Ty, pattern ty.Pattern, loc Location) {
	panic("mir: structural descent for pattern types not yet handled")
}

func SuperSlice(v Visitor, elem *ty.Ty, loc Location) {
	panic("mir: structural descent for slice types not yet handled")
}

func SuperFnPtr(v Visitor, sig *ty.PolyFnSig, loc Location) {
	panic("mir: structural descent for function pointer types not yet handled")
}

func SuperClosure(v Visitor, def ty.ClosureDef, args ty.GenericArgs, loc Location) {
	panic("mir: structural descent for closure types not yet handled")
}

func SuperCoroutine(v Visitor, def ty.CoroutineDef, args ty.GenericArgs, mov ty.Movability, loc Location) {
	panic("mir: structural descent for coroutine types not yet handled")
}

func SuperCoroutineWitness(v Visitor, def ty.CoroutineWitnessDef, args ty.GenericArgs, loc Location) {
	panic("mir: structural descent for coroutine witness types not yet handled")
}

// SuperAliasTy dispatches to the per-flavor alias visit.
func SuperAliasTy(v Visitor, kind ty.AliasKind, alias *ty.AliasTy, loc Location) {
	switch kind {
	case ty.AliasProjection:
		v.VisitAliasProjection(alias, loc)
	case ty.AliasInherent:
		v.VisitAliasInherent(alias, loc)
	case ty.AliasOpaque:
		v.VisitAliasOpaque(alias, loc)
	case ty.AliasWeak:
		v.VisitAliasWeak(alias, loc)
	default:
		panic(fmt.Sprintf("mir: alias kind %v not handled by structural descent", kind))
	}
}

func SuperAliasProjection(v Visitor, alias *ty.AliasTy, loc Location) {
	panic("mir: structural descent for projection aliases not yet handled")
}

func SuperAliasInherent(v Visitor, alias *ty.AliasTy, loc Location) {
	panic("mir: structural descent for inherent aliases not yet handled")
}

func SuperAliasOpaque(v Visitor, alias *ty.AliasTy, loc Location) {
	panic("mir: structural descent for opaque aliases not yet handled")
}

func SuperAliasWeak(v Visitor, alias *ty.AliasTy, loc Location) {
	panic("mir: structural descent for weak aliases not yet handled")
}

// SuperParamTy is a leaf: index and name carry no sub-structure.
func SuperParamTy(v Visitor, param *ty.ParamTy, loc Location) {
}

// SuperBoundTy visits the binder flavor; the de Bruijn index and variable
// number carry no sub-structure.
func SuperBoundTy(v Visitor, debruijn int, bound *ty.BoundTy, loc Location) {
	v.VisitBoundTyKind(bound.Kind, loc)
}

// SuperBoundTyKind dispatches to the binder flavor visit.
func SuperBoundTyKind(v Visitor, kind ty.BoundTyKind, loc Location) {
	switch k := kind.(type) {
	case ty.BoundTyAnon:
		v.VisitBoundTyAnon(loc)
	case ty.BoundTyParam:
		v.VisitBoundTyParam(k.Def, k.Name, loc)
	default:
		panic(fmt.Sprintf("mir: bound type kind %T not handled by structural descent", kind))
	}
}

// SuperBoundTyParam is a leaf.
func SuperBoundTyParam(v Visitor, def ty.ParamDef, name ty.Symbol, loc Location) {
}
