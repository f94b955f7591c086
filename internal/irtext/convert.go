package irtext

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"boogen/internal/mir"
)

// convert lowers a parsed file into function bodies. Locals and blocks
// must be declared densely in index order so the slot a name refers to is
// always the slice position it lands in.
func convert(file *File) ([]*mir.Body, error) {
	bodies := make([]*mir.Body, 0, len(file.Funcs))
	for _, fn := range file.Funcs {
		body, err := convertFunc(fn)
		if err != nil {
			return nil, fmt.Errorf("fn %s: %w", fn.Name, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func convertFunc(fn *FuncDef) (*mir.Body, error) {
	body := &mir.Body{Name: fn.Name.String()}

	for i, decl := range fn.Locals {
		if decl.Name != mir.Local(i).Name() {
			return nil, fmt.Errorf("local %s declared out of order, expected %s", decl.Name, mir.Local(i).Name())
		}
		ty, err := convertType(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("local %s: %w", decl.Name, err)
		}
		body.Locals = append(body.Locals, mir.LocalDecl{Type: ty})
	}

	for i, block := range fn.Blocks {
		if block.ID != mir.BlockID(i).Label() {
			return nil, fmt.Errorf("block %s declared out of order, expected %s", block.ID, mir.BlockID(i).Label())
		}
		b, err := convertBlock(block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", block.ID, err)
		}
		body.Blocks = append(body.Blocks, b)
	}
	return body, nil
}

func convertBlock(block *BlockDef) (mir.BasicBlock, error) {
	var b mir.BasicBlock
	for _, item := range block.Items {
		if b.Terminator != nil {
			return b, fmt.Errorf("unreachable item after %s", b.Terminator)
		}
		term, stmt, err := convertItem(item)
		if err != nil {
			return b, err
		}
		if term != nil {
			b.Terminator = term
			continue
		}
		b.Statements = append(b.Statements, stmt)
	}
	if b.Terminator == nil {
		return b, fmt.Errorf("missing terminator")
	}
	return b, nil
}

func convertItem(item *Item) (mir.Terminator, mir.Statement, error) {
	switch {
	case item.Return:
		return &mir.Return{}, nil, nil
	case item.Unreachable:
		return &mir.Unreachable{}, nil, nil
	case item.Nop:
		return nil, &mir.Nop{}, nil
	case item.Goto != nil:
		return &mir.Goto{Target: blockID(item.Goto.Target)}, nil, nil
	case item.Switch != nil:
		term, err := convertSwitch(item.Switch)
		return term, nil, err
	case item.Assert != nil:
		cond, err := convertOperand(item.Assert.Cond)
		if err != nil {
			return nil, nil, err
		}
		term := &mir.AssertTerm{
			Cond:     cond,
			Expected: item.Assert.Expected == "true",
			Target:   blockID(item.Assert.Target),
		}
		return term, nil, nil
	case item.Storage != nil:
		local := localID(item.Storage.Local)
		if item.Storage.Kind == "StorageLive" {
			return nil, &mir.StorageLive{Local: local}, nil
		}
		return nil, &mir.StorageDead{Local: local}, nil
	case item.Assign != nil:
		return convertAssign(item.Assign)
	}
	return nil, nil, fmt.Errorf("empty item")
}

func convertSwitch(sw *SwitchTerm) (mir.Terminator, error) {
	discr, err := convertOperand(sw.Discr)
	if err != nil {
		return nil, err
	}
	targets := mir.SwitchTargets{Otherwise: -1}
	for _, arm := range sw.Arms {
		if arm.Case.Otherwise {
			if targets.Otherwise >= 0 {
				return nil, fmt.Errorf("duplicate otherwise arm")
			}
			targets.Otherwise = blockID(arm.Target)
			continue
		}
		targets.Values = append(targets.Values, *arm.Case.Value)
		targets.Blocks = append(targets.Blocks, blockID(arm.Target))
	}
	if targets.Otherwise < 0 {
		return nil, fmt.Errorf("switchInt needs an otherwise arm")
	}
	return &mir.SwitchInt{Discr: discr, Targets: targets}, nil
}

func convertAssign(assign *AssignItem) (mir.Terminator, mir.Statement, error) {
	place := convertPlace(assign.Place)

	if call := assign.Rhs.Call; call != nil {
		var args []mir.Operand
		for _, a := range call.Args {
			op, err := convertOperand(a)
			if err != nil {
				return nil, nil, err
			}
			args = append(args, op)
		}
		term := &mir.CallTerm{
			Func:        &mir.ConstOperand{Const: &mir.ZeroSizedConst{Ty: &mir.FnDefType{Name: call.Callee.String()}}},
			Args:        args,
			Destination: place,
		}
		if call.Target != nil {
			target := blockID(*call.Target)
			term.Target = &target
		}
		return term, nil, nil
	}

	rv, err := convertRvalue(assign.Rhs.Rvalue)
	if err != nil {
		return nil, nil, err
	}
	return nil, &mir.Assign{Place: place, Rvalue: rv}, nil
}

func convertRvalue(rv *Rvalue) (mir.Rvalue, error) {
	switch {
	case rv.Ref != nil:
		return &mir.RefRv{Place: convertPlace(rv.Ref.Place)}, nil
	case rv.Use != nil:
		op, err := convertOperand(rv.Use.Operand)
		if err != nil {
			return nil, err
		}
		if rv.Use.Cast == nil {
			return &mir.Use{Operand: op}, nil
		}
		ty, err := convertType(rv.Use.Cast.Ty)
		if err != nil {
			return nil, err
		}
		kind, err := castKind(rv.Use.Cast.Kind)
		if err != nil {
			return nil, err
		}
		return &mir.CastRv{Kind: kind, Operand: op, Ty: ty}, nil
	case rv.OpCall != nil:
		return convertOpCall(rv.OpCall)
	}
	return nil, fmt.Errorf("empty rvalue")
}

var binOps = map[string]mir.BinOp{
	"Add": mir.BinAdd, "Sub": mir.BinSub, "Mul": mir.BinMul, "Div": mir.BinDiv,
	"Rem": mir.BinRem, "BitXor": mir.BinBitXor, "BitAnd": mir.BinBitAnd,
	"BitOr": mir.BinBitOr, "Shl": mir.BinShl, "Shr": mir.BinShr,
	"Eq": mir.BinEq, "Lt": mir.BinLt, "Le": mir.BinLe, "Ne": mir.BinNe,
	"Ge": mir.BinGe, "Gt": mir.BinGt,
}

var unOps = map[string]mir.UnOp{
	"Not": mir.UnNot,
	"Neg": mir.UnNeg,
}

func convertOpCall(call *OpCall) (mir.Rvalue, error) {
	if op, ok := unOps[call.Name]; ok {
		if len(call.Args) != 1 {
			return nil, fmt.Errorf("%s takes one operand, got %d", call.Name, len(call.Args))
		}
		operand, err := convertOperand(call.Args[0])
		if err != nil {
			return nil, err
		}
		return &mir.UnaryRv{Op: op, Operand: operand}, nil
	}

	name := strings.TrimPrefix(call.Name, "Checked")
	op, ok := binOps[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %s", call.Name)
	}
	if len(call.Args) != 2 {
		return nil, fmt.Errorf("%s takes two operands, got %d", call.Name, len(call.Args))
	}
	left, err := convertOperand(call.Args[0])
	if err != nil {
		return nil, err
	}
	right, err := convertOperand(call.Args[1])
	if err != nil {
		return nil, err
	}
	if name != call.Name {
		return &mir.CheckedBinaryRv{Op: op, Left: left, Right: right}, nil
	}
	return &mir.BinaryRv{Op: op, Left: left, Right: right}, nil
}

func convertOperand(op *Operand) (mir.Operand, error) {
	switch {
	case op.Copy != nil:
		return &mir.Copy{Place: convertPlace(op.Copy)}, nil
	case op.Move != nil:
		return &mir.Move{Place: convertPlace(op.Move)}, nil
	case op.Const != nil:
		return convertConst(op.Const)
	}
	return nil, fmt.Errorf("empty operand")
}

func convertConst(c *Const) (mir.Operand, error) {
	if c.Bool != nil {
		return &mir.ConstOperand{Const: &mir.BoolConst{Value: *c.Bool == "true"}}, nil
	}

	text := *c.Typed
	sep := strings.IndexByte(text, '_')
	value, suffix := text[:sep], text[sep+1:]
	ty, err := scalarType(suffix)
	if err != nil {
		return nil, fmt.Errorf("constant %s: %w", text, err)
	}
	switch ty.(type) {
	case *mir.IntType, *mir.UintType:
	default:
		return nil, fmt.Errorf("constant %s: %s is not an integer type", text, suffix)
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("constant %s: bad value", text)
	}
	return &mir.ConstOperand{Const: &mir.IntConst{Ty: ty, Value: n}}, nil
}

func convertPlace(p *Place) mir.Place {
	var place mir.Place
	if p.Base.Deref != nil {
		place.Local = localID(*p.Base.Deref)
		place.Projection = append(place.Projection, &mir.DerefProj{})
	} else {
		place.Local = localID(*p.Base.Local)
	}
	for _, proj := range p.Projs {
		switch {
		case proj.Field != nil:
			place.Projection = append(place.Projection, &mir.FieldProj{Index: *proj.Field})
		case proj.Index != nil:
			place.Projection = append(place.Projection, &mir.IndexProj{Local: localID(*proj.Index)})
		}
	}
	return place
}

func convertType(t *TypeRef) (mir.Type, error) {
	switch {
	case t.Ref != nil:
		to, err := convertType(t.Ref.To)
		if err != nil {
			return nil, err
		}
		return &mir.RefType{Referent: to, Mutable: t.Ref.Mut}, nil
	case t.Tuple != nil:
		elems := make([]mir.Type, 0, len(t.Tuple.Elems))
		for _, e := range t.Tuple.Elems {
			elem, err := convertType(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return &mir.TupleType{Elems: elems}, nil
	case t.Array != nil:
		elem, err := convertType(t.Array.Elem)
		if err != nil {
			return nil, err
		}
		return &mir.ArrayType{Element: elem, Len: t.Array.Len}, nil
	}
	return scalarType(t.Name)
}

var intWidths = map[string]int{"8": 8, "16": 16, "32": 32, "64": 64, "128": 128}

func scalarType(name string) (mir.Type, error) {
	switch name {
	case "bool":
		return &mir.BoolType{}, nil
	case "isize":
		return &mir.IntType{}, nil
	case "usize":
		return &mir.UintType{}, nil
	case "":
		return nil, fmt.Errorf("missing type")
	}
	width, ok := intWidths[name[1:]]
	if ok {
		switch name[0] {
		case 'i':
			return &mir.IntType{Width: width}, nil
		case 'u':
			return &mir.UintType{Width: width}, nil
		}
	}
	return nil, fmt.Errorf("unknown type %s", name)
}

func castKind(name string) (mir.CastKind, error) {
	switch name {
	case "", "IntToInt":
		return mir.IntToInt, nil
	case "FloatToInt":
		return mir.FloatToInt, nil
	case "PtrToPtr":
		return mir.PtrToPtr, nil
	}
	return 0, fmt.Errorf("unknown cast kind %s", name)
}

// blockID extracts the index from a block label token. The lexer guarantees
// the digits.
func blockID(label string) mir.BlockID {
	n, _ := strconv.Atoi(strings.TrimPrefix(label, "bb"))
	return mir.BlockID(n)
}

func localID(name string) mir.Local {
	n, _ := strconv.Atoi(strings.TrimPrefix(name, "_"))
	return mir.Local(n)
}
