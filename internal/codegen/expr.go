package codegen

import (
	"boogen/internal/boogie"
	"boogen/internal/errors"
	"boogen/internal/mir"
)

func (tr *funcTranslator) lowerOperand(op mir.Operand) (boogie.Expr, error) {
	switch op := op.(type) {
	case *mir.Copy:
		return tr.lowerPlace(op.Place)
	case *mir.Move:
		return tr.lowerPlace(op.Place)
	case *mir.ConstOperand:
		return tr.lowerConst(op.Const)
	}
	return nil, errors.Unsupportedf("operand", "%s", op)
}

// lowerPlace resolves a place to the expression naming it. A place whose
// exact key was recorded as an alias resolves to the recorded expression;
// everything else folds its projections left to right over the base local.
//
// Field dispatch looks at the base local's type on every step, so fields of
// intermediate values projected out of the base are not resolved yet.
func (tr *funcTranslator) lowerPlace(place mir.Place) (boogie.Expr, error) {
	if expr, ok := tr.aliases[place.Key()]; ok {
		return expr, nil
	}

	var expr boogie.Expr = &boogie.Symbol{Name: place.Local.Name()}
	baseType := tr.body.LocalType(place.Local)

	for _, elem := range place.Projection {
		switch elem := elem.(type) {
		case *mir.IndexProj:
			expr = &boogie.IndexExpr{Base: expr, Index: &boogie.Symbol{Name: elem.Local.Name()}}
		case *mir.FieldProj:
			switch base := baseType.(type) {
			case *mir.AdtType:
				if elem.Index >= len(base.Def.Fields) {
					return nil, errors.Invariantf("field %d out of range for %s", elem.Index, base.Def.Name)
				}
				expr = &boogie.FieldExpr{Base: expr, Field: base.Def.Fields[elem.Index].Name}
			case *mir.TupleType:
				// Tuple fields are not materialized; the base expression
				// stands in for the whole tuple.
			default:
				return nil, errors.Unsupportedf("place", "field projection on %s", baseType)
			}
		default:
			// Dereferences vanish: immutable references are transparent.
		}
	}
	return expr, nil
}

func (tr *funcTranslator) lowerConst(c mir.Const) (boogie.Expr, error) {
	switch c := c.(type) {
	case *mir.BoolConst:
		return &boogie.BoolLit{Value: c.Value}, nil
	case *mir.IntConst:
		width, _, ok := mir.IntBits(c.Ty, tr.ctx.opts.PointerWidth)
		if !ok {
			return nil, errors.Unsupportedf("constant", "integer constant of type %s", c.Ty)
		}
		return &boogie.BvLit{Width: width, Value: c.Value}, nil
	}
	return nil, errors.Unsupportedf("constant", "%s", c)
}

// lowerRvalue lowers a computation to its expression plus an optional side
// statement the consumer must emit alongside.
func (tr *funcTranslator) lowerRvalue(rv mir.Rvalue) (boogie.Expr, boogie.Stmt, error) {
	switch rv := rv.(type) {
	case *mir.Use:
		expr, err := tr.lowerOperand(rv.Operand)
		return expr, nil, err
	case *mir.UnaryRv:
		return tr.lowerUnary(rv)
	case *mir.BinaryRv:
		return tr.lowerBinary(rv.Op, rv.Left, rv.Right)
	case *mir.CheckedBinaryRv:
		// The overflow flag is not modeled; the value is computed like the
		// unchecked form.
		return tr.lowerBinary(rv.Op, rv.Left, rv.Right)
	case *mir.CastRv:
		return tr.lowerCast(rv)
	}
	return nil, nil, errors.Unsupportedf("rvalue", "%s", rv)
}

func (tr *funcTranslator) lowerUnary(rv *mir.UnaryRv) (boogie.Expr, boogie.Stmt, error) {
	operand, err := tr.lowerOperand(rv.Operand)
	if err != nil {
		return nil, nil, err
	}
	switch rv.Op {
	case mir.UnNot:
		return boogie.Not(operand), nil, nil
	case mir.UnNeg:
		// TODO: negation is two's complement, not plain complement; this
		// needs a $BvNeg registry entry.
		return BvNot.Call(operand), nil, nil
	}
	return nil, nil, errors.Unsupportedf("rvalue", "unary %s", rv.Op)
}

func (tr *funcTranslator) lowerBinary(op mir.BinOp, left, right mir.Operand) (boogie.Expr, boogie.Stmt, error) {
	lhs, err := tr.lowerOperand(left)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := tr.lowerOperand(right)
	if err != nil {
		return nil, nil, err
	}

	switch op {
	case mir.BinAdd:
		if _, err := tr.sameOperandType(op, left, right); err != nil {
			return nil, nil, err
		}
		return BvAdd.Call(lhs, rhs), nil, nil
	case mir.BinEq:
		return boogie.Eq(lhs, rhs), nil, nil
	case mir.BinLt:
		b, err := tr.lessThanBuiltin(op, left, right)
		if err != nil {
			return nil, nil, err
		}
		return b.Call(lhs, rhs), nil, nil
	case mir.BinGe:
		b, err := tr.lessThanBuiltin(op, left, right)
		if err != nil {
			return nil, nil, err
		}
		return boogie.Not(b.Call(lhs, rhs)), nil, nil
	case mir.BinBitAnd:
		return BvAnd.Call(lhs, rhs), nil, nil
	case mir.BinBitOr:
		return BvOr.Call(lhs, rhs), nil, nil
	case mir.BinShl:
		return BvShl.Call(lhs, rhs), nil, nil
	case mir.BinShr:
		return BvShr.Call(lhs, rhs), nil, nil
	}
	return nil, nil, errors.Unsupportedf("rvalue", "binary %s", op)
}

// sameOperandType rejects mixed-type arithmetic and returns the shared
// operand type.
func (tr *funcTranslator) sameOperandType(op mir.BinOp, left, right mir.Operand) (mir.Type, error) {
	lt, err := tr.body.OperandType(left)
	if err != nil {
		return nil, err
	}
	rt, err := tr.body.OperandType(right)
	if err != nil {
		return nil, err
	}
	if lt.String() != rt.String() {
		return nil, errors.Unsupportedf("rvalue", "%s of mixed types %s and %s", op, lt, rt)
	}
	return lt, nil
}

// lessThanBuiltin picks the ordering entry matching the operands'
// signedness.
func (tr *funcTranslator) lessThanBuiltin(op mir.BinOp, left, right mir.Operand) (BvBuiltin, error) {
	ty, err := tr.sameOperandType(op, left, right)
	if err != nil {
		return 0, err
	}
	_, signed, ok := mir.IntBits(ty, tr.ctx.opts.PointerWidth)
	if !ok {
		return 0, errors.Unsupportedf("rvalue", "%s on %s operands", op, ty)
	}
	if signed {
		return BvSignedLessThan, nil
	}
	return BvUnsignedLessThan, nil
}

// lowerCast handles integer-to-integer casts: narrowing extracts the low
// bits, widening extends according to the source signedness, and a cast to
// the same width is the operand itself.
func (tr *funcTranslator) lowerCast(rv *mir.CastRv) (boogie.Expr, boogie.Stmt, error) {
	if rv.Kind != mir.IntToInt {
		return nil, nil, errors.Unsupportedf("rvalue", "%s cast", rv.Kind)
	}

	fromType, err := tr.body.OperandType(rv.Operand)
	if err != nil {
		return nil, nil, err
	}
	from, err := tr.ctx.lowerType(fromType)
	if err != nil {
		return nil, nil, err
	}
	to, err := tr.ctx.lowerType(rv.Ty)
	if err != nil {
		return nil, nil, err
	}

	fromBv, fromOk := from.(*boogie.BvType)
	toBv, toOk := to.(*boogie.BvType)
	if !fromOk || !toOk {
		return nil, nil, errors.Unsupportedf("rvalue", "cast between non-bit-vector types %s and %s", fromType, rv.Ty)
	}

	operand, err := tr.lowerOperand(rv.Operand)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case toBv.Width < fromBv.Width:
		return boogie.Extract(operand, toBv.Width, 0), nil, nil
	case toBv.Width > fromBv.Width:
		_, signed, _ := mir.IntBits(fromType, tr.ctx.opts.PointerWidth)
		if signed {
			return boogie.SignExtend(operand, toBv.Width-fromBv.Width), nil, nil
		}
		return boogie.ZeroExtend(operand, toBv.Width-fromBv.Width), nil, nil
	}
	return operand, nil, nil
}

// addStatement concatenates an rvalue's side statement with the statement
// consuming it, flattening into an existing block where possible.
func addStatement(side, s boogie.Stmt) boogie.Stmt {
	if side == nil {
		return s
	}
	if block, ok := side.(*boogie.Block); ok {
		block.Stmts = append(block.Stmts, s)
		return block
	}
	return boogie.NewBlock([]boogie.Stmt{side, s})
}
