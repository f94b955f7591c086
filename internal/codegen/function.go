package codegen

import (
	"math/big"

	"boogen/internal/boogie"
	"boogen/internal/errors"
	"boogen/internal/mir"
)

// funcTranslator lowers one function body into one procedure. It holds the
// per-function alias table; the shared context is read-only here.
type funcTranslator struct {
	ctx  *Context
	body *mir.Body

	// aliases maps place keys to the expressions their referents lowered
	// to. Writes are flow-insensitive: the last recorded alias for a key
	// wins across the whole function.
	aliases map[string]boogie.Expr
}

func newFuncTranslator(ctx *Context, body *mir.Body) *funcTranslator {
	return &funcTranslator{
		ctx:     ctx,
		body:    body,
		aliases: make(map[string]boogie.Expr),
	}
}

// translate declares the locals, then lowers the blocks in reverse
// postorder into one canonical body statement.
func (tr *funcTranslator) translate() (*boogie.Procedure, error) {
	stmts, err := tr.declareLocals()
	if err != nil {
		return nil, err
	}

	for _, id := range mir.ReversePostorder(tr.body) {
		blockStmts, err := tr.lowerBlock(id)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, blockStmts...)
	}

	return &boogie.Procedure{
		Name: tr.body.Name,
		Body: boogie.NewBlock(stmts),
	}, nil
}

// declareLocals emits one declaration per local that exists in the
// generated program. Zero-size locals and mutable references are skipped
// uniformly; the return place, arguments, and temporaries are not
// distinguished.
func (tr *funcTranslator) declareLocals() ([]boogie.Stmt, error) {
	var decls []boogie.Stmt
	for i, decl := range tr.body.Locals {
		local := mir.Local(i)
		if tr.ctx.layouts.IsZeroSize(decl.Type) {
			log.Debugf("%s: skipping zero-size local %s", tr.body.Name, local.Name())
			continue
		}
		if ref, ok := decl.Type.(*mir.RefType); ok && ref.Mutable {
			log.Debugf("%s: skipping mutable reference local %s", tr.body.Name, local.Name())
			continue
		}
		ty, err := tr.ctx.lowerType(decl.Type)
		if err != nil {
			return nil, err
		}
		decls = append(decls, &boogie.Decl{Name: local.Name(), Type: ty})
	}
	return decls, nil
}

// lowerBlock lowers one block's statements and terminator. The block's
// first emitted statement carries the block label so jumps land here; a
// block whose statements all lower to nothing labels its terminator
// instead.
func (tr *funcTranslator) lowerBlock(id mir.BlockID) ([]boogie.Stmt, error) {
	log.Debugf("%s: block %s", tr.body.Name, id.Label())
	block := tr.body.Blocks[id]

	var stmts []boogie.Stmt
	for _, stmt := range block.Statements {
		s, err := tr.lowerStatement(stmt)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		if len(stmts) == 0 {
			s = &boogie.Label{Name: id.Label(), Stmt: s}
		}
		stmts = append(stmts, s)
	}

	term, err := tr.lowerTerminator(block.Terminator)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		term = &boogie.Label{Name: id.Label(), Stmt: term}
	}
	return append(stmts, term), nil
}

// lowerStatement returns a nil statement when the source statement
// generates no code.
func (tr *funcTranslator) lowerStatement(stmt mir.Statement) (boogie.Stmt, error) {
	log.Debugf("%s: statement %s", tr.body.Name, stmt)
	if assign, ok := stmt.(*mir.Assign); ok {
		return tr.lowerAssign(assign.Place, assign.Rvalue)
	}
	return nil, errors.Unsupportedf("statement", "%s", stmt)
}

func (tr *funcTranslator) lowerAssign(place mir.Place, rv mir.Rvalue) (boogie.Stmt, error) {
	// Taking an address generates no code. The referent's lowering is
	// recorded under the assigned place's exact key so later dereferences
	// resolve straight to it.
	if ref, ok := rv.(*mir.RefRv); ok {
		referent, err := tr.lowerPlace(ref.Place)
		if err != nil {
			return nil, err
		}
		tr.aliases[place.Key()] = referent
		return nil, nil
	}

	expr, side, err := tr.lowerRvalue(rv)
	if err != nil {
		return nil, err
	}

	if len(place.Projection) == 0 {
		return addStatement(side, &boogie.Assignment{Target: place.Local.Name(), Value: expr}), nil
	}

	if len(place.Projection) == 1 {
		if _, ok := place.Projection[0].(*mir.DerefProj); ok {
			alias, ok := tr.aliases[mir.PlaceOf(place.Local).Key()]
			if !ok {
				return nil, errors.Invariantf("no alias recorded for %s", place.Local.Name())
			}
			return addStatement(side, &boogie.Assignment{Target: alias.String(), Value: expr}), nil
		}
	}

	return nil, errors.Unsupportedf("statement", "assignment to place %s", place.Key())
}

func (tr *funcTranslator) lowerTerminator(term mir.Terminator) (boogie.Stmt, error) {
	log.Debugf("%s: terminator %s", tr.body.Name, term)
	switch term := term.(type) {
	case *mir.Return:
		return &boogie.Return{}, nil
	case *mir.Goto:
		return &boogie.Goto{Label: term.Target.Label()}, nil
	case *mir.SwitchInt:
		return tr.lowerSwitch(term)
	case *mir.AssertTerm:
		// Runtime checks are elided for now, including the fall-through
		// jump to the success block.
		return &boogie.Block{}, nil
	case *mir.CallTerm:
		return tr.lowerCall(term)
	}
	return nil, errors.Unsupportedf("terminator", "%s", term)
}

// lowerSwitch handles the two-target form: one literal comparison deciding
// between two jumps.
func (tr *funcTranslator) lowerSwitch(term *mir.SwitchInt) (boogie.Stmt, error) {
	targets := term.Targets.All()
	if len(targets) != 2 {
		return nil, errors.Unsupportedf("terminator", "switch with %d targets", len(targets))
	}

	discrType, err := tr.body.OperandType(term.Discr)
	if err != nil {
		return nil, err
	}
	discr, err := tr.lowerOperand(term.Discr)
	if err != nil {
		return nil, err
	}

	value := term.Targets.Values[0]
	var lit boogie.Expr
	switch discrType.(type) {
	case *mir.BoolType:
		lit = &boogie.BoolLit{Value: value != 0}
	case *mir.UintType:
		// The comparison literal is built at 128 bits regardless of the
		// discriminant's width.
		lit = &boogie.BvLit{Width: 128, Value: new(big.Int).SetUint64(value)}
	default:
		return nil, errors.Unsupportedf("terminator", "switch on %s discriminant", discrType)
	}

	return &boogie.If{
		Cond: boogie.Eq(discr, lit),
		Then: &boogie.Goto{Label: term.Targets.Blocks[0].Label()},
		Else: &boogie.Goto{Label: term.Targets.Otherwise.Label()},
	}, nil
}

// lowerCall resolves the callee and dispatches to its intrinsic handler.
// Only calls to registered intrinsics translate; everything else is
// rejected by name.
func (tr *funcTranslator) lowerCall(term *mir.CallTerm) (boogie.Stmt, error) {
	fnType, err := tr.body.OperandType(term.Func)
	if err != nil {
		return nil, err
	}
	fnDef, ok := fnType.(*mir.FnDefType)
	if !ok {
		return nil, errors.Unsupportedf("terminator", "call through %s", fnType)
	}

	if tr.ctx.intrinsics != nil {
		if handler, ok := tr.ctx.intrinsics.Lookup(fnDef.Name); ok {
			return handler(tr, term)
		}
	}
	return nil, errors.Unsupportedf("terminator", "call to non-intrinsic function %s", fnDef.Name)
}

// LowerOperand implements OperandLowerer for intrinsic handlers.
func (tr *funcTranslator) LowerOperand(op mir.Operand) (boogie.Expr, error) {
	return tr.lowerOperand(op)
}
