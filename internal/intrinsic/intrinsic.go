// Package intrinsic maps verification hook functions to their call-site
// lowerings. Hooks are ordinary function names in the source program; the
// translator replaces each recognized call with the statement its handler
// produces and never visits the hook's own body.
package intrinsic

import (
	"boogen/internal/boogie"
	"boogen/internal/codegen"
	"boogen/internal/errors"
	"boogen/internal/mir"
)

// Table resolves fully qualified hook names to handlers. It implements
// codegen.IntrinsicTable.
type Table map[string]codegen.Handler

// Lookup returns the handler registered under name.
func (t Table) Lookup(name string) (codegen.Handler, bool) {
	h, ok := t[name]
	return h, ok
}

// Standard returns the built-in hooks: assertion, assumption, and the
// nondeterministic value source.
func Standard() Table {
	return Table{
		"verify::assert":  lowerAssert,
		"verify::assume":  lowerAssume,
		"verify::any_raw": lowerAnyRaw,
	}
}

// lowerAssert emits a proof obligation followed by the jump to the success
// block. Arguments past the condition (typically a failure message) carry
// no meaning for the prover and are dropped.
func lowerAssert(l codegen.OperandLowerer, call *mir.CallTerm) (boogie.Stmt, error) {
	cond, err := condition(l, call, "verify::assert")
	if err != nil {
		return nil, err
	}
	target, err := resumeLabel(call, "verify::assert")
	if err != nil {
		return nil, err
	}
	return boogie.NewBlock([]boogie.Stmt{
		&boogie.Assert{Cond: cond},
		&boogie.Goto{Label: target},
	}), nil
}

// lowerAssume emits a fact the prover may rely on without proof.
func lowerAssume(l codegen.OperandLowerer, call *mir.CallTerm) (boogie.Stmt, error) {
	cond, err := condition(l, call, "verify::assume")
	if err != nil {
		return nil, err
	}
	target, err := resumeLabel(call, "verify::assume")
	if err != nil {
		return nil, err
	}
	return boogie.NewBlock([]boogie.Stmt{
		&boogie.Assume{Cond: cond},
		&boogie.Goto{Label: target},
	}), nil
}

// lowerAnyRaw havocs the call's destination: every value of its type
// satisfies the call.
func lowerAnyRaw(_ codegen.OperandLowerer, call *mir.CallTerm) (boogie.Stmt, error) {
	target, err := resumeLabel(call, "verify::any_raw")
	if err != nil {
		return nil, err
	}
	return boogie.NewBlock([]boogie.Stmt{
		&boogie.Havoc{Name: call.Destination.Local.Name()},
		&boogie.Goto{Label: target},
	}), nil
}

func condition(l codegen.OperandLowerer, call *mir.CallTerm, name string) (boogie.Expr, error) {
	if len(call.Args) == 0 {
		return nil, errors.Invariantf("%s expects a condition argument", name)
	}
	return l.LowerOperand(call.Args[0])
}

func resumeLabel(call *mir.CallTerm, name string) (string, error) {
	if call.Target == nil {
		return "", errors.Invariantf("%s call has no return target", name)
	}
	return call.Target.Label(), nil
}
