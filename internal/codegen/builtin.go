package codegen

import (
	"fmt"

	"boogen/internal/boogie"
)

// BvBuiltin identifies one entry of the bit-vector builtin registry.
// Translation code refers to entries through these identities; the
// generated names appear in exactly one place, the registry table.
type BvBuiltin int

const (
	BvUnsignedLessThan BvBuiltin = iota
	BvSignedLessThan
	BvAdd
	BvOr
	BvAnd
	BvShl
	BvShr
	BvNot
)

// builtinSpec describes one registry entry: the function name the generated
// program uses, the solver primitive behind it, and its shape.
type builtinSpec struct {
	name      string
	smtOp     string
	predicate bool
	arity     int
}

// bvBuiltins is the whole registry. Adding a solver primitive means adding
// a row here and an identity above; nothing else keys on the names.
var bvBuiltins = [...]builtinSpec{
	BvUnsignedLessThan: {name: "$BvUnsignedLessThan", smtOp: "bvult", predicate: true, arity: 2},
	BvSignedLessThan:   {name: "$BvSignedLessThan", smtOp: "bvslt", predicate: true, arity: 2},
	BvAdd:              {name: "$BvAdd", smtOp: "bvadd", arity: 2},
	BvOr:               {name: "$BvOr", smtOp: "bvor", arity: 2},
	BvAnd:              {name: "$BvAnd", smtOp: "bvand", arity: 2},
	BvShl:              {name: "$BvShl", smtOp: "bvshl", arity: 2},
	BvShr:              {name: "$BvShr", smtOp: "bvlshr", arity: 2},
	BvNot:              {name: "$BvNot", smtOp: "bvnot", arity: 1},
}

// Name returns the function name the generated program calls.
func (b BvBuiltin) Name() string {
	return bvBuiltins[b].name
}

// SmtOp returns the solver primitive the entry maps to.
func (b BvBuiltin) SmtOp() string {
	return bvBuiltins[b].smtOp
}

// IsPredicate reports whether the entry returns a boolean rather than a
// value of its operand type.
func (b BvBuiltin) IsPredicate() bool {
	return bvBuiltins[b].predicate
}

// Call builds a call expression to the entry.
func (b BvBuiltin) Call(args ...boogie.Expr) boogie.Expr {
	return boogie.Call(b.Name(), args...)
}

// decl builds the entry's generic preamble declaration: one type parameter
// T, operands of type T, returning T for value entries and bool for
// predicates, tied to the solver primitive by attribute.
func (b BvBuiltin) decl() *boogie.Function {
	spec := bvBuiltins[b]
	t := &boogie.TypeParam{Name: "T"}

	var params []boogie.Parameter
	if spec.arity == 1 {
		params = []boogie.Parameter{{Name: "op", Type: t}}
	} else {
		params = []boogie.Parameter{{Name: "lhs", Type: t}, {Name: "rhs", Type: t}}
	}

	var ret boogie.Type = t
	if spec.predicate {
		ret = &boogie.BoolType{}
	}

	return &boogie.Function{
		Name:       spec.name,
		TypeParams: []string{"T"},
		Params:     params,
		ReturnType: ret,
		Attributes: []string{fmt.Sprintf(":bvbuiltin %q", spec.smtOp)},
	}
}
