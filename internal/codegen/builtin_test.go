package codegen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"boogen/internal/boogie"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, "$BvUnsignedLessThan", BvUnsignedLessThan.Name())
	assert.Equal(t, "$BvSignedLessThan", BvSignedLessThan.Name())
	assert.Equal(t, "$BvAdd", BvAdd.Name())
	assert.Equal(t, "$BvOr", BvOr.Name())
	assert.Equal(t, "$BvAnd", BvAnd.Name())
	assert.Equal(t, "$BvShl", BvShl.Name())
	assert.Equal(t, "$BvShr", BvShr.Name())
	assert.Equal(t, "$BvNot", BvNot.Name())
}

func TestBuiltinSolverPrimitives(t *testing.T) {
	assert.Equal(t, "bvult", BvUnsignedLessThan.SmtOp())
	assert.Equal(t, "bvslt", BvSignedLessThan.SmtOp())
	assert.Equal(t, "bvadd", BvAdd.SmtOp())
	assert.Equal(t, "bvor", BvOr.SmtOp())
	assert.Equal(t, "bvand", BvAnd.SmtOp())
	assert.Equal(t, "bvshl", BvShl.SmtOp())
	assert.Equal(t, "bvlshr", BvShr.SmtOp(), "the right shift is the logical one")
	assert.Equal(t, "bvnot", BvNot.SmtOp())
}

func TestBuiltinPredicates(t *testing.T) {
	assert.True(t, BvUnsignedLessThan.IsPredicate())
	assert.True(t, BvSignedLessThan.IsPredicate())
	assert.False(t, BvAdd.IsPredicate())
	assert.False(t, BvOr.IsPredicate())
	assert.False(t, BvAnd.IsPredicate())
	assert.False(t, BvShl.IsPredicate())
	assert.False(t, BvShr.IsPredicate())
	assert.False(t, BvNot.IsPredicate())
}

func TestBuiltinDecls(t *testing.T) {
	for i := range bvBuiltins {
		b := BvBuiltin(i)
		decl := b.decl()

		assert.Equal(t, b.Name(), decl.Name)
		assert.Equal(t, []string{"T"}, decl.TypeParams, "every entry is generic over one type")
		assert.Len(t, decl.Params, bvBuiltins[i].arity)
		assert.Equal(t, []string{fmt.Sprintf(":bvbuiltin %q", b.SmtOp())}, decl.Attributes)
		assert.Nil(t, decl.Body, "builtins are uninterpreted")

		if b.IsPredicate() {
			assert.IsType(t, &boogie.BoolType{}, decl.ReturnType)
		} else {
			assert.IsType(t, &boogie.TypeParam{}, decl.ReturnType)
		}
	}
}

func TestBuiltinComplementTakesOneOperand(t *testing.T) {
	decl := BvNot.decl()

	assert.Len(t, decl.Params, 1)
	assert.Equal(t, "op", decl.Params[0].Name)
}

func TestBuiltinDeclHeader(t *testing.T) {
	assert.Equal(t,
		`function {:bvbuiltin "bvadd"} $BvAdd<T>(lhs: T, rhs: T) returns (T);`,
		functionHeaderText(BvAdd.decl()))
	assert.Equal(t,
		`function {:bvbuiltin "bvult"} $BvUnsignedLessThan<T>(lhs: T, rhs: T) returns (bool);`,
		functionHeaderText(BvUnsignedLessThan.decl()))
	assert.Equal(t,
		`function {:bvbuiltin "bvnot"} $BvNot<T>(op: T) returns (T);`,
		functionHeaderText(BvNot.decl()))
}

// functionHeaderText renders a lone function declaration through the program
// dump so header tests do not re-implement the printer.
func functionHeaderText(f *boogie.Function) string {
	p := boogie.NewProgram()
	p.AddFunction(f)
	return strings.TrimSuffix(boogie.Dump(p), "\n")
}

func TestBuiltinCall(t *testing.T) {
	call := BvAdd.Call(&boogie.Symbol{Name: "_1"}, &boogie.Symbol{Name: "_2"})
	assert.Equal(t, "$BvAdd(_1, _2)", call.String())

	not := BvNot.Call(&boogie.Symbol{Name: "_3"})
	assert.Equal(t, "$BvNot(_3)", not.String())
}
