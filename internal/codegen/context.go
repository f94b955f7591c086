// Package codegen translates source control-flow-graph functions into
// verification-language procedures. A Context is shared across the run and
// owns the destination program; each function gets its own translator and
// its own alias state. Unsupported input aborts the current function with a
// structured error and leaves the context usable.
package codegen

import (
	"github.com/tliron/commonlog"

	"boogen/internal/boogie"
	"boogen/internal/config"
	"boogen/internal/mir"
)

var log = commonlog.GetLogger("boogen.codegen")

// unboundedArrayName is the preamble datatype backing the recognized
// dynamic-array abstraction.
const unboundedArrayName = "$UnboundedArray"

// LayoutOracle answers the one storage question the translator asks of
// source types.
type LayoutOracle interface {
	IsZeroSize(t mir.Type) bool
}

// OperandLowerer is the lowering surface handed to intrinsic handlers.
type OperandLowerer interface {
	LowerOperand(op mir.Operand) (boogie.Expr, error)
}

// Handler lowers one call to a specific intrinsic into the statement that
// replaces it.
type Handler func(l OperandLowerer, call *mir.CallTerm) (boogie.Stmt, error)

// IntrinsicTable resolves fully qualified function names to handlers.
type IntrinsicTable interface {
	Lookup(name string) (Handler, bool)
}

// Context owns the destination program across per-function translations,
// along with the options, the intrinsic table, and the layout oracle the
// translators consult.
type Context struct {
	opts       config.Options
	intrinsics IntrinsicTable
	layouts    LayoutOracle
	program    *boogie.Program
}

// NewContext creates a translation context whose program is seeded with the
// preamble: one generic declaration per builtin registry entry plus the
// unbounded-array datatype.
func NewContext(opts config.Options, intrinsics IntrinsicTable, layouts LayoutOracle) *Context {
	ctx := &Context{
		opts:       opts,
		intrinsics: intrinsics,
		layouts:    layouts,
		program:    boogie.NewProgram(),
	}
	ctx.addPreamble()
	return ctx
}

func (ctx *Context) addPreamble() {
	for i := range bvBuiltins {
		ctx.program.AddFunction(BvBuiltin(i).decl())
	}
	ctx.program.AddDataType(unboundedArrayDecl())
}

func unboundedArrayDecl() *boogie.DataType {
	t := &boogie.TypeParam{Name: "T"}
	return &boogie.DataType{
		Name:       unboundedArrayName,
		TypeParams: []string{"T"},
		Ctors: []boogie.DataTypeCtor{{
			Name: unboundedArrayName,
			Fields: []boogie.Parameter{
				{Name: "data", Type: &boogie.MapType{Key: &boogie.BvType{Width: 64}, Value: t}},
				{Name: "len", Type: &boogie.BvType{Width: 64}},
			},
		}},
	}
}

// Program returns the destination program being built.
func (ctx *Context) Program() *boogie.Program {
	return ctx.program
}

// AddProcedure appends a translated procedure to the program.
func (ctx *Context) AddProcedure(p *boogie.Procedure) {
	ctx.program.AddProcedure(p)
}

// Translate translates one function into a procedure. It returns (nil, nil)
// when the function is itself a registered intrinsic hook: hooks are
// replaced at their call sites and have no translation of their own. An
// error aborts this function only.
func (ctx *Context) Translate(body *mir.Body) (*boogie.Procedure, error) {
	if ctx.intrinsics != nil {
		if _, ok := ctx.intrinsics.Lookup(body.Name); ok {
			log.Debugf("skipping intrinsic hook %s", body.Name)
			return nil, nil
		}
	}

	log.Debugf("translating function %s", body.Name)
	tr := newFuncTranslator(ctx, body)
	return tr.translate()
}
