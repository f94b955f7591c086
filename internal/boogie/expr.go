package boogie

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is the closed set of verification-language expressions.
type Expr interface {
	isExpr()
	String() string
}

// Literal is the subset of expressions that are constant values.
type Literal interface {
	Expr
	isLiteral()
}

// BoolLit represents a boolean constant
type BoolLit struct {
	Value bool
}

// BvLit represents a fixed-width bit-vector constant. The value is kept at
// arbitrary precision; it is never truncated to the width here.
// Example: "5bv8"
type BvLit struct {
	Width int
	Value *big.Int
}

// IntLit represents an unbounded integer constant
type IntLit struct {
	Value *big.Int
}

// Symbol represents a reference to a declared name
// Example: "_1", "$BvAdd"
type Symbol struct {
	Name string
}

// UnaryExpr represents a unary operation
// Example: "!_2"
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

// BinaryExpr represents a binary operation
// Example: "(_1 == _2)"
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// FunctionCall represents a call expression
// Example: "$BvAdd(_1, _2)"
type FunctionCall struct {
	Symbol string
	Args   []Expr
}

// IndexExpr represents indexing into an array or map value
// Example: "_1[_2]"
type IndexExpr struct {
	Base  Expr
	Index Expr
}

// FieldExpr represents datatype field access
// Example: "_1->len"
type FieldExpr struct {
	Base  Expr
	Field string
}

// ExtractExpr represents bit extraction: the bits [Low, High) of Base.
// Example: "_1[8:0]" keeps the low eight bits
type ExtractExpr struct {
	Base Expr
	High int
	Low  int
}

// SignExtendExpr represents widening by replicating the sign bit By times
type SignExtendExpr struct {
	Base Expr
	By   int
}

// ZeroExtendExpr represents widening by prepending By zero bits
type ZeroExtendExpr struct {
	Base Expr
	By   int
}

func (*BoolLit) isExpr()        {}
func (*BvLit) isExpr()          {}
func (*IntLit) isExpr()         {}
func (*Symbol) isExpr()         {}
func (*UnaryExpr) isExpr()      {}
func (*BinaryExpr) isExpr()     {}
func (*FunctionCall) isExpr()   {}
func (*IndexExpr) isExpr()      {}
func (*FieldExpr) isExpr()      {}
func (*ExtractExpr) isExpr()    {}
func (*SignExtendExpr) isExpr() {}
func (*ZeroExtendExpr) isExpr() {}

func (*BoolLit) isLiteral() {}
func (*BvLit) isLiteral()   {}
func (*IntLit) isLiteral()  {}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "!"
	case UnaryNeg:
		return "-"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// BinaryOp enumerates the binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// Not negates a boolean expression.
func Not(e Expr) Expr {
	return &UnaryExpr{Op: UnaryNot, Operand: e}
}

// Eq builds an equality comparison.
func Eq(left, right Expr) Expr {
	return &BinaryExpr{Op: OpEq, Left: left, Right: right}
}

// Call builds a call to a declared function symbol.
func Call(symbol string, args ...Expr) Expr {
	return &FunctionCall{Symbol: symbol, Args: args}
}

// Extract keeps the bits [low, high) of base.
func Extract(base Expr, high, low int) Expr {
	return &ExtractExpr{Base: base, High: high, Low: low}
}

// SignExtend widens base by `by` copies of its sign bit.
func SignExtend(base Expr, by int) Expr {
	return &SignExtendExpr{Base: base, By: by}
}

// ZeroExtend widens base by `by` zero bits.
func ZeroExtend(base Expr, by int) Expr {
	return &ZeroExtendExpr{Base: base, By: by}
}

func (l *BoolLit) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

func (l *BvLit) String() string {
	return fmt.Sprintf("%sbv%d", l.Value.String(), l.Width)
}

func (l *IntLit) String() string {
	return l.Value.String()
}

func (e *Symbol) String() string {
	return e.Name
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", e.Op, e.Operand)
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *FunctionCall) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Symbol, strings.Join(args, ", "))
}

func (e *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", e.Base, e.Index)
}

func (e *FieldExpr) String() string {
	return fmt.Sprintf("%s->%s", e.Base, e.Field)
}

func (e *ExtractExpr) String() string {
	return fmt.Sprintf("%s[%d:%d]", e.Base, e.High, e.Low)
}

func (e *SignExtendExpr) String() string {
	return fmt.Sprintf("sext(%s, %d)", e.Base, e.By)
}

func (e *ZeroExtendExpr) String() string {
	return fmt.Sprintf("zext(%s, %d)", e.Base, e.By)
}
