package mir

import (
	"fmt"
	"math/big"
)

// Statement is the closed set of block statements.
type Statement interface {
	isStatement()
	String() string
}

// Assign represents writing a computed value into a place
// Example: "_1 = $BvAdd-shaped rvalue" in dumps: "_1 = copy _2"
type Assign struct {
	Place  Place
	Rvalue Rvalue
}

// StorageLive marks the start of a local's live range
type StorageLive struct {
	Local Local
}

// StorageDead marks the end of a local's live range
type StorageDead struct {
	Local Local
}

// Nop represents a statement with no effect
type Nop struct{}

func (*Assign) isStatement()      {}
func (*StorageLive) isStatement() {}
func (*StorageDead) isStatement() {}
func (*Nop) isStatement()         {}

func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.Place, s.Rvalue)
}

func (s *StorageLive) String() string {
	return fmt.Sprintf("StorageLive(%s)", s.Local.Name())
}

func (s *StorageDead) String() string {
	return fmt.Sprintf("StorageDead(%s)", s.Local.Name())
}

func (s *Nop) String() string {
	return "nop"
}

// Operand is the closed set of rvalue inputs.
type Operand interface {
	isOperand()
	String() string
}

// Copy reads a place, leaving it initialized
type Copy struct {
	Place Place
}

// Move reads a place and deinitializes it
type Move struct {
	Place Place
}

// ConstOperand embeds a constant
type ConstOperand struct {
	Const Const
}

func (*Copy) isOperand()         {}
func (*Move) isOperand()         {}
func (*ConstOperand) isOperand() {}

func (o *Copy) String() string {
	return "copy " + o.Place.Key()
}

func (o *Move) String() string {
	return "move " + o.Place.Key()
}

func (o *ConstOperand) String() string {
	return "const " + o.Const.String()
}

// Const is the closed set of constant values.
type Const interface {
	isConst()
	Type() Type
	String() string
}

// BoolConst is a boolean constant.
type BoolConst struct {
	Value bool
}

// IntConst is an integer constant of a concrete integer type.
type IntConst struct {
	Ty    Type
	Value *big.Int
}

// ZeroSizedConst is a value-less constant of a zero-size type, typically a
// function reference.
type ZeroSizedConst struct {
	Ty Type
}

func (*BoolConst) isConst()      {}
func (*IntConst) isConst()       {}
func (*ZeroSizedConst) isConst() {}

func (c *BoolConst) Type() Type {
	return &BoolType{}
}

func (c *IntConst) Type() Type {
	return c.Ty
}

func (c *ZeroSizedConst) Type() Type {
	return c.Ty
}

func (c *BoolConst) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (c *IntConst) String() string {
	return fmt.Sprintf("%s_%s", c.Value, c.Ty)
}

func (c *ZeroSizedConst) String() string {
	return c.Ty.String()
}

// UnOp enumerates the unary rvalue operators.
type UnOp int

const (
	UnNot UnOp = iota
	UnNeg
)

func (op UnOp) String() string {
	switch op {
	case UnNot:
		return "Not"
	case UnNeg:
		return "Neg"
	}
	return fmt.Sprintf("UnOp(%d)", int(op))
}

// BinOp enumerates the binary rvalue operators.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
)

func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "Add"
	case BinSub:
		return "Sub"
	case BinMul:
		return "Mul"
	case BinDiv:
		return "Div"
	case BinRem:
		return "Rem"
	case BinBitXor:
		return "BitXor"
	case BinBitAnd:
		return "BitAnd"
	case BinBitOr:
		return "BitOr"
	case BinShl:
		return "Shl"
	case BinShr:
		return "Shr"
	case BinEq:
		return "Eq"
	case BinLt:
		return "Lt"
	case BinLe:
		return "Le"
	case BinNe:
		return "Ne"
	case BinGe:
		return "Ge"
	case BinGt:
		return "Gt"
	}
	return fmt.Sprintf("BinOp(%d)", int(op))
}

// CastKind enumerates cast categories; only integer-to-integer casts are
// translatable.
type CastKind int

const (
	IntToInt CastKind = iota
	FloatToInt
	PtrToPtr
)

func (k CastKind) String() string {
	switch k {
	case IntToInt:
		return "IntToInt"
	case FloatToInt:
		return "FloatToInt"
	case PtrToPtr:
		return "PtrToPtr"
	}
	return fmt.Sprintf("CastKind(%d)", int(k))
}

// Rvalue is the closed set of computations on the right side of an
// assignment.
type Rvalue interface {
	isRvalue()
	String() string
}

// Use yields an operand unchanged
type Use struct {
	Operand Operand
}

// UnaryRv applies a unary operator
type UnaryRv struct {
	Op      UnOp
	Operand Operand
}

// BinaryRv applies a binary operator
type BinaryRv struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// CheckedBinaryRv applies a binary operator with overflow detection; the
// overflow flag is not modeled yet and the value is treated like BinaryRv.
type CheckedBinaryRv struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// RefRv takes the address of a place
type RefRv struct {
	Place Place
}

// CastRv converts an operand to another type
type CastRv struct {
	Kind    CastKind
	Operand Operand
	Ty      Type
}

func (*Use) isRvalue()             {}
func (*UnaryRv) isRvalue()         {}
func (*BinaryRv) isRvalue()        {}
func (*CheckedBinaryRv) isRvalue() {}
func (*RefRv) isRvalue()           {}
func (*CastRv) isRvalue()          {}

func (r *Use) String() string {
	return r.Operand.String()
}

func (r *UnaryRv) String() string {
	return fmt.Sprintf("%s(%s)", r.Op, r.Operand)
}

func (r *BinaryRv) String() string {
	return fmt.Sprintf("%s(%s, %s)", r.Op, r.Left, r.Right)
}

func (r *CheckedBinaryRv) String() string {
	return fmt.Sprintf("Checked%s(%s, %s)", r.Op, r.Left, r.Right)
}

func (r *RefRv) String() string {
	return "&" + r.Place.Key()
}

func (r *CastRv) String() string {
	return fmt.Sprintf("%s as %s (%s)", r.Operand, r.Ty, r.Kind)
}
