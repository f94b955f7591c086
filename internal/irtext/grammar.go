package irtext

import "strings"

// File is the grammar root: a sequence of function bodies.
type File struct {
	Funcs []*FuncDef `@@*`
}

// FuncDef is one function body.
// Example: "fn check_add { let _0: () bb0: { return } }"
type FuncDef struct {
	Name   *Path       `"fn" @@ "{"`
	Locals []*LocalDef `@@*`
	Blocks []*BlockDef `@@* "}"`
}

// Path is a possibly qualified name.
// Example: "verify::assert"
type Path struct {
	Parts []string `@Ident { ":" ":" @Ident }`
}

func (p *Path) String() string {
	return strings.Join(p.Parts, "::")
}

// LocalDef declares one local slot.
// Example: "let _1: u32"
type LocalDef struct {
	Name string   `"let" @Local ":"`
	Type *TypeRef `@@`
}

// TypeRef is a type expression.
type TypeRef struct {
	Ref   *RefType   `  @@`
	Tuple *TupleType `| @@`
	Array *ArrayType `| @@`
	Name  string     `| @Ident`
}

// RefType is a reference type.
// Example: "&mut u32"
type RefType struct {
	Mut bool     `"&" [ @"mut" ]`
	To  *TypeRef `@@`
}

// TupleType is a tuple type; "()" is the unit type.
type TupleType struct {
	Elems []*TypeRef `"(" [ @@ { "," @@ } ] ")"`
}

// ArrayType is a fixed-length array type.
// Example: "[u8; 4]"
type ArrayType struct {
	Elem *TypeRef `"[" @@ ";"`
	Len  int      `@Integer "]"`
}

// BlockDef is one labeled basic block.
type BlockDef struct {
	ID    string  `@Block ":" "{"`
	Items []*Item `@@* "}"`
}

// Item is a statement or terminator inside a block. Whether an assignment
// is a plain statement or a call terminator is decided by its right side.
type Item struct {
	Return      bool        `  @"return"`
	Unreachable bool        `| @"unreachable"`
	Nop         bool        `| @"nop"`
	Goto        *GotoTerm   `| @@`
	Switch      *SwitchTerm `| @@`
	Assert      *AssertTerm `| @@`
	Storage     *Storage    `| @@`
	Assign      *AssignItem `| @@`
}

// GotoTerm is an unconditional jump.
// Example: "goto bb3"
type GotoTerm struct {
	Target string `"goto" @Block`
}

// AssertTerm checks a condition and resumes at the target.
// Example: "assert(copy _1, expected: true) -> bb2"
type AssertTerm struct {
	Cond     *Operand `"assert" "(" @@ ","`
	Expected string   `"expected" ":" @("true" | "false") ")"`
	Target   string   `"-" ">" @Block`
}

// Storage marks the start or end of a local's live range.
// Example: "StorageLive(_1)"
type Storage struct {
	Kind  string `@("StorageLive" | "StorageDead")`
	Local string `"(" @Local ")"`
}

// SwitchTerm branches on an integer or boolean discriminant.
// Example: "switchInt(copy _1) [0: bb1, otherwise: bb2]"
type SwitchTerm struct {
	Discr *Operand     `"switchInt" "(" @@ ")"`
	Arms  []*SwitchArm `"[" @@ { "," @@ } "]"`
}

// SwitchArm is one case of a switchInt.
type SwitchArm struct {
	Case   *ArmCase `@@ ":"`
	Target string   `@Block`
}

// ArmCase is a literal discriminant value or the otherwise arm.
type ArmCase struct {
	Value     *uint64 `  @Integer`
	Otherwise bool    `| @"otherwise"`
}

// AssignItem is "place = right side".
type AssignItem struct {
	Place *Place     `@@ "="`
	Rhs   *AssignRhs `@@`
}

// AssignRhs is either a call (a terminator) or an rvalue (a statement).
type AssignRhs struct {
	Call   *CallRhs `  @@`
	Rvalue *Rvalue  `| @@`
}

// CallRhs is a function call with an optional resume target.
// Example: "call verify::assert(copy _4) -> bb3"
type CallRhs struct {
	Callee *Path      `"call" @@`
	Args   []*Operand `"(" [ @@ { "," @@ } ] ")"`
	Target *string    `[ "-" ">" @Block ]`
}

// Rvalue is the right side of a plain assignment.
type Rvalue struct {
	Ref    *RefRv  `  @@`
	Use    *UseRv  `| @@`
	OpCall *OpCall `| @@`
}

// RefRv takes the address of a place.
// Example: "&mut _1"
type RefRv struct {
	Mut   bool   `"&" [ @"mut" ]`
	Place *Place `@@`
}

// UseRv is an operand with an optional cast suffix.
// Example: "copy _1 as u8 (IntToInt)"
type UseRv struct {
	Operand *Operand `@@`
	Cast    *CastSuf `[ @@ ]`
}

// CastSuf is the cast suffix of an operand. A missing kind means IntToInt.
type CastSuf struct {
	Ty   *TypeRef `"as" @@`
	Kind string   `[ "(" @Ident ")" ]`
}

// OpCall is a named unary, binary, or checked binary operation.
// Example: "CheckedAdd(copy _1, copy _2)"
type OpCall struct {
	Name string     `@Ident "("`
	Args []*Operand `[ @@ { "," @@ } ] ")"`
}

// Operand is a copy, a move, or a constant.
type Operand struct {
	Copy  *Place `  "copy" @@`
	Move  *Place `| "move" @@`
	Const *Const `| "const" @@`
}

// Const is a literal constant.
// Example: "-1_i8"
type Const struct {
	Bool  *string `  @("true" | "false")`
	Typed *string `| @TypedInt`
}

// Place is a base local with trailing projections.
// Example: "(*_2).0[_3]"
type Place struct {
	Base  *PlaceBase `@@`
	Projs []*Proj    `@@*`
}

// PlaceBase is a bare local or a dereference of one.
type PlaceBase struct {
	Deref *string `  "(" "*" @Local ")"`
	Local *string `| @Local`
}

// Proj is a field or index projection.
type Proj struct {
	Field *int    `  "." @Integer`
	Index *string `| "[" @Local "]"`
}
