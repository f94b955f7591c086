package boogie

// Stmt is the closed set of verification-language statements.
type Stmt interface {
	isStmt()
	String() string
}

// Assignment represents assigning a value to a named target
// Example: "_1 := $BvAdd(_2, _3);"
type Assignment struct {
	Target string
	Value  Expr
}

// Assert represents a proof obligation the verifier must discharge
type Assert struct {
	Cond Expr
}

// Assume represents a fact the verifier may rely on without proof
type Assume struct {
	Cond Expr
}

// Block represents a statement sequence. Build blocks through NewBlock so
// that single statements are never wrapped.
type Block struct {
	Stmts []Stmt
}

// Break represents breaking out of the enclosing loop
type Break struct{}

// CallStmt represents a procedure call statement
type CallStmt struct {
	Symbol string
	Args   []Expr
}

// Decl represents a local variable declaration
// Example: "var _1: bv32;"
type Decl struct {
	Name string
	Type Type
}

// Havoc represents assigning a nondeterministic value to a variable
type Havoc struct {
	Name string
}

// If represents a conditional statement. Else may be nil.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// Goto represents an unconditional jump to a label
type Goto struct {
	Label string
}

// Label attaches a jump target name to a statement
type Label struct {
	Name string
	Stmt Stmt
}

// Return represents returning from the enclosing procedure
type Return struct{}

// While represents a loop with a head condition
type While struct {
	Cond Expr
	Body Stmt
}

// Null represents the empty statement
type Null struct{}

func (*Assignment) isStmt() {}
func (*Assert) isStmt()     {}
func (*Assume) isStmt()     {}
func (*Block) isStmt()      {}
func (*Break) isStmt()      {}
func (*CallStmt) isStmt()   {}
func (*Decl) isStmt()       {}
func (*Havoc) isStmt()      {}
func (*If) isStmt()         {}
func (*Goto) isStmt()       {}
func (*Label) isStmt()      {}
func (*Return) isStmt()     {}
func (*While) isStmt()      {}
func (*Null) isStmt()       {}

// NewBlock builds the canonical statement for a sequence: a single statement
// stands on its own, everything else becomes a Block. Statement sequences
// must always be assembled through this constructor so that equal program
// shapes produce equal trees.
func NewBlock(stmts []Stmt) Stmt {
	if len(stmts) == 1 {
		return stmts[0]
	}
	return &Block{Stmts: stmts}
}

func (s *Assignment) String() string { return stmtText(s) }
func (s *Assert) String() string     { return stmtText(s) }
func (s *Assume) String() string     { return stmtText(s) }
func (s *Block) String() string      { return stmtText(s) }
func (s *Break) String() string      { return stmtText(s) }
func (s *CallStmt) String() string   { return stmtText(s) }
func (s *Decl) String() string       { return stmtText(s) }
func (s *Havoc) String() string      { return stmtText(s) }
func (s *If) String() string         { return stmtText(s) }
func (s *Goto) String() string       { return stmtText(s) }
func (s *Label) String() string      { return stmtText(s) }
func (s *Return) String() string     { return stmtText(s) }
func (s *While) String() string      { return stmtText(s) }
func (s *Null) String() string       { return stmtText(s) }
