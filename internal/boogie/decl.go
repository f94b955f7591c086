package boogie

// Parameter represents a named, typed parameter or field
// Example: "len: bv64"
type Parameter struct {
	Name string
	Type Type
}

// Function represents a (possibly generic, possibly uninterpreted) function
// declaration. A nil Body leaves the function uninterpreted; attributes tie
// it to a solver primitive.
// Example: `function {:bvbuiltin "bvadd"} $BvAdd<T>(lhs: T, rhs: T) returns (T)`
type Function struct {
	Name       string
	TypeParams []string
	Params     []Parameter
	ReturnType Type
	Body       Expr
	Attributes []string
}

// Contract represents the requires, ensures, and modifies clauses attached
// to a procedure
type Contract struct {
	Requires []Expr
	Ensures  []Expr
	Modifies []string
}

// Procedure represents an implementation with exactly one body statement
type Procedure struct {
	Name     string
	Params   []Parameter
	Returns  []Parameter
	Contract *Contract
	Body     Stmt
}

// DataType represents an algebraic datatype declaration
// Example: `datatype $UnboundedArray<T> { $UnboundedArray(data: [bv64]T, len: bv64) }`
type DataType struct {
	Name       string
	TypeParams []string
	Ctors      []DataTypeCtor
}

// DataTypeCtor represents one constructor of a datatype
type DataTypeCtor struct {
	Name   string
	Fields []Parameter
}

// Axiom represents a global assumption
type Axiom struct {
	Expr Expr
}

// ConstDecl represents a global constant declaration
type ConstDecl struct {
	Name   string
	Type   Type
	Unique bool
}

// VarDecl represents a global variable declaration
type VarDecl struct {
	Name string
	Type Type
}

// Program represents a complete verification program. Declarations keep
// their insertion order.
type Program struct {
	DataTypes  []*DataType
	Consts     []*ConstDecl
	Vars       []*VarDecl
	Axioms     []*Axiom
	Functions  []*Function
	Procedures []*Procedure
}

func NewProgram() *Program {
	return &Program{}
}

func (p *Program) AddDataType(d *DataType) {
	p.DataTypes = append(p.DataTypes, d)
}

func (p *Program) AddConst(c *ConstDecl) {
	p.Consts = append(p.Consts, c)
}

func (p *Program) AddVar(v *VarDecl) {
	p.Vars = append(p.Vars, v)
}

func (p *Program) AddAxiom(a *Axiom) {
	p.Axioms = append(p.Axioms, a)
}

func (p *Program) AddFunction(f *Function) {
	p.Functions = append(p.Functions, f)
}

func (p *Program) AddProcedure(proc *Procedure) {
	p.Procedures = append(p.Procedures, proc)
}

// Function looks up a declared function by name.
func (p *Program) Function(name string) *Function {
	for _, f := range p.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Procedure looks up a procedure by name.
func (p *Program) Procedure(name string) *Procedure {
	for _, proc := range p.Procedures {
		if proc.Name == name {
			return proc
		}
	}
	return nil
}

// DataType looks up a datatype declaration by name.
func (p *Program) DataType(name string) *DataType {
	for _, d := range p.DataTypes {
		if d.Name == name {
			return d
		}
	}
	return nil
}
