package boogie

import (
	"fmt"
	"strings"
)

// Dump renders a program in an indented, readable form for logs, tests, and
// the driver's -print flag. It is a diagnostic view of the tree, not the
// concrete emission syntax; producing verifier input is the writer's job.
func Dump(p *Program) string {
	pr := &printer{}
	for _, d := range p.DataTypes {
		pr.line(0, dataTypeHeader(d))
	}
	for _, c := range p.Consts {
		if c.Unique {
			pr.line(0, fmt.Sprintf("const unique %s: %s;", c.Name, c.Type))
		} else {
			pr.line(0, fmt.Sprintf("const %s: %s;", c.Name, c.Type))
		}
	}
	for _, v := range p.Vars {
		pr.line(0, fmt.Sprintf("var %s: %s;", v.Name, v.Type))
	}
	for _, a := range p.Axioms {
		pr.line(0, fmt.Sprintf("axiom %s;", a.Expr))
	}
	for _, f := range p.Functions {
		pr.line(0, functionHeader(f))
	}
	for _, proc := range p.Procedures {
		pr.blank()
		pr.procedure(proc)
	}
	return pr.b.String()
}

type printer struct {
	b strings.Builder
}

func (pr *printer) line(depth int, text string) {
	for i := 0; i < depth; i++ {
		pr.b.WriteString("  ")
	}
	pr.b.WriteString(text)
	pr.b.WriteByte('\n')
}

func (pr *printer) blank() {
	pr.b.WriteByte('\n')
}

func (pr *printer) procedure(proc *Procedure) {
	pr.line(0, fmt.Sprintf("procedure %s(%s)%s", proc.Name, paramList(proc.Params), returnsClause(proc.Returns)))
	if proc.Contract != nil {
		for _, r := range proc.Contract.Requires {
			pr.line(1, fmt.Sprintf("requires %s;", r))
		}
		for _, e := range proc.Contract.Ensures {
			pr.line(1, fmt.Sprintf("ensures %s;", e))
		}
		if len(proc.Contract.Modifies) > 0 {
			pr.line(1, fmt.Sprintf("modifies %s;", strings.Join(proc.Contract.Modifies, ", ")))
		}
	}
	pr.line(0, "{")
	pr.stmt(proc.Body, 1)
	pr.line(0, "}")
}

func (pr *printer) stmt(s Stmt, depth int) {
	switch s := s.(type) {
	case *Assignment:
		pr.line(depth, fmt.Sprintf("%s := %s;", s.Target, s.Value))
	case *Assert:
		pr.line(depth, fmt.Sprintf("assert %s;", s.Cond))
	case *Assume:
		pr.line(depth, fmt.Sprintf("assume %s;", s.Cond))
	case *Block:
		pr.line(depth, "{")
		for _, c := range s.Stmts {
			pr.stmt(c, depth+1)
		}
		pr.line(depth, "}")
	case *Break:
		pr.line(depth, "break;")
	case *CallStmt:
		args := make([]string, len(s.Args))
		for i, a := range s.Args {
			args[i] = a.String()
		}
		pr.line(depth, fmt.Sprintf("call %s(%s);", s.Symbol, strings.Join(args, ", ")))
	case *Decl:
		pr.line(depth, fmt.Sprintf("var %s: %s;", s.Name, s.Type))
	case *Havoc:
		pr.line(depth, fmt.Sprintf("havoc %s;", s.Name))
	case *If:
		pr.line(depth, fmt.Sprintf("if (%s) {", s.Cond))
		pr.stmt(s.Then, depth+1)
		if s.Else != nil {
			pr.line(depth, "} else {")
			pr.stmt(s.Else, depth+1)
		}
		pr.line(depth, "}")
	case *Goto:
		pr.line(depth, fmt.Sprintf("goto %s;", s.Label))
	case *Label:
		pr.line(depth, s.Name+":")
		pr.stmt(s.Stmt, depth+1)
	case *Return:
		pr.line(depth, "return;")
	case *While:
		pr.line(depth, fmt.Sprintf("while (%s) {", s.Cond))
		pr.stmt(s.Body, depth+1)
		pr.line(depth, "}")
	case *Null:
		pr.line(depth, "null;")
	default:
		pr.line(depth, fmt.Sprintf("/* unknown statement %T */", s))
	}
}

func stmtText(s Stmt) string {
	pr := &printer{}
	pr.stmt(s, 0)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func paramList(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	return strings.Join(parts, ", ")
}

func returnsClause(returns []Parameter) string {
	if len(returns) == 0 {
		return ""
	}
	return fmt.Sprintf(" returns (%s)", paramList(returns))
}

func functionHeader(f *Function) string {
	var b strings.Builder
	b.WriteString("function ")
	for _, attr := range f.Attributes {
		b.WriteString("{" + attr + "} ")
	}
	b.WriteString(f.Name)
	if len(f.TypeParams) > 0 {
		b.WriteString("<" + strings.Join(f.TypeParams, ", ") + ">")
	}
	b.WriteString("(" + paramList(f.Params) + ")")
	if f.ReturnType != nil {
		b.WriteString(fmt.Sprintf(" returns (%s)", f.ReturnType))
	}
	if f.Body != nil {
		b.WriteString(fmt.Sprintf(" { %s }", f.Body))
	} else {
		b.WriteString(";")
	}
	return b.String()
}

func dataTypeHeader(d *DataType) string {
	var b strings.Builder
	b.WriteString("datatype " + d.Name)
	if len(d.TypeParams) > 0 {
		b.WriteString("<" + strings.Join(d.TypeParams, ", ") + ">")
	}
	b.WriteString(" { ")
	for i, ctor := range d.Ctors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s(%s)", ctor.Name, paramList(ctor.Fields)))
	}
	b.WriteString(" }")
	return b.String()
}
