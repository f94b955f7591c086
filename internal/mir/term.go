package mir

import (
	"fmt"
	"strings"
)

// Terminator is the closed set of block-ending instructions. Every
// terminator knows its successor blocks, which is what the traversal and
// validation code consume.
type Terminator interface {
	isTerminator()
	Successors() []BlockID
	String() string
}

// Return ends the function, yielding local _0
type Return struct{}

// Goto jumps unconditionally
type Goto struct {
	Target BlockID
}

// SwitchInt compares a discriminant against literal values
type SwitchInt struct {
	Discr   Operand
	Targets SwitchTargets
}

// SwitchTargets pairs literal values with their target blocks, plus the
// fallback taken when no value matches.
type SwitchTargets struct {
	Values    []uint64
	Blocks    []BlockID
	Otherwise BlockID
}

// All returns every target, the fallback last.
func (st SwitchTargets) All() []BlockID {
	all := make([]BlockID, 0, len(st.Blocks)+1)
	all = append(all, st.Blocks...)
	return append(all, st.Otherwise)
}

// AssertTerm checks a runtime condition and continues to Target when the
// condition has the expected value.
type AssertTerm struct {
	Cond     Operand
	Expected bool
	Target   BlockID
}

// CallTerm invokes a function and continues at Target with the result
// written to Destination. A nil Target means the call never returns.
type CallTerm struct {
	Func        Operand
	Args        []Operand
	Destination Place
	Target      *BlockID
}

// Unreachable marks control flow the compiler proved impossible
type Unreachable struct{}

func (*Return) isTerminator()      {}
func (*Goto) isTerminator()        {}
func (*SwitchInt) isTerminator()   {}
func (*AssertTerm) isTerminator()  {}
func (*CallTerm) isTerminator()    {}
func (*Unreachable) isTerminator() {}

func (t *Return) Successors() []BlockID {
	return nil
}

func (t *Goto) Successors() []BlockID {
	return []BlockID{t.Target}
}

func (t *SwitchInt) Successors() []BlockID {
	return t.Targets.All()
}

func (t *AssertTerm) Successors() []BlockID {
	return []BlockID{t.Target}
}

func (t *CallTerm) Successors() []BlockID {
	if t.Target == nil {
		return nil
	}
	return []BlockID{*t.Target}
}

func (t *Unreachable) Successors() []BlockID {
	return nil
}

func (t *Return) String() string {
	return "return"
}

func (t *Goto) String() string {
	return "goto " + t.Target.Label()
}

func (t *SwitchInt) String() string {
	var arms []string
	for i, v := range t.Targets.Values {
		arms = append(arms, fmt.Sprintf("%d: %s", v, t.Targets.Blocks[i].Label()))
	}
	arms = append(arms, "otherwise: "+t.Targets.Otherwise.Label())
	return fmt.Sprintf("switchInt(%s) [%s]", t.Discr, strings.Join(arms, ", "))
}

func (t *AssertTerm) String() string {
	return fmt.Sprintf("assert(%s, expected: %t) -> %s", t.Cond, t.Expected, t.Target.Label())
}

func (t *CallTerm) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	callee := t.Func.String()
	if c, ok := t.Func.(*ConstOperand); ok {
		if fn, ok := c.Const.Type().(*FnDefType); ok {
			callee = fn.Name
		}
	}
	s := fmt.Sprintf("%s = call %s(%s)", t.Destination, callee, strings.Join(args, ", "))
	if t.Target != nil {
		s += " -> " + t.Target.Label()
	}
	return s
}

func (t *Unreachable) String() string {
	return "unreachable"
}
