package mir

import (
	"fmt"
)

// Local identifies a function-local slot by index. Local 0 is the return
// place; arguments and temporaries follow.
type Local int

// Name returns the display name of the local.
// Example: "_0", "_17"
func (l Local) Name() string {
	return fmt.Sprintf("_%d", int(l))
}

// LocalDecl declares the type of one local.
type LocalDecl struct {
	Type Type
}

// ProjElem is the closed set of place projections.
type ProjElem interface {
	isProjElem()
}

// DerefProj dereferences the place built so far
type DerefProj struct{}

// FieldProj selects the field with the given declaration index
type FieldProj struct {
	Index int
}

// IndexProj indexes with the value of another local
type IndexProj struct {
	Local Local
}

func (*DerefProj) isProjElem() {}
func (*FieldProj) isProjElem() {}
func (*IndexProj) isProjElem() {}

// Place names a memory location: a base local plus a projection path.
type Place struct {
	Local      Local
	Projection []ProjElem
}

// PlaceOf is shorthand for a projection-free place.
func PlaceOf(l Local) Place {
	return Place{Local: l}
}

// Key renders the canonical spelling of the place. Two places name the same
// location exactly when their keys are equal, which makes the key usable as
// an exact-match map key.
// Example: "_1", "(*_2)", "_3.0[_4]"
func (p Place) Key() string {
	s := p.Local.Name()
	for _, elem := range p.Projection {
		switch elem := elem.(type) {
		case *DerefProj:
			s = "(*" + s + ")"
		case *FieldProj:
			s = fmt.Sprintf("%s.%d", s, elem.Index)
		case *IndexProj:
			s = fmt.Sprintf("%s[%s]", s, elem.Local.Name())
		}
	}
	return s
}

func (p Place) String() string {
	return p.Key()
}

// BlockID identifies a basic block by index. Block 0 is the entry.
type BlockID int

// Label returns the display label of the block.
// Example: "bb0", "bb7"
func (b BlockID) Label() string {
	return fmt.Sprintf("bb%d", int(b))
}

// BasicBlock is a straight-line statement run ended by one terminator.
type BasicBlock struct {
	Statements []Statement
	Terminator Terminator
}

// Body is one function: its display name, local declarations, and blocks.
type Body struct {
	Name   string
	Locals []LocalDecl
	Blocks []BasicBlock
}

// LocalType returns the declared type of a local.
func (b *Body) LocalType(l Local) Type {
	return b.Locals[l].Type
}

// PlaceType folds a place's projections over its base local's type.
func (b *Body) PlaceType(p Place) (Type, error) {
	if int(p.Local) >= len(b.Locals) {
		return nil, fmt.Errorf("place %s: local out of range", p.Key())
	}
	t := b.Locals[p.Local].Type
	for _, elem := range p.Projection {
		switch elem := elem.(type) {
		case *DerefProj:
			ref, ok := t.(*RefType)
			if !ok {
				return nil, fmt.Errorf("place %s: deref of non-reference %s", p.Key(), t)
			}
			t = ref.Referent
		case *FieldProj:
			switch base := t.(type) {
			case *AdtType:
				if elem.Index >= len(base.Def.Fields) {
					return nil, fmt.Errorf("place %s: field %d out of range for %s", p.Key(), elem.Index, base)
				}
				t = base.Def.Fields[elem.Index].Type
			case *TupleType:
				if elem.Index >= len(base.Elems) {
					return nil, fmt.Errorf("place %s: field %d out of range for %s", p.Key(), elem.Index, base)
				}
				t = base.Elems[elem.Index]
			default:
				return nil, fmt.Errorf("place %s: field projection on %s", p.Key(), t)
			}
		case *IndexProj:
			arr, ok := t.(*ArrayType)
			if !ok {
				return nil, fmt.Errorf("place %s: index projection on %s", p.Key(), t)
			}
			t = arr.Element
		}
	}
	return t, nil
}

// OperandType returns the type an operand evaluates to.
func (b *Body) OperandType(op Operand) (Type, error) {
	switch op := op.(type) {
	case *Copy:
		return b.PlaceType(op.Place)
	case *Move:
		return b.PlaceType(op.Place)
	case *ConstOperand:
		return op.Const.Type(), nil
	}
	return nil, fmt.Errorf("unknown operand %T", op)
}

// Validate checks structural well-formedness: blocks are terminated, jump
// targets are in range, and statement places refer to declared locals. It
// does not type-check the program.
func (b *Body) Validate() error {
	for id, block := range b.Blocks {
		if block.Terminator == nil {
			return fmt.Errorf("%s: %s has no terminator", b.Name, BlockID(id).Label())
		}
		for _, succ := range block.Terminator.Successors() {
			if int(succ) < 0 || int(succ) >= len(b.Blocks) {
				return fmt.Errorf("%s: %s jumps to undefined %s", b.Name, BlockID(id).Label(), succ.Label())
			}
		}
		for _, stmt := range block.Statements {
			assign, ok := stmt.(*Assign)
			if !ok {
				continue
			}
			if int(assign.Place.Local) >= len(b.Locals) {
				return fmt.Errorf("%s: %s assigns undeclared local %s", b.Name, BlockID(id).Label(), assign.Place.Local.Name())
			}
		}
	}
	return nil
}
