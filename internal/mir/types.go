// Package mir models the source intermediate representation the backend
// consumes: functions as control-flow graphs of basic blocks over typed,
// index-named locals. The shape follows the usual mid-level IR conventions
// (locals `_0`, `_1`, ... with `_0` the return place, blocks `bb0`, `bb1`,
// ...) so dumps read like the upstream compiler's.
package mir

import (
	"fmt"
	"strings"
)

// Type is the closed set of source-level types.
type Type interface {
	isType()
	String() string
}

// BoolType represents the boolean type
type BoolType struct{}

// IntType represents a signed integer. Width 0 means pointer-sized.
type IntType struct {
	Width int
}

// UintType represents an unsigned integer. Width 0 means pointer-sized.
type UintType struct {
	Width int
}

// ArrayType represents a fixed-length array
// Example: "[u8; 4]"
type ArrayType struct {
	Element Type
	Len     int
}

// TupleType represents a tuple; the empty tuple is the unit type
type TupleType struct {
	Elems []Type
}

// RefType represents a reference
// Example: "&u32", "&mut u32"
type RefType struct {
	Referent Type
	Mutable  bool
}

// AdtType represents a nominal aggregate instantiated with type arguments
type AdtType struct {
	Def  *AdtDef
	Args []Type
}

// AdtDef describes the declaration an AdtType instantiates.
type AdtDef struct {
	Name   string
	Fields []FieldDef
}

// FieldDef is a named field of an aggregate.
type FieldDef struct {
	Name string
	Type Type
}

// MarkerType represents a zero-size marker such as a phantom payload field
type MarkerType struct{}

// FnDefType represents the zero-size type of a reference to the function
// with the given fully qualified name.
type FnDefType struct {
	Name string
}

func (*BoolType) isType()   {}
func (*IntType) isType()    {}
func (*UintType) isType()   {}
func (*ArrayType) isType()  {}
func (*TupleType) isType()  {}
func (*RefType) isType()    {}
func (*AdtType) isType()    {}
func (*MarkerType) isType() {}
func (*FnDefType) isType()  {}

func (t *BoolType) String() string {
	return "bool"
}

func (t *IntType) String() string {
	if t.Width == 0 {
		return "isize"
	}
	return fmt.Sprintf("i%d", t.Width)
}

func (t *UintType) String() string {
	if t.Width == 0 {
		return "usize"
	}
	return fmt.Sprintf("u%d", t.Width)
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", t.Element, t.Len)
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *RefType) String() string {
	if t.Mutable {
		return "&mut " + t.Referent.String()
	}
	return "&" + t.Referent.String()
}

func (t *AdtType) String() string {
	if len(t.Args) == 0 {
		return t.Def.Name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Def.Name, strings.Join(args, ", "))
}

func (t *MarkerType) String() string {
	return "marker"
}

func (t *FnDefType) String() string {
	return "fn " + t.Name
}

// IntBits reports the width and signedness of an integer type, resolving
// pointer-sized integers against pointerWidth. ok is false for
// non-integer types.
func IntBits(t Type, pointerWidth int) (width int, signed bool, ok bool) {
	switch t := t.(type) {
	case *IntType:
		if t.Width == 0 {
			return pointerWidth, true, true
		}
		return t.Width, true, true
	case *UintType:
		if t.Width == 0 {
			return pointerWidth, false, true
		}
		return t.Width, false, true
	}
	return 0, false, false
}
