// Package boogie defines the abstract syntax of the generated verification
// programs: types, literals, expressions, statements, and top-level
// declarations. Construction happens through the translator; rendering the
// concrete syntax is the writer's job and deliberately lives elsewhere.
package boogie

import (
	"fmt"
	"strings"
)

// Type is the closed set of verification-language types.
type Type interface {
	isType()
	String() string
}

// BoolType represents the boolean type
type BoolType struct{}

// BvType represents a fixed-width bit-vector type
// Example: "bv32"
type BvType struct {
	Width int
}

// IntType represents the unbounded mathematical integer type
type IntType struct{}

// MapType represents a total map from keys to values
// Example: "[bv64]bv8"
type MapType struct {
	Key   Type
	Value Type
}

// ArrayType represents a fixed-length array of elements
type ArrayType struct {
	Element Type
	Len     int
}

// TypeParam represents a reference to a type parameter in scope
// Example: "T" in a generic function signature
type TypeParam struct {
	Name string
}

// DataTypeRef represents an instantiated datatype
// Example: "$UnboundedArray bv32"
type DataTypeRef struct {
	Name string
	Args []Type
}

func (*BoolType) isType()    {}
func (*BvType) isType()      {}
func (*IntType) isType()     {}
func (*MapType) isType()     {}
func (*ArrayType) isType()   {}
func (*TypeParam) isType()   {}
func (*DataTypeRef) isType() {}

func (t *BoolType) String() string {
	return "bool"
}

func (t *BvType) String() string {
	return fmt.Sprintf("bv%d", t.Width)
}

func (t *IntType) String() string {
	return "int"
}

func (t *MapType) String() string {
	return fmt.Sprintf("[%s]%s", t.Key, t.Value)
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("%s[%d]", t.Element, t.Len)
}

func (t *TypeParam) String() string {
	return t.Name
}

func (t *DataTypeRef) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s %s", t.Name, strings.Join(args, " "))
}
