// Package layout answers storage-size questions about source types. The
// translator only needs one answer, "does this type occupy any storage at
// all", so the oracle is deliberately small; a real frontend would substitute
// its own layout computation behind the same interface.
package layout

import (
	"boogen/internal/mir"
)

// Oracle classifies source types by size.
type Oracle struct{}

func New() *Oracle {
	return &Oracle{}
}

// IsZeroSize reports whether values of t occupy no storage. Markers and
// function references are zero-size, aggregates are zero-size when all of
// their parts are, and primitive values and references never are.
func (o *Oracle) IsZeroSize(t mir.Type) bool {
	switch t := t.(type) {
	case *mir.MarkerType:
		return true
	case *mir.FnDefType:
		return true
	case *mir.TupleType:
		for _, e := range t.Elems {
			if !o.IsZeroSize(e) {
				return false
			}
		}
		return true
	case *mir.ArrayType:
		return t.Len == 0 || o.IsZeroSize(t.Element)
	case *mir.AdtType:
		for _, f := range t.Def.Fields {
			if !o.IsZeroSize(f.Type) {
				return false
			}
		}
		return true
	}
	return false
}
