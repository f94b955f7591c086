package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boogen/internal/mir"
)

func TestPrimitivesHaveSize(t *testing.T) {
	o := New()

	assert.False(t, o.IsZeroSize(&mir.BoolType{}))
	assert.False(t, o.IsZeroSize(&mir.IntType{Width: 8}))
	assert.False(t, o.IsZeroSize(&mir.UintType{Width: 0}))
	assert.False(t, o.IsZeroSize(&mir.RefType{Referent: &mir.BoolType{}}))
}

func TestMarkersAndFnRefsAreZeroSize(t *testing.T) {
	o := New()

	assert.True(t, o.IsZeroSize(&mir.MarkerType{}))
	assert.True(t, o.IsZeroSize(&mir.FnDefType{Name: "verify::assert"}))
}

func TestTuples(t *testing.T) {
	o := New()

	assert.True(t, o.IsZeroSize(&mir.TupleType{}), "the unit type is zero-size")
	assert.True(t, o.IsZeroSize(&mir.TupleType{Elems: []mir.Type{&mir.MarkerType{}}}))
	assert.False(t, o.IsZeroSize(&mir.TupleType{Elems: []mir.Type{&mir.MarkerType{}, &mir.BoolType{}}}))
}

func TestArrays(t *testing.T) {
	o := New()

	assert.True(t, o.IsZeroSize(&mir.ArrayType{Element: &mir.UintType{Width: 8}, Len: 0}))
	assert.True(t, o.IsZeroSize(&mir.ArrayType{Element: &mir.MarkerType{}, Len: 4}))
	assert.False(t, o.IsZeroSize(&mir.ArrayType{Element: &mir.UintType{Width: 8}, Len: 4}))
}

func TestAggregates(t *testing.T) {
	o := New()

	phantom := &mir.AdtType{Def: &mir.AdtDef{
		Name:   "verify::Array",
		Fields: []mir.FieldDef{{Name: "_marker", Type: &mir.MarkerType{}}},
	}}
	assert.True(t, o.IsZeroSize(phantom), "marker-only aggregates occupy no storage")

	pair := &mir.AdtType{Def: &mir.AdtDef{
		Name: "Pair",
		Fields: []mir.FieldDef{
			{Name: "first", Type: &mir.UintType{Width: 8}},
			{Name: "second", Type: &mir.UintType{Width: 8}},
		},
	}}
	assert.False(t, o.IsZeroSize(pair))

	empty := &mir.AdtType{Def: &mir.AdtDef{Name: "Empty"}}
	assert.True(t, o.IsZeroSize(empty))
}
