package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boogen/internal/boogie"
	"boogen/internal/config"
	"boogen/internal/errors"
	"boogen/internal/layout"
	"boogen/internal/mir"
)

func TestLowerTypePrimitives(t *testing.T) {
	ctx := newTestContext()

	cases := []struct {
		name string
		in   mir.Type
		want string
	}{
		{"Bool", &mir.BoolType{}, "bool"},
		{"I8", &mir.IntType{Width: 8}, "bv8"},
		{"I128", &mir.IntType{Width: 128}, "bv128"},
		{"U32", &mir.UintType{Width: 32}, "bv32"},
		{"Isize", &mir.IntType{}, "bv64"},
		{"Usize", &mir.UintType{}, "bv64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ctx.lowerType(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestLowerTypePointerWidth(t *testing.T) {
	opts := config.Default()
	opts.PointerWidth = 32
	ctx := NewContext(opts, nil, layout.New())

	got, err := ctx.lowerType(&mir.UintType{})
	assert.NoError(t, err)
	assert.Equal(t, "bv32", got.String(), "pointer-sized integers follow the configured width")
}

func TestLowerTypeArray(t *testing.T) {
	ctx := newTestContext()

	got, err := ctx.lowerType(&mir.ArrayType{Element: &mir.UintType{Width: 8}, Len: 4})
	assert.NoError(t, err)

	arr, ok := got.(*boogie.ArrayType)
	require.True(t, ok)
	assert.Equal(t, "bv8", arr.Element.String())
}

func TestLowerTypeTuple(t *testing.T) {
	ctx := newTestContext()

	got, err := ctx.lowerType(&mir.TupleType{Elems: []mir.Type{&mir.BoolType{}, &mir.UintType{Width: 8}}})
	assert.NoError(t, err)
	assert.Equal(t, "bool", got.String(), "only the first element is represented")

	_, err = ctx.lowerType(&mir.TupleType{})
	assert.True(t, errors.IsUnsupported(err), "the unit type has no representation")
}

func TestLowerTypeReferences(t *testing.T) {
	ctx := newTestContext()

	got, err := ctx.lowerType(&mir.RefType{Referent: &mir.UintType{Width: 16}})
	assert.NoError(t, err)
	assert.Equal(t, "bv16", got.String(), "immutable references are transparent")

	_, err = ctx.lowerType(&mir.RefType{Referent: &mir.UintType{Width: 16}, Mutable: true})
	assert.True(t, errors.IsUnsupported(err))
}

func TestLowerTypeUnknownAggregate(t *testing.T) {
	ctx := newTestContext()

	def := &mir.AdtDef{
		Name:   "std::vec::Vec",
		Fields: []mir.FieldDef{{Name: "buf", Type: &mir.UintType{}}},
	}
	_, err := ctx.lowerType(&mir.AdtType{Def: def})
	assert.True(t, errors.IsUnsupported(err))
	assert.Contains(t, err.Error(), "std::vec::Vec", "the error names the aggregate")
}

func TestLowerTypeMarkers(t *testing.T) {
	ctx := newTestContext()

	_, err := ctx.lowerType(&mir.MarkerType{})
	assert.True(t, errors.IsUnsupported(err))

	_, err = ctx.lowerType(&mir.FnDefType{Name: "demo::f"})
	assert.True(t, errors.IsUnsupported(err))
}

// verifyArray builds the recognized dynamic-array abstraction: a marker-only
// shell generic over its payload.
func verifyArray(payload mir.Type) *mir.AdtType {
	def := &mir.AdtDef{
		Name:   "verify::Array",
		Fields: []mir.FieldDef{{Name: "_marker", Type: &mir.MarkerType{}}},
	}
	return &mir.AdtType{Def: def, Args: []mir.Type{payload}}
}

func TestLowerTypeUnboundedArray(t *testing.T) {
	ctx := newTestContext()

	got, err := ctx.lowerType(verifyArray(&mir.UintType{Width: 32}))
	assert.NoError(t, err)

	ref, ok := got.(*boogie.DataTypeRef)
	require.True(t, ok)
	assert.Equal(t, "$UnboundedArray", ref.Name)
	require.Len(t, ref.Args, 1)
	assert.Equal(t, "bv32", ref.Args[0].String())
}

func TestLowerTypeUnboundedArrayNestedPayload(t *testing.T) {
	ctx := newTestContext()

	_, err := ctx.lowerType(verifyArray(&mir.RefType{Referent: &mir.UintType{Width: 8}, Mutable: true}))
	assert.True(t, errors.IsUnsupported(err), "an untranslatable payload fails the whole abstraction")
}

func TestLowerTypeUnboundedArrayShape(t *testing.T) {
	ctx := newTestContext()

	t.Run("NoZeroSizeField", func(t *testing.T) {
		adt := verifyArray(&mir.UintType{Width: 8})
		adt.Def.Fields = []mir.FieldDef{{Name: "len", Type: &mir.UintType{}}}

		_, err := ctx.lowerType(adt)
		assert.True(t, errors.IsInvariant(err))
		assert.Contains(t, err.Error(), "exactly one zero-size field")
	})

	t.Run("TwoZeroSizeFields", func(t *testing.T) {
		adt := verifyArray(&mir.UintType{Width: 8})
		adt.Def.Fields = []mir.FieldDef{
			{Name: "_a", Type: &mir.MarkerType{}},
			{Name: "_b", Type: &mir.MarkerType{}},
		}

		_, err := ctx.lowerType(adt)
		assert.True(t, errors.IsInvariant(err))
	})

	t.Run("ZeroSizeFieldIsNotAMarker", func(t *testing.T) {
		adt := verifyArray(&mir.UintType{Width: 8})
		adt.Def.Fields = []mir.FieldDef{{Name: "_u", Type: &mir.TupleType{}}}

		_, err := ctx.lowerType(adt)
		assert.True(t, errors.IsInvariant(err))
		assert.Contains(t, err.Error(), "marker")
	})

	t.Run("WrongTypeArity", func(t *testing.T) {
		adt := verifyArray(&mir.UintType{Width: 8})
		adt.Args = []mir.Type{&mir.UintType{Width: 8}, &mir.UintType{Width: 8}}

		_, err := ctx.lowerType(adt)
		assert.True(t, errors.IsInvariant(err))
		assert.Contains(t, err.Error(), "type argument")
	})
}

func TestLowerTypeRespectsAbstractionOption(t *testing.T) {
	opts := config.Default()
	opts.ArrayAbstraction = "mylib::Seq"
	ctx := NewContext(opts, nil, layout.New())

	_, err := ctx.lowerType(verifyArray(&mir.UintType{Width: 8}))
	assert.True(t, errors.IsUnsupported(err), "only the configured aggregate is recognized")

	seq := verifyArray(&mir.UintType{Width: 8})
	seq.Def.Name = "mylib::Seq"
	got, err := ctx.lowerType(seq)
	assert.NoError(t, err)
	assert.Equal(t, "$UnboundedArray bv8", got.String())
}
