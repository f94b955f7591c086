package irtext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boogen/internal/mir"
)

func TestParseEmptyFunction(t *testing.T) {
	source := `fn main {
  let _0: ()
  bb0: { return }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)
	require.Len(t, bodies, 1)

	body := bodies[0]
	assert.Equal(t, "main", body.Name)
	require.Len(t, body.Locals, 1)
	assert.Equal(t, "()", body.Locals[0].Type.String())
	require.Len(t, body.Blocks, 1)
	assert.Empty(t, body.Blocks[0].Statements)
	assert.IsType(t, &mir.Return{}, body.Blocks[0].Terminator)
}

func TestParseHarness(t *testing.T) {
	source := `fn check_add {
  let _0: ()
  let _1: u32
  let _2: u32
  let _3: bool
  let _4: bool
  bb0: {
    _1 = call verify::any_raw() -> bb1
  }
  bb1: {
    _3 = Lt(copy _1, const 1000_u32)
    _4 = call verify::assume(copy _3) -> bb2
  }
  bb2: {
    _2 = Add(copy _1, const 1_u32)
    _4 = Ge(copy _2, copy _1)
    _0 = call verify::assert(copy _4, const true) -> bb3
  }
  bb3: { return }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)
	require.Len(t, bodies, 1)

	body := bodies[0]
	assert.Equal(t, "check_add", body.Name)
	assert.Len(t, body.Locals, 5)
	require.Len(t, body.Blocks, 4)
	assert.NoError(t, body.Validate())

	call, ok := body.Blocks[0].Terminator.(*mir.CallTerm)
	require.True(t, ok, "bb0 should end in a call")
	assert.Equal(t, "_1 = call verify::any_raw() -> bb1", call.String())
	assert.Empty(t, call.Args)

	require.Len(t, body.Blocks[1].Statements, 1)
	assert.Equal(t, "_3 = Lt(copy _1, const 1000_u32)", body.Blocks[1].Statements[0].String())

	check, ok := body.Blocks[2].Terminator.(*mir.CallTerm)
	require.True(t, ok, "bb2 should end in a call")
	assert.Equal(t, "_0 = call verify::assert(copy _4, const true) -> bb3", check.String())
	assert.Len(t, check.Args, 2, "the condition and the message operand")
}

func TestParseMultipleFunctions(t *testing.T) {
	source := `fn first {
  let _0: ()
  bb0: { return }
}
fn demo::second {
  let _0: ()
  bb0: { unreachable }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, "first", bodies[0].Name)
	assert.Equal(t, "demo::second", bodies[1].Name)
	assert.IsType(t, &mir.Unreachable{}, bodies[1].Blocks[0].Terminator)
}

func TestParseSwitch(t *testing.T) {
	source := `fn pick {
  let _0: ()
  let _1: u32
  bb0: { switchInt(copy _1) [0: bb1, 7: bb2, otherwise: bb3] }
  bb1: { goto bb3 }
  bb2: { goto bb3 }
  bb3: { return }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)

	sw, ok := bodies[0].Blocks[0].Terminator.(*mir.SwitchInt)
	require.True(t, ok, "bb0 should end in a switch")
	assert.Equal(t, []uint64{0, 7}, sw.Targets.Values)
	assert.Equal(t, []mir.BlockID{1, 2}, sw.Targets.Blocks)
	assert.Equal(t, mir.BlockID(3), sw.Targets.Otherwise)
	assert.Equal(t, "switchInt(copy _1) [0: bb1, 7: bb2, otherwise: bb3]", sw.String())
}

func TestParseStatementForms(t *testing.T) {
	// Every statement round-trips through its display form.
	lines := []string{
		"_1 = const 5_u32",
		"_1 = const -1_i8",
		"_1 = const true",
		"_1 = copy _2",
		"_1 = move _2",
		"_1 = &_2",
		"_1 = Add(copy _1, copy _2)",
		"_1 = CheckedAdd(copy _1, const 1_u32)",
		"_1 = Not(copy _2)",
		"_1 = Neg(copy _2)",
		"_1 = copy _2 as u8 (IntToInt)",
		"(*_2) = copy _1",
		"_1 = copy _2.0",
		"_1 = copy _2[_3]",
		"StorageLive(_1)",
		"StorageDead(_1)",
		"nop",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			source := "fn f {\n  let _0: ()\n  bb0: {\n    " + line + "\n    return\n  }\n}"
			bodies, err := Parse("test.mir", source)
			require.NoError(t, err)
			require.Len(t, bodies[0].Blocks[0].Statements, 1)
			assert.Equal(t, line, bodies[0].Blocks[0].Statements[0].String())
		})
	}
}

func TestParseCastDefaultsToIntToInt(t *testing.T) {
	source := `fn f {
  let _0: ()
  let _1: u32
  bb0: {
    _1 = copy _1 as u8
    return
  }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)

	assign := bodies[0].Blocks[0].Statements[0].(*mir.Assign)
	cast, ok := assign.Rvalue.(*mir.CastRv)
	require.True(t, ok, "rvalue should be a cast")
	assert.Equal(t, mir.IntToInt, cast.Kind)
}

func TestParseAssertTerminator(t *testing.T) {
	source := `fn f {
  let _0: ()
  let _1: bool
  bb0: { assert(copy _1, expected: true) -> bb1 }
  bb1: { return }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)

	term, ok := bodies[0].Blocks[0].Terminator.(*mir.AssertTerm)
	require.True(t, ok, "bb0 should end in an assert")
	assert.True(t, term.Expected)
	assert.Equal(t, mir.BlockID(1), term.Target)
	assert.Equal(t, "assert(copy _1, expected: true) -> bb1", term.String())
}

func TestParseDerefPlace(t *testing.T) {
	source := `fn f {
  let _0: ()
  let _1: u32
  let _2: &mut u32
  bb0: {
    (*_2).0[_3] = copy _1
    return
  }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)

	assign := bodies[0].Blocks[0].Statements[0].(*mir.Assign)
	assert.Equal(t, "(*_2).0[_3]", assign.Place.Key())
	require.Len(t, assign.Place.Projection, 3)
	assert.IsType(t, &mir.DerefProj{}, assign.Place.Projection[0])
}

func TestParseTypes(t *testing.T) {
	// Type expressions round-trip through their display form.
	types := []string{
		"bool",
		"i8",
		"u32",
		"i128",
		"usize",
		"isize",
		"()",
		"(u32, bool)",
		"[u8; 4]",
		"&u32",
		"&mut u32",
		"&mut [u16; 2]",
	}

	for _, ty := range types {
		t.Run(ty, func(t *testing.T) {
			source := "fn f {\n  let _0: " + ty + "\n  bb0: { return }\n}"
			bodies, err := Parse("test.mir", source)
			require.NoError(t, err)
			assert.Equal(t, ty, bodies[0].Locals[0].Type.String())
		})
	}
}

func TestParseComments(t *testing.T) {
	source := `// harness under test
fn f {
  let _0: () // return place
  bb0: {
    return // done
  }
}`

	bodies, err := Parse("test.mir", source)
	require.NoError(t, err)
	assert.Equal(t, "f", bodies[0].Name)
}

func TestParseSyntaxError(t *testing.T) {
	source := `fn f {
  let _0: ()
  bb0: { return
}`

	_, err := Parse("test.mir", source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.mir", "errors carry the file name")
}

func TestFormatError(t *testing.T) {
	source := "fn f {\n  let _0: @\n  bb0: { return }\n}"

	_, err := Parse("test.mir", source)
	require.Error(t, err)

	msg := FormatError(source, err)
	assert.Contains(t, msg, "syntax error in test.mir at line 2")
	assert.Contains(t, msg, "let _0: @")
	assert.Contains(t, msg, "^")
}

func TestFormatErrorWithoutPosition(t *testing.T) {
	err := os.ErrNotExist
	assert.Equal(t, err.Error(), FormatError("", err))
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "local out of order",
			source: "fn f {\n  let _1: u32\n  bb0: { return }\n}",
			want:   "local _1 declared out of order",
		},
		{
			name:   "block out of order",
			source: "fn f {\n  let _0: ()\n  bb1: { return }\n}",
			want:   "block bb1 declared out of order",
		},
		{
			name:   "missing terminator",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = copy _1 }\n}",
			want:   "missing terminator",
		},
		{
			name:   "item after terminator",
			source: "fn f {\n  let _0: ()\n  bb0: { return goto bb0 }\n}",
			want:   "unreachable item after return",
		},
		{
			name:   "unknown type",
			source: "fn f {\n  let _0: f32\n  bb0: { return }\n}",
			want:   "unknown type f32",
		},
		{
			name:   "unknown operation",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = Frob(copy _1) return }\n}",
			want:   "unknown operation Frob",
		},
		{
			name:   "wrong binary arity",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = Add(copy _1) return }\n}",
			want:   "Add takes two operands, got 1",
		},
		{
			name:   "wrong unary arity",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = Not(copy _1, copy _2) return }\n}",
			want:   "Not takes one operand, got 2",
		},
		{
			name:   "missing otherwise",
			source: "fn f {\n  let _0: ()\n  bb0: { switchInt(copy _1) [0: bb1] }\n  bb1: { return }\n}",
			want:   "switchInt needs an otherwise arm",
		},
		{
			name:   "duplicate otherwise",
			source: "fn f {\n  let _0: ()\n  bb0: { switchInt(copy _1) [otherwise: bb1, otherwise: bb1] }\n  bb1: { return }\n}",
			want:   "duplicate otherwise arm",
		},
		{
			name:   "non-integer constant suffix",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = const 5_bool return }\n}",
			want:   "not an integer type",
		},
		{
			name:   "unknown cast kind",
			source: "fn f {\n  let _0: ()\n  bb0: { _0 = copy _1 as u8 (Transmute) return }\n}",
			want:   "unknown cast kind Transmute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.mir", tt.source)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "fn f", "errors name the function")
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.mir")
	source := "fn f {\n  let _0: ()\n  bb0: { return }\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	bodies, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, bodies, 1)
	assert.Equal(t, "f", bodies[0].Name)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.mir"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
