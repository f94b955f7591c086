package codegen

import (
	"boogen/internal/boogie"
	"boogen/internal/errors"
	"boogen/internal/mir"
)

// lowerType maps a source type to its verification-language counterpart.
// Booleans and fixed-width integers map directly; immutable references are
// transparent; the recognized dynamic-array abstraction maps onto the
// preamble datatype. Everything else is not translatable.
func (ctx *Context) lowerType(t mir.Type) (boogie.Type, error) {
	switch t := t.(type) {
	case *mir.BoolType:
		return &boogie.BoolType{}, nil
	case *mir.IntType:
		width, _, _ := mir.IntBits(t, ctx.opts.PointerWidth)
		return &boogie.BvType{Width: width}, nil
	case *mir.UintType:
		width, _, _ := mir.IntBits(t, ctx.opts.PointerWidth)
		return &boogie.BvType{Width: width}, nil
	case *mir.ArrayType:
		elem, err := ctx.lowerType(t.Element)
		if err != nil {
			return nil, err
		}
		// TODO: carry the source length through; the writer needs it to
		// bound index axioms.
		return &boogie.ArrayType{Element: elem, Len: 0}, nil
	case *mir.TupleType:
		if len(t.Elems) == 0 {
			return nil, errors.Unsupportedf("type", "unit type %s", t)
		}
		// Only the first element is represented so far.
		return ctx.lowerType(t.Elems[0])
	case *mir.AdtType:
		if t.Def.Name == ctx.opts.ArrayAbstraction {
			return ctx.lowerUnboundedArray(t)
		}
		return nil, errors.Unsupportedf("type", "aggregate %s", t.Def.Name)
	case *mir.RefType:
		if t.Mutable {
			return nil, errors.Unsupportedf("type", "mutable reference %s", t)
		}
		return ctx.lowerType(t.Referent)
	}
	return nil, errors.Unsupportedf("type", "%s", t)
}

// lowerUnboundedArray maps the recognized dynamic-array abstraction onto the
// preamble datatype. The abstraction must be a marker-only shell: exactly
// one zero-size field, which is a marker, and exactly one type argument
// naming the payload.
func (ctx *Context) lowerUnboundedArray(t *mir.AdtType) (boogie.Type, error) {
	var zeroSized []mir.FieldDef
	for _, f := range t.Def.Fields {
		if ctx.layouts.IsZeroSize(f.Type) {
			zeroSized = append(zeroSized, f)
		}
	}
	if len(zeroSized) != 1 {
		return nil, errors.Invariantf("%s must have exactly one zero-size field, found %d", t.Def.Name, len(zeroSized))
	}
	if _, ok := zeroSized[0].Type.(*mir.MarkerType); !ok {
		return nil, errors.Invariantf("the zero-size field of %s must be a marker, found %s", t.Def.Name, zeroSized[0].Type)
	}
	if len(t.Args) != 1 {
		return nil, errors.Invariantf("%s must have exactly one type argument, found %d", t.Def.Name, len(t.Args))
	}

	payload, err := ctx.lowerType(t.Args[0])
	if err != nil {
		return nil, err
	}
	return &boogie.DataTypeRef{Name: unboundedArrayName, Args: []boogie.Type{payload}}, nil
}
