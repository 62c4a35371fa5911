package kv

import "fmt"

type valueKind uint8

const (
	valuePrimitive valueKind = iota
	valueFill
	valueDebug
	valueDisplay
	valueZap
)

// Value captures a value of unknown concrete type for later inspection by
// formatters, encoders and typed coercions. A Value only references what it
// was built from; the referenced data must outlive every use of the Value.
//
// The zero Value is None.
type Value struct {
	kind valueKind
	prim primitive
	ref  any
}

// Uint64 returns a Value holding an unsigned integer.
func Uint64(v uint64) Value {
	return Value{prim: unsignedPrimitive(v)}
}

// Int64 returns a Value holding a signed integer.
func Int64(v int64) Value {
	return Value{prim: signedPrimitive(v)}
}

// Float64 returns a Value holding a float.
func Float64(v float64) Value {
	return Value{prim: floatPrimitive(v)}
}

// Bool returns a Value holding a boolean.
func Bool(v bool) Value {
	return Value{prim: boolPrimitive(v)}
}

// Char returns a Value holding a single character.
func Char(v rune) Value {
	return Value{prim: charPrimitive(v)}
}

// String returns a Value referencing s.
func String(s string) Value {
	return Value{prim: strPrimitive(s)}
}

// Null returns a Value representing an explicit absence.
func Null() Value {
	return Value{}
}

// FromDebug captures v for debug-style rendering only. It never coerces to a
// scalar or string.
func FromDebug(v any) Value {
	return Value{kind: valueDebug, ref: v}
}

// FromDisplay captures v for display-style rendering only. A nil Stringer
// yields None.
func FromDisplay(v fmt.Stringer) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: valueDisplay, ref: v}
}

// FromFill captures a value that produces its representation on demand. A
// nil Filler yields None.
func FromFill(v Filler) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: valueFill, ref: v}
}

// Any captures v using the narrowest representation available: Go scalars
// become primitives, Fillers are deferred, Stringers and errors use the
// display path and everything else the debug path.
func Any(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int64(int64(x))
	case int8:
		return Int64(int64(x))
	case int16:
		return Int64(int64(x))
	case int32:
		return Int64(int64(x))
	case int64:
		return Int64(x)
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	case uintptr:
		return Uint64(uint64(x))
	case float32:
		return Float64(float64(x))
	case float64:
		return Float64(x)
	case Filler:
		return FromFill(x)
	}
	if structured, ok := anyStructured(v); ok {
		return structured
	}
	switch x := v.(type) {
	case fmt.Stringer:
		return FromDisplay(x)
	case error:
		return FromDisplay(errorDisplay{x})
	}
	return FromDebug(v)
}

// visit dispatches v into vis with exactly one visitor call. Fill values make
// that call through their Slot.
func (v Value) visit(vis visitor) error {
	switch v.kind {
	case valuePrimitive:
		return v.prim.visit(vis)
	case valueFill:
		return fillInto(v.ref.(Filler), vis)
	case valueDebug:
		return vis.visitDebug(v.ref)
	case valueDisplay:
		return vis.visitDisplay(v.ref.(fmt.Stringer))
	default:
		return visitStructured(v, vis)
	}
}
