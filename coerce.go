package kv

import "fmt"

// coerced is the neutral result of a coercion pass: a primitive, or an owned
// copy of text that arrived through a non-primitive path. none is set only
// when an explicit None was dispatched.
type coerced struct {
	prim  primitive
	text  string
	owned bool
	none  bool
}

func (c coerced) intoPrimitive() primitive {
	if c.owned {
		return primitive{}
	}
	return c.prim
}

// coercer records whichever primitive was dispatched to it last.
type coercer struct {
	result coerced
}

func (c *coercer) set(p primitive) {
	c.result = coerced{prim: p, none: p.kind == primitiveNone}
}

func (c *coercer) visitUint64(v uint64) error {
	c.set(unsignedPrimitive(v))
	return nil
}

func (c *coercer) visitInt64(v int64) error {
	c.set(signedPrimitive(v))
	return nil
}

func (c *coercer) visitFloat64(v float64) error {
	c.set(floatPrimitive(v))
	return nil
}

func (c *coercer) visitBool(v bool) error {
	c.set(boolPrimitive(v))
	return nil
}

func (c *coercer) visitChar(v rune) error {
	c.set(charPrimitive(v))
	return nil
}

func (c *coercer) visitString(v string) error {
	c.storeText(v)
	return nil
}

func (c *coercer) visitNone() error {
	c.set(primitive{})
	return nil
}

// Debug values carry renderable text only.
func (c *coercer) visitDebug(any) error {
	return nil
}

func (c *coercer) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(c, v)
}

// coerce reduces v to a neutral result. Primitives are their own result;
// everything else runs a transient coercer and ignores visitation errors.
func (v Value) coerce() coerced {
	if v.kind == valuePrimitive {
		return coerced{prim: v.prim, none: v.prim.kind == primitiveNone}
	}
	var c coercer
	_ = v.visit(&c)
	return c.result
}

// AsStr returns the string v references. Strings produced by Fill or zap
// values are owned copies and are only available through ToStr.
func (v Value) AsStr() (string, bool) {
	if v.kind == valuePrimitive && v.prim.kind == primitiveStr {
		return v.prim.str, true
	}
	return v.coerce().intoPrimitive().asStr()
}

// AsUint64 returns v as an unsigned integer. Signed and float values are not
// converted.
func (v Value) AsUint64() (uint64, bool) {
	return v.coerce().intoPrimitive().asUint64()
}

// AsInt64 returns v as a signed integer.
func (v Value) AsInt64() (int64, bool) {
	return v.coerce().intoPrimitive().asInt64()
}

// AsFloat64 returns v as a float.
func (v Value) AsFloat64() (float64, bool) {
	return v.coerce().intoPrimitive().asFloat64()
}

// AsBool returns v as a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.coerce().intoPrimitive().asBool()
}

// AsChar returns v as a character.
func (v Value) AsChar() (rune, bool) {
	return v.coerce().intoPrimitive().asChar()
}

// IsNone reports whether v reduces to an explicit None. Debug and display
// values, and fills that produce nothing, are not None.
func (v Value) IsNone() bool {
	return v.coerce().none
}
