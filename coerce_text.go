//go:build !kv_notext

package kv

import "strings"

func (c *coercer) storeText(s string) {
	c.result = coerced{text: strings.Clone(s), owned: true}
}

// ToStr returns v as a string, including text produced by Fill and zap
// values. Primitive strings are returned without copying.
func (v Value) ToStr() (string, bool) {
	return v.coerce().intoString()
}

func (c coerced) intoString() (string, bool) {
	if c.owned {
		return c.text, true
	}
	return c.prim.asStr()
}
