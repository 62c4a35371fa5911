//go:build kv_notext

package kv

// Without owned text, string emissions leave the coercion state untouched.
func (c *coercer) storeText(string) {}
