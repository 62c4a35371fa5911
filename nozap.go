//go:build kv_nozap

package kv

type structuredVisitor interface{}

func anyStructured(any) (Value, bool) {
	return Value{}, false
}

func visitStructured(v Value, vis visitor) error {
	return v.prim.visit(vis)
}
