package kv

import "math"

type primitiveKind uint8

const (
	primitiveNone primitiveKind = iota
	primitiveSigned
	primitiveUnsigned
	primitiveFloat
	primitiveBool
	primitiveChar
	primitiveStr
)

// primitive is a scalar that can be copied without allocating. Numeric kinds
// share bits; Str keeps the caller's string header.
type primitive struct {
	kind primitiveKind
	bits uint64
	str  string
}

func signedPrimitive(v int64) primitive {
	return primitive{kind: primitiveSigned, bits: uint64(v)}
}

func unsignedPrimitive(v uint64) primitive {
	return primitive{kind: primitiveUnsigned, bits: v}
}

func floatPrimitive(v float64) primitive {
	return primitive{kind: primitiveFloat, bits: math.Float64bits(v)}
}

func boolPrimitive(v bool) primitive {
	p := primitive{kind: primitiveBool}
	if v {
		p.bits = 1
	}
	return p
}

func charPrimitive(v rune) primitive {
	return primitive{kind: primitiveChar, bits: uint64(uint32(v))}
}

func strPrimitive(v string) primitive {
	return primitive{kind: primitiveStr, str: v}
}

func (p primitive) visit(vis visitor) error {
	switch p.kind {
	case primitiveSigned:
		return vis.visitInt64(int64(p.bits))
	case primitiveUnsigned:
		return vis.visitUint64(p.bits)
	case primitiveFloat:
		return vis.visitFloat64(math.Float64frombits(p.bits))
	case primitiveBool:
		return vis.visitBool(p.bits != 0)
	case primitiveChar:
		return vis.visitChar(rune(uint32(p.bits)))
	case primitiveStr:
		return vis.visitString(p.str)
	default:
		return vis.visitNone()
	}
}

func (p primitive) asStr() (string, bool) {
	if p.kind != primitiveStr {
		return "", false
	}
	return p.str, true
}

func (p primitive) asUint64() (uint64, bool) {
	if p.kind != primitiveUnsigned {
		return 0, false
	}
	return p.bits, true
}

func (p primitive) asInt64() (int64, bool) {
	if p.kind != primitiveSigned {
		return 0, false
	}
	return int64(p.bits), true
}

func (p primitive) asFloat64() (float64, bool) {
	if p.kind != primitiveFloat {
		return 0, false
	}
	return math.Float64frombits(p.bits), true
}

func (p primitive) asBool() (bool, bool) {
	if p.kind != primitiveBool {
		return false, false
	}
	return p.bits != 0, true
}

func (p primitive) asChar() (rune, bool) {
	if p.kind != primitiveChar {
		return 0, false
	}
	return rune(uint32(p.bits)), true
}
