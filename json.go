package kv

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// jsonVisitor appends the JSON encoding of a value. Debug and display values
// become JSON strings of their text.
type jsonVisitor struct {
	vb     *valueBuffer
	policy NonFiniteFloatPolicy
}

func (j *jsonVisitor) visitUint64(v uint64) error {
	j.vb.writeUint64(v)
	return nil
}

func (j *jsonVisitor) visitInt64(v int64) error {
	j.vb.writeInt64(v)
	return nil
}

func (j *jsonVisitor) visitFloat64(v float64) error {
	switch {
	case math.IsNaN(v):
		j.writeNonFinite("NaN")
	case math.IsInf(v, 1):
		j.writeNonFinite("+Inf")
	case math.IsInf(v, -1):
		j.writeNonFinite("-Inf")
	default:
		j.vb.writeFloat64(v, 'f')
	}
	return nil
}

func (j *jsonVisitor) writeNonFinite(literal string) {
	if j.policy == NonFiniteFloatAsNull {
		j.vb.writeNullLiteral()
		return
	}
	writeJSONString(j.vb, literal)
}

func (j *jsonVisitor) visitBool(v bool) error {
	j.vb.writeBoolLiteral(v)
	return nil
}

func (j *jsonVisitor) visitChar(v rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], v)
	writeJSONString(j.vb, string(tmp[:n]))
	return nil
}

func (j *jsonVisitor) visitString(v string) error {
	writeJSONString(j.vb, v)
	return nil
}

func (j *jsonVisitor) visitNone() error {
	j.vb.writeNullLiteral()
	return nil
}

func (j *jsonVisitor) visitDebug(v any) error {
	start := len(j.vb.buf)
	_, _ = fmt.Fprintf(j.vb, "%+v", v)
	text := string(j.vb.buf[start:])
	j.vb.buf = j.vb.buf[:start]
	writeJSONString(j.vb, text)
	return nil
}

func (j *jsonVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(j, v)
}

// AppendJSON appends the JSON encoding of v to dst using policy for
// non-finite floats.
func (v Value) AppendJSON(dst []byte, policy NonFiniteFloatPolicy) ([]byte, error) {
	vb := valueBuffer{buf: dst}
	j := jsonVisitor{vb: &vb, policy: normalizeNonFiniteFloatPolicy(policy)}
	if err := v.visit(&j); err != nil {
		return dst, err
	}
	return vb.buf, nil
}

// MarshalJSON implements json.Marshaler. Non-finite floats are encoded as
// strings.
func (v Value) MarshalJSON() ([]byte, error) {
	vb := acquireValueBuffer()
	defer releaseValueBuffer(vb)
	j := jsonVisitor{vb: vb, policy: NonFiniteFloatAsString}
	if err := v.visit(&j); err != nil {
		return nil, err
	}
	out := make([]byte, len(vb.buf))
	copy(out, vb.buf)
	return out, nil
}
