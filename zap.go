//go:build !kv_nozap

package kv

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ArrayMarshaler = Value{}

// structuredVisitor is the zap extension of the visitor contract.
type structuredVisitor interface {
	visitZap(v zapcore.ArrayMarshaler) error
}

// FromZap captures a zap array marshaler. Its elements stream straight into
// any zap encoder the Value is handed to. A nil marshaler yields None.
func FromZap(v zapcore.ArrayMarshaler) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: valueZap, ref: v}
}

func anyStructured(v any) (Value, bool) {
	if m, ok := v.(zapcore.ArrayMarshaler); ok {
		return FromZap(m), true
	}
	return Value{}, false
}

func visitStructured(v Value, vis visitor) error {
	if v.kind == valueZap {
		return vis.visitZap(v.ref.(zapcore.ArrayMarshaler))
	}
	return v.prim.visit(vis)
}

var errZapSerialization = errors.New("kv: zap serialization failed")

func errorFromZap(err error) error {
	if err == nil {
		return nil
	}
	return errorMsg("zap serialization failed")
}

// MarshalLogArray implements zapcore.ArrayMarshaler by streaming v as a
// single element into enc.
func (v Value) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	if err := v.visit(&zapVisitor{enc: enc}); err != nil {
		return errZapSerialization
	}
	return nil
}

// zapVisitor forwards each kind to the matching zap emission.
type zapVisitor struct {
	enc zapcore.ArrayEncoder
}

func (z *zapVisitor) visitUint64(v uint64) error {
	z.enc.AppendUint64(v)
	return nil
}

func (z *zapVisitor) visitInt64(v int64) error {
	z.enc.AppendInt64(v)
	return nil
}

func (z *zapVisitor) visitFloat64(v float64) error {
	z.enc.AppendFloat64(v)
	return nil
}

func (z *zapVisitor) visitBool(v bool) error {
	z.enc.AppendBool(v)
	return nil
}

// zap has no rune emission.
func (z *zapVisitor) visitChar(v rune) error {
	z.enc.AppendString(string(v))
	return nil
}

func (z *zapVisitor) visitString(v string) error {
	z.enc.AppendString(v)
	return nil
}

func (z *zapVisitor) visitNone() error {
	return errorFromZap(z.enc.AppendReflected(nil))
}

func (z *zapVisitor) visitDebug(v any) error {
	z.enc.AppendString(fmt.Sprintf("%+v", v))
	return nil
}

func (z *zapVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(z, v)
}

func (z *zapVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	return errorFromZap(v.MarshalLogArray(z.enc))
}

// Field returns a typed zap field for v.
func Field(key string, v Value) zap.Field {
	fv := fieldVisitor{key: key}
	if err := v.visit(&fv); err != nil {
		return zap.NamedError(key, err)
	}
	return fv.field
}

type fieldVisitor struct {
	key   string
	field zap.Field
}

func (f *fieldVisitor) visitUint64(v uint64) error {
	f.field = zap.Uint64(f.key, v)
	return nil
}

func (f *fieldVisitor) visitInt64(v int64) error {
	f.field = zap.Int64(f.key, v)
	return nil
}

func (f *fieldVisitor) visitFloat64(v float64) error {
	f.field = zap.Float64(f.key, v)
	return nil
}

func (f *fieldVisitor) visitBool(v bool) error {
	f.field = zap.Bool(f.key, v)
	return nil
}

func (f *fieldVisitor) visitChar(v rune) error {
	f.field = zap.String(f.key, string(v))
	return nil
}

func (f *fieldVisitor) visitString(v string) error {
	f.field = zap.String(f.key, v)
	return nil
}

func (f *fieldVisitor) visitNone() error {
	f.field = zap.Reflect(f.key, nil)
	return nil
}

func (f *fieldVisitor) visitDebug(v any) error {
	f.field = zap.String(f.key, fmt.Sprintf("%+v", v))
	return nil
}

func (f *fieldVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(f, v)
}

func (f *fieldVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	f.field = zap.Array(f.key, v)
	return nil
}

// The remaining consumers render zap values through their collected
// elements.

func (c *coercer) visitZap(v zapcore.ArrayMarshaler) error {
	c.result = coerceZap(v)
	return nil
}

func (f *fmtVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	out, err := collectZap(v)
	if err != nil {
		return err
	}
	return Any(out).visit(f)
}

func (c *colorVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	out, err := collectZap(v)
	if err != nil {
		return err
	}
	return Any(out).visit(c)
}

func (n *naturalVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	out, err := collectZap(v)
	if err != nil {
		return err
	}
	n.out = out
	return nil
}

func (j *jsonVisitor) visitZap(v zapcore.ArrayMarshaler) error {
	out, err := collectZap(v)
	if err != nil {
		return err
	}
	switch out.(type) {
	case []any, map[string]any:
		raw, err := json.Marshal(out)
		if err != nil {
			return errorWrap("json encoding failed", err)
		}
		j.vb.buf = append(j.vb.buf, raw...)
		return nil
	default:
		return Any(out).visit(j)
	}
}
