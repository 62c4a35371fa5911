//go:build !kv_nozap

package kv

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// coerceZap mirrors Value.coerce against zap's emission set: the last
// primitive appended wins, anything nested is ignored.
func coerceZap(v zapcore.ArrayMarshaler) coerced {
	enc := zapCoercer{}
	_ = v.MarshalLogArray(&enc)
	return enc.c.result
}

type zapCoercer struct {
	c coercer
}

var _ zapcore.ArrayEncoder = (*zapCoercer)(nil)

func (z *zapCoercer) AppendBool(v bool)                          { z.c.set(boolPrimitive(v)) }
func (z *zapCoercer) AppendByteString(v []byte)                  { z.c.storeText(string(v)) }
func (z *zapCoercer) AppendComplex128(complex128)                {}
func (z *zapCoercer) AppendComplex64(complex64)                  {}
func (z *zapCoercer) AppendFloat64(v float64)                    { z.c.set(floatPrimitive(v)) }
func (z *zapCoercer) AppendFloat32(v float32)                    { z.c.set(floatPrimitive(float64(v))) }
func (z *zapCoercer) AppendInt(v int)                            { z.c.set(signedPrimitive(int64(v))) }
func (z *zapCoercer) AppendInt64(v int64)                        { z.c.set(signedPrimitive(v)) }
func (z *zapCoercer) AppendInt32(v int32)                        { z.c.set(signedPrimitive(int64(v))) }
func (z *zapCoercer) AppendInt16(v int16)                        { z.c.set(signedPrimitive(int64(v))) }
func (z *zapCoercer) AppendInt8(v int8)                          { z.c.set(signedPrimitive(int64(v))) }
func (z *zapCoercer) AppendString(v string)                      { z.c.storeText(v) }
func (z *zapCoercer) AppendUint(v uint)                          { z.c.set(unsignedPrimitive(uint64(v))) }
func (z *zapCoercer) AppendUint64(v uint64)                      { z.c.set(unsignedPrimitive(v)) }
func (z *zapCoercer) AppendUint32(v uint32)                      { z.c.set(unsignedPrimitive(uint64(v))) }
func (z *zapCoercer) AppendUint16(v uint16)                      { z.c.set(unsignedPrimitive(uint64(v))) }
func (z *zapCoercer) AppendUint8(v uint8)                        { z.c.set(unsignedPrimitive(uint64(v))) }
func (z *zapCoercer) AppendUintptr(v uintptr)                    { z.c.set(unsignedPrimitive(uint64(v))) }
func (z *zapCoercer) AppendDuration(time.Duration)               {}
func (z *zapCoercer) AppendTime(time.Time)                       {}
func (z *zapCoercer) AppendArray(zapcore.ArrayMarshaler) error   { return nil }
func (z *zapCoercer) AppendObject(zapcore.ObjectMarshaler) error { return nil }

func (z *zapCoercer) AppendReflected(v any) error {
	if v == nil {
		z.c.set(primitive{})
	}
	return nil
}

// collectZap gathers the elements a zap marshaler emits as plain Go values.
// A single element is returned bare, none as nil.
func collectZap(v zapcore.ArrayMarshaler) (any, error) {
	var enc zapCollector
	if err := v.MarshalLogArray(&enc); err != nil {
		return nil, errorFromZap(err)
	}
	switch len(enc.elems) {
	case 0:
		return nil, nil
	case 1:
		return enc.elems[0], nil
	default:
		return enc.elems, nil
	}
}

type zapCollector struct {
	elems []any
}

var _ zapcore.ArrayEncoder = (*zapCollector)(nil)

func (z *zapCollector) add(v any) { z.elems = append(z.elems, v) }

func (z *zapCollector) AppendBool(v bool)              { z.add(v) }
func (z *zapCollector) AppendByteString(v []byte)      { z.add(string(v)) }
func (z *zapCollector) AppendComplex128(v complex128)  { z.add(v) }
func (z *zapCollector) AppendComplex64(v complex64)    { z.add(complex128(v)) }
func (z *zapCollector) AppendFloat64(v float64)        { z.add(v) }
func (z *zapCollector) AppendFloat32(v float32)        { z.add(float64(v)) }
func (z *zapCollector) AppendInt(v int)                { z.add(int64(v)) }
func (z *zapCollector) AppendInt64(v int64)            { z.add(v) }
func (z *zapCollector) AppendInt32(v int32)            { z.add(int64(v)) }
func (z *zapCollector) AppendInt16(v int16)            { z.add(int64(v)) }
func (z *zapCollector) AppendInt8(v int8)              { z.add(int64(v)) }
func (z *zapCollector) AppendString(v string)          { z.add(v) }
func (z *zapCollector) AppendUint(v uint)              { z.add(uint64(v)) }
func (z *zapCollector) AppendUint64(v uint64)          { z.add(v) }
func (z *zapCollector) AppendUint32(v uint32)          { z.add(uint64(v)) }
func (z *zapCollector) AppendUint16(v uint16)          { z.add(uint64(v)) }
func (z *zapCollector) AppendUint8(v uint8)            { z.add(uint64(v)) }
func (z *zapCollector) AppendUintptr(v uintptr)        { z.add(uint64(v)) }
func (z *zapCollector) AppendDuration(v time.Duration) { z.add(v) }
func (z *zapCollector) AppendTime(v time.Time)         { z.add(v) }

func (z *zapCollector) AppendArray(v zapcore.ArrayMarshaler) error {
	var nested zapCollector
	err := v.MarshalLogArray(&nested)
	if nested.elems == nil {
		nested.elems = []any{}
	}
	z.add(nested.elems)
	return err
}

func (z *zapCollector) AppendObject(v zapcore.ObjectMarshaler) error {
	enc := zapcore.NewMapObjectEncoder()
	err := v.MarshalLogObject(enc)
	z.add(enc.Fields)
	return err
}

func (z *zapCollector) AppendReflected(v any) error {
	z.add(v)
	return nil
}
