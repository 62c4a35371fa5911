package kv

import (
	"fmt"
	"io"
	"strconv"
)

// fmtVisitor writes the debug text of a value into w. Display values reduce
// to debug, so both renderings are always identical.
type fmtVisitor struct {
	w   io.Writer
	n   int64
	tmp []byte
}

func (f *fmtVisitor) flush(b []byte) error {
	f.tmp = b[:0]
	n, err := f.w.Write(b)
	f.n += int64(n)
	if err != nil {
		return errorWrap("write failed", err)
	}
	if n != len(b) {
		return errorWrap("write failed", io.ErrShortWrite)
	}
	return nil
}

func (f *fmtVisitor) visitUint64(v uint64) error {
	return f.flush(strconv.AppendUint(f.tmp[:0], v, 10))
}

func (f *fmtVisitor) visitInt64(v int64) error {
	return f.flush(strconv.AppendInt(f.tmp[:0], v, 10))
}

func (f *fmtVisitor) visitFloat64(v float64) error {
	return f.flush(strconv.AppendFloat(f.tmp[:0], v, 'g', -1, 64))
}

func (f *fmtVisitor) visitBool(v bool) error {
	return f.flush(strconv.AppendBool(f.tmp[:0], v))
}

func (f *fmtVisitor) visitChar(v rune) error {
	return f.flush(strconv.AppendQuoteRune(f.tmp[:0], v))
}

func (f *fmtVisitor) visitString(v string) error {
	return f.flush(strconv.AppendQuote(f.tmp[:0], v))
}

func (f *fmtVisitor) visitNone() error {
	return f.flush(append(f.tmp[:0], "None"...))
}

func (f *fmtVisitor) visitDebug(v any) error {
	n, err := fmt.Fprintf(f.w, "%+v", v)
	f.n += int64(n)
	if err != nil {
		return errorWrap("write failed", err)
	}
	return nil
}

func (f *fmtVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(f, v)
}

// Format implements fmt.Formatter. Every verb renders the same text.
func (v Value) Format(s fmt.State, _ rune) {
	_ = v.visit(&fmtVisitor{w: s})
}

// String renders v as text.
func (v Value) String() string {
	vb := acquireValueBuffer()
	_ = v.visit(&fmtVisitor{w: vb})
	out := string(vb.buf)
	releaseValueBuffer(vb)
	return out
}

// WriteTo writes the text of v to w. A failing writer surfaces as *Error.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	f := fmtVisitor{w: w}
	err := v.visit(&f)
	return f.n, err
}

// AppendText appends the text of v to b.
func (v Value) AppendText(b []byte) ([]byte, error) {
	vb := valueBuffer{buf: b}
	if err := v.visit(&fmtVisitor{w: &vb}); err != nil {
		return b, err
	}
	return vb.buf, nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}
