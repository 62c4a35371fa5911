package kv

import (
	"strconv"
	"sync"
	"unicode/utf8"
)

const (
	valueBufferDefaultCap = 128
	valueBufferMaxCap     = 16 << 10
)

// valueBuffer is the scratch space consumers render into. It doubles as an
// io.Writer so debug values can be formatted straight into it.
type valueBuffer struct {
	buf []byte
}

var valueBufferPool = sync.Pool{
	New: func() any {
		return &valueBuffer{buf: make([]byte, 0, valueBufferDefaultCap)}
	},
}

func acquireValueBuffer() *valueBuffer {
	vb := valueBufferPool.Get().(*valueBuffer)
	vb.buf = vb.buf[:0]
	return vb
}

func releaseValueBuffer(vb *valueBuffer) {
	if cap(vb.buf) > valueBufferMaxCap {
		vb.buf = make([]byte, 0, valueBufferDefaultCap)
	} else {
		vb.buf = vb.buf[:0]
	}
	valueBufferPool.Put(vb)
}

func (vb *valueBuffer) Write(p []byte) (int, error) {
	vb.buf = append(vb.buf, p...)
	return len(p), nil
}

func (vb *valueBuffer) reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(vb.buf) + n
	if need <= cap(vb.buf) {
		return
	}
	newCap := max(cap(vb.buf)*2+n, need)
	newBuf := make([]byte, len(vb.buf), newCap)
	copy(newBuf, vb.buf)
	vb.buf = newBuf
}

func (vb *valueBuffer) writeString(s string) {
	if s == "" {
		return
	}
	vb.reserve(len(s))
	vb.buf = append(vb.buf, s...)
}

func (vb *valueBuffer) writeInt64(n int64) {
	vb.reserve(24)
	vb.buf = strconv.AppendInt(vb.buf, n, 10)
}

func (vb *valueBuffer) writeUint64(n uint64) {
	vb.reserve(24)
	vb.buf = strconv.AppendUint(vb.buf, n, 10)
}

// writeFloat64 appends f in the shortest form for the given strconv format
// byte ('g' for text, 'f' for JSON).
func (vb *valueBuffer) writeFloat64(f float64, format byte) {
	vb.reserve(32)
	vb.buf = strconv.AppendFloat(vb.buf, f, format, -1, 64)
}

func (vb *valueBuffer) writeBoolLiteral(v bool) {
	if v {
		vb.buf = append(vb.buf, "true"...)
		return
	}
	vb.buf = append(vb.buf, "false"...)
}

func (vb *valueBuffer) writeNullLiteral() {
	vb.buf = append(vb.buf, 'n', 'u', 'l', 'l')
}

func (vb *valueBuffer) writeQuotedString(s string) {
	vb.reserve(len(s) + 2)
	vb.buf = strconv.AppendQuote(vb.buf, s)
}

func (vb *valueBuffer) writeQuotedRune(r rune) {
	vb.reserve(utf8.UTFMax + 2)
	vb.buf = strconv.AppendQuoteRune(vb.buf, r)
}
