package kv

import (
	"fmt"

	"pkt.systems/kv/ansi"
)

// colorVisitor renders the same text as fmtVisitor wrapped in palette
// colours chosen by kind.
type colorVisitor struct {
	vb      *valueBuffer
	palette *ansi.Palette
}

func (c *colorVisitor) open(color string) {
	c.vb.writeString(color)
}

func (c *colorVisitor) close(color string) {
	if color != "" {
		c.vb.writeString(ansi.Reset)
	}
}

func (c *colorVisitor) visitUint64(v uint64) error {
	c.open(c.palette.Num)
	c.vb.writeUint64(v)
	c.close(c.palette.Num)
	return nil
}

func (c *colorVisitor) visitInt64(v int64) error {
	c.open(c.palette.Num)
	c.vb.writeInt64(v)
	c.close(c.palette.Num)
	return nil
}

func (c *colorVisitor) visitFloat64(v float64) error {
	c.open(c.palette.Num)
	c.vb.writeFloat64(v, 'g')
	c.close(c.palette.Num)
	return nil
}

func (c *colorVisitor) visitBool(v bool) error {
	c.open(c.palette.Bool)
	c.vb.writeBoolLiteral(v)
	c.close(c.palette.Bool)
	return nil
}

func (c *colorVisitor) visitChar(v rune) error {
	c.open(c.palette.String)
	c.vb.writeQuotedRune(v)
	c.close(c.palette.String)
	return nil
}

func (c *colorVisitor) visitString(v string) error {
	c.open(c.palette.String)
	c.vb.writeQuotedString(v)
	c.close(c.palette.String)
	return nil
}

func (c *colorVisitor) visitNone() error {
	c.open(c.palette.Nil)
	c.vb.writeString("None")
	c.close(c.palette.Nil)
	return nil
}

func (c *colorVisitor) visitDebug(v any) error {
	c.open(c.palette.Text)
	_, _ = fmt.Fprintf(c.vb, "%+v", v)
	c.close(c.palette.Text)
	return nil
}

func (c *colorVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(c, v)
}

// AppendColor appends the text of v wrapped in ANSI colours from palette.
// A nil palette uses the package-level colours of the ansi package.
func (v Value) AppendColor(dst []byte, palette *ansi.Palette) ([]byte, error) {
	if palette == nil {
		snap := ansi.Snapshot()
		palette = &snap
	}
	vb := valueBuffer{buf: dst}
	if err := v.visit(&colorVisitor{vb: &vb, palette: palette}); err != nil {
		return dst, err
	}
	return vb.buf, nil
}
