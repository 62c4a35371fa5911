package kv

import (
	"fmt"
	"log/slog"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

var (
	_ logr.Marshaler = Value{}
	_ slog.LogValuer = Value{}
	_ yaml.Marshaler = Value{}
)

// naturalVisitor projects a value onto the plain Go value other logging and
// encoding ecosystems understand.
type naturalVisitor struct {
	out any
}

func (n *naturalVisitor) visitUint64(v uint64) error {
	n.out = v
	return nil
}

func (n *naturalVisitor) visitInt64(v int64) error {
	n.out = v
	return nil
}

func (n *naturalVisitor) visitFloat64(v float64) error {
	n.out = v
	return nil
}

func (n *naturalVisitor) visitBool(v bool) error {
	n.out = v
	return nil
}

func (n *naturalVisitor) visitChar(v rune) error {
	n.out = string(v)
	return nil
}

func (n *naturalVisitor) visitString(v string) error {
	n.out = v
	return nil
}

func (n *naturalVisitor) visitNone() error {
	n.out = nil
	return nil
}

func (n *naturalVisitor) visitDebug(v any) error {
	n.out = fmt.Sprintf("%+v", v)
	return nil
}

func (n *naturalVisitor) visitDisplay(v fmt.Stringer) error {
	return displayAsDebug(n, v)
}

func (v Value) natural() (any, error) {
	var n naturalVisitor
	if err := v.visit(&n); err != nil {
		return nil, err
	}
	return n.out, nil
}

// MarshalLog implements logr.Marshaler.
func (v Value) MarshalLog() any {
	out, err := v.natural()
	if err != nil {
		return err.Error()
	}
	return out
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	out, err := v.natural()
	if err != nil {
		return slog.StringValue(err.Error())
	}
	return slog.AnyValue(out)
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.natural()
}
