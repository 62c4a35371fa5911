package kv

import (
	"fmt"
	"io"
)

// visitor receives exactly one call per dispatched Value. Implementations are
// internal consumers; the set of methods mirrors the closed primitive set
// plus the debug/display fallbacks and, when built, the zap extension.
type visitor interface {
	visitUint64(v uint64) error
	visitInt64(v int64) error
	visitFloat64(v float64) error
	visitBool(v bool) error
	visitChar(v rune) error
	visitString(v string) error
	visitNone() error

	visitDebug(v any) error
	visitDisplay(v fmt.Stringer) error

	structuredVisitor
}

// displayAsDebug is the shared visitDisplay fallback: the Stringer is handed
// to visitDebug wrapped so that any debug verb renders its display text.
func displayAsDebug(vis visitor, v fmt.Stringer) error {
	return vis.visitDebug(displayArg{v})
}

type displayArg struct {
	value fmt.Stringer
}

func (d displayArg) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, d.value.String())
}

func (d displayArg) String() string {
	return d.value.String()
}

// errorDisplay lets an error travel the display path.
type errorDisplay struct {
	err error
}

func (e errorDisplay) String() string {
	return e.err.Error()
}
