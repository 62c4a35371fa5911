package kv

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

type token struct {
	kind  string
	value any
}

// tokenVisitor records every visitor call it receives.
type tokenVisitor struct {
	tokens []token
}

func (t *tokenVisitor) add(kind string, value any) error {
	t.tokens = append(t.tokens, token{kind: kind, value: value})
	return nil
}

func (t *tokenVisitor) visitUint64(v uint64) error        { return t.add("u64", v) }
func (t *tokenVisitor) visitInt64(v int64) error          { return t.add("i64", v) }
func (t *tokenVisitor) visitFloat64(v float64) error      { return t.add("f64", v) }
func (t *tokenVisitor) visitBool(v bool) error            { return t.add("bool", v) }
func (t *tokenVisitor) visitChar(v rune) error            { return t.add("char", v) }
func (t *tokenVisitor) visitString(v string) error        { return t.add("str", v) }
func (t *tokenVisitor) visitNone() error                  { return t.add("none", nil) }
func (t *tokenVisitor) visitDebug(v any) error            { return t.add("debug", fmt.Sprintf("%+v", v)) }
func (t *tokenVisitor) visitDisplay(v fmt.Stringer) error { return t.add("display", v.String()) }

func tokensOf(t *testing.T, v Value) []token {
	t.Helper()
	var vis tokenVisitor
	if err := v.visit(&vis); err != nil {
		t.Fatalf("visit failed: %v", err)
	}
	return vis.tokens
}

type point struct {
	X, Y int
}

type celsius float64

func (c celsius) String() string {
	return fmt.Sprintf("%.1f°C", float64(c))
}

type fillWith struct {
	value Value
}

func (f fillWith) Fill(slot *Slot) error {
	return slot.Fill(f.value)
}

type fillTwice struct{}

func (fillTwice) Fill(slot *Slot) error {
	if err := slot.Fill(Uint64(1)); err != nil {
		return err
	}
	return slot.Fill(Uint64(2))
}

type fillNothing struct{}

func (fillNothing) Fill(*Slot) error {
	return nil
}

type fillFails struct{}

func (fillFails) Fill(*Slot) error {
	return errors.New("no value")
}

func TestConstructorsDispatchOnce(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  token
	}{
		{"uint64", Uint64(42), token{"u64", uint64(42)}},
		{"int64", Int64(-42), token{"i64", int64(-42)}},
		{"float64", Float64(3.5), token{"f64", 3.5}},
		{"bool", Bool(true), token{"bool", true}},
		{"char", Char('a'), token{"char", 'a'}},
		{"string", String("a string"), token{"str", "a string"}},
		{"null", Null(), token{"none", nil}},
		{"zero", Value{}, token{"none", nil}},
		{"debug", FromDebug(point{1, 2}), token{"debug", "{X:1 Y:2}"}},
		{"display", FromDisplay(celsius(21.5)), token{"display", "21.5°C"}},
		{"fill", FromFill(fillWith{Uint64(7)}), token{"u64", uint64(7)}},
		{"nestedFill", FromFill(fillWith{FromFill(fillWith{String("deep")})}), token{"str", "deep"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokensOf(t, tc.value)
			if len(got) != 1 {
				t.Fatalf("expected exactly one visit, got %d: %v", len(got), got)
			}
			if !reflect.DeepEqual(got[0], tc.want) {
				t.Fatalf("token mismatch: got %#v want %#v", got[0], tc.want)
			}
		})
	}
}

func TestNilCapturesAreNone(t *testing.T) {
	for name, v := range map[string]Value{
		"display": FromDisplay(nil),
		"fill":    FromFill(nil),
		"any":     Any(nil),
	} {
		got := tokensOf(t, v)
		if len(got) != 1 || got[0].kind != "none" {
			t.Fatalf("%s: expected none, got %v", name, got)
		}
	}
}

func TestAnyPicksNarrowestRepresentation(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  token
	}{
		{"string", "x", token{"str", "x"}},
		{"bool", false, token{"bool", false}},
		{"int", int(-1), token{"i64", int64(-1)}},
		{"int8", int8(-8), token{"i64", int64(-8)}},
		{"int32", int32(32), token{"i64", int64(32)}},
		{"uint", uint(1), token{"u64", uint64(1)}},
		{"uint8", uint8(8), token{"u64", uint64(8)}},
		{"uintptr", uintptr(9), token{"u64", uint64(9)}},
		{"float32", float32(0.5), token{"f64", 0.5}},
		{"value", Int64(5), token{"i64", int64(5)}},
		{"filler", fillWith{Bool(true)}, token{"bool", true}},
		{"stringer", celsius(1), token{"display", "1.0°C"}},
		{"duration", 1500 * time.Millisecond, token{"display", "1.5s"}},
		{"error", errors.New("boom"), token{"display", "boom"}},
		{"struct", point{3, 4}, token{"debug", "{X:3 Y:4}"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokensOf(t, Any(tc.input))
			if len(got) != 1 || !reflect.DeepEqual(got[0], tc.want) {
				t.Fatalf("token mismatch: got %#v want %#v", got, tc.want)
			}
		})
	}
}

func TestSlotRejectsSecondFill(t *testing.T) {
	var vis tokenVisitor
	err := FromFill(fillTwice{}).visit(&vis)
	var kvErr *Error
	if !errors.As(err, &kvErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if err.Error() != "kv: slot already filled" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(vis.tokens) != 1 {
		t.Fatalf("expected only the first fill to dispatch, got %v", vis.tokens)
	}
}

func TestSlotMustBeFilled(t *testing.T) {
	var vis tokenVisitor
	err := FromFill(fillNothing{}).visit(&vis)
	if err == nil || err.Error() != "kv: slot was not filled" {
		t.Fatalf("expected unfilled slot error, got %v", err)
	}
	if len(vis.tokens) != 0 {
		t.Fatalf("expected no dispatch, got %v", vis.tokens)
	}
}

func TestZeroSlotIsInactive(t *testing.T) {
	var slot Slot
	err := slot.Fill(Uint64(1))
	if err == nil || err.Error() != "kv: slot is not active" {
		t.Fatalf("expected inactive slot error, got %v", err)
	}
	var nilSlot *Slot
	if err := nilSlot.Fill(Uint64(1)); err == nil {
		t.Fatalf("expected nil slot to reject fills")
	}
}

// fillLater keeps the slot and fills it after Fill has returned.
type fillLater struct {
	slot **Slot
}

func (f fillLater) Fill(slot *Slot) error {
	*f.slot = slot
	return nil
}

func TestRetainedSlotRejectsLateFill(t *testing.T) {
	var kept *Slot
	var vis tokenVisitor
	err := FromFill(fillLater{slot: &kept}).visit(&vis)
	if err == nil || err.Error() != "kv: slot was not filled" {
		t.Fatalf("expected unfilled slot error, got %v", err)
	}
	if kept == nil {
		t.Fatalf("filler did not receive a slot")
	}

	err = kept.Fill(String("late"))
	if err == nil || err.Error() != "kv: slot is not active" {
		t.Fatalf("expected inactive slot error, got %v", err)
	}
	if len(vis.tokens) != 0 {
		t.Fatalf("late fill reached the visitor: %v", vis.tokens)
	}

	// Late fills through a rendering consumer are dropped as well.
	if got := FromFill(fillLater{slot: &kept}).String(); got != "" {
		t.Fatalf("unexpected output %q", got)
	}
	if err := kept.Fill(Uint64(1)); err == nil {
		t.Fatalf("expected late fill to fail after rendering")
	}
}

func TestFillErrorPropagates(t *testing.T) {
	var vis tokenVisitor
	err := FromFill(fillFails{}).visit(&vis)
	if err == nil || err.Error() != "no value" {
		t.Fatalf("expected filler error to pass through, got %v", err)
	}
}

type rejectingVisitor struct {
	tokenVisitor
	err error
}

func (r *rejectingVisitor) visitString(string) error {
	return r.err
}

func TestDispatchForwardsVisitorErrors(t *testing.T) {
	want := errors.New("rejected")
	vis := &rejectingVisitor{err: want}
	if err := String("x").visit(vis); err != want {
		t.Fatalf("expected visitor error, got %v", err)
	}
	if err := FromFill(fillWith{String("x")}).visit(vis); err != want {
		t.Fatalf("expected visitor error through fill, got %v", err)
	}
	if err := Uint64(1).visit(vis); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
