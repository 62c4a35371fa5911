package kv

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJSONRendering(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"uint64", Uint64(math.MaxUint64), "18446744073709551615"},
		{"int64", Int64(-42), "-42"},
		{"float", Float64(3.5), "3.5"},
		{"floatLarge", Float64(1e21), "1000000000000000000000"},
		{"bool", Bool(true), "true"},
		{"char", Char('é'), `"é"`},
		{"charQuote", Char('"'), `"\""`},
		{"string", String("a string"), `"a string"`},
		{"apostrophe", String("can't"), `"can\u0027t"`},
		{"none", Null(), "null"},
		{"debug", FromDebug(point{1, 2}), `"{X:1 Y:2}"`},
		{"display", FromDisplay(celsius(21.5)), `"21.5°C"`},
		{"fill", FromFill(fillWith{Int64(5)}), "5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("json mismatch: got %s want %s", got, tc.want)
			}
			if !json.Valid(got) {
				t.Fatalf("invalid json: %s", got)
			}
		})
	}
}

func TestJSONNonFiniteFloatPolicy(t *testing.T) {
	tests := []struct {
		value  float64
		policy NonFiniteFloatPolicy
		want   string
	}{
		{math.NaN(), NonFiniteFloatAsString, `"NaN"`},
		{math.Inf(1), NonFiniteFloatAsString, `"+Inf"`},
		{math.Inf(-1), NonFiniteFloatAsString, `"-Inf"`},
		{math.NaN(), NonFiniteFloatAsNull, "null"},
		{math.Inf(1), NonFiniteFloatAsNull, "null"},
		{math.Inf(-1), NonFiniteFloatPolicy(99), `"-Inf"`},
	}
	for _, tc := range tests {
		got, err := Float64(tc.value).AppendJSON(nil, tc.policy)
		if err != nil {
			t.Fatalf("AppendJSON failed: %v", err)
		}
		if string(got) != tc.want {
			t.Fatalf("policy %d for %v: got %s want %s", tc.policy, tc.value, got, tc.want)
		}
	}
}

func TestJSONStringParityWithEncodingJSON(t *testing.T) {
	inputs := []string{
		"value",
		"",
		"\x1b",
		"line\nbreak",
		"tab\there",
		"quote\"needed",
		`back\slash`,
		"a<b",
		"a\xffb",
		"value\x7fhere",
		"ünïcödé ✓",
	}
	for _, input := range inputs {
		want, err := json.Marshal(input)
		if err != nil {
			t.Fatalf("json.Marshal(%q) failed: %v", input, err)
		}
		got, err := String(input).MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%q) failed: %v", input, err)
		}
		if string(got) != string(want) {
			t.Fatalf("escape mismatch for %q: got %s want %s", input, got, want)
		}
	}
}

func TestAppendJSONKeepsPrefix(t *testing.T) {
	out, err := String("x").AppendJSON([]byte(`{"k":`), NonFiniteFloatAsString)
	if err != nil {
		t.Fatalf("AppendJSON failed: %v", err)
	}
	out = append(out, '}')
	if string(out) != `{"k":"x"}` {
		t.Fatalf("unexpected output %s", out)
	}

	prefix := []byte("[")
	out, err = FromFill(fillNothing{}).AppendJSON(prefix, NonFiniteFloatAsString)
	if err == nil || string(out) != "[" {
		t.Fatalf("failed append must keep the original slice: %q %v", out, err)
	}
}

func TestValueAsJSONMarshaler(t *testing.T) {
	payload := map[string]Value{
		"count": Uint64(42),
		"name":  String("alice"),
		"none":  Null(),
		"temp":  FromDisplay(celsius(1)),
	}
	got, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"count":42,"name":"alice","none":null,"temp":"1.0°C"}`
	if string(got) != want {
		t.Fatalf("unexpected json %s", got)
	}
}
