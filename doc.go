// Package kv captures log values of unknown concrete type without copying
// them, and lets any number of consumers extract a representation later
// through a single dispatch.
//
// # Design overview
//
//   - Capture: a Value is a small tagged union. Go scalars become primitives
//     (signed, unsigned, float, bool, char, string, None); everything else is
//     referenced through the capability it offers: debug text (any value),
//     display text (fmt.Stringer), deferred construction (Filler) or, in the
//     default build, a zap array marshaler.
//   - Dispatch: every consumer is a visitor with one method per kind. A
//     Value makes exactly one visitor call per dispatch; a Filler makes it
//     through its Slot.
//   - Coercion: AsUint64, AsInt64, AsFloat64, AsBool, AsChar and AsStr
//     answer "is this value of kind K" regardless of how it was captured.
//     Kinds never widen into each other. Debug and display values never
//     coerce. ToStr also returns text produced by Filler and zap values.
//   - Rendering: Format, String, WriteTo, AppendText and MarshalText share one
//     text consumer, so debug-style and display-style output are identical.
//     AppendColor adds ANSI colours, MarshalJSON and AppendJSON encode JSON.
//   - Bridges: a Value is a zapcore.ArrayMarshaler, a logr.Marshaler, a
//     slog.LogValuer and a yaml.Marshaler; Field builds a typed zap.Field.
//
// # Usage
//
//	v := kv.Uint64(42)
//	n, ok := v.AsUint64() // 42, true
//	fmt.Println(v)        // 42
//
//	s := kv.String("a string")
//	fmt.Printf("%v\n", s) // "a string"
//
//	d := kv.FromDisplay(time.Second)
//	_, ok = d.AsStr() // false: display values carry text only
//
// # Build tags
//
//   - kv_nozap drops the zap bridge: no FromZap, Field or MarshalLogArray.
//   - kv_notext drops owned-text coercion: ToStr is unavailable and strings
//     produced by Filler or zap values never coerce.
package kv
