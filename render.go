package kv

import (
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/kv/ansi"
)

// RenderOptions controls how Fprint renders a Value.
type RenderOptions struct {
	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY.
	ForceColor bool

	// Palette overrides the colours. When nil, the package-level colours of
	// the ansi package are used.
	Palette *ansi.Palette

	// NonFiniteFloat selects how FprintJSON encodes NaN and infinities.
	NonFiniteFloat NonFiniteFloatPolicy
}

func (o RenderOptions) colorEnabled(w io.Writer) bool {
	return !o.NoColor && (o.ForceColor || isTerminal(w))
}

// Fprint writes the text of v to w, in colour when w is a terminal or
// ForceColor is set.
func Fprint(w io.Writer, v Value, opts RenderOptions) error {
	if w == nil {
		w = io.Discard
	}
	if !opts.colorEnabled(w) {
		_, err := v.WriteTo(w)
		return err
	}
	vb := acquireValueBuffer()
	defer releaseValueBuffer(vb)
	if err := v.visit(&colorVisitor{vb: vb, palette: opts.palette()}); err != nil {
		return err
	}
	return writeAll(w, vb.buf)
}

// FprintJSON writes the JSON encoding of v to w.
func FprintJSON(w io.Writer, v Value, opts RenderOptions) error {
	if w == nil {
		w = io.Discard
	}
	vb := acquireValueBuffer()
	defer releaseValueBuffer(vb)
	j := jsonVisitor{vb: vb, policy: normalizeNonFiniteFloatPolicy(opts.NonFiniteFloat)}
	if err := v.visit(&j); err != nil {
		return err
	}
	return writeAll(w, vb.buf)
}

func (o RenderOptions) palette() *ansi.Palette {
	if o.Palette != nil {
		return o.Palette
	}
	snap := ansi.Snapshot()
	return &snap
}

func writeAll(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return errorWrap("write failed", err)
	}
	if n != len(b) {
		return errorWrap("write failed", io.ErrShortWrite)
	}
	return nil
}

// EnvOption customizes RenderOptionsFromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix  string
	options RenderOptions
}

// WithEnvPrefix overrides the environment variable prefix used by
// RenderOptionsFromEnv.
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds RenderOptionsFromEnv with explicit values.
func WithEnvOptions(opts RenderOptions) EnvOption {
	return func(cfg *envConfig) {
		cfg.options = opts
	}
}

// RenderOptionsFromEnv builds RenderOptions from environment variables.
// Environment values override seeded options; invalid values are ignored.
//
// Recognised variables are {prefix}NO_COLOR, FORCE_COLOR, PALETTE and
// NON_FINITE_FLOAT (string|null). The default prefix is "KV_".
func RenderOptionsFromEnv(opts ...EnvOption) RenderOptions {
	cfg := envConfig{prefix: "KV_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		if palette, ok := ansi.LookupPalette(value); ok {
			resolved.Palette = palette
		}
	}
	if value, ok := lookupEnv(prefix, "NON_FINITE_FLOAT"); ok {
		if policy, ok := parseNonFiniteFloatPolicy(value); ok {
			resolved.NonFiniteFloat = policy
		}
	}
	return resolved
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
