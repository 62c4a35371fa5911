package kv

import "strings"

// NonFiniteFloatPolicy controls how JSON rendering serializes NaN/+Inf/-Inf.
type NonFiniteFloatPolicy uint8

const (
	// NonFiniteFloatAsString emits non-finite floats as JSON strings:
	// "NaN", "+Inf", "-Inf". This is the default.
	NonFiniteFloatAsString NonFiniteFloatPolicy = iota
	// NonFiniteFloatAsNull emits non-finite floats as JSON null.
	NonFiniteFloatAsNull
)

func normalizeNonFiniteFloatPolicy(policy NonFiniteFloatPolicy) NonFiniteFloatPolicy {
	switch policy {
	case NonFiniteFloatAsNull:
		return policy
	default:
		return NonFiniteFloatAsString
	}
}

func parseNonFiniteFloatPolicy(value string) (NonFiniteFloatPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "string", "str":
		return NonFiniteFloatAsString, true
	case "null", "nil":
		return NonFiniteFloatAsNull, true
	default:
		return NonFiniteFloatAsString, false
	}
}
