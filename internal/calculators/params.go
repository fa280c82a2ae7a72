// Package calculators hosts the scenario calculators. Each calculator is a
// pure function from a typed input struct to a typed result struct, with a
// nil result signalling "cannot compute a meaningful answer for these
// inputs" (the caller renders an empty state). Typed results adapt to the
// uniform domain.Result contract consumed by the console, JSON, email and
// HTTP surfaces.
//
// The registry maps URL-style slugs to calculator descriptors so the CLI,
// TUI and HTTP server can drive any calculator from a flat parameter map,
// which is exactly what query-string prefill and YAML scenario files decode
// into.
package calculators

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Params is the flat key/value form of a calculator's inputs. Values arrive
// as strings from query parameters or scenario files; typed getters parse
// them, falling back to zero on absent or malformed values so a partially
// filled form degrades to the empty-state path instead of erroring.
type Params map[string]string

// Decimal returns the parsed decimal value for key, or zero.
func (p Params) Decimal(key string) decimal.Decimal {
	raw, ok := p[key]
	if !ok {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// DecimalOr returns the parsed value for key, or def when absent/malformed.
func (p Params) DecimalOr(key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := p[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// Int returns the parsed integer value for key, or zero.
func (p Params) Int(key string) int {
	raw, ok := p[key]
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		// Query strings sometimes carry "30.0"; accept the integer part.
		if dv, derr := decimal.NewFromString(strings.TrimSpace(raw)); derr == nil {
			return int(dv.IntPart())
		}
		return 0
	}
	return v
}

// IntOr returns the parsed integer for key, or def when absent or
// malformed. An explicit zero is honored, so downstream validity checks can
// reject it rather than silently computing with the default.
func (p Params) IntOr(key string, def int) int {
	raw, ok := p[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return v
	}
	if dv, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil {
		return int(dv.IntPart())
	}
	return def
}

// String returns the raw string value for key, or def when absent.
func (p Params) String(key, def string) string {
	raw, ok := p[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	return strings.TrimSpace(raw)
}
