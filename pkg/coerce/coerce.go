// Package coerce turns loosely-typed diagram attributes into typed,
// defaulted values.
//
// Imported documents carry every field as text: positions arrive as
// numeric strings, colors as possibly-empty attribute values, stroke
// widths as whatever the author typed. All defaulting policy lives here
// so it can be audited and tested in one place. Coercion never fails -
// an unusable input resolves to the supplied default, not an error.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// Float parses s as a decimal number. A missing, malformed, or
// non-finite input yields def.
func Float(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// String returns s if it is non-empty after trimming, otherwise def.
// Used for colors and other free-form attributes.
func String(s, def string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}

// Size parses s as a positive render dimension. Like [StrokeWidth],
// zero and negative values are unusable and resolve to def, keeping
// node sizes strictly positive.
func Size(s string, def float64) float64 {
	f := Float(s, def)
	if f <= 0 {
		return def
	}
	return f
}

// StrokeWidth parses s as a positive integer stroke width.
// Anything else, including zero and negative values, resolves to 1.
func StrokeWidth(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
