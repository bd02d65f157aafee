// Package sanitize normalizes user supplied catalog fields before they are
// persisted. Every function is pure.
package sanitize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxTextLength caps every free-text field, counted in runes.
	MaxTextLength = 1000
	// MaxCategories is how many pack categories are kept.
	MaxCategories = 3
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Text strips angle brackets, trims surrounding whitespace and truncates to
// MaxTextLength runes.
func Text(s string) string {
	s = strings.TrimSpace(angleBrackets.Replace(s))
	if r := []rune(s); len(r) > MaxTextLength {
		s = strings.TrimSpace(string(r[:MaxTextLength]))
	}
	return s
}

// TextOr is Text with a default for values that sanitize to empty.
func TextOr(s, fallback string) string {
	if clean := Text(s); clean != "" {
		return clean
	}
	return fallback
}

// Float converts a decoded JSON value to a finite float64. Anything that is
// not a finite number, or a string holding one, becomes 0.
func Float(v interface{}) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Count converts a decoded JSON value to a non-negative integer, truncating
// fractions. Invalid input becomes 0.
func Count(v interface{}) int {
	f := Float(v)
	if f <= 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// Price converts a decoded JSON value to a non-negative amount rounded to
// cents. Invalid or negative input becomes zero.
func Price(v interface{}) decimal.Decimal {
	var d decimal.Decimal
	if s, ok := v.(string); ok {
		parsed, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	} else {
		f := Float(v)
		if f == 0 {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(f)
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}

// Categories sanitizes each category, drops empties and keeps the first
// MaxCategories in order.
func Categories(categories []string) []string {
	out := make([]string, 0, MaxCategories)
	for _, c := range categories {
		if len(out) == MaxCategories {
			break
		}
		if clean := Text(c); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// URLs trims each reference and drops empty ones, keeping order.
func URLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
