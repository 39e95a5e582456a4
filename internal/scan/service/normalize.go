package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Bounds describes the allowed range for a model-supplied numeric field.
type Bounds struct {
	Min float64
	Max float64
}

var (
	// ValueBounds keeps estimated values non-negative and below an
	// obviously-hallucinated ceiling.
	ValueBounds = Bounds{Min: 0, Max: 10_000_000}

	// QuantityBounds: a detected item is at least one physical thing.
	QuantityBounds = Bounds{Min: 1, Max: 10_000}

	// AccuracyBounds: model confidence is a fraction.
	AccuracyBounds = Bounds{Min: 0, Max: 1}

	// YearBounds covers plausible vintages and release years.
	YearBounds = Bounds{Min: 1000, Max: 2100}
)

// NormalizeNumber coerces a decoded JSON value into a float64 and clamps it
// into bounds. Models emit numbers as strings ("12.50", "€45"), so string
// coercion strips common noise before parsing. Returns nil when the value
// cannot be interpreted as a finite number.
func NormalizeNumber(value interface{}, b Bounds) *float64 {
	f, ok := coerceFloat(value)
	if !ok {
		return nil
	}
	f = math.Max(b.Min, math.Min(b.Max, f))
	return &f
}

// normalizeInt is NormalizeNumber rounded to the nearest integer.
func normalizeInt(value interface{}, b Bounds) *int {
	f := NormalizeNumber(value, b)
	if f == nil {
		return nil
	}
	n := int(math.Round(*f))
	return &n
}

func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		return parseNumericString(v)
	case bool:
		return 0, false
	default:
		return 0, false
	}
}

// parseNumericString handles "12.50", "12,50", "€ 45", "1995" and similar.
func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "€$£ ")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, true
	}

	// Decimal comma without thousands separators.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
