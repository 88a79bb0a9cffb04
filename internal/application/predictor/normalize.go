package predictor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// FirstOf returns the first key present in payload with a non-nil value, in
// the given key order.
func FirstOf(payload map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := payload[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Require returns the first key present in payload with a non-nil value, or a
// validation error naming the attempted keys.
func Require(payload map[string]interface{}, keys ...string) (interface{}, error) {
	if v, ok := FirstOf(payload, keys...); ok {
		return v, nil
	}
	return nil, newValidationError("missing required field: one of %v", keys)
}

// NormString coerces any value to a trimmed, lowercased string. Total over
// any input type; never fails. Idempotent.
func NormString(v interface{}) string {
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
}

// NormCylinders normalizes a cylinder count. Numeric inputs and strings with
// a leading digit run become "<n> cylinders"; nil becomes "unknown"; anything
// else passes through trimmed and lowercased. Never fails.
func NormCylinders(v interface{}) string {
	if v == nil {
		return "unknown"
	}

	switch n := v.(type) {
	case int:
		return fmt.Sprintf("%d cylinders", n)
	case int64:
		return fmt.Sprintf("%d cylinders", n)
	case float64:
		return fmt.Sprintf("%d cylinders", int64(n))
	}

	s := NormString(v)
	if m := leadingDigits.FindString(s); m != "" {
		if n, err := strconv.ParseInt(m, 10, 64); err == nil {
			return fmt.Sprintf("%d cylinders", n)
		}
	}
	return s
}

// toInt coerces a decoded JSON value to an integer. Whole-valued floats are
// accepted since JSON has no integer type; fractional values are rejected.
func toInt(field string, v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, newValidationError("field %s must be an integer, got %v", field, v)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, newValidationError("field %s must be an integer, got %q", field, n)
		}
		return i, nil
	default:
		return 0, newValidationError("field %s must be an integer, got %T", field, v)
	}
}

// toFloat coerces a decoded JSON value to a float.
func toFloat(field string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, newValidationError("field %s must be a number, got %q", field, n)
		}
		return f, nil
	default:
		return 0, newValidationError("field %s must be a number, got %T", field, v)
	}
}

// asFloat reports whether v is coercible to a float. Used by the prediction
// column fallback scan.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
