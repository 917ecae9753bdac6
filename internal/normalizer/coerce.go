package normalizer

import (
	"math"
	"strconv"
)

// coercionKind tags the outcome of a best-effort scalar coercion.
type coercionKind int

const (
	coercedUnchanged coercionKind = iota
	coercedString
	coercedInteger
	coercedFloat
)

// coercion is the tagged result of the ordered conversion attempts applied to
// fields the normalizer has no taxonomy rule for.
type coercion struct {
	kind  coercionKind
	value any
}

// coerceScalar tries, in order: digit-only string to int, string to float
// (collapsing integral floats back to int), otherwise the string unchanged.
// Non-string values are never touched.
func coerceScalar(v any) coercion {
	s, ok := v.(string)
	if !ok {
		return coercion{kind: coercedUnchanged, value: v}
	}

	if digitsOnly(s) {
		if i, err := strconv.Atoi(s); err == nil {
			return coercion{kind: coercedInteger, value: i}
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
			return coercion{kind: coercedInteger, value: int(f)}
		}

		return coercion{kind: coercedFloat, value: f}
	}

	return coercion{kind: coercedString, value: s}
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
