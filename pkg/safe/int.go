// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int32 converts signed or unsigned integers to int32 with range validation.
func Int32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int32, error) {
	switch value := any(v).(type) {
	case int:
		if int64(value) < math.MinInt32 || int64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case int32:
	case int64:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint:
		if uint64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint32:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint64:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int32(v), nil
}

// Index returns s[i] or the zero value when i is outside s.
func Index[T any](s []T, i int) T {
	var zero T
	if i < 0 || i >= len(s) {
		return zero
	}
	return s[i]
}
