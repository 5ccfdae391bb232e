package mathutil

import (
	"fmt"
	"math"
)

// TruncateToInt converts each value to an integer by truncating toward zero.
//
// No rounding is applied: 2.9 becomes 2 and -2.9 becomes -2. Values that are
// NaN, infinite, or too large to convert exactly are reported as an error
// together with their index.
func TruncateToInt(values []float64) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value at index %d is not finite: %v", i, v)
		}
		if math.Abs(v) >= maxExactInt {
			return nil, fmt.Errorf("value at index %d out of range: %v", i, v)
		}
		out[i] = int64(v)
	}
	return out, nil
}

// ToFloat converts integer coefficients back to float64.
// Every int64 below 2⁵³ in magnitude converts exactly.
func ToFloat(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// NextPowerOfTwo returns the smallest power of two that is >= n (minimum 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
