package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sumTolerance = 1e-12

	// 0.1 added a million times drifts by ~1e-6 when summed sequentially.
	driftCount     = 1_000_000
	driftValue     = 0.1
	driftExpected  = 100000.0
	driftTolerance = 1e-8
)

// TestPairwiseSum_Small tests short slices that are summed sequentially.
func TestPairwiseSum_Small(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3.5}, 3.5},
		{"seven", []float64{1, 2, 3, 4, 5, 6, 7}, 28},
		{"negative", []float64{-1, -2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PairwiseSum(tt.input), sumTolerance)
		})
	}
}

// TestPairwiseSum_BlockSizes covers every code path: leaf, unrolled block, and split.
func TestPairwiseSum_BlockSizes(t *testing.T) {
	for _, n := range []int{8, 9, 15, 16, 17, 127, 128, 129, 162, 1000} {
		input := make([]float64, n)
		var want float64
		for i := range input {
			input[i] = float64(i + 1)
			want += float64(i + 1)
		}
		assert.InDelta(t, want, PairwiseSum(input), sumTolerance, "n=%d", n)
	}
}

// TestPairwiseSum_SplitPoint verifies the recursion split is a multiple of 8.
func TestPairwiseSum_SplitPoint(t *testing.T) {
	// 162 elements split into 80 + 82
	input := make([]float64, 162)
	for i := range input {
		input[i] = math.Sin(float64(i)) * 1e3
	}

	want := PairwiseSum(input[:80]) + PairwiseSum(input[80:])
	assert.Equal(t, want, PairwiseSum(input), "split must happen at index 80")
}

// TestPairwiseSum_Accuracy shows pairwise summation avoids sequential drift.
func TestPairwiseSum_Accuracy(t *testing.T) {
	input := make([]float64, driftCount)
	var naive float64
	for i := range input {
		input[i] = driftValue
		naive += driftValue
	}

	assert.InDelta(t, driftExpected, PairwiseSum(input), driftTolerance)
	assert.Greater(t, math.Abs(naive-driftExpected), driftTolerance,
		"sequential sum should drift more than pairwise")
}

// TestPairwiseSum_Deterministic tests repeated calls return identical bits.
func TestPairwiseSum_Deterministic(t *testing.T) {
	input := make([]float64, 500)
	for i := range input {
		input[i] = math.Cos(float64(i) * 0.37)
	}

	first := PairwiseSum(input)
	for range 10 {
		require.Equal(t, math.Float64bits(first), math.Float64bits(PairwiseSum(input)))
	}
}
