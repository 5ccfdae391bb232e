package mathutil

// Pairwise summation constants.
// These match the blocking used by NumPy's np.sum so that
// sums of the same slice produce the same bits.
const (
	pairwiseUnroll    = 8   // Number of partial accumulators in a leaf block
	pairwiseBlockSize = 128 // Largest block summed without further splitting
)

// Fixed-point constants
const (
	// Q32Scale is the fixed-point scale applied to normalized coefficients:
	// 4 * 1024³ = 2³². A unity-gain kernel sums to roughly this value.
	Q32Scale = 4 * 1024 * 1024 * 1024

	// maxExactInt is the largest magnitude below which every integer is exactly
	// representable as a float64 (2⁵³).
	maxExactInt = 1 << 53
)

// Common division constants
const (
	halfDivisor = 2 // Division by 2
)
