// Package mathutil provides numeric helpers for coefficient table generation.
package mathutil

// PairwiseSum returns the sum of a using pairwise summation.
//
// The summation order is fixed and matches NumPy's np.sum:
//   - fewer than 8 elements are summed sequentially
//   - up to 128 elements are accumulated into 8 partial sums which are then
//     combined as ((r0+r1)+(r2+r3))+((r4+r5)+(r6+r7)), followed by the
//     remainder that does not fill a group of 8
//   - longer slices are split at n/2 rounded down to a multiple of 8 and the
//     two halves are summed recursively
//
// Unlike a SIMD reduction, the result does not depend on the host CPU, which
// keeps generated integer tables identical across machines.
func PairwiseSum(a []float64) float64 {
	n := len(a)

	if n < pairwiseUnroll {
		var res float64
		for _, v := range a {
			res += v
		}
		return res
	}

	if n <= pairwiseBlockSize {
		var r [pairwiseUnroll]float64
		copy(r[:], a[:pairwiseUnroll])

		i := pairwiseUnroll
		for ; i < n-(n%pairwiseUnroll); i += pairwiseUnroll {
			r[0] += a[i+0]
			r[1] += a[i+1]
			r[2] += a[i+2]
			r[3] += a[i+3]
			r[4] += a[i+4]
			r[5] += a[i+5]
			r[6] += a[i+6]
			r[7] += a[i+7]
		}

		res := ((r[0] + r[1]) + (r[2] + r[3])) + ((r[4] + r[5]) + (r[6] + r[7]))

		// Remainder
		for ; i < n; i++ {
			res += a[i]
		}
		return res
	}

	// Split in half, keeping the first half a multiple of the unroll factor
	n2 := n / halfDivisor
	n2 -= n2 % pairwiseUnroll
	return PairwiseSum(a[:n2]) + PairwiseSum(a[n2:])
}
