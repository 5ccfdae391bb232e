// Package filter provides windowed-sinc FIR design for fixed-point coefficient tables.
package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/sinc-coefgen/internal/mathutil"
)

const (
	// Smallest kernel that can be designed
	minFilterTaps = 1

	// GuardTaps is the number of extra taps designed around the kernel.
	// One sample on either side is computed, included in the normalization
	// sum, and then thrown away.
	GuardTaps = 2

	// Window normalization
	windowNormalizationFactor = 2.0

	// Blackman window coefficients: a0 - a1*cos(2πn/(M-1)) + a2*cos(4πn/(M-1))
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08

	// Sinc function constants
	sincCenterTap = 1.0

	// Cutoff must lie strictly inside (0, Nyquist)
	nyquistCutoff = 0.5
)

// Design errors.
var (
	ErrInvalidTaps   = errors.New("invalid number of taps")
	ErrInvalidCutoff = errors.New("invalid cutoff frequency")
	ErrZeroSum       = errors.New("kernel coefficients sum to zero")
)

// BlackmanWindow generates a symmetric Blackman window of the given length.
//
// w[n] = 0.42 - 0.5*cos(2πn/(L-1)) + 0.08*cos(4πn/(L-1))
//
// The end points evaluate to (almost exactly) zero and the window is
// symmetric: w[i] = w[length-1-i]. Lengths below 1 return an empty slice;
// length 1 returns [1].
func BlackmanWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = sincCenterTap
		return window
	}

	for n := range length {
		window[n] = blackman(n, length)
	}

	return window
}

// blackman evaluates one Blackman window sample.
// The operation order is kept fixed so table values are reproducible.
func blackman(n, length int) float64 {
	denom := float64(length - 1)
	return blackmanA0 - blackmanA1*math.Cos(2*math.Pi*float64(n)/denom) +
		blackmanA2*math.Cos(4*math.Pi*float64(n)/denom)
}

// Sinc computes the normalized sinc function sin(πx)/(πx), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return sincCenterTap
	}
	y := math.Pi * x
	return math.Sin(y) / y
}

// DesignParams holds parameters for Blackman-windowed sinc design.
type DesignParams struct {
	// NumTaps is the number of coefficients kept in the final kernel.
	// Two additional guard taps are designed and discarded.
	NumTaps int

	// CutoffFreq is the normalized cutoff frequency (0 to 0.5)
	// 0.5 represents Nyquist frequency (half the sample rate)
	CutoffFreq float64
}

// Validate checks if design parameters are valid.
func (p *DesignParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidTaps, p.NumTaps, minFilterTaps)
	}

	if math.IsNaN(p.CutoffFreq) || p.CutoffFreq <= 0 || p.CutoffFreq >= nyquistCutoff {
		return fmt.Errorf("%w: %f (must be in (0, 0.5))", ErrInvalidCutoff, p.CutoffFreq)
	}

	return nil
}

// Kernel is a normalized low-pass kernel with its guard taps removed.
type Kernel struct {
	// Coefficients holds NumTaps values. Together with the discarded guard
	// taps they sum to 1.0.
	Coefficients []float64

	// Guards holds the normalized first and last samples that were dropped.
	Guards [GuardTaps]float64

	// Sum is the raw coefficient sum over all NumTaps+2 designed taps,
	// before normalization.
	Sum float64
}

// DesignBlackmanSinc designs a Blackman-windowed sinc lowpass FIR filter.
//
// The design works on M = NumTaps + 2 taps:
//  1. h[n] = sinc(2·fc·(n - (M-1)/2)) · blackman(n, M) for n in [0, M)
//  2. every h[n] is divided by Σh (unity DC gain over all M taps)
//  3. the first and last tap are removed, leaving NumTaps coefficients
//
// The kernel is symmetric (linear phase).
func DesignBlackmanSinc(params DesignParams) (*Kernel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m := params.NumTaps + GuardTaps
	center := float64(m-1) / windowNormalizationFactor

	h := make([]float64, m)
	for n := range m {
		x := windowNormalizationFactor * params.CutoffFreq * (float64(n) - center)
		h[n] = Sinc(x) * blackman(n, m)
	}

	sum := mathutil.PairwiseSum(h)
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: %d taps at cutoff %f", ErrZeroSum, params.NumTaps, params.CutoffFreq)
	}

	// Element-wise division; scaling by 1/sum would change low bits of the table
	for i := range h {
		h[i] /= sum
	}

	return &Kernel{
		Coefficients: h[1 : m-1 : m-1],
		Guards:       [GuardTaps]float64{h[0], h[m-1]},
		Sum:          sum,
	}, nil
}
