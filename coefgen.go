package coefgen

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/tphakala/sinc-coefgen/internal/analysis"
	"github.com/tphakala/sinc-coefgen/internal/filter"
	"github.com/tphakala/sinc-coefgen/internal/layout"
	"github.com/tphakala/sinc-coefgen/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// Common errors returned by the generator.
var (
	// ErrInvalidSpec indicates invalid filter parameters.
	ErrInvalidSpec = errors.New("invalid filter specification")

	// ErrVerifyMismatch indicates that files on disk do not match the specification.
	ErrVerifyMismatch = errors.New("coefficient files do not match")

	// ErrDuplicateName indicates two specifications in one batch would write the same files.
	ErrDuplicateName = errors.New("duplicate table name")
)

// Spec describes one low-pass coefficient table.
type Spec struct {
	// Taps is the number of coefficients. It must be a positive multiple of 16.
	Taps int

	// Cutoff is the normalized cutoff frequency in (0, 0.5).
	Cutoff float64

	// Name is the base name of the output files, e.g. "UP4832" produces
	// UP4832.dat and UP4832_xs3.dat.
	Name string

	// SampleRate is the rate in Hz the table runs at. It is optional and only
	// used for impulse response export and reporting.
	SampleRate float64
}

// Validate checks if the specification is valid.
func (s *Spec) Validate() error {
	if s.Taps <= 0 || s.Taps%BlockSize != 0 {
		return fmt.Errorf("%w: taps must be a positive multiple of %d, got %d", ErrInvalidSpec, BlockSize, s.Taps)
	}

	if math.IsNaN(s.Cutoff) || s.Cutoff <= 0 || s.Cutoff >= nyquistCutoff {
		return fmt.Errorf("%w: cutoff must be in (0, 0.5), got %g", ErrInvalidSpec, s.Cutoff)
	}

	if s.Name == "" || s.Name == "." || s.Name == ".." ||
		strings.ContainsAny(s.Name, `/\`) || filepath.Base(s.Name) != s.Name {
		return fmt.Errorf("%w: name must be a plain file name, got %q", ErrInvalidSpec, s.Name)
	}

	if s.SampleRate < 0 || math.IsNaN(s.SampleRate) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be non-negative, got %g", ErrInvalidSpec, s.SampleRate)
	}

	return nil
}

// CutoffFor returns edge / sampleRate / 2, the normalized cutoff used by the
// built-in tables (for example CutoffFor(16000, 48000) = 1/6).
func CutoffFor(edge, sampleRate float64) float64 {
	return edge / sampleRate / cutoffDivisor
}

// Table is a generated fixed-point coefficient table.
type Table struct {
	Spec Spec

	// Coefs holds the q32 coefficients in natural order, truncated toward zero.
	Coefs []int64

	// Normalized holds the floating-point coefficients before scaling.
	Normalized []float64

	// Sum is the raw kernel sum (including guard taps) used for normalization.
	Sum float64
}

// Design computes the coefficient table for spec without writing files.
//
// The kernel is a Blackman-windowed sinc designed on Taps+2 points,
// normalized to unity DC gain, scaled by 2³² and stripped of its two
// guard taps. Each value is truncated toward zero.
func Design(spec Spec) (*Table, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	kernel, err := filter.DesignBlackmanSinc(filter.DesignParams{
		NumTaps:    spec.Taps,
		CutoffFreq: spec.Cutoff,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to design %s: %w", spec.Name, err)
	}

	// Power-of-two scale is exact, so SIMD lane order cannot change the result
	scaled := make([]float64, len(kernel.Coefficients))
	f64.Scale(scaled, kernel.Coefficients, mathutil.Q32Scale)

	coefs, err := mathutil.TruncateToInt(scaled)
	if err != nil {
		return nil, fmt.Errorf("failed to quantize %s: %w", spec.Name, err)
	}

	return &Table{
		Spec:       spec,
		Coefs:      coefs,
		Normalized: kernel.Coefficients,
		Sum:        kernel.Sum,
	}, nil
}

// XS3 returns the table in xs3 block-interleaved order.
func (t *Table) XS3() ([]int64, error) {
	return layout.XS3(t.Coefs)
}

// Quantized returns the integer coefficients divided by 2³².
func (t *Table) Quantized() []float64 {
	out := mathutil.ToFloat(t.Coefs)
	f64.Scale(out, out, 1.0/mathutil.Q32Scale)
	return out
}

// Analyze measures the frequency response of the quantized table.
func (t *Table) Analyze() (analysis.Report, error) {
	return analysis.Analyze(t.Quantized(), t.Spec.Cutoff, analysis.Options{})
}
