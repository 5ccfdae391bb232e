package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Default transition half-width in units of 1/N. The Blackman main lobe
	// spans ±6/N, so the response has settled into its sidelobes roughly
	// 3/N away from the cutoff.
	defaultEdgeSpan = 3.0

	// Smallest passband edge kept when cutoff - span would go non-positive
	minPassbandEdge = 1e-9

	// Amplitude ratio of the -6 dB point
	halfAmplitude = 0.5
)

// ErrEmptyKernel is returned when there is nothing to analyse.
var ErrEmptyKernel = errors.New("kernel has no coefficients")

// Options controls where the passband and stopband are measured.
// Zero values select defaults derived from the cutoff and kernel length.
type Options struct {
	// PassbandEdge is the highest normalized frequency counted as passband.
	PassbandEdge float64

	// StopbandEdge is the lowest normalized frequency counted as stopband.
	StopbandEdge float64
}

// Report summarizes the response of a low-pass kernel.
type Report struct {
	Taps   int
	Cutoff float64

	// DCGain is the sum of the coefficients.
	DCGain float64

	PassbandEdge float64
	StopbandEdge float64

	// PassbandRippleDB is the largest deviation from the DC gain, in dB,
	// between DC and PassbandEdge.
	PassbandRippleDB float64

	// StopbandAttenuationDB is the smallest attenuation relative to the DC
	// gain, in dB, between StopbandEdge and Nyquist. Larger is better.
	StopbandAttenuationDB float64

	// HalfAmplitudeFreq is the first frequency where the magnitude drops to
	// half of the DC gain (-6 dB).
	HalfAmplitudeFreq float64
}

// Analyze measures the magnitude response of a low-pass kernel designed for
// the given normalized cutoff.
func Analyze(coeffs []float64, cutoff float64, opts Options) (Report, error) {
	if len(coeffs) == 0 {
		return Report{}, ErrEmptyKernel
	}
	if math.IsNaN(cutoff) || cutoff <= 0 || cutoff >= nyquist {
		return Report{}, fmt.Errorf("cutoff %f outside (0, 0.5)", cutoff)
	}

	span := defaultEdgeSpan / float64(len(coeffs))
	passEdge := opts.PassbandEdge
	if passEdge <= 0 {
		passEdge = max(minPassbandEdge, cutoff-span)
	}
	stopEdge := opts.StopbandEdge
	if stopEdge <= 0 {
		stopEdge = min(nyquist, cutoff+span)
	}
	if passEdge >= stopEdge {
		return Report{}, fmt.Errorf("passband edge %f must be below stopband edge %f", passEdge, stopEdge)
	}

	spectrum := MagnitudeSpectrum(coeffs)
	dc := floats.Sum(coeffs)

	report := Report{
		Taps:              len(coeffs),
		Cutoff:            cutoff,
		DCGain:            dc,
		PassbandEdge:      passEdge,
		StopbandEdge:      stopEdge,
		HalfAmplitudeFreq: nyquist,
	}

	var passband, stopband []float64
	halfFound := false
	for k, f := range spectrum.Frequencies {
		m := spectrum.Magnitude[k]
		if f <= passEdge {
			passband = append(passband, m)
		}
		if f >= stopEdge {
			stopband = append(stopband, m)
		}
		if !halfFound && m <= halfAmplitude*dc {
			report.HalfAmplitudeFreq = f
			halfFound = true
		}
	}

	if len(passband) > 0 {
		hi := MagnitudeDB(floats.Max(passband) / dc)
		lo := MagnitudeDB(floats.Min(passband) / dc)
		report.PassbandRippleDB = max(hi, -lo)
	}
	if len(stopband) > 0 {
		report.StopbandAttenuationDB = -MagnitudeDB(floats.Max(stopband) / dc)
	}

	return report, nil
}
