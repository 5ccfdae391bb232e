// Package analysis measures the frequency response of generated kernels.
package analysis

import (
	"math"

	"github.com/tphakala/simd/f64"
)

const (
	// Default number of DTFT points when the caller passes <= 0
	defaultResponsePoints = 512

	// Normalized Nyquist frequency
	nyquist = 0.5

	// Decibel conversion
	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)

// FrequencyResponse holds the frequency response of a filter.
type FrequencyResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse evaluates the DTFT of an FIR filter at numPoints
// evenly spaced frequencies from DC up to (but excluding) Nyquist.
//
// H(e^jω) = Σ h[n]·e^(-jωn) is split into its real and imaginary parts, each
// computed as a SIMD dot product against a cosine or sine basis vector.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FrequencyResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FrequencyResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	cosBasis := make([]float64, len(coeffs))
	sinBasis := make([]float64, len(coeffs))

	for k := range numPoints {
		freq := float64(k) * nyquist / float64(numPoints)
		response.Frequencies[k] = freq

		omega := 2 * math.Pi * freq
		for n := range coeffs {
			angle := omega * float64(n)
			cosBasis[n] = math.Cos(angle)
			sinBasis[n] = math.Sin(angle)
		}

		realPart := f64.DotProduct(coeffs, cosBasis)
		imagPart := -f64.DotProduct(coeffs, sinBasis)

		response.Magnitude[k] = math.Hypot(realPart, imagPart)
		response.Phase[k] = math.Atan2(imagPart, realPart)
	}

	return response
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
