package analysis

import (
	"math/cmplx"

	"github.com/tphakala/sinc-coefgen/internal/mathutil"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// Minimum FFT size for magnitude spectra
	minSpectrumSize = 4096

	// Zero-padding factor relative to the kernel length
	spectrumPadding = 8

	// spectrumHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	spectrumHermitianDivisor = 2
)

// Spectrum is a densely sampled magnitude response from DC to Nyquist.
type Spectrum struct {
	// Frequencies holds the normalized frequency of every bin (0 to 0.5).
	Frequencies []float64

	// Magnitude holds the linear magnitude of every bin.
	Magnitude []float64
}

// MagnitudeSpectrum computes the magnitude response of coeffs with a
// zero-padded real FFT.
//
// The FFT size is the next power of two of at least 8x the kernel length
// and never smaller than 4096, which gives a bin spacing fine enough to find
// stopband lobes of 160-tap kernels.
func MagnitudeSpectrum(coeffs []float64) Spectrum {
	if len(coeffs) == 0 {
		return Spectrum{}
	}

	size := mathutil.NextPowerOfTwo(max(minSpectrumSize, spectrumPadding*len(coeffs)))

	padded := make([]float64, size)
	copy(padded, coeffs)

	fft := fourier.NewFFT(size)
	bins := fft.Coefficients(nil, padded)

	numBins := size/spectrumHermitianDivisor + 1
	spectrum := Spectrum{
		Frequencies: make([]float64, numBins),
		Magnitude:   make([]float64, numBins),
	}
	for k := range numBins {
		spectrum.Frequencies[k] = fft.Freq(k)
		spectrum.Magnitude[k] = cmplx.Abs(bins[k])
	}
	return spectrum
}
