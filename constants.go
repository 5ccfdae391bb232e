package coefgen

// Output file naming
const (
	// XS3Suffix is appended to the table name for the interleaved data file.
	XS3Suffix = "_xs3"
)

// Filter limits
const (
	// BlockSize is the xs3 block length; Taps must be a multiple of it.
	BlockSize = 16

	nyquistCutoff = 0.5 // Normalized Nyquist frequency
	cutoffDivisor = 2   // Cutoff halving applied by CutoffFor
)

// Built-in preset parameters
const (
	presetTaps = 160

	rate48k = 48000.0
	rate32k = 32000.0
	rate24k = 24000.0

	// Band edges handed to CutoffFor
	edge16k = 16000.0
	edge12k = 12000.0
)
