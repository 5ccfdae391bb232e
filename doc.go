// Package coefgen generates fixed-point low-pass FIR coefficient tables for
// sample rate conversion.
//
// Each table is a Blackman-windowed sinc kernel. It is designed on two more
// taps than requested, normalized to unity DC gain, scaled by 2³² (q32) and
// stripped of the two edge taps. Values are truncated toward zero, so the
// output is identical on every platform.
//
// # Quick Start
//
// To write the two data files for a table:
//
//	files, err := coefgen.Generate(coefgen.Spec{
//	    Taps:   160,
//	    Cutoff: coefgen.CutoffFor(16000, 48000),
//	    Name:   "UP4832",
//	}, "FilterData")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(files.Flat, files.XS3)
//
// To regenerate every built-in table:
//
//	_, err := coefgen.GenerateAll(coefgen.PresetSpecs(), "FilterData", coefgen.Options{})
//
// # Output Files
//
// <name>.dat holds one "<value>," line per coefficient in natural order.
// <name>_xs3.dat holds the same values reordered per block of 16: the eight
// even-offset coefficients of the block followed by its eight odd-offset
// coefficients. Taps must therefore be a multiple of 16.
//
// Optional outputs are a C header with both layouts ([Options.Header]) and a
// mono 32-bit WAV impulse response ([Options.WAV]).
//
// # Presets
//
// [Presets] lists the built-in tables:
//
//   - UP4832: 160 taps for 48 kHz to 32 kHz conversion
//   - UP3224: 160 taps for 32 kHz to 24 kHz conversion
//
// # Verification
//
// [Verify] re-designs a table and checks that the files on disk match it and
// that the xs3 file is a faithful reordering of the flat file.
//
// # Thread Safety
//
// All functions are safe for concurrent use. [GenerateAll] generates tables
// concurrently; concurrent calls writing the same name to the same directory
// race on the output files.
package coefgen
