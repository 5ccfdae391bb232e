package main

import (
	"errors"
	"fmt"
	"io"

	coefgen "github.com/tphakala/sinc-coefgen"
	"github.com/tphakala/sinc-coefgen/internal/analysis"
	"github.com/tphakala/sinc-coefgen/internal/config"
	"github.com/urfave/cli"
)

var (
	ErrRequiredTaps   = errors.New("taps is required")
	ErrRequiredCutoff = errors.New("cutoff is required")
	ErrRequiredName   = errors.New("name is required")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrPresetAndSpec  = errors.New("use either --preset or --taps/--cutoff, not both")
	ErrConfigAndSpec  = errors.New("flag cannot be combined with --config")
)

// Flags a job file replaces, each with its short alias.
var jobOverriddenFlags = [][]string{
	{"taps", "t"},
	{"cutoff", "c"},
	{"name", "n"},
	{"out", "o"},
	{"rate", "r"},
}

// firstSetFlag returns the long name of the first flag given on the
// command line, or "" when none was.
func firstSetFlag(c *cli.Context, flags [][]string) string {
	for _, names := range flags {
		for _, name := range names {
			if c.IsSet(name) {
				return names[0]
			}
		}
	}
	return ""
}

// specFromFlags builds a Spec from --taps and --cutoff with the given name.
func specFromFlags(c *cli.Context, name string) (coefgen.Spec, error) {
	taps := c.Int("taps")
	if taps == 0 {
		return coefgen.Spec{}, ErrRequiredTaps
	}
	cutoff := c.Float64("cutoff")
	if cutoff == 0 {
		return coefgen.Spec{}, ErrRequiredCutoff
	}
	if name == "" {
		return coefgen.Spec{}, ErrRequiredName
	}

	spec := coefgen.Spec{Taps: taps, Cutoff: cutoff, Name: name}
	if err := spec.Validate(); err != nil {
		return coefgen.Spec{}, err
	}
	return spec, nil
}

// specOrPreset resolves --preset, falling back to the explicit flags.
func specOrPreset(c *cli.Context, name string) (coefgen.Spec, error) {
	preset := c.String("preset")
	if preset == "" {
		return specFromFlags(c, name)
	}

	if c.Int("taps") != 0 || c.Float64("cutoff") != 0 {
		return coefgen.Spec{}, ErrPresetAndSpec
	}
	p, ok := coefgen.LookupPreset(preset)
	if !ok {
		return coefgen.Spec{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return p.Spec, nil
}

func optionsFromFlags(c *cli.Context) coefgen.Options {
	return coefgen.Options{
		Header: c.Bool("header"),
		WAV:    c.Bool("wav"),
	}
}

// specsFromJob converts the filters of a job file into specs.
func specsFromJob(job *config.Job) []coefgen.Spec {
	specs := make([]coefgen.Spec, len(job.Filters))
	for i, f := range job.Filters {
		specs[i] = coefgen.Spec{
			Taps:       f.Taps,
			Cutoff:     f.Cutoff,
			Name:       f.Name,
			SampleRate: f.SampleRate,
		}
	}
	return specs
}

// writtenPaths lists the non-empty paths in files.
func writtenPaths(files *coefgen.Files) []string {
	var paths []string
	for _, p := range []string{files.Flat, files.XS3, files.Header, files.WAV} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func printReport(w io.Writer, spec coefgen.Spec, rawSum float64, r analysis.Report) {
	fmt.Fprintf(w, "Table:            %s\n", spec.Name)
	fmt.Fprintf(w, "Taps:             %d\n", r.Taps)
	fmt.Fprintf(w, "Cutoff:           %.6f%s\n", r.Cutoff, inKHz(r.Cutoff, spec.SampleRate))
	fmt.Fprintf(w, "Raw sum:          %.12f\n", rawSum)
	fmt.Fprintf(w, "DC gain:          %.9f\n", r.DCGain)
	fmt.Fprintf(w, "Passband edge:    %.6f%s\n", r.PassbandEdge, inKHz(r.PassbandEdge, spec.SampleRate))
	fmt.Fprintf(w, "Passband ripple:  %.4f dB\n", r.PassbandRippleDB)
	fmt.Fprintf(w, "Stopband edge:    %.6f%s\n", r.StopbandEdge, inKHz(r.StopbandEdge, spec.SampleRate))
	fmt.Fprintf(w, "Stopband atten:   %.1f dB\n", r.StopbandAttenuationDB)
	fmt.Fprintf(w, "-6 dB point:      %.6f%s\n", r.HalfAmplitudeFreq, inKHz(r.HalfAmplitudeFreq, spec.SampleRate))
}

func printResponse(w io.Writer, spec coefgen.Spec, r analysis.FrequencyResponse) {
	fmt.Fprintf(w, "\n%-12s %12s\n", "Frequency", "Magnitude")
	for k, f := range r.Frequencies {
		fmt.Fprintf(w, "%-12.6f %9.2f dB%s\n", f, analysis.MagnitudeDB(r.Magnitude[k]), inKHz(f, spec.SampleRate))
	}
}

// inKHz formats a normalized frequency in kHz when the rate is known.
func inKHz(freq, sampleRate float64) string {
	if sampleRate <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%.3f kHz)", freq*sampleRate/hzPerKHz)
}
