package main

import (
	"fmt"
	"log"
	"os"

	coefgen "github.com/tphakala/sinc-coefgen"
	"github.com/tphakala/sinc-coefgen/internal/analysis"
	"github.com/tphakala/sinc-coefgen/internal/config"
	"github.com/urfave/cli"
)

func runPresets(c *cli.Context) error {
	dir := c.String("out")
	if dir == "" {
		dir = defaultOutputDir
	}
	return generateAll(c, coefgen.PresetSpecs(), dir, optionsFromFlags(c))
}

func runGenerate(c *cli.Context) error {
	if file := c.String("config"); file != "" {
		if flag := firstSetFlag(c, jobOverriddenFlags); flag != "" {
			return fmt.Errorf("%w: --%s", ErrConfigAndSpec, flag)
		}
		job, err := config.ParseJobFile(file)
		if err != nil {
			return err
		}
		opts := optionsFromFlags(c)
		opts.Header = opts.Header || job.Header
		opts.WAV = opts.WAV || job.WAV
		return generateAll(c, specsFromJob(job), job.OutputDir, opts)
	}

	spec, err := specFromFlags(c, c.String("name"))
	if err != nil {
		return err
	}
	spec.SampleRate = c.Float64("rate")

	return generateAll(c, []coefgen.Spec{spec}, c.String("out"), optionsFromFlags(c))
}

func runVerify(c *cli.Context) error {
	spec, err := specOrPreset(c, c.String("name"))
	if err != nil {
		return err
	}

	dir := c.String("dir")
	if err := coefgen.Verify(spec, dir); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: OK (%d taps)\n", spec.Name, spec.Taps)
	return nil
}

func runAnalyze(c *cli.Context) error {
	spec, err := specOrPreset(c, analyzeName)
	if err != nil {
		return err
	}
	if rate := c.Float64("rate"); rate > 0 {
		spec.SampleRate = rate
	}

	table, err := coefgen.Design(spec)
	if err != nil {
		return err
	}
	report, err := table.Analyze()
	if err != nil {
		return err
	}

	printReport(c.App.Writer, spec, table.Sum, report)

	if points := c.Int("points"); points > 0 {
		response := analysis.ComputeFrequencyResponse(table.Quantized(), points)
		printResponse(c.App.Writer, spec, response)
	}
	return nil
}

func generateAll(c *cli.Context, specs []coefgen.Spec, dir string, opts coefgen.Options) error {
	// the default action runs on the root context, where verbose is not global
	verbose := c.GlobalBool("verbose") || c.Bool("verbose")

	if err := os.MkdirAll(dir, outputDirMode); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if verbose {
		log.Printf("Output directory: %s", dir)
		log.Printf("Tables: %d", len(specs))
	}

	results, err := coefgen.GenerateAll(specs, dir, opts)
	if err != nil {
		return err
	}

	for i, files := range results {
		if verbose {
			for _, path := range writtenPaths(files) {
				log.Printf("Wrote %s (%d taps)", path, specs[i].Taps)
			}
		}
		fmt.Fprintf(c.App.Writer, "%s: %d taps, cutoff %.6g\n", specs[i].Name, specs[i].Taps, specs[i].Cutoff)
	}

	return nil
}
