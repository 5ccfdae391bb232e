// Command gensinc generates fixed-point windowed-sinc coefficient tables.
//
// Usage:
//
//	gensinc                                         # write UP4832 and UP3224 into .
//	gensinc presets --out FilterData --header
//	gensinc generate --taps 160 --cutoff 0.1875 --name UP3224
//	gensinc generate --config jobs.lua
//	gensinc verify --preset UP4832 --dir FilterData
//	gensinc analyze --taps 96 --cutoff 0.2 --rate 48000
//
// Each table is written as <name>.dat (natural order) and <name>_xs3.dat
// (xs3 block-interleaved order), one "value," per line.
package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w, e io.Writer) error {
	return newApp(w, e).Run(args)
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "gensinc"
	app.Usage = "generate Blackman-windowed sinc coefficient tables"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log each file written",
		},
	}

	outFlag := cli.StringFlag{
		Name:  "out, o",
		Value: defaultOutputDir,
		Usage: " output `DIR`",
	}
	headerFlag := cli.BoolFlag{
		Name:  "header",
		Usage: " also write a C header per table",
	}
	wavFlag := cli.BoolFlag{
		Name:  "wav",
		Usage: " also write an impulse response WAV per table (needs --rate)",
	}
	specFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "taps, t",
			Usage: "*number of taps `N`, a multiple of 16",
		},
		cli.Float64Flag{
			Name:  "cutoff, c",
			Usage: "*normalized cutoff `FC` in (0, 0.5)",
		},
	}
	presetFlag := cli.StringFlag{
		Name:  "preset, p",
		Usage: "+built-in table `NAME` [UP4832|UP3224]",
	}
	rateFlag := cli.Float64Flag{
		Name:  "rate, r",
		Usage: " sample rate in `HZ`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "presets",
			Usage:     "generate the built-in UP4832 and UP3224 tables",
			ArgsUsage: " ",
			Flags:     []cli.Flag{outFlag, headerFlag, wavFlag},
			Action:    runPresets,
		},
		{
			Name:      "generate",
			Usage:     "generate one table, or every table in a job file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(append([]cli.Flag{}, specFlags...),
				cli.StringFlag{
					Name:  "name, n",
					Usage: "*table `NAME`, used as the output file base name",
				},
				cli.StringFlag{
					Name:  "config, f",
					Usage: "+Lua job `FILE` listing several tables",
				},
				outFlag, rateFlag, headerFlag, wavFlag,
			),
			Action: runGenerate,
		},
		{
			Name:      "verify",
			Usage:     "check existing data files against a fresh design",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(append([]cli.Flag{}, specFlags...),
				cli.StringFlag{
					Name:  "name, n",
					Usage: "*table `NAME`",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Value: defaultOutputDir,
					Usage: " directory holding the data files `DIR`",
				},
				presetFlag,
			),
			Action: runVerify,
		},
		{
			Name:      "analyze",
			Usage:     "print the frequency response of a quantized table",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append(append([]cli.Flag{}, specFlags...), rateFlag, presetFlag,
				cli.IntFlag{
					Name:  "points",
					Usage: " also print the magnitude response at `N` frequencies",
				},
			),
			Action: runAnalyze,
		},
		{
			Name:  "version",
			Usage: "display gensinc version",
			Action: func(c *cli.Context) error {
				_, err := io.WriteString(c.App.Writer, version+"\n")
				return err
			},
		},
	}

	app.Action = runPresets

	return app
}
