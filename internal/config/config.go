// Package config reads batch generation jobs from Lua files.
//
// A job file is a Lua script that returns a table:
//
//	return {
//	    output_dir = "FilterData",
//	    header = true,
//	    filters = {
//	        { name = "UP4832", taps = 160, cutoff = 16000/48000/2, sample_rate = 48000 },
//	        { name = "UP3224", taps = 160, cutoff = 12000/32000/2, sample_rate = 32000 },
//	    },
//	}
//
// The global arg[0] holds the job file name while the script runs.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// ErrNoFilters is returned when a job lists no filters.
var ErrNoFilters = errors.New("job file lists no filters")

// Filter is one table to generate.
type Filter struct {
	Name       string  `gluamapper:"name"`
	Taps       int     `gluamapper:"taps"`
	Cutoff     float64 `gluamapper:"cutoff"`
	SampleRate float64 `gluamapper:"sample_rate"`
}

// Job is the content of a job file.
type Job struct {
	// OutputDir is where files are written. Relative paths resolve against
	// the directory containing the job file; empty means that directory.
	OutputDir string `gluamapper:"output_dir"`

	// Header also writes a C header per filter.
	Header bool `gluamapper:"header"`

	// WAV also writes an impulse response WAV per filter.
	WAV bool `gluamapper:"wav"`

	Filters []Filter `gluamapper:"filters"`
}

// ParseJobFile reads and executes a Lua job file and maps the returned
// table onto a Job.
func ParseJobFile(fileName string) (*Job, error) {
	job := &Job{}
	if err := parseConfigurationFile(fileName, job); err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", fileName, err)
	}

	if len(job.Filters) == 0 {
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoFilters)
	}

	base := filepath.Dir(fileName)
	switch {
	case job.OutputDir == "":
		job.OutputDir = base
	case !filepath.IsAbs(job.OutputDir):
		job.OutputDir = filepath.Join(base, job.OutputDir)
	}

	return job, nil
}

// parseConfigurationFile executes a Lua file and assigns the table it
// returns to config.
func parseConfigurationFile(fileName string, config any) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return errors.New("job file must return a table")
	}

	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}}
	return mapper.Map(table, config)
}
