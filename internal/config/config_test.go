package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJob = `
local rate48 = 48000
return {
    output_dir = "FilterData",
    header = true,
    filters = {
        { name = "UP4832", taps = 160, cutoff = 16000/rate48/2, sample_rate = rate48 },
        { name = "UP3224", taps = 160, cutoff = 12000/32000/2, sample_rate = 32000 },
    },
}
`

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.lua")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestParseJobFile tests mapping of a complete job.
func TestParseJobFile(t *testing.T) {
	path := writeJob(t, testJob)

	job, err := ParseJobFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "FilterData"), job.OutputDir)
	assert.True(t, job.Header)
	assert.False(t, job.WAV)
	require.Len(t, job.Filters, 2)

	assert.Equal(t, Filter{Name: "UP4832", Taps: 160, Cutoff: 16000.0 / 48000.0 / 2, SampleRate: 48000}, job.Filters[0])
	assert.Equal(t, Filter{Name: "UP3224", Taps: 160, Cutoff: 0.1875, SampleRate: 32000}, job.Filters[1])
}

// TestParseJobFile_OutputDir tests output directory resolution.
func TestParseJobFile_OutputDir(t *testing.T) {
	abs := t.TempDir()

	tests := []struct {
		name    string
		dirExpr string
		want    func(jobDir string) string
	}{
		{"empty", `""`, func(jobDir string) string { return jobDir }},
		{"relative", `"out"`, func(jobDir string) string { return filepath.Join(jobDir, "out") }},
		{"absolute", `"` + abs + `"`, func(string) string { return abs }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJob(t, `return { output_dir = `+tt.dirExpr+`, filters = { { name = "a", taps = 16, cutoff = 0.25 } } }`)
			job, err := ParseJobFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want(filepath.Dir(path)), job.OutputDir)
		})
	}
}

// TestParseJobFile_ArgGlobal tests that arg[0] is the job file name.
func TestParseJobFile_ArgGlobal(t *testing.T) {
	path := writeJob(t, `return { filters = { { name = "x", taps = 16, cutoff = 0.25 } }, output_dir = arg[0] .. ".d" }`)

	job, err := ParseJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, path+".d", job.OutputDir)
}

// TestParseJobFile_Errors tests failure modes.
func TestParseJobFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax_error", `return {`, "failed to read job file"},
		{"not_a_table", `return 42`, "must return a table"},
		{"no_filters", `return { output_dir = "x" }`, ErrNoFilters.Error()},
		{"runtime_error", `error("boom")`, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobFile(writeJob(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := ParseJobFile("/nonexistent/job.lua")
	require.Error(t, err)
}

// TestParseJobFile_Example tests the job file shipped with the examples.
func TestParseJobFile_Example(t *testing.T) {
	path := filepath.Join("..", "..", "examples", "jobs", "filters.lua")

	job, err := ParseJobFile(path)
	require.NoError(t, err)
	require.Len(t, job.Filters, 2)

	assert.Equal(t, filepath.Join("..", "..", "examples", "jobs", "FilterData"), job.OutputDir)
	assert.True(t, job.Header)
	assert.False(t, job.WAV)
	assert.Equal(t, "UP4832", job.Filters[0].Name)
	assert.Equal(t, 16000.0/48000.0/2, job.Filters[0].Cutoff)
	assert.Equal(t, 12000.0/32000.0/2, job.Filters[1].Cutoff)
	assert.Equal(t, 32000.0, job.Filters[1].SampleRate)
}
