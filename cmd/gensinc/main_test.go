package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coefgen "github.com/tphakala/sinc-coefgen"
	"github.com/tphakala/sinc-coefgen/internal/datfile"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(append([]string{"gensinc"}, args...), &out, &errOut)
	return out.String(), err
}

func TestRun_Presets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "FilterData")

	out, err := runApp(t, "presets", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "UP4832: 160 taps")
	assert.Contains(t, out, "UP3224: 160 taps")

	for _, p := range coefgen.Presets() {
		got, err := os.ReadFile(coefgen.FlatPath(dir, p.Name))
		require.NoError(t, err)
		want, err := os.ReadFile(filepath.Join("..", "..", "testdata", p.Name+".dat"))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
		assert.FileExists(t, coefgen.XS3Path(dir, p.Name))
	}
}

func TestRun_DefaultActionWritesPresets(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := runApp(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "UP4832.dat"))
	assert.FileExists(t, filepath.Join(dir, "UP3224_xs3.dat"))
}

func TestRun_PresetsWithExports(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, "--verbose", "presets", "--out", dir, "--header", "--wav")
	require.NoError(t, err)

	for _, p := range coefgen.Presets() {
		assert.FileExists(t, filepath.Join(dir, p.Name+".h"))
		assert.FileExists(t, filepath.Join(dir, p.Name+"_ir.wav"))
	}
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "generate", "--taps", "16", "--cutoff", "0.25", "--name", "test", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "test: 16 taps")

	coefs, err := datfile.ReadFile(filepath.Join(dir, "test.dat"))
	require.NoError(t, err)
	assert.Len(t, coefs, 16)
	assert.Equal(t, int64(-1660351), coefs[0])

	_, err = runApp(t, "verify", "--taps", "16", "--cutoff", "0.25", "--name", "test", "--dir", dir)
	require.NoError(t, err)
}

func TestRun_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing_taps", []string{"generate", "--cutoff", "0.25", "--name", "x"}, ErrRequiredTaps},
		{"missing_cutoff", []string{"generate", "--taps", "16", "--name", "x"}, ErrRequiredCutoff},
		{"missing_name", []string{"generate", "--taps", "16", "--cutoff", "0.25"}, ErrRequiredName},
		{"unaligned_taps", []string{"generate", "--taps", "20", "--cutoff", "0.25", "--name", "x"}, coefgen.ErrInvalidSpec},
		{"wav_without_rate", []string{"generate", "--taps", "16", "--cutoff", "0.25", "--name", "x", "--wav"}, coefgen.ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--out", t.TempDir())
			_, err := runApp(t, args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_GenerateConfig(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(dir, "jobs.lua")
	script := `return {
    output_dir = "tables",
    header = true,
    filters = {
        { name = "UP4832", taps = 160, cutoff = 16000/48000/2, sample_rate = 48000 },
        { name = "LP64", taps = 64, cutoff = 0.2 },
    },
}
`
	require.NoError(t, os.WriteFile(job, []byte(script), 0o644))

	out, err := runApp(t, "generate", "--config", job)
	require.NoError(t, err)
	assert.Contains(t, out, "LP64: 64 taps")

	outDir := filepath.Join(dir, "tables")
	assert.FileExists(t, filepath.Join(outDir, "UP4832.h"))
	assert.FileExists(t, filepath.Join(outDir, "LP64_xs3.dat"))

	_, err = runApp(t, "verify", "--preset", "UP4832", "--dir", outDir)
	require.NoError(t, err)
}

func TestRun_GenerateConfigRejectsSpecFlags(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(dir, "jobs.lua")
	script := `return { filters = { { name = "LP16", taps = 16, cutoff = 0.25 } } }`
	require.NoError(t, os.WriteFile(job, []byte(script), 0o644))

	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"taps", []string{"--taps", "32"}, "--taps"},
		{"short_cutoff", []string{"-c", "0.1"}, "--cutoff"},
		{"name", []string{"--name", "other"}, "--name"},
		{"out", []string{"--out", t.TempDir()}, "--out"},
		{"rate", []string{"--rate", "48000"}, "--rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--config", job}, tt.args...)
			_, err := runApp(t, args...)
			require.ErrorIs(t, err, ErrConfigAndSpec)
			assert.Contains(t, err.Error(), tt.flag)
		})
	}

	assert.NoFileExists(t, filepath.Join(dir, "LP16.dat"))

	_, err := runApp(t, "generate", "--config", job, "--header")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "LP16.h"))
}

func TestRun_Verify(t *testing.T) {
	out, err := runApp(t, "verify", "--preset", "UP3224", "--dir", filepath.Join("..", "..", "testdata"))
	require.NoError(t, err)
	assert.Contains(t, out, "UP3224: OK")

	_, err = runApp(t, "verify", "--preset", "UP3224", "--dir", t.TempDir())
	require.Error(t, err)

	_, err = runApp(t, "verify", "--preset", "UP9999")
	require.ErrorIs(t, err, ErrUnknownPreset)

	_, err = runApp(t, "verify", "--preset", "UP4832", "--taps", "16")
	require.ErrorIs(t, err, ErrPresetAndSpec)
}

func TestRun_Analyze(t *testing.T) {
	out, err := runApp(t, "analyze", "--preset", "UP4832")
	require.NoError(t, err)
	assert.Contains(t, out, "Table:            UP4832")
	assert.Contains(t, out, "Stopband atten:")
	assert.Contains(t, out, "kHz")

	out, err = runApp(t, "analyze", "--taps", "32", "--cutoff", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Taps:             32")
	assert.NotContains(t, out, "kHz")
	assert.NotContains(t, out, "Magnitude")
}

func TestRun_AnalyzePoints(t *testing.T) {
	out, err := runApp(t, "analyze", "--taps", "32", "--cutoff", "0.1", "--points", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Magnitude")
	assert.Contains(t, out, "0.000000")
	assert.Contains(t, out, "0.375000")
	assert.Contains(t, out, " dB\n")
}
