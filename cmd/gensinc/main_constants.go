package main

// set by the linker: go build -ldflags "-X main.version=M.N" ./cmd/gensinc
var version = "dev"

const (
	// CLI defaults
	defaultOutputDir = "."
	outputDirMode    = 0o755

	// Placeholder table name for analyze, which writes no files
	analyzeName = "kernel"

	// Response report formatting
	hzPerKHz = 1000.0
)
