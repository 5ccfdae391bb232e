package coefgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tphakala/sinc-coefgen/internal/datfile"
	"github.com/tphakala/sinc-coefgen/internal/export"
	"github.com/tphakala/sinc-coefgen/internal/layout"
)

// Options selects optional outputs written next to the data files.
type Options struct {
	// Header also writes <name>.h with both layouts as C arrays.
	Header bool

	// WAV also writes <name>_ir.wav, a mono 32-bit impulse response.
	// Requires Spec.SampleRate.
	WAV bool
}

// Files lists the paths written for one table. Optional outputs that were
// not requested are empty.
type Files struct {
	Flat   string
	XS3    string
	Header string
	WAV    string
}

// FlatPath returns the path of the natural-order data file for name in dir.
func FlatPath(dir, name string) string {
	return filepath.Join(dir, name+datfile.Extension)
}

// XS3Path returns the path of the xs3 data file for name in dir.
func XS3Path(dir, name string) string {
	return filepath.Join(dir, name+XS3Suffix+datfile.Extension)
}

// Generate designs spec and writes <name>.dat and <name>_xs3.dat into dir,
// overwriting existing files.
func Generate(spec Spec, dir string) (*Files, error) {
	return GenerateWithOptions(spec, dir, Options{})
}

// GenerateWithOptions is Generate with optional extra outputs.
func GenerateWithOptions(spec Spec, dir string, opts Options) (*Files, error) {
	table, err := Design(spec)
	if err != nil {
		return nil, err
	}
	return table.Write(dir, opts)
}

// checkOptions reports whether spec can produce every output in opts.
func checkOptions(spec Spec, opts Options) error {
	if opts.WAV && spec.SampleRate <= 0 {
		return fmt.Errorf("%w: WAV export of %s needs a sample rate", ErrInvalidSpec, spec.Name)
	}
	return nil
}

// Write stores the table in dir.
func (t *Table) Write(dir string, opts Options) (*Files, error) {
	if err := checkOptions(t.Spec, opts); err != nil {
		return nil, err
	}

	xs3, err := t.XS3()
	if err != nil {
		return nil, err
	}

	files := &Files{
		Flat: FlatPath(dir, t.Spec.Name),
		XS3:  XS3Path(dir, t.Spec.Name),
	}

	if err := datfile.WriteFile(files.Flat, layout.Flat(t.Coefs)); err != nil {
		return nil, err
	}
	if err := datfile.WriteFile(files.XS3, xs3); err != nil {
		return nil, err
	}

	if opts.Header {
		files.Header = filepath.Join(dir, t.Spec.Name+export.HeaderExtension)
		err := writeFile(files.Header, func(f *os.File) error {
			return export.WriteHeader(f, export.Header{
				Name:   t.Spec.Name,
				Cutoff: t.Spec.Cutoff,
				Coefs:  t.Coefs,
				XS3:    xs3,
			})
		})
		if err != nil {
			return nil, err
		}
	}

	if opts.WAV {
		files.WAV = filepath.Join(dir, t.Spec.Name+export.WAVSuffix)
		err := writeFile(files.WAV, func(f *os.File) error {
			return export.WriteImpulseWAV(f, t.Coefs, int(t.Spec.SampleRate))
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// GenerateAll generates every spec into dir.
//
// Every spec is validated before anything is written, so an invalid entry
// leaves dir untouched. Names must be unique within the batch. Each table
// writes its own files, so tables are generated concurrently. The first
// error is returned; the returned slice is in spec order.
func GenerateAll(specs []Spec, dir string, opts Options) ([]*Files, error) {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("generating %s: %w", spec.Name, err)
		}
		if err := checkOptions(spec, opts); err != nil {
			return nil, fmt.Errorf("generating %s: %w", spec.Name, err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, spec.Name)
		}
		seen[spec.Name] = true
	}

	results := make([]*Files, len(specs))
	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, s Spec) {
			defer wg.Done()
			files, err := GenerateWithOptions(s, dir, opts)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("generating %s: %w", s.Name, err)
				}
				errMu.Unlock()
				return
			}
			results[idx] = files
		}(i, spec)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
