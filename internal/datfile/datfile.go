// Package datfile reads and writes coefficient data files.
//
// A data file holds one integer per line, each terminated by a comma:
//
//	2358,
//	4784,
//	-10934,
//
// The format can be pasted directly into a C array initializer.
package datfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// Separator terminates every value.
	Separator = ','

	// FileMode is the permission used for written files.
	FileMode = 0o644

	// Extension is the file extension of data files.
	Extension = ".dat"

	decimalBase = 10
	int64Bits   = 64
)

// ErrMalformedLine is returned when a line is not an integer followed by a comma.
var ErrMalformedLine = errors.New("malformed coefficient line")

// Encode writes each coefficient as "<value>,\n".
func Encode(w io.Writer, coefs []int64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, c := range coefs {
		buf = strconv.AppendInt(buf[:0], c, decimalBase)
		buf = append(buf, Separator, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses coefficients written by Encode.
//
// Blank lines and surrounding whitespace are ignored. Any other line must
// hold exactly one integer followed by a comma.
func Decode(r io.Reader) ([]int64, error) {
	var coefs []int64
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		body, ok := strings.CutSuffix(line, string(Separator))
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing trailing comma: %q", ErrMalformedLine, lineNo, line)
		}

		v, err := strconv.ParseInt(strings.TrimSpace(body), decimalBase, int64Bits)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNo, err)
		}
		coefs = append(coefs, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coefficients: %w", err)
	}
	return coefs, nil
}

// WriteFile writes coefficients to path, truncating any existing file.
func WriteFile(path string, coefs []int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}

	if err := Encode(f, coefs); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

// ReadFile reads coefficients from path.
func ReadFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	coefs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coefs, nil
}
