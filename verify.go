package coefgen

import (
	"fmt"

	"github.com/tphakala/sinc-coefgen/internal/datfile"
	"github.com/tphakala/sinc-coefgen/internal/layout"
)

// Verify checks the data files for spec in dir.
//
// The flat file must hold exactly the table Design(spec) produces, and the
// xs3 file must restore to the flat file when de-interleaved.
func Verify(spec Spec, dir string) error {
	table, err := Design(spec)
	if err != nil {
		return err
	}

	flat, err := datfile.ReadFile(FlatPath(dir, spec.Name))
	if err != nil {
		return err
	}
	xs3, err := datfile.ReadFile(XS3Path(dir, spec.Name))
	if err != nil {
		return err
	}

	if len(flat) != spec.Taps {
		return fmt.Errorf("%w: %s has %d coefficients, want %d", ErrVerifyMismatch, spec.Name, len(flat), spec.Taps)
	}
	if idx := firstDifference(flat, table.Coefs); idx >= 0 {
		return fmt.Errorf("%w: %s differs from design at index %d (%d != %d)",
			ErrVerifyMismatch, spec.Name, idx, flat[idx], table.Coefs[idx])
	}

	if len(xs3) != len(flat) {
		return fmt.Errorf("%w: %s%s has %d coefficients, want %d", ErrVerifyMismatch, spec.Name, XS3Suffix, len(xs3), len(flat))
	}
	natural, err := layout.FromXS3(xs3)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %w", ErrVerifyMismatch, spec.Name, XS3Suffix, err)
	}
	if idx := firstDifference(natural, flat); idx >= 0 {
		return fmt.Errorf("%w: %s%s is not the xs3 layout of %s (index %d)",
			ErrVerifyMismatch, spec.Name, XS3Suffix, spec.Name, idx)
	}

	return nil
}

// firstDifference returns the first index where a and b differ, or -1.
// Both slices must have the same length.
func firstDifference(a, b []int64) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
