// Package layout reorders fixed-point coefficient tables for their consumers.
//
// Two layouts exist. The flat layout keeps the natural coefficient order.
// The xs3 layout splits the table into blocks of 16 and stores each block as
// its eight even-offset coefficients followed by its eight odd-offset
// coefficients:
//
//	natural: c0 c1 c2 c3 ... c14 c15
//	xs3:     c0 c2 c4 ... c14 c1 c3 ... c15
package layout

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// BlockSize is the number of coefficients in one xs3 block.
	BlockSize = 16

	// blockLanes is the number of interleaved streams per block (even, odd).
	blockLanes = 2

	// laneWidth is the number of coefficients per lane.
	laneWidth = BlockSize / blockLanes
)

// ErrBlockAlignment is returned when a table length is not a positive
// multiple of BlockSize.
var ErrBlockAlignment = errors.New("table length is not a positive multiple of 16")

// CheckAlignment reports whether n coefficients can be laid out in xs3 order.
func CheckAlignment(n int) error {
	if n <= 0 || n%BlockSize != 0 {
		return fmt.Errorf("%w: %d", ErrBlockAlignment, n)
	}
	return nil
}

// Flat returns the coefficients in natural order as a new slice.
func Flat(coefs []int64) []int64 {
	return slices.Clone(coefs)
}

// XS3Order returns the source index for every output position of the xs3
// layout of an n-coefficient table.
//
// For the block starting at i, positions are filled from i+k+2j with k in
// {0, 1} as the outer loop and j in [0, 8) as the inner loop.
func XS3Order(n int) ([]int, error) {
	if err := CheckAlignment(n); err != nil {
		return nil, err
	}

	order := make([]int, 0, n)
	for i := 0; i < n; i += BlockSize {
		for k := range blockLanes {
			for j := range laneWidth {
				order = append(order, i+k+j*blockLanes)
			}
		}
	}
	return order, nil
}

// XS3 returns the coefficients in xs3 order.
func XS3(coefs []int64) ([]int64, error) {
	order, err := XS3Order(len(coefs))
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(order))
	for pos, src := range order {
		out[pos] = coefs[src]
	}
	return out, nil
}

// FromXS3 restores natural order from an xs3 table.
func FromXS3(xs3 []int64) ([]int64, error) {
	order, err := XS3Order(len(xs3))
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(xs3))
	for pos, src := range order {
		out[src] = xs3[pos]
	}
	return out, nil
}
