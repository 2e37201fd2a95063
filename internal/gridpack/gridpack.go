// Package gridpack compresses rectangular 2D grids for text snapshots.
// Authored pixel and tile art is dominated by vertically repeated rows, so
// a row identical to its predecessor is stored as an empty row. The
// transform is lossless: a real row always has the full fixed width, so an
// empty row is unambiguous.
package gridpack

import (
	"fmt"
	"slices"
)

// Pack compresses rows by replacing each row that equals the previous row
// with an empty row. The first row is always stored in full. Zero-height
// and zero-width grids pack to themselves.
func Pack[T comparable](rows [][]T) [][]T {
	packed := make([][]T, len(rows))
	for y, row := range rows {
		if y > 0 && slices.Equal(row, rows[y-1]) {
			packed[y] = []T{}
			continue
		}
		packed[y] = slices.Clone(row)
	}
	return packed
}

// Unpack reverses Pack for a grid of the given dimensions. It fails when
// the packed data does not describe a height×width grid: wrong row count,
// a stored row of the wrong length, or a leading empty row with nothing
// to repeat.
func Unpack[T comparable](packed [][]T, height, width int) ([][]T, error) {
	if len(packed) != height {
		return nil, fmt.Errorf("gridpack: %d rows stored, grid height is %d", len(packed), height)
	}
	rows := make([][]T, height)
	for y, row := range packed {
		if len(row) == 0 && width > 0 {
			if y == 0 {
				return nil, fmt.Errorf("gridpack: row 0 is a repeat marker with no preceding row")
			}
			rows[y] = slices.Clone(rows[y-1])
			continue
		}
		if len(row) != width {
			return nil, fmt.Errorf("gridpack: row %d has %d elements, grid width is %d", y, len(row), width)
		}
		rows[y] = slices.Clone(row)
	}
	return rows, nil
}
