package engine

import (
	"fmt"
	"strconv"
)

// Rgb24 is a packed 24-bit RGB color value.
type Rgb24 uint32

// ColorIndex is an index into the engine's color palette.
type ColorIndex uint8

// MaxColorIndex is the largest value a palette index can hold.
const MaxColorIndex = 0xFF

// FormatRgb24 renders a color as the six-hex-digit uppercase form used in
// snapshots and palette configs, e.g. 0x1A2B3C -> "1A2B3C".
func FormatRgb24(c Rgb24) string {
	return fmt.Sprintf("%06X", uint32(c))
}

// ParseRgb24 parses the six-hex-digit color form. Malformed input is an
// error, never a silent zero.
func ParseRgb24(s string) (Rgb24, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("engine: invalid color %q: %w", s, err)
	}
	return Rgb24(v), nil
}
