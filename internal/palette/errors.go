package palette

import "errors"

var (
	// ErrInvalidColor indicates a value that does not parse as a hex color.
	ErrInvalidColor = errors.New("palette: invalid color value")

	// ErrIndexRange indicates a slot index outside the palette.
	ErrIndexRange = errors.New("palette: index out of range")

	// ErrSeedSize indicates a seed list that is not exactly Size colors.
	ErrSeedSize = errors.New("palette: seed must contain exactly 8 colors")
)
