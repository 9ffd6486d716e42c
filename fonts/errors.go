package fonts

import "errors"

// Sentinel errors for the fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrNoSystemFont is returned when no candidate font file exists.
	ErrNoSystemFont = errors.New("fonts: no system font found")
)
