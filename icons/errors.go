package icons

import "errors"

// Sentinel errors for the icons package.
var (
	// ErrInvalidSize is returned when an icon size is zero or negative.
	ErrInvalidSize = errors.New("icons: size must be positive")
)
