package icons

import "fmt"

// Icon describes one entry of the application icon set.
type Icon struct {
	// Size is the icon width and height in pixels.
	Size int

	// Filename is the conventional file name for this icon.
	Filename string
}

// IconFor returns the icon entry for a pixel size.
func IconFor(size int) Icon {
	return Icon{
		Size:     size,
		Filename: fmt.Sprintf("icon-%dx%d.png", size, size),
	}
}

// DefaultSet returns the icon sizes the application ships with,
// largest first.
func DefaultSet() []Icon {
	return []Icon{
		IconFor(144),
		IconFor(32),
		IconFor(16),
	}
}
