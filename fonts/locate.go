package fonts

import "os"

// DefaultSystemFonts returns candidate font file paths for icon text,
// in preference order. Only plain TTF files are listed (TTC font
// collections are not supported).
func DefaultSystemFonts() []string {
	return []string{
		// macOS
		"/System/Library/Fonts/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Monaco.ttf",
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\calibri.ttf",
		"C:\\Windows\\Fonts\\segoeui.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	}
}

// Locate returns the first path in candidates that exists on the host
// filesystem. It returns ErrNoSystemFont when none do.
func Locate(candidates []string) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoSystemFont
}
