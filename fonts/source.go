package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file.
// One Source can create multiple faces at different sizes, so it should
// be shared rather than reloaded.
//
// A Source is immutable and safe for concurrent use. Faces created from
// it are not.
type Source struct {
	font *opentype.Font
	name string
}

// NewSource creates a Source from font data (TTF or OTF).
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}

	return &Source{
		font: f,
		name: familyName(f),
	}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to read font file: %w", err)
	}

	return NewSource(data)
}

// Name returns the font family name, or "Unknown Font" when the font
// carries no usable name table entry.
func (s *Source) Name() string {
	return s.name
}

// Face creates a font.Face at the given size in points, rendered at
// 72 DPI with full hinting. The caller is responsible for closing the
// face.
func (s *Source) Face(points float64) (font.Face, error) {
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to create face: %w", err)
	}
	return f, nil
}

// familyName extracts the font family name from a parsed font.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}

	// Try full name as fallback
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}

	return "Unknown Font"
}
