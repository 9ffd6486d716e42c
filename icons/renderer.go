package icons

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/thunder45/service-translate/canvas"
	"github.com/thunder45/service-translate/fonts"
)

// DefaultBackground is the icon background color.
const DefaultBackground = "#667eea"

// minFontPoints is the smallest point size used for the preferred font.
const minFontPoints = 12

// Renderer renders square monogram icons.
//
// A Renderer holds only its configuration and is safe for concurrent
// use.
type Renderer struct {
	opts options
}

// NewRenderer creates a renderer. With no options it draws the
// application monogram in white on the default background.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render renders a size x size icon and returns it as an image.
// It returns ErrInvalidSize when size is not positive.
func (r *Renderer) Render(size int) (image.Image, error) {
	c, err := r.render(size)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// RenderFile renders a size x size icon and writes it as a PNG file,
// replacing any existing file at path.
func (r *Renderer) RenderFile(size int, path string) error {
	c, err := r.render(size)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return err
	}
	Logger().Debug("wrote icon", "path", path, "size", size)
	return nil
}

// render draws the icon onto a fresh canvas.
func (r *Renderer) render(size int) (*canvas.Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	c := canvas.New(size, size)
	c.ClearWithColor(r.opts.background)

	face := r.face(size)
	defer func() { _ = face.Close() }()

	c.SetFontFace(face)
	c.SetColor(r.opts.foreground)
	half := float64(size) / 2
	c.DrawStringAnchored(r.opts.label, half, half, 0.5, 0.5)

	return c, nil
}

// face returns the face to draw with at the given icon size. Any
// failure to locate, read, or size the preferred font falls back to
// the builtin bitmap face.
func (r *Renderer) face(size int) font.Face {
	points := fontPoints(size)

	path, err := fonts.Locate(r.opts.fontPaths)
	if err != nil {
		Logger().Warn("no preferred font, using builtin face", "error", err)
		return fonts.Fallback()
	}

	src, err := fonts.NewSourceFromFile(path)
	if err != nil {
		Logger().Warn("failed to load preferred font, using builtin face", "path", path, "error", err)
		return fonts.Fallback()
	}

	f, err := src.Face(float64(points))
	if err != nil {
		Logger().Warn("failed to create font face, using builtin face", "path", path, "error", err)
		return fonts.Fallback()
	}

	Logger().Debug("using font", "name", src.Name(), "path", path, "points", points)
	return f
}

// fontPoints returns the preferred font size in points for an icon
// size, never below minFontPoints.
func fontPoints(size int) int {
	points := size / 3
	if points < minFontPoints {
		points = minFontPoints
	}
	return points
}
