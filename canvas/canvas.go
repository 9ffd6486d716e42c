package canvas

import (
	"image"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an immediate-mode drawing context backed by a Pixmap.
// It tracks the current drawing color and font face.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	pixmap *Pixmap
	color  RGBA
	face   font.Face
}

// New creates a canvas with the given dimensions. The initial drawing
// color is opaque black and no font face is set.
func New(width, height int) *Canvas {
	return &Canvas{
		pixmap: NewPixmap(width, height),
		color:  Black,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.pixmap.Width()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.pixmap.Height()
}

// Pixmap returns the backing pixmap.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the canvas contents.
func (c *Canvas) Image() image.Image {
	return c.pixmap.ToImage()
}

// SetColor sets the color used by subsequent drawing operations.
func (c *Canvas) SetColor(col RGBA) {
	c.color = col
}

// SetRGB sets an opaque drawing color from components in [0, 1].
func (c *Canvas) SetRGB(r, g, b float64) {
	c.color = RGB(r, g, b)
}

// SetHexColor sets the drawing color from a hex string such as "#667eea".
func (c *Canvas) SetHexColor(hex string) {
	c.color = Hex(hex)
}

// ClearWithColor fills the entire canvas with a color.
func (c *Canvas) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetFontFace sets the face used by text operations.
func (c *Canvas) SetFontFace(face font.Face) {
	c.face = face
}

// FontFace returns the current font face, or nil if none is set.
func (c *Canvas) FontFace() font.Face {
	return c.face
}

// MeasureString returns the dimensions in pixels of the ink bounding
// box of s under the current font face. It returns zeros when no face
// is set.
func (c *Canvas) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	b, _ := font.BoundString(c.face, s)
	return float64((b.Max.X - b.Min.X).Ceil()), float64((b.Max.Y - b.Min.Y).Ceil())
}

// DrawString draws s with the baseline origin at (x, y). It does
// nothing when no font face is set.
func (c *Canvas) DrawString(s string, x, y float64) {
	if c.face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.pixmap,
		Src:  image.NewUniform(c.color.Color()),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// DrawStringAnchored draws s so that the anchor point of its ink
// bounding box lands on (x, y). ax and ay run from 0 to 1: 0 aligns
// the left or top edge of the box with the point, 1 the right or
// bottom edge, and 0.5, 0.5 centers the box on it. Box positions are
// floored to whole pixels. It does nothing when no font face is set.
func (c *Canvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil {
		return
	}
	b, _ := font.BoundString(c.face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	left := int(math.Floor(x - ax*float64(w)))
	top := int(math.Floor(y - ay*float64(h)))
	d := &font.Drawer{
		Dst:  c.pixmap,
		Src:  image.NewUniform(c.color.Color()),
		Face: c.face,
		// Shift the dot so the ink box, not the baseline origin,
		// lands on the anchored position.
		Dot: fixed.P(left-b.Min.X.Floor(), top-b.Min.Y.Floor()),
	}
	d.DrawString(s)
}

// EncodePNG writes the canvas contents to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the canvas contents to a PNG file, replacing any
// existing file at that path.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}
