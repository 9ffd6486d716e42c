package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixmap implements both image.Image and draw.Image, so text and other
// raster operations from the standard library can target it directly.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions. All pixels
// start fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (NRGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Coordinates outside the
// pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	nc := c.Color()
	p.data[i+0] = nc.R
	p.data[i+1] = nc.G
	p.data[i+2] = nc.B
	p.data[i+3] = nc.A
}

// GetPixel returns the color of a single pixel. Coordinates outside the
// pixmap return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	nc := c.Color()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = nc.R
		p.data[i+1] = nc.G
		p.data[i+2] = nc.B
		p.data[i+3] = nc.A
	}
}

// ToImage returns a copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file, replacing any existing file
// at that path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.data[i+0] = nc.R
	p.data[i+1] = nc.G
	p.data[i+2] = nc.B
	p.data[i+3] = nc.A
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
