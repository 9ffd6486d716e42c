// Package canvas provides a minimal immediate-mode drawing surface for
// rendering square raster icons.
//
// A Canvas owns a Pixmap (an 8-bit RGBA pixel buffer), a current drawing
// color, and a current font face. Glyph rasterization is delegated to
// golang.org/x/image/font and PNG encoding to image/png; the package adds
// the state handling and the pixel-exact text placement the icon renderer
// needs. There is no path, stroke, or transform machinery.
//
//	c := canvas.New(144, 144)
//	c.ClearWithColor(canvas.Hex("#667eea"))
//	c.SetColor(canvas.White)
//	c.SetFontFace(face)
//	c.DrawStringAnchored("ST", 72, 72, 0.5, 0.5)
//	err := c.SavePNG("icon-144x144.png")
package canvas
