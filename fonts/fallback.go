package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fallback returns the builtin fixed-size bitmap face. It requires no
// font files and never fails, so rendering can proceed on hosts with
// no usable system font.
func Fallback() font.Face {
	return basicfont.Face7x13
}
