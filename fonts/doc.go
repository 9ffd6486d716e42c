// Package fonts loads TrueType and OpenType fonts for icon rendering.
//
// A Source is a parsed font file from which faces at specific point
// sizes are created. Locate picks the first candidate font file present
// on the host, and Fallback returns a builtin bitmap face that needs no
// font files at all, so callers can always obtain a usable face.
package fonts
