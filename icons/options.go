package icons

import (
	"github.com/thunder45/service-translate/canvas"
	"github.com/thunder45/service-translate/fonts"
)

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default application icons
//	r := icons.NewRenderer()
//
//	// Custom label on a dark background
//	r := icons.NewRenderer(
//		icons.WithBackground(canvas.Hex("#1e1e2e")),
//		icons.WithLabel("GO"),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	background canvas.RGBA
	foreground canvas.RGBA
	label      string
	fontPaths  []string
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		background: canvas.Hex(DefaultBackground),
		foreground: canvas.White,
		label:      Derive(AppName),
		fontPaths:  fonts.DefaultSystemFonts(),
	}
}

// WithBackground sets the icon background color.
func WithBackground(c canvas.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithForeground sets the icon text color.
func WithForeground(c canvas.RGBA) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithLabel sets the text drawn on the icon in place of the
// application monogram.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithFontPaths sets the candidate font files tried in order for the
// preferred face. With no paths the builtin bitmap face is always used.
func WithFontPaths(paths ...string) Option {
	return func(o *options) {
		o.fontPaths = paths
	}
}
