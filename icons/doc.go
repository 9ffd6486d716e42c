// Package icons renders the application icon set: square PNG images
// with the product monogram centered on a solid background.
//
// The renderer prefers a TrueType system font scaled to the icon size
// and silently falls back to a builtin bitmap face when no usable font
// is found, so rendering succeeds on hosts with no fonts installed.
//
//	r := icons.NewRenderer()
//	for _, ic := range icons.DefaultSet() {
//		if err := r.RenderFile(ic.Size, ic.Filename); err != nil {
//			log.Fatal(err)
//		}
//	}
package icons
