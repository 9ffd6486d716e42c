// gen-icons renders the application icon set as PNG files in the
// current directory.
//
// Usage:
//
//	gen-icons
//
// It writes icon-144x144.png, icon-32x32.png, and icon-16x16.png,
// replacing any existing files, and prints one confirmation line per
// icon. On failure it prints the error to stderr and exits with a
// non-zero status.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thunder45/service-translate/icons"
)

func main() {
	if err := run(os.Stdout, "."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the default icon set into dir, reporting progress on out.
func run(out io.Writer, dir string) error {
	r := icons.NewRenderer()
	for _, ic := range icons.DefaultSet() {
		if err := r.RenderFile(ic.Size, filepath.Join(dir, ic.Filename)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s (%dx%d)\n", ic.Filename, ic.Size, ic.Size)
	}
	fmt.Fprintln(out, "All icons created successfully!")
	return nil
}
