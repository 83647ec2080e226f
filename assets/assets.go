// Package assets ships the built-in body diagram set. Templates beyond the
// sedan are loaded from disk or HTTP through the same asset.Loader interface.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed diagrams/*.svg
var diagramFS embed.FS

// Diagrams returns the embedded diagram filesystem, rooted so that view
// keys like "sedan_front.svg" resolve directly.
func Diagrams() fs.FS {
	sub, err := fs.Sub(diagramFS, "diagrams")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
