package main

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed static
var embeddedStatic embed.FS

// assetRoot returns the directory to serve: the embedded page unless dir is set.
func assetRoot(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embeddedStatic, "static")
}
