package desktop

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
)

//go:embed frontend
var placeholder embed.FS

// Assets returns the file system served into the web view: dir when set, the built-in
// placeholder page otherwise.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(placeholder, "frontend")
}

// AssetHandler serves Assets(dir) over HTTP.
func AssetHandler(dir string) (http.Handler, error) {
	fsys, err := Assets(dir)
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(fsys)), nil
}
