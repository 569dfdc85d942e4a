package http

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

const indexFile = "index.html"

// StaticResponder serves files from a public directory for GET requests that
// are not addressed to the API.
type StaticResponder struct {
	fsys fs.FS
}

// NewStaticResponder serves files rooted at dir.
func NewStaticResponder(dir string) *StaticResponder {
	return NewStaticResponderFS(os.DirFS(dir))
}

func NewStaticResponderFS(fsys fs.FS) *StaticResponder {
	return &StaticResponder{fsys: fsys}
}

// Serve writes the requested file, mapping "/" to index.html. Missing files
// and directories are reported as 404.
func (s *StaticResponder) Serve(c echo.Context) error {
	name := strings.TrimPrefix(path.Clean("/"+c.Request().URL.Path), "/")
	if name == "" {
		name = indexFile
	}
	if !fs.ValidPath(name) {
		return echo.ErrNotFound
	}

	info, err := fs.Stat(s.fsys, name)
	if err != nil || info.IsDir() {
		return echo.ErrNotFound
	}
	http.ServeFileFS(c.Response(), c.Request(), s.fsys, name)
	return nil
}
