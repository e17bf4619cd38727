package pages

import (
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

const indexPage = "index.html"

// PageHandler always serves file from static.
func PageHandler(static fs.FS, file string) echo.HandlerFunc {
	return echo.StaticFileHandler(file, static)
}

// FallbackHandler serves the asset named by the wildcard when it exists and is a
// regular file, and index.html for every other path.
func FallbackHandler(static fs.FS) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
		if name != "" {
			if fi, err := fs.Stat(static, name); err == nil && fi.Mode().IsRegular() {
				return echo.StaticFileHandler(name, static)(c)
			}
		}
		return echo.StaticFileHandler(indexPage, static)(c)
	}
}
