package render

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the stylesheet directory, rooted so that "styles.css"
// resolves to static/styles.css
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("render: embedded static dir missing: " + err.Error())
	}
	return sub
}
