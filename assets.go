package nativeview

import (
	"io/fs"

	"github.com/goliatone/go-nativeview/pkg/renderers/html"
)

// AssetsFS exposes the HTML preview stylesheet so applications can serve it
// next to rendered fragments.
//
// Typical mount:
//
//	mux.Handle("/nativeview/",
//	  http.StripPrefix("/nativeview/",
//	    http.FileServerFS(nativeview.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}

// EmbeddedTemplates exposes the built-in HTML preview templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
