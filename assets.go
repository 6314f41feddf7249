package compare

import (
	"io/fs"

	"github.com/goliatone/go-compare/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StylesheetFS exposes the default comparison stylesheet.
//
// Typical mount:
//
//	mux.Handle("/compare/",
//	  http.StripPrefix("/compare/",
//	    http.FileServerFS(compare.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return vanilla.AssetsFS()
}
