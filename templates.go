package parameditor

import (
	"io/fs"

	"github.com/goliatone/go-parameditor/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can extend
// them without importing the renderer package.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the default stylesheet for serving next to pages
// rendered with a theme asset prefix.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
