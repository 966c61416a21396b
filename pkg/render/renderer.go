package render

import (
	"context"

	"github.com/goliatone/go-parameditor/pkg/model"
)

// Editor is the editor surface renderers consume. Interactive renderers feed
// input changes back through SetValue; static ones only read.
type Editor interface {
	Params() []model.Param
	Value(paramID int) string
	SetValue(paramID int, value string)
	Snapshot() model.Model
}

// Renderer turns an editor into bytes (HTML, JSON) or drives an interactive
// session and returns the resulting model.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, editor Editor, options RenderOptions) ([]byte, error)
}
