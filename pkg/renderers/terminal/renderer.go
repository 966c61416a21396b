package terminal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/pkg/render"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("terminal: aborted")

// Option configures the renderer.
type Option func(*Renderer)

// WithInput reads key presses from in instead of stdin.
func WithInput(in io.Reader) Option {
	return func(r *Renderer) {
		r.in = in
	}
}

// WithOutput draws the form to out instead of stdout.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithLogger attaches a logger for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer runs an interactive bubbletea form over the editor and returns the
// model as JSON once the user submits.
type Renderer struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "terminal"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render blocks until the form is submitted, aborted, or ctx is done.
func (r *Renderer) Render(ctx context.Context, ed render.Editor, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ed == nil {
		return nil, errors.New("terminal: editor is required")
	}

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.in != nil {
		programOptions = append(programOptions, tea.WithInput(r.in))
	}
	if r.out != nil {
		programOptions = append(programOptions, tea.WithOutput(r.out))
	}

	final, err := tea.NewProgram(NewModel(ed, opts), programOptions...).Run()
	if err != nil {
		return nil, fmt.Errorf("terminal: run program: %w", err)
	}
	form, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("terminal: unexpected final model %T", final)
	}
	if form.Aborted() || !form.Submitted() {
		r.logger.Debug("terminal form aborted")
		return nil, ErrAborted
	}

	snapshot := ed.Snapshot()
	r.logger.Debug("terminal form submitted", zap.Int("value_count", len(snapshot.ParamValues)))
	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("terminal: encode model: %w", err)
	}
	return append(out, '\n'), nil
}
