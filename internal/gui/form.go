// Package gui renders a parameter editor as a fyne form.
package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
)

// Option configures a Form.
type Option func(*Form)

// WithTitle sets the heading shown above the rows.
func WithTitle(title string) Option {
	return func(f *Form) {
		f.title = title
	}
}

// WithActionLabel sets the snapshot button label.
func WithActionLabel(label string) Option {
	return func(f *Form) {
		if label != "" {
			f.actionLabel = label
		}
	}
}

// WithOnModel registers the callback receiving the snapshot when the action
// button is tapped.
func WithOnModel(fn func(model.Model)) Option {
	return func(f *Form) {
		f.onModel = fn
	}
}

// WithLogger attaches a logger. Nil keeps the nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Form holds one entry per param, bound to the editor.
type Form struct {
	editor      render.Editor
	title       string
	actionLabel string
	onModel     func(model.Model)
	logger      *zap.Logger

	entries map[int]*widget.Entry
	button  *widget.Button
	object  fyne.CanvasObject
}

// NewForm builds the widgets for ed. Entries are seeded with the current
// values before their change handlers are attached, so construction does not
// produce input changes.
func NewForm(ed render.Editor, options ...Option) (*Form, error) {
	if ed == nil {
		return nil, errors.New("gui: editor is required")
	}
	f := &Form{
		editor:      ed,
		actionLabel: "Get model",
		logger:      zap.NewNop(),
		entries:     make(map[int]*widget.Entry),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	rows := widget.NewForm()
	for _, param := range ed.Params() {
		entry := widget.NewEntry()
		entry.SetText(ed.Value(param.ID))
		paramID := param.ID
		entry.OnChanged = func(text string) {
			f.editor.SetValue(paramID, text)
		}
		f.entries[param.ID] = entry
		rows.Append(param.Name, entry)
	}

	f.button = widget.NewButton(f.actionLabel, f.emitModel)

	content := container.NewVBox()
	if f.title != "" {
		content.Add(widget.NewLabelWithStyle(f.title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	content.Add(rows)
	content.Add(f.button)
	f.object = content
	return f, nil
}

// Object returns the root canvas object.
func (f *Form) Object() fyne.CanvasObject {
	return f.object
}

// Entry returns the entry bound to paramID.
func (f *Form) Entry(paramID int) (*widget.Entry, bool) {
	entry, ok := f.entries[paramID]
	return entry, ok
}

// Button returns the snapshot button.
func (f *Form) Button() *widget.Button {
	return f.button
}

func (f *Form) emitModel() {
	snapshot := f.editor.Snapshot()
	f.logger.Debug("model requested", zap.Int("value_count", len(snapshot.ParamValues)))
	if f.onModel != nil {
		f.onModel(snapshot)
	}
}
