package editor

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/pkg/model"
)

// Row pairs a parameter definition with the value its input displays.
type Row struct {
	Param model.Param
	Value string
}

// Editor holds the values edited through a parameter form. It is seeded once
// at construction and never re-reads the caller's data afterwards; owners pull
// the current state with Snapshot.
type Editor struct {
	mu     sync.RWMutex
	params []model.Param
	values []model.ParamValue
	colors []model.Color
	logger *zap.Logger
}

// New copies params and the seed model into a fresh editor.
func New(params []model.Param, seed model.Model, options ...Option) *Editor {
	e := &Editor{
		params: model.CloneParams(params),
		values: model.CloneValues(seed.ParamValues),
		colors: model.CloneColors(seed.Colors),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Params returns the definitions in render order.
func (e *Editor) Params() []model.Param {
	return model.CloneParams(e.params)
}

// Value returns the first value bound to paramID, or "" when none exists.
func (e *Editor) Value(paramID int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if idx := e.indexOf(paramID); idx >= 0 {
		return e.values[idx].Value
	}
	return ""
}

// SetValue applies an input change. The first entry for paramID is replaced
// in a copy of the list; unknown ids are appended. Ids are not checked against
// the params.
func (e *Editor) SetValue(paramID int, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(paramID)
	if idx < 0 {
		e.values = append(model.CloneValues(e.values), model.ParamValue{ParamID: paramID, Value: value})
		e.logger.Debug("param value added",
			zap.Int("param_id", paramID),
			zap.Int("value_count", len(e.values)))
		return
	}

	next := model.CloneValues(e.values)
	next[idx] = model.ParamValue{ParamID: paramID, Value: value}
	e.values = next
	e.logger.Debug("param value updated",
		zap.Int("param_id", paramID),
		zap.Int("index", idx))
}

// Rows returns one row per param, in order, with its displayed value.
func (e *Editor) Rows() []Row {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rows := make([]Row, 0, len(e.params))
	for _, param := range e.params {
		row := Row{Param: param}
		if idx := e.indexOf(param.ID); idx >= 0 {
			row.Value = e.values[idx].Value
		}
		rows = append(rows, row)
	}
	return rows
}

// Snapshot returns the current values and the construction-time colors.
func (e *Editor) Snapshot() model.Model {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return model.Model{
		ParamValues: model.CloneValues(e.values),
		Colors:      model.CloneColors(e.colors),
	}
}

func (e *Editor) indexOf(paramID int) int {
	for i, pv := range e.values {
		if pv.ParamID == paramID {
			return i
		}
	}
	return -1
}
