package model

import (
	"fmt"
	"strings"
)

// ParamType enumerates the value kinds a parameter can carry.
type ParamType string

// ParamTypeString is the only supported variant.
const ParamTypeString ParamType = "string"

// Param is a named field definition the editor renders an input for.
type Param struct {
	ID   int       `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Type ParamType `json:"type" yaml:"type"`
}

// Validate reports definitions a loader should reject. Editors never call it.
func (p Param) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("model: param %d has an empty name", p.ID)
	}
	if p.Type != ParamTypeString {
		return fmt.Errorf("model: param %d has unsupported type %q", p.ID, p.Type)
	}
	return nil
}

// ParamValue binds a string value to a parameter id.
type ParamValue struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Color is an auxiliary tag carried through an editor unchanged.
type Color struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Model is the editable state unit: values plus colors.
type Model struct {
	ParamValues []ParamValue `json:"paramValues" yaml:"paramValues"`
	Colors      []Color      `json:"colors" yaml:"colors"`
}

// Clone returns a copy backed by fresh slices. Empty lists come back non-nil
// so they serialize as [] rather than null.
func (m Model) Clone() Model {
	return Model{
		ParamValues: CloneValues(m.ParamValues),
		Colors:      CloneColors(m.Colors),
	}
}

// CloneParams copies a param slice, returning an empty slice for nil input.
func CloneParams(in []Param) []Param {
	return append(make([]Param, 0, len(in)), in...)
}

// CloneValues copies a value slice, returning an empty slice for nil input.
func CloneValues(in []ParamValue) []ParamValue {
	return append(make([]ParamValue, 0, len(in)), in...)
}

// CloneColors copies a color slice, returning an empty slice for nil input.
func CloneColors(in []Color) []Color {
	return append(make([]Color, 0, len(in)), in...)
}
