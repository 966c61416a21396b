// Package demo embeds the sample document shown by the command harnesses.
package demo

import (
	_ "embed"
	"fmt"

	"github.com/goliatone/go-parameditor/pkg/document"
)

const (
	// Title heads the demo form.
	Title = "Редактор параметров"
	// ActionLabel is the snapshot button label.
	ActionLabel = "Получить модель"
	// Notice is shown after the model has been logged.
	Notice = "Model data logged to console"
)

//go:embed demo.yaml
var source []byte

// Document returns a fresh copy of the embedded demo document.
func Document() (document.Document, error) {
	doc, err := document.Parse(source, "demo.yaml")
	if err != nil {
		return document.Document{}, fmt.Errorf("demo: %w", err)
	}
	return doc, nil
}
