package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-parameditor/pkg/editor"
	"github.com/goliatone/go-parameditor/pkg/model"
)

// ErrEmpty is returned for blank document payloads.
var ErrEmpty = errors.New("document: payload is empty")

// Document is a normalized params + seed model pair.
type Document struct {
	Source string        `json:"-" yaml:"-"`
	Params []model.Param `json:"params" yaml:"params"`
	Model  model.Model   `json:"model" yaml:"model"`
}

// Editor builds an editor seeded from the document.
func (d Document) Editor(options ...editor.Option) *editor.Editor {
	return editor.New(d.Params, d.Model, options...)
}

// Parse decodes data as JSON, falling back to YAML, and normalizes it. source
// only labels errors.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("%w (%s)", ErrEmpty, source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Document{}, fmt.Errorf("document: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}
	doc.Source = source
	return Normalize(doc)
}

// LoadFile reads and parses a document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("document: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Normalize defaults empty param types to string, rejects invalid or
// duplicate params, and replaces nil lists with empty ones. Names are kept as
// written. Seed values are
// kept as given, duplicates included.
func Normalize(doc Document) (Document, error) {
	seen := make(map[int]struct{}, len(doc.Params))
	params := make([]model.Param, 0, len(doc.Params))
	for _, param := range doc.Params {
		if param.Type == "" {
			param.Type = model.ParamTypeString
		}
		if err := param.Validate(); err != nil {
			return Document{}, fmt.Errorf("document: %s: %w", doc.Source, err)
		}
		if _, dup := seen[param.ID]; dup {
			return Document{}, fmt.Errorf("document: %s: duplicate param id %d", doc.Source, param.ID)
		}
		seen[param.ID] = struct{}{}
		params = append(params, param)
	}

	doc.Params = params
	doc.Model = doc.Model.Clone()
	return doc, nil
}
