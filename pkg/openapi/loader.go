package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-parameditor/pkg/document"
	"github.com/goliatone/go-parameditor/pkg/model"
)

const (
	paramIDExtension      = "x-param-id"
	currentValueExtension = "x-current-value"
	colorsExtension       = "x-colors"
)

// LoadFile reads an OpenAPI document from disk and extracts schemaName.
func LoadFile(ctx context.Context, path, schemaName string) (document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	doc, err := Load(ctx, data, schemaName)
	if err != nil {
		return document.Document{}, err
	}
	doc.Source = path
	return doc, nil
}

// Load parses and validates an OpenAPI document and converts the component
// schema schemaName into a normalized editor document.
func Load(ctx context.Context, data []byte, schemaName string) (document.Document, error) {
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}
	if len(data) == 0 {
		return document.Document{}, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return document.Document{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return document.Document{}, fmt.Errorf("openapi: validate: %w", err)
	}

	if spec.Components == nil || spec.Components.Schemas == nil {
		return document.Document{}, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return document.Document{}, fmt.Errorf("openapi: schema %q not found", schemaName)
	}

	doc, err := convertSchema(schemaName, ref.Value)
	if err != nil {
		return document.Document{}, err
	}
	return document.Normalize(doc)
}

func convertSchema(schemaName string, schema *openapi3.Schema) (document.Document, error) {
	doc := document.Document{Source: "#/components/schemas/" + schemaName}

	for key, prop := range schema.Properties {
		if prop == nil || prop.Value == nil {
			continue
		}
		value := prop.Value
		if !isStringSchema(value.Type) {
			return document.Document{}, fmt.Errorf("openapi: property %q has unsupported type %v", key, typeList(value.Type))
		}

		id, err := extensionInt(value.Extensions, paramIDExtension)
		if err != nil {
			return document.Document{}, fmt.Errorf("openapi: property %q: %w", key, err)
		}
		name := value.Title
		if name == "" {
			name = key
		}
		doc.Params = append(doc.Params, model.Param{ID: id, Name: name, Type: model.ParamTypeString})

		if seed, ok := seedValue(value); ok {
			doc.Model.ParamValues = append(doc.Model.ParamValues, model.ParamValue{ParamID: id, Value: seed})
		}
	}

	sort.SliceStable(doc.Params, func(i, j int) bool { return doc.Params[i].ID < doc.Params[j].ID })
	sort.SliceStable(doc.Model.ParamValues, func(i, j int) bool {
		return doc.Model.ParamValues[i].ParamID < doc.Model.ParamValues[j].ParamID
	})

	colors, err := extensionColors(schema.Extensions)
	if err != nil {
		return document.Document{}, err
	}
	doc.Model.Colors = colors
	return doc, nil
}

func isStringSchema(types *openapi3.Types) bool {
	values := typeList(types)
	return len(values) == 1 && values[0] == openapi3.TypeString
}

func typeList(types *openapi3.Types) []string {
	if types == nil {
		return nil
	}
	return types.Slice()
}

func seedValue(schema *openapi3.Schema) (string, bool) {
	if raw, ok := schema.Extensions[currentValueExtension]; ok {
		if s, ok := raw.(string); ok {
			return s, true
		}
	}
	if s, ok := schema.Default.(string); ok {
		return s, true
	}
	return "", false
}

func extensionInt(ext map[string]any, key string) (int, error) {
	raw, ok := ext[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer: %w", key, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", key, raw)
	}
}

func extensionColors(ext map[string]any) ([]model.Color, error) {
	raw, ok := ext[colorsExtension]
	if !ok || raw == nil {
		return nil, nil
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode %s: %w", colorsExtension, err)
	}
	var colors []model.Color
	if err := json.Unmarshal(payload, &colors); err != nil {
		return nil, fmt.Errorf("openapi: decode %s: %w", colorsExtension, err)
	}
	return colors, nil
}
