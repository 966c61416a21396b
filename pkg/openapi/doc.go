// Package openapi derives parameter editor documents from OpenAPI 3 component
// schemas. Each string property of the named schema becomes a param:
//
//   - `x-param-id` (integer, required) is the param id,
//   - `title` is the label, falling back to the property key,
//   - `x-current-value`, else `default`, seeds the value.
//
// An `x-colors` list of `{id, name}` objects on the schema seeds the colors.
package openapi
