// Package jsonschema is a minimal JSON Schema (draft 2020-12) representation
// used to export the shape of mechanism documents.
package jsonschema

// Draft is the $schema URI written on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema node. Only the keywords the exporter emits
// are modelled.
type Schema struct {
	SchemaURI   string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type string `json:"type,omitempty"`
	Enum []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// String, Number, Boolean and Any are leaf schemas.
func String() *Schema  { return &Schema{Type: "string"} }
func Number() *Schema  { return &Schema{Type: "number"} }
func Boolean() *Schema { return &Schema{Type: "boolean"} }
func Any() *Schema     { return &Schema{} }

// Const restricts a string property to one value.
func Const(v string) *Schema { return &Schema{Type: "string", Enum: []any{v}} }

// ArrayOf returns an array schema of items.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Tuple returns an array schema of exactly n items.
func Tuple(items *Schema, n int) *Schema {
	return &Schema{Type: "array", Items: items, MinItems: &n, MaxItems: &n}
}

// Closed returns an object schema that rejects keys outside props, except
// those matching any of the open patterns.
func Closed(props map[string]*Schema, required []string, open ...string) *Schema {
	s := &Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: new(bool)}
	if len(open) > 0 {
		s.PatternProperties = make(map[string]*Schema, len(open))
		for _, p := range open {
			s.PatternProperties[p] = Any()
		}
	}
	return s
}
