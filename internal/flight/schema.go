package flight

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

type SchemaType string

const (
	TypeObject SchemaType = "OBJECT"
	TypeString SchemaType = "STRING"
	TypeNumber SchemaType = "NUMBER"
	TypeArray  SchemaType = "ARRAY"
)

// Schema is the structured output contract sent with a JSON-mode prompt.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// Validate checks that every required name is a declared property, recursively.
func (s *Schema) Validate() error {
	return ValidateSchema(s.GenAI())
}

// ValidateSchema is Validate for an SDK schema. Fields it does not check (enum,
// description, bounds, ordering) are left as they are.
func ValidateSchema(s *genai.Schema) error {
	if s == nil {
		return nil
	}
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			return fmt.Errorf("schema: required property %q is not declared", name)
		}
	}
	for name, prop := range s.Properties {
		if err := ValidateSchema(prop); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for _, alt := range s.AnyOf {
		if err := ValidateSchema(alt); err != nil {
			return fmt.Errorf("anyOf: %w", err)
		}
	}
	if s.Type == genai.TypeArray && s.Items == nil {
		return fmt.Errorf("schema: array without items")
	}
	return ValidateSchema(s.Items)
}

// GenAI converts s into the SDK representation.
func (s *Schema) GenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     genai.Type(s.Type),
		Items:    s.Items.GenAI(),
		Required: append([]string(nil), s.Required...),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.GenAI()
		}
	}
	return out
}

// DecodeSchema parses a client-supplied schema into the SDK type, keeping every field
// Gemini understands. A missing or null schema yields nil, which selects free-text mode.
func DecodeSchema(raw json.RawMessage) (*genai.Schema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var schema genai.Schema
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	if err := ValidateSchema(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
