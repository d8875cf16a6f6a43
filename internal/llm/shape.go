// Package llm - shape.go describes structured response shapes once and renders them both as a
// Gemini response schema and as a plain-text hint for the prompt.
package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// FieldKind is the JSON type of a response field.
type FieldKind string

// Supported field kinds.
const (
	KindString      FieldKind = "string"
	KindStringArray FieldKind = "[]string"
)

// ResponseShape defines the structure a schema-constrained call must return.
type ResponseShape struct {
	Name   string
	Fields []ShapeField
}

// ShapeField defines a single field in the response.
type ShapeField struct {
	Name        string
	Kind        FieldKind
	Description string
	Required    bool
}

// Schema converts the shape to a Gemini response schema.
func (s ResponseShape) Schema() *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(s.Fields)),
	}
	for _, f := range s.Fields {
		var prop *genai.Schema
		switch f.Kind {
		case KindStringArray:
			prop = &genai.Schema{
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: f.Description,
			}
		default:
			prop = &genai.Schema{Type: genai.TypeString, Description: f.Description}
		}
		schema.Properties[f.Name] = prop
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema
}

// PromptHint renders the shape as a JSON-like outline for inclusion in a prompt.
func (s ResponseShape) PromptHint() string {
	var sb strings.Builder
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, f := range s.Fields {
		typeHint := `"string"`
		if f.Kind == KindStringArray {
			typeHint = `["string"]`
		}
		requiredHint := ""
		if f.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", f.Name, typeHint, requiredHint))
		if f.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", f.Description))
		}
		if i < len(s.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// RequiredFields lists the names of required fields in declaration order.
func (s ResponseShape) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
