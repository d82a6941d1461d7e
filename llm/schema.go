package llm

// ResponseSchema is a named, strict JSON schema a workflow expects the LLM
// to conform to. Each workflow declares its schema once as a typed value
// and reuses it for request construction and response parsing.
type ResponseSchema struct {
	Name   string
	Schema *SchemaObject
}

// SchemaObject is a minimal JSON-schema node covering the shapes the
// workflows need: objects with enumerated required string fields, arrays of
// objects, and described strings.
type SchemaObject struct {
	Type                 string                   `json:"type"`
	Description          string                   `json:"description,omitempty"`
	Properties           map[string]*SchemaObject `json:"properties,omitempty"`
	Required             []string                 `json:"required,omitempty"`
	Items                *SchemaObject            `json:"items,omitempty"`
	AdditionalProperties *bool                    `json:"additionalProperties,omitempty"`
}

// Object builds a strict object schema: every property required, no
// additional properties allowed.
func Object(properties map[string]*SchemaObject, required ...string) *SchemaObject {
	if len(required) == 0 {
		for name := range properties {
			required = append(required, name)
		}
	}
	disallow := false
	return &SchemaObject{
		Type:                 "object",
		Properties:           properties,
		Required:             required,
		AdditionalProperties: &disallow,
	}
}

// String builds a described string schema.
func String(description string) *SchemaObject {
	return &SchemaObject{Type: "string", Description: description}
}

// Array builds a described array schema.
func Array(items *SchemaObject, description string) *SchemaObject {
	return &SchemaObject{Type: "array", Items: items, Description: description}
}
