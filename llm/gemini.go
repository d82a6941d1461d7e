package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
)

// GeminiClient implements the Client interface on top of the Gemini API,
// using its JSON response mode for structured output.
type GeminiClient struct {
	client *genai.Client
	config Config
}

// NewGeminiClient wraps an initialized genai client.
func NewGeminiClient(client *genai.Client, config Config) *GeminiClient {
	return &GeminiClient{
		client: client,
		config: config,
	}
}

// Name returns the provider name.
func (c *GeminiClient) Name() string {
	return "gemini"
}

// Complete sends one generation request. When req.Schema is set the model
// is constrained to emit JSON conforming to the converted schema.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = c.config.Model
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	} else if c.config.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(c.config.MaxTokens))
	}

	system, user := systemAndUser(req.Messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(req.Schema.Schema)
	}

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}

	return builder.String(), nil
}

// toGenaiSchema converts the shared schema contract to the genai schema
// type. Gemini rejects unknown schema keywords, so only the supported
// subset is mapped.
func toGenaiSchema(schema *SchemaObject) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{
		Description: schema.Description,
		Required:    schema.Required,
	}

	switch schema.Type {
	case "object":
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, prop := range schema.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	case "array":
		out.Type = genai.TypeArray
		out.Items = toGenaiSchema(schema.Items)
	default:
		out.Type = genai.TypeString
	}

	return out
}
