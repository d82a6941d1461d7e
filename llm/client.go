package llm

import (
	"context"
)

// Message roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry of an LLM conversation.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion request. When Schema is set the provider
// must constrain the response to that JSON schema; the returned string is
// then the raw JSON payload.
type Request struct {
	Model       string
	Messages    []Message
	Schema      *ResponseSchema
	Temperature float32
	MaxTokens   int
}

// Client is the interface every LLM provider implements.
type Client interface {
	// Name returns the provider name.
	Name() string

	// Complete sends one request and returns the response message content.
	Complete(ctx context.Context, req Request) (string, error)
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "gemini"
	Provider string

	// Model name (provider-specific); empty selects the provider default
	Model string

	// APIKey for the provider
	APIKey string

	// Timeout per API request, in seconds
	Timeout int

	// MaxTokens for response generation, 0 = provider default
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		Timeout:  60,
	}
}

// systemAndUser splits messages into a combined system instruction and a
// combined user prompt, for providers that keep the two separate.
func systemAndUser(messages []Message) (system string, user string) {
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		default:
			if user != "" {
				user += "\n\n"
			}
			user += m.Content
		}
	}
	return system, user
}
