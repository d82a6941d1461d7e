package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// NewClientFromEnv builds the configured LLM client. LLM_PROVIDER selects
// the backend ("openai" by default, or "gemini"); LLM_MODEL overrides the
// provider's default model and LLM_TIMEOUT_SECONDS the per-request timeout.
func NewClientFromEnv(ctx context.Context) (Client, error) {
	config := DefaultConfig()
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.Provider = provider
	}
	config.Model = os.Getenv("LLM_MODEL")
	if timeout := os.Getenv("LLM_TIMEOUT_SECONDS"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			config.Timeout = seconds
		}
	}

	switch config.Provider {
	case "openai":
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		return NewOpenAIClient(config)

	case "gemini":
		config.APIKey = os.Getenv("GEMINI_API_KEY")
		if config.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return NewGeminiClient(client, config), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}
