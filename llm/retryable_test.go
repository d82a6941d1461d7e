package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"plain transport error", errors.New("connection reset"), true},
		{"canceled context", context.Canceled, false},
		{"wrapped canceled context", fmt.Errorf("OpenAI API error: %w", context.Canceled), false},
		{"openai 400", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}, false},
		{"openai 401", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}, false},
		{"openai 429", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, true},
		{"openai 500", &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}, true},
		{"gemini 400", &googleapi.Error{Code: http.StatusBadRequest}, false},
		{"gemini 401", &googleapi.Error{Code: http.StatusUnauthorized}, false},
		{"gemini 503", &googleapi.Error{Code: http.StatusServiceUnavailable}, true},
		{"wrapped openai 400", fmt.Errorf("OpenAI API error: %w", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
