package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// IsRetryable reports whether a Complete error is worth retrying.
// Malformed-request and bad-credential responses fail the same way every
// attempt, and a canceled context will not recover; everything else is
// treated as transient.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var openaiErr *openai.APIError
	if errors.As(err, &openaiErr) {
		return openaiErr.HTTPStatusCode != http.StatusBadRequest &&
			openaiErr.HTTPStatusCode != http.StatusUnauthorized
	}

	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) {
		return googleErr.Code != http.StatusBadRequest &&
			googleErr.Code != http.StatusUnauthorized
	}

	return true
}
