package service

import (
	"context"
	"errors"
	"time"

	"claimlens-backend/llm"
)

const maxRetries = 3

// initialBackoff is a variable so tests can shrink the delay.
var initialBackoff = time.Second

// completeWithRetry sends one LLM request with bounded retry and doubling
// backoff. Transient errors and empty responses are retried; 400/401 API
// errors and context cancellation stop immediately. The last error is
// returned once attempts are exhausted.
func completeWithRetry(ctx context.Context, client llm.Client, req llm.Request) (string, error) {
	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		content, err := client.Complete(ctx, req)
		if err != nil {
			if !llm.IsRetryable(err) {
				return "", err
			}
			lastErr = err
			continue
		}
		if content == "" {
			lastErr = errors.New("empty response from LLM")
			continue
		}
		return content, nil
	}

	return "", lastErr
}
