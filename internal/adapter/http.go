package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/logger"
)

// HTTPClient defines an interface for JSON API calls to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetJSON performs a GET request and unmarshals the response into result
	GetJSON(ctx context.Context, url string, headers map[string]string, result any) error

	// PostJSON performs a POST request with a JSON body and returns the response body
	PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// StatusError is returned for a non-2xx response that is not retried
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client

	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client:          &http.Client{Timeout: timeout},
		initialInterval: 2 * time.Second,
		maxInterval:     30 * time.Second,
		maxElapsedTime:  1 * time.Minute,
	}
}

// do executes a request with exponential backoff.
// Network errors, 429 and 5xx are retried; any other non-2xx status is permanent.
func (c *RealHTTPClient) do(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}
		}()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			logger.WarnCtx(ctx, "rate limited, retrying with backoff", zap.String("url", url))
			return fmt.Errorf("rate limited (429)")
		case resp.StatusCode >= http.StatusInternalServerError:
			logger.WarnCtx(ctx, "server error, retrying with backoff", zap.String("url", url), zap.Int("status", resp.StatusCode))
			return &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Body: string(data)})
		}

		respBody = data
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval
	b.MaxElapsedTime = c.maxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// GetJSON performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) GetJSON(ctx context.Context, url string, headers map[string]string, result any) error {
	respBody, err := c.do(ctx, http.MethodGet, url, headers, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// PostJSON performs a POST request with a JSON body and returns the response body
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, url, headers, body)
}
