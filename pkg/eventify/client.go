package eventify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"
)

// AuthCookieName is the name of the auth cookie the API issues on login
// and expects back on authenticated requests.
const AuthCookieName = "token"

// Client provides methods to interact with the Eventify SEU REST API.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
}

// New creates a new Eventify API client with the given configuration.
func New(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		logger: logger.With("component", "eventify-client"),
	}
}

// Token returns the current auth cookie value.
func (c *Client) Token() string {
	return c.config.Token
}

// SetToken updates the auth cookie value used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// envelope is the wire wrapper used by every API response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// get executes a GET request with retries. Reads are idempotent, so
// transient failures are retried with exponential backoff.
func (c *Client) get(ctx context.Context, op, path string) (*envelope, error) {
	logger := c.logger.With("op", op, "path", path)

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			logger.Debug("retrying after delay", "attempt", attempt, "delay", delay)

			select {
			case <-ctx.Done():
				return nil, wrapError(op, ctx.Err())
			case <-time.After(delay):
			}
		}

		env, _, err := c.doRequest(ctx, op, http.MethodGet, path, "", nil)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return nil, err
			}
			logger.Debug("request failed, will retry", "error", err, "attempt", attempt)
			continue
		}
		return env, nil
	}

	return nil, wrapError(op, fmt.Errorf("all retries exhausted: %w", lastErr))
}

// send executes a mutating request exactly once. The returned cookies let
// auth operations capture the token the server sets.
func (c *Client) send(ctx context.Context, op, method, path, contentType string, body []byte) (*envelope, []*http.Cookie, error) {
	return c.doRequest(ctx, op, method, path, contentType, body)
}

// sendJSON marshals body and sends it as application/json.
func (c *Client) sendJSON(ctx context.Context, op, method, path string, body any) (*envelope, []*http.Cookie, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, nil, wrapError(op, fmt.Errorf("marshaling request: %w", err))
	}
	return c.send(ctx, op, method, path, "application/json", data)
}

// doRequest performs a single HTTP request and parses the envelope.
func (c *Client) doRequest(ctx context.Context, op, method, path, contentType string, body []byte) (*envelope, []*http.Cookie, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, wrapError(op, fmt.Errorf("creating request: %w", err))
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.config.Token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: c.config.Token})
	}

	c.logger.Debug("sending request", "op", op, "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, wrapError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, wrapError(op, fmt.Errorf("reading response: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		// Not an envelope at all; report the raw HTTP failure.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, nil, wrapError(op, &HTTPError{
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(respBody)),
			})
		}
		return nil, nil, wrapError(op, fmt.Errorf("decoding response: %w", err))
	}

	if !env.Success {
		c.logger.Debug("request rejected", "op", op, "status", resp.StatusCode, "message", env.Message)
		return nil, nil, newRejection(op, resp.StatusCode, env.Message)
	}

	return &env, resp.Cookies(), nil
}

// decodeData extracts and unmarshals the envelope's data payload.
func decodeData[T any](op string, env *envelope) (T, error) {
	var out T
	if env.Data == nil {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, wrapError(op, fmt.Errorf("decoding data: %w", err))
	}
	return out, nil
}
