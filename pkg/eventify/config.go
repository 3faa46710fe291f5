// Package eventify provides a Go client for the Eventify SEU REST API.
//
// Every response from the API is wrapped in a {success, data, message}
// envelope; callers of this package only ever see decoded domain records
// or an error carrying the server's message.
package eventify

import "time"

// DefaultBaseURL is the production Eventify API endpoint.
const DefaultBaseURL = "https://api.eventifyseu.online"

// Default client settings.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
)

// Config holds all configuration for the Eventify API client.
type Config struct {
	// BaseURL is the root URL of the Eventify API.
	BaseURL string

	// Token is the value of the Eventify auth cookie. Empty for
	// anonymous access; populated by Login/Register or loaded from
	// the token file.
	Token string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed
	// read requests. Mutations are never retried.
	MaxRetries int

	// RetryDelay is the initial delay between retries (exponential
	// backoff applied).
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with the production URL and default settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// WithToken returns a copy of the config with the specified token.
func (c Config) WithToken(token string) Config {
	c.Token = token
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// WithRetries returns a copy of the config with the specified retry settings.
func (c Config) WithRetries(maxRetries int, retryDelay time.Duration) Config {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
	return c
}
