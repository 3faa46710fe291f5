package eventify

import (
	"context"
	"net/http"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// Me returns the identity associated with the configured token by probing
// the session endpoint. Callers that need "failure means anonymous"
// semantics (the session gate) apply them on top; this method reports
// failures as-is.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	const op = "auth.me"

	if c.config.Token == "" {
		return nil, wrapError(op, ErrNotAuthenticated)
	}

	env, err := c.get(ctx, op, "/api/auth/me")
	if err != nil {
		return nil, err
	}

	user, err := decodeData[model.User](op, env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates with email and password. On success the client
// captures the auth cookie for subsequent requests and returns the
// identity record. On failure the client's token is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	const op = "auth.login"

	body := map[string]string{"email": email, "password": password}
	env, cookies, err := c.sendJSON(ctx, op, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}

	user, err := decodeData[model.User](op, env)
	if err != nil {
		return nil, err
	}

	c.captureAuthCookie(cookies)
	return &user, nil
}

// Register creates an account and, like Login, captures the auth cookie
// on success.
func (c *Client) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	const op = "auth.register"

	body := map[string]string{"username": username, "email": email, "password": password}
	env, cookies, err := c.sendJSON(ctx, op, http.MethodPost, "/api/auth/register", body)
	if err != nil {
		return nil, err
	}

	user, err := decodeData[model.User](op, env)
	if err != nil {
		return nil, err
	}

	c.captureAuthCookie(cookies)
	return &user, nil
}

// Logout invalidates the session server-side and clears the local token.
// The token is cleared even when the remote call fails; the error is
// returned for callers that want to log it.
func (c *Client) Logout(ctx context.Context) error {
	const op = "auth.logout"

	_, _, err := c.sendJSON(ctx, op, http.MethodPost, "/api/auth/logout", map[string]string{})
	c.config.Token = ""
	return err
}

// captureAuthCookie stores the auth cookie from a login/register response.
func (c *Client) captureAuthCookie(cookies []*http.Cookie) {
	for _, ck := range cookies {
		if ck.Name == AuthCookieName && ck.Value != "" {
			c.config.Token = ck.Value
			return
		}
	}
}
