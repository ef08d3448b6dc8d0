package confluence

import (
	"context"
	"log/slog"
)

// Login authenticates against the server and stores the session token that
// Invoke prepends to every subsequent call. Empty credentials are rejected
// locally before any transport call.
func (c *Client) Login(ctx context.Context, user, password string) error {
	if user == "" {
		return ValidationError{Field: "user", Message: "required"}
	}
	if password == "" {
		return ValidationError{Field: "password", Message: "required"}
	}

	var token string
	if err := c.call(ctx, "login", &token, user, password); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	c.logger.Info("authenticated", slog.String("user", user))
	return nil
}

// Logout invalidates the server session. The local token is cleared even
// when the remote call fails; a session the server may have already dropped
// is not worth keeping. Logout without a session is a no-op.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.mu.Unlock()

	if token == "" {
		return nil
	}

	var ok bool
	return c.call(ctx, "logout", &ok, token)
}
