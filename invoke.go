package confluence

import (
	"context"
	"fmt"
	"log/slog"
)

// Invoke relays an arbitrary remote operation. op is the bare operation
// name ("getSpace"); the API namespace is prefixed and the session token is
// prepended to args before the call reaches the transport. result must be a
// pointer the transport can decode into, or nil to discard the response.
//
// Invoke is the generic path behind every typed method on Client, and the
// escape hatch for operations the typed surface does not cover. Before a
// successful Login it fails with ErrNotAuthenticated without touching the
// transport.
func (c *Client) Invoke(ctx context.Context, op string, result any, args ...any) error {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return fmt.Errorf("%s: %w", op, ErrNotAuthenticated)
	}

	return c.call(ctx, op, result, append([]any{token}, args...)...)
}

// call relays without the authentication guard; Login and Logout use it
// directly since they manage the token themselves.
func (c *Client) call(ctx context.Context, op string, result any, args ...any) error {
	method := c.namespace + "." + op

	c.logger.Debug("invoking remote operation",
		slog.String("method", method),
		slog.Int("args", len(args)),
	)

	if err := c.transport.Call(ctx, method, args, result); err != nil {
		norm := normalizeFault(op, err)
		c.logger.Error("remote operation failed",
			slog.String("method", method),
			slog.Any("error", norm),
		)
		return norm
	}

	c.logger.Debug("remote operation completed",
		slog.String("method", method),
	)

	return nil
}
