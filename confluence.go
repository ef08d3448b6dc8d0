// Package confluence is a client for the XML-RPC administration API exposed
// by Confluence-style wiki servers. It covers the space, user, group, and
// authentication operations with typed methods, and exposes the generic
// Invoke call for every other remote operation.
//
// The wire protocol is delegated to an XML-RPC transport library behind the
// Transport interface; the client's own job is dispatch: prefix the API
// namespace, prepend the session token, relay the call, and normalize any
// fault the server raises.
package confluence

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shhac/confluence/internal/logging"
)

const (
	// DefaultNamespace is the RPC method namespace of the v2 API. Remote
	// operation names are qualified as "<namespace>.<operation>".
	DefaultNamespace = "confluence2"

	// DefaultTimeout bounds connection establishment to the server.
	DefaultTimeout = 15 * time.Second
)

// Config holds the settings needed to reach a wiki server.
type Config struct {
	// URL is the server base URL. The well-known /rpc/xmlrpc path is
	// appended when not already present.
	URL string

	// Namespace selects the RPC API namespace. Empty means
	// DefaultNamespace.
	Namespace string

	// Timeout is the fixed connection-level timeout handed to the
	// transport. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Client is a session against one wiki server. Operations are synchronous
// and blocking; the only internal synchronization is around the session
// token, so a Client should not be shared between goroutines without
// external coordination.
type Client struct {
	transport Transport
	namespace string
	logger    *slog.Logger

	mu    sync.RWMutex
	token string
}

// New creates a client for the server described by cfg, using the default
// XML-RPC transport.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("confluence: server URL is required")
	}

	transport, err := NewXMLRPCTransport(cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("confluence: create transport: %w", err)
	}

	return NewWithTransport(transport, cfg.Namespace, logger), nil
}

// NewWithTransport creates a client on an existing transport. Tests
// substitute a stub here instead of speaking XML-RPC.
func NewWithTransport(transport Transport, namespace string, logger *slog.Logger) *Client {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Client{
		transport: transport,
		namespace: namespace,
		logger:    logger,
	}
}

// Authenticated reports whether a session token is held. It becomes true
// after a successful Login and false again after Logout.
func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
