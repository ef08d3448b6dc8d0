package confluence

import (
	"context"
	"net"
	"net/http"
	"net/rpc"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"
)

// EndpointSuffix is the well-known RPC path on wiki servers.
const EndpointSuffix = "/rpc/xmlrpc"

// Transport relays a single remote procedure call. Implementations encode
// args as positional parameters and decode the response into result, which
// must be a pointer, or nil when the caller discards the response.
type Transport interface {
	Call(ctx context.Context, method string, args []any, result any) error
	Close() error
}

// Endpoint normalizes a base URL to the full RPC endpoint, appending
// EndpointSuffix when absent.
func Endpoint(baseURL string) string {
	u := strings.TrimRight(baseURL, "/")
	if strings.HasSuffix(u, EndpointSuffix) {
		return u
	}
	return u + EndpointSuffix
}

// xmlrpcTransport is the production Transport, backed by kolo/xmlrpc.
type xmlrpcTransport struct {
	client *xmlrpc.Client
}

// NewXMLRPCTransport configures an XML-RPC client against the normalized
// endpoint. timeout bounds dialing and the TLS handshake; zero means
// DefaultTimeout. No connection is made until the first call.
func NewXMLRPCTransport(baseURL string, timeout time.Duration) (Transport, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rt := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: timeout}).DialContext,
		TLSHandshakeTimeout: timeout,
	}

	client, err := xmlrpc.NewClient(Endpoint(baseURL), rt)
	if err != nil {
		return nil, err
	}

	return &xmlrpcTransport{client: client}, nil
}

// Call relays one RPC. kolo's client is net/rpc based and has no context
// support of its own, so cancellation is layered on via the async Go call.
// The underlying HTTP exchange is not torn down on cancellation; the fixed
// dial timeout still bounds how long it can linger.
func (t *xmlrpcTransport) Call(ctx context.Context, method string, args []any, result any) error {
	call := t.client.Go(method, args, result, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		return done.Error
	}
}

func (t *xmlrpcTransport) Close() error {
	return t.client.Close()
}
