package confluence

import "context"

// Methods lists the RPC operations the endpoint exposes, via the standard
// XML-RPC introspection extension. system.* methods take no session token
// and no namespace prefix, so this bypasses the authenticated path and
// works before Login.
func (c *Client) Methods(ctx context.Context) ([]string, error) {
	const op = "system.listMethods"

	var methods []string
	if err := c.transport.Call(ctx, op, nil, &methods); err != nil {
		return nil, normalizeFault(op, err)
	}
	return methods, nil
}

// ServerInfo reports the server version and base URL.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	var info ServerInfo
	if err := c.Invoke(ctx, "getServerInfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}
