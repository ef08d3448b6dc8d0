package confluence

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// AddUser creates a user account. An empty password gets a generated
// time-ordered default so the account starts with a credential nobody
// knows until it is reset. On success the account is fetched back so the
// caller sees the canonical server copy rather than the request echo.
func (c *Client) AddUser(ctx context.Context, name, fullName, email, password string) (*User, error) {
	if password == "" {
		password = defaultPassword()
	}

	def := userDefinition{Name: name, FullName: fullName, Email: email}
	if err := c.Invoke(ctx, "addUser", nil, def, password); err != nil {
		return nil, err
	}

	return c.GetUser(ctx, name)
}

// GetUser fetches a user account by login name.
func (c *Client) GetUser(ctx context.Context, name string) (*User, error) {
	var user User
	if err := c.Invoke(ctx, "getUser", &user, name); err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveUser deletes a user account.
func (c *Client) RemoveUser(ctx context.Context, name string) error {
	var ok bool
	return c.Invoke(ctx, "removeUser", &ok, name)
}

// defaultPassword returns a ULID string: timestamp-derived, unique, and
// never empty.
func defaultPassword() string {
	return ulid.Make().String()
}
