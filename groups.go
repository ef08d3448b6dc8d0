package confluence

import (
	"context"
	"fmt"
)

// Groups fetches the full group listing. The remote API returns bare group
// names.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	var names []string
	if err := c.Invoke(ctx, "getGroups", &names); err != nil {
		return nil, err
	}

	groups := make([]Group, len(names))
	for i, name := range names {
		groups[i] = Group{Name: name}
	}
	return groups, nil
}

// GetGroup looks a group up by name. The remote API has no per-group
// fetch, so this pulls the full listing and checks membership locally.
// An absent name yields an error matching ErrNotFound.
func (c *Client) GetGroup(ctx context.Context, name string) (*Group, error) {
	groups, err := c.Groups(ctx)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, fmt.Errorf("group not found: %q: %w", name, ErrNotFound)
}

// AddGroup creates a group, then reads it back through the listing so the
// caller gets the same value object GetGroup would return.
func (c *Client) AddGroup(ctx context.Context, name string) (*Group, error) {
	if err := c.Invoke(ctx, "addGroup", nil, name); err != nil {
		return nil, err
	}
	return c.GetGroup(ctx, name)
}

// RemoveGroup deletes a group. When defaultGroup is non-empty the server
// moves the group's members there instead of dropping their membership.
func (c *Client) RemoveGroup(ctx context.Context, name, defaultGroup string) error {
	var ok bool
	return c.Invoke(ctx, "removeGroup", &ok, name, defaultGroup)
}
