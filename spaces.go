package confluence

import "context"

// AddSpace creates a space and returns the server's copy of it.
func (c *Client) AddSpace(ctx context.Context, key, name, description string) (*Space, error) {
	def := spaceDefinition{Key: key, Name: name, Description: description}

	var space Space
	if err := c.Invoke(ctx, "addSpace", &space, def); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetSpace fetches a space by key.
func (c *Client) GetSpace(ctx context.Context, key string) (*Space, error) {
	var space Space
	if err := c.Invoke(ctx, "getSpace", &space, key); err != nil {
		return nil, err
	}
	return &space, nil
}

// RemoveSpace deletes a space and all of its content.
func (c *Client) RemoveSpace(ctx context.Context, key string) error {
	var ok bool
	return c.Invoke(ctx, "removeSpace", &ok, key)
}

// Spaces lists every space visible to the session.
func (c *Client) Spaces(ctx context.Context) ([]SpaceSummary, error) {
	var spaces []SpaceSummary
	if err := c.Invoke(ctx, "getSpaces", &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}
