package confluence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_Listing(t *testing.T) {
	c, _, _ := newWikiClient(t)

	groups, err := c.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Group{
		{Name: "confluence-users"},
		{Name: "confluence-administrators"},
	}, groups)
}

func TestGetGroup_Present(t *testing.T) {
	c, _, st := newWikiClient(t)

	group, err := c.GetGroup(context.Background(), "confluence-users")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "confluence-users", group.Name)

	// Membership is checked locally against the full listing; there is no
	// per-group remote call.
	assert.Equal(t, "confluence2.getGroups", st.calls[len(st.calls)-1].method)
}

func TestGetGroup_Absent(t *testing.T) {
	c, _, _ := newWikiClient(t)

	group, err := c.GetGroup(context.Background(), "no-such-group")
	require.Error(t, err)
	assert.Nil(t, group)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "group not found")
}

func TestAddGroup(t *testing.T) {
	c, _, st := newWikiClient(t)

	group, err := c.AddGroup(context.Background(), "editors")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "editors", group.Name)

	// addGroup followed by the listing read-back.
	n := len(st.calls)
	assert.Equal(t, "confluence2.addGroup", st.calls[n-2].method)
	assert.Equal(t, "confluence2.getGroups", st.calls[n-1].method)
}

func TestRemoveGroup(t *testing.T) {
	c, wiki, st := newWikiClient(t)
	ctx := context.Background()
	wiki.groups = append(wiki.groups, "editors")

	require.NoError(t, c.RemoveGroup(ctx, "editors", "confluence-users"))
	assert.Equal(t, []any{testToken, "editors", "confluence-users"},
		st.calls[len(st.calls)-1].args)

	_, err := c.GetGroup(ctx, "editors")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveGroup_NoMigration(t *testing.T) {
	c, _, st := newWikiClient(t)

	require.NoError(t, c.RemoveGroup(context.Background(), "editors", ""))
	assert.Equal(t, []any{testToken, "editors", ""},
		st.calls[len(st.calls)-1].args)
}
