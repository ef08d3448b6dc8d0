package confluence

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	wiki := newFakeWiki()
	st := &stubTransport{handler: wiki.handle}
	c := newStubClient(st)

	require.False(t, c.Authenticated())
	require.NoError(t, c.Login(context.Background(), testUser, testPassword))
	assert.True(t, c.Authenticated())

	require.Len(t, st.calls, 1)
	assert.Equal(t, "confluence2.login", st.calls[0].method)
	assert.Equal(t, []any{testUser, testPassword}, st.calls[0].args)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		field    string
	}{
		{"empty user", "", "secret", "user"},
		{"empty password", "admin", "", "password"},
		{"both empty", "", "", "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &stubTransport{}
			c := newStubClient(st)

			err := c.Login(context.Background(), tt.user, tt.password)
			require.Error(t, err)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			// Rejected locally, before any transport call.
			assert.Empty(t, st.calls)
			assert.False(t, c.Authenticated())
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	wiki := newFakeWiki()
	st := &stubTransport{handler: wiki.handle}
	c := newStubClient(st)

	err := c.Login(context.Background(), testUser, "wrong")
	require.Error(t, err)
	assert.False(t, c.Authenticated())

	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// The Java diagnostic prefix is stripped; the meaningful remainder is
	// kept.
	assert.NotContains(t, err.Error(), "java.lang.Exception")
	assert.NotContains(t, err.Error(), "com.atlassian")
	assert.Contains(t, err.Error(), "Attempt to log in user 'admin' failed")
}

func TestLogout(t *testing.T) {
	c, _, st := newWikiClient(t)

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.Authenticated())

	last := st.calls[len(st.calls)-1]
	assert.Equal(t, "confluence2.logout", last.method)
	assert.Equal(t, []any{testToken}, last.args)
}

func TestLogout_WithoutSession(t *testing.T) {
	st := &stubTransport{}
	c := newStubClient(st)

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, st.calls)
}

func TestLogout_ClearsTokenOnRemoteFailure(t *testing.T) {
	c, _, st := newWikiClient(t)
	st.handler = func(string, []any) (any, error) {
		return nil, errors.New("connection reset")
	}

	err := c.Logout(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "logout"))
	assert.False(t, c.Authenticated())
}
