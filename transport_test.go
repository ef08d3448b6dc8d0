package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare base URL",
			in:   "https://wiki.example.com",
			want: "https://wiki.example.com/rpc/xmlrpc",
		},
		{
			name: "trailing slash",
			in:   "https://wiki.example.com/",
			want: "https://wiki.example.com/rpc/xmlrpc",
		},
		{
			name: "suffix already present",
			in:   "https://wiki.example.com/rpc/xmlrpc",
			want: "https://wiki.example.com/rpc/xmlrpc",
		},
		{
			name: "suffix with trailing slash",
			in:   "https://wiki.example.com/rpc/xmlrpc/",
			want: "https://wiki.example.com/rpc/xmlrpc",
		},
		{
			name: "context path",
			in:   "https://example.com/confluence",
			want: "https://example.com/confluence/rpc/xmlrpc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Endpoint(tt.in))
		})
	}
}

func TestNewXMLRPCTransport(t *testing.T) {
	tr, err := NewXMLRPCTransport("https://wiki.example.com", 5*time.Second)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.NoError(t, tr.Close())
}

func TestNewXMLRPCTransport_DefaultTimeout(t *testing.T) {
	// Zero timeout falls back to the fixed default rather than unbounded
	// dials.
	tr, err := NewXMLRPCTransport("https://wiki.example.com", 0)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.NoError(t, tr.Close())
}

// ---------------------------------------------------------------------------
// End-to-end tests over the real XML-RPC wire, against an httptest server
// answering canned responses.
// ---------------------------------------------------------------------------

// xmlrpcFaultBody renders a fault response the way a real server does,
// including the Java diagnostic prefix in the fault string.
func xmlrpcFaultBody(code int, faultString string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse>
  <fault>
    <value>
      <struct>
        <member>
          <name>faultCode</name>
          <value><int>%d</int></value>
        </member>
        <member>
          <name>faultString</name>
          <value><string>%s</string></value>
        </member>
      </struct>
    </value>
  </fault>
</methodResponse>`, code, faultString)
}

func xmlrpcStringBody(s string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse>
  <params>
    <param>
      <value><string>%s</string></value>
    </param>
  </params>
</methodResponse>`, s)
}

func TestLogin_SuccessOverWire(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, xmlrpcStringBody("tok-live"))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Login(context.Background(), "admin", "secret"))
	assert.True(t, c.Authenticated())
	assert.Equal(t, EndpointSuffix, gotPath, "base URL must get the well-known suffix appended")
}

func TestLogin_FaultOverWire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, xmlrpcFaultBody(0,
			"java.lang.Exception: com.atlassian.confluence.rpc.AuthenticationFailedException: Attempt to log in user 'admin' failed - incorrect username/password combination."))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	defer c.Close()

	err = c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.False(t, c.Authenticated())

	// The fault arrives flattened through net/rpc, yet still classifies and
	// still loses its diagnostic prefix.
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.NotContains(t, err.Error(), "java.lang.Exception")
	assert.NotContains(t, err.Error(), "com.atlassian")
	assert.NotContains(t, err.Error(), "Fault(")
	assert.Contains(t, err.Error(), "Attempt to log in user 'admin' failed")
}

func TestGetSpace_FaultOverWire(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "text/xml")
		if calls == 1 {
			fmt.Fprint(w, xmlrpcStringBody("tok-live"))
			return
		}
		fmt.Fprint(w, xmlrpcFaultBody(0,
			"java.lang.Exception: com.atlassian.confluence.rpc.RemoteException: You're not allowed to view that space, or it does not exist."))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.Login(context.Background(), "admin", "secret"))

	space, err := c.GetSpace(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Nil(t, space)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "java.lang.Exception")
}
