package confluence

// Value objects returned verbatim from the server. The client does not
// validate or enrich them; identity is whatever keys the server defines
// (a space's key, a user's login, a group's name).

// Space is a named content container on the server.
type Space struct {
	Key         string `xmlrpc:"key"`
	Name        string `xmlrpc:"name"`
	Description string `xmlrpc:"description"`
	URL         string `xmlrpc:"url"`
	HomePage    string `xmlrpc:"homePage"`
}

// SpaceSummary is the compact form returned by the space listing.
type SpaceSummary struct {
	Key  string `xmlrpc:"key"`
	Name string `xmlrpc:"name"`
	Type string `xmlrpc:"type"`
	URL  string `xmlrpc:"url"`
}

// spaceDefinition is the request shape for addSpace.
type spaceDefinition struct {
	Key         string `xmlrpc:"key"`
	Name        string `xmlrpc:"name"`
	Description string `xmlrpc:"description"`
}

// User is a user account on the server.
type User struct {
	Name     string `xmlrpc:"name"`
	FullName string `xmlrpc:"fullname"`
	Email    string `xmlrpc:"email"`
	URL      string `xmlrpc:"url"`
}

// userDefinition is the request shape for addUser; the password travels as
// a separate positional argument.
type userDefinition struct {
	Name     string `xmlrpc:"name"`
	FullName string `xmlrpc:"fullname"`
	Email    string `xmlrpc:"email"`
}

// Group is a user group. The remote listing carries bare names only, so a
// group has no other fields.
type Group struct {
	Name string
}

// ServerInfo describes the server version and location.
type ServerInfo struct {
	MajorVersion     int    `xmlrpc:"majorVersion"`
	MinorVersion     int    `xmlrpc:"minorVersion"`
	PatchLevel       int    `xmlrpc:"patchLevel"`
	BuildID          string `xmlrpc:"buildId"`
	DevelopmentBuild bool   `xmlrpc:"developmentBuild"`
	BaseURL          string `xmlrpc:"baseUrl"`
}
