package confluence

import (
	"errors"
	"fmt"
	"net/rpc"
	"regexp"
	"strconv"
	"strings"

	"github.com/kolo/xmlrpc"
)

// Sentinel errors for well-known failure modes. Remote faults are matched
// onto these by exception type so callers can branch with errors.Is.
var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidSession       = errors.New("invalid session")
	ErrNotPermitted         = errors.New("not permitted")
	ErrNotFound             = errors.New("not found")
)

// ValidationError reports a locally rejected argument; no remote call was
// made.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// RemoteError is a fault raised by the server, normalized for reading: the
// Java diagnostic prefix is stripped from the message and the exception
// type is mapped onto one of the sentinel errors above.
type RemoteError struct {
	Op      string // remote operation name, without namespace
	Code    int    // XML-RPC fault code
	Message string // fault text with the diagnostic prefix removed
	kind    error  // matched sentinel, nil when unclassified
}

func (e *RemoteError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.kind
}

// faultPrefix matches the chain of Java exception class names the server
// prepends to fault strings, e.g.
//
//	java.lang.Exception: com.atlassian.confluence.rpc.NotPermittedException: ...
var faultPrefix = regexp.MustCompile(`^(?:(?:[\w$]+\.)*[\w$]*(?:Exception|Error):\s*)+`)

// stripFaultPrefix removes the diagnostic prefix so only the meaningful
// remainder is surfaced. A fault that is nothing but exception names is
// returned unchanged rather than emptied.
func stripFaultPrefix(s string) string {
	s = strings.TrimSpace(s)
	stripped := strings.TrimSpace(faultPrefix.ReplaceAllString(s, ""))
	if stripped == "" {
		return s
	}
	return stripped
}

// classifyFault maps the raw fault text onto a sentinel error by the remote
// exception type named in the prefix.
func classifyFault(raw string) error {
	switch {
	case strings.Contains(raw, "AuthenticationFailedException"):
		return ErrAuthenticationFailed
	case strings.Contains(raw, "InvalidSessionException"):
		return ErrInvalidSession
	case strings.Contains(raw, "NotPermittedException"):
		return ErrNotPermitted
	case strings.Contains(raw, "does not exist"):
		return ErrNotFound
	default:
		return nil
	}
}

// faultWire matches the flattened "Fault(code): text" form that faults
// arrive in over the production transport: kolo's codec is net/rpc based,
// and net/rpc carries server errors as a bare string, so the structured
// FaultError reaches the caller only as its rendered text inside an
// rpc.ServerError.
var faultWire = regexp.MustCompile(`(?s)^Fault\((-?\d+)\):\s*(.*)$`)

// normalizeFault converts a transport error into the caller-facing form.
// XML-RPC faults become RemoteError — whether they arrive structured or
// flattened through the net/rpc string channel; anything else (network
// failures, context cancellation, decode errors) is wrapped with the
// operation name and passed through so errors.Is still sees the cause.
func normalizeFault(op string, err error) error {
	if err == nil {
		return nil
	}

	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return remoteError(op, fault.Code, fault.String)
	}

	var serverErr rpc.ServerError
	if errors.As(err, &serverErr) {
		if m := faultWire.FindStringSubmatch(string(serverErr)); m != nil {
			code, _ := strconv.Atoi(m[1])
			return remoteError(op, code, m[2])
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func remoteError(op string, code int, raw string) *RemoteError {
	return &RemoteError{
		Op:      op,
		Code:    code,
		Message: stripFaultPrefix(raw),
		kind:    classifyFault(raw),
	}
}
