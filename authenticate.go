package sdk

import (
	"fmt"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

// authenticate prepends the credential header the operation kind requires.
// Install runs unauthenticated; the two bootstrap kinds use the installation
// token; everything else uses the session token. A missing required token is
// a UsageError, never retried.
func authenticate(req Request, c *Client) (Request, error) {
	switch req.Kind {
	case KindInstall:
		return req, nil
	case KindRegisterDevice, KindCreateSession:
		if c.installationToken == "" {
			return Request{}, UsageError{Message: fmt.Sprintf("installation token required for %s %s", req.Method, req.Path)}
		}
		return req.withHeaderFront(headers.ClientAuthentication, c.installationToken), nil
	case KindOther:
		if c.sessionToken == "" {
			return Request{}, UsageError{Message: fmt.Sprintf("session token required for %s %s", req.Method, req.Path)}
		}
		return req.withHeaderFront(headers.ClientAuthentication, c.sessionToken), nil
	default:
		return Request{}, UsageError{Message: fmt.Sprintf("unknown payload kind %q", req.Kind)}
	}
}
