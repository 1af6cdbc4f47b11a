package sdk

import (
	"context"
	"net/http"

	"github.com/ledgerpay/ledgerpay-go/routes"
)

// User is the authenticated user's profile.
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
}

// UsersClient provides user profile operations. These are ordinary calls:
// session-token authenticated and signed like any non-bootstrap operation.
type UsersClient struct {
	client *Client
}

// Get returns the user the session belongs to.
func (u *UsersClient) Get(ctx context.Context) (User, error) {
	resp, err := u.client.Do(ctx, NewRequest(http.MethodGet, routes.User, nil))
	if err != nil {
		return User{}, err
	}
	var out User
	if err := resp.Decode(&out); err != nil {
		return User{}, err
	}
	return out, nil
}
