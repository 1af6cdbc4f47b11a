// Package routes provides shared API route constants used by the SDK's
// service clients to prevent path mismatches.
package routes

const (
	// Installation registers a client public key and yields the installation token.
	Installation = "/v1/installation"

	// DeviceServer registers the calling device under an installation.
	DeviceServer = "/v1/device-server"

	// SessionServer opens a session and yields the session token.
	SessionServer = "/v1/session-server"

	// User returns the authenticated user's profile.
	User = "/v1/user"
)
