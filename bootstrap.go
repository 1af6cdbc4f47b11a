package sdk

import (
	"context"
	"net/http"

	"github.com/ledgerpay/ledgerpay-go/routes"
)

// BootstrapClient groups the three bootstrap operations that take a fresh
// client from key pair to live session: Install, RegisterDevice,
// CreateSession. Each returns or feeds a rotated *Client; nothing is mutated
// in place, so callers switch to the returned value. Persisting the obtained
// tokens across process runs is the caller's job.
type BootstrapClient struct {
	client *Client
}

type installationRequest struct {
	ClientPublicKey string `json:"client_public_key"`
}

// InstallationResponse is the server's answer to an install call.
type InstallationResponse struct {
	Token           string `json:"token"`
	ServerPublicKey string `json:"server_public_key"`
}

type deviceServerRequest struct {
	Description  string   `json:"description"`
	Secret       string   `json:"secret"`
	PermittedIPs []string `json:"permitted_ips,omitempty"`
}

// DeviceServerResponse is the server's answer to a device registration.
type DeviceServerResponse struct {
	ID int64 `json:"id"`
}

type sessionServerRequest struct {
	Secret string `json:"secret"`
}

// SessionServerResponse is the server's answer to a session creation.
type SessionServerResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// Install registers the client public key with the API. It runs
// unauthenticated with an empty signature (this is the call that establishes
// trust) and returns a new Client carrying the installation token and the
// server public key for response verification.
func (b *BootstrapClient) Install(ctx context.Context) (*Client, error) {
	if b.client.clientKey == nil {
		return nil, UsageError{Message: "client private key required before install"}
	}
	pubPEM, err := MarshalPublicKeyPEM(&b.client.clientKey.PublicKey)
	if err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, routes.Installation, installationRequest{
		ClientPublicKey: string(pubPEM),
	}).WithKind(KindInstall)
	resp, err := b.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out InstallationResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return b.client.WithInstallation(out.Token, []byte(out.ServerPublicKey))
}

// RegisterDevice registers the calling device under the current installation.
// Authenticated with the installation token.
func (b *BootstrapClient) RegisterDevice(ctx context.Context, description string, permittedIPs []string) (DeviceServerResponse, error) {
	if b.client.apiKey == "" {
		return DeviceServerResponse{}, UsageError{Message: "api key required to register a device"}
	}
	req := NewRequest(http.MethodPost, routes.DeviceServer, deviceServerRequest{
		Description:  description,
		Secret:       b.client.apiKey,
		PermittedIPs: permittedIPs,
	}).WithKind(KindRegisterDevice)
	resp, err := b.client.Do(ctx, req)
	if err != nil {
		return DeviceServerResponse{}, err
	}
	var out DeviceServerResponse
	if err := resp.Decode(&out); err != nil {
		return DeviceServerResponse{}, err
	}
	return out, nil
}

// CreateSession opens a session with the API key and returns a new Client
// authenticated with the obtained session token.
func (b *BootstrapClient) CreateSession(ctx context.Context) (*Client, error) {
	if b.client.apiKey == "" {
		return nil, UsageError{Message: "api key required to create a session"}
	}
	req := NewRequest(http.MethodPost, routes.SessionServer, sessionServerRequest{
		Secret: b.client.apiKey,
	}).WithKind(KindCreateSession)
	resp, err := b.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var out SessionServerResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return b.client.WithSessionToken(out.Token), nil
}
