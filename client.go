// Package sdk provides the LedgerPay Go SDK: a client for issuing
// authenticated, signed requests to the LedgerPay API and verifying the
// authenticity of its responses.
package sdk

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://api.ledgerpay.com"
const defaultUserAgent = "ledgerpay-go/" + Version

const (
	defaultCacheControl = "no-cache"
	defaultLanguage     = "en_US"
	defaultRegion       = "nl_NL"
	defaultGeolocation  = "0 0 0 0 000"
)

// Config wires credentials, key material, and transport for the API client.
type Config struct {
	BaseURL string
	// APIKey is the shared secret sent in device and session bootstrap payloads.
	APIKey string
	// ClientPrivateKey signs outgoing requests. Optional until the first
	// non-install call.
	ClientPrivateKey *rsa.PrivateKey
	// ServerPublicKey verifies response signatures. Nil means unverified
	// mode: responses pass through unchecked.
	ServerPublicKey *rsa.PublicKey
	// ServerPublicKeyPEM is the textual alternative to ServerPublicKey,
	// decoded once at construction.
	ServerPublicKeyPEM []byte
	// RequireResponseSignature rejects responses without a signature header
	// when a server public key is configured. Default is lenient: unsigned
	// responses pass through.
	RequireResponseSignature bool
	InstallationToken        string
	SessionToken             string
	// DefaultHeaders are appended to every request after request-specific
	// headers and before the library defaults.
	DefaultHeaders []Header
	// Transport overrides the HTTP adapter. Takes precedence over HTTPClient.
	Transport  Transport
	HTTPClient *http.Client
	Codec      Codec
	Telemetry  TelemetryHooks
	UserAgent  string
}

// Client issues authenticated, signed requests to the LedgerPay API. A Client
// is immutable: the pipeline never mutates it, and credential rotation
// produces a new value via the With* helpers. A single Client may be shared
// by concurrent callers.
type Client struct {
	baseURL           string
	apiKey            string
	clientKey         *rsa.PrivateKey
	serverKey         *rsa.PublicKey
	requireSignature  bool
	installationToken string
	sessionToken      string
	defaultHeaders    []Header
	transport         Transport
	codec             Codec
	telemetry         TelemetryHooks
	userAgent         string

	// Grouped service clients.
	Bootstrap *BootstrapClient
	Users     *UsersClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	serverKey := cfg.ServerPublicKey
	if serverKey == nil && len(cfg.ServerPublicKeyPEM) > 0 {
		serverKey, err = ParseServerPublicKey(cfg.ServerPublicKeyPEM)
		if err != nil {
			return nil, err
		}
	}
	transport := cfg.Transport
	if transport == nil {
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		transport = NewHTTPTransport(httpClient)
	}
	codec := cfg.Codec
	if codec == nil {
		codec = jsonCodec{}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:           normalized,
		apiKey:            cfg.APIKey,
		clientKey:         cfg.ClientPrivateKey,
		serverKey:         serverKey,
		requireSignature:  cfg.RequireResponseSignature,
		installationToken: cfg.InstallationToken,
		sessionToken:      cfg.SessionToken,
		defaultHeaders:    cfg.DefaultHeaders,
		transport:         transport,
		codec:             codec,
		telemetry:         cfg.Telemetry,
		userAgent:         ua,
	}
	client.attachServices()
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("ledgerpay: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("ledgerpay: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("ledgerpay: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("ledgerpay: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) attachServices() {
	c.Bootstrap = &BootstrapClient{client: c}
	c.Users = &UsersClient{client: c}
}

// clone copies the client and re-points its service clients. In-flight calls
// on the original are unaffected.
func (c *Client) clone() *Client {
	dup := *c
	dup.attachServices()
	return &dup
}

// WithInstallation returns a new Client carrying the installation token and
// the server public key obtained from an install call. The PEM key is decoded
// once here.
func (c *Client) WithInstallation(token string, serverKeyPEM []byte) (*Client, error) {
	dup := c.clone()
	dup.installationToken = token
	if len(serverKeyPEM) > 0 {
		key, err := ParseServerPublicKey(serverKeyPEM)
		if err != nil {
			return nil, err
		}
		dup.serverKey = key
	}
	return dup, nil
}

// WithSessionToken returns a new Client authenticated with the given session
// token. Callers switch to the returned value; the receiver is unchanged.
func (c *Client) WithSessionToken(token string) *Client {
	dup := c.clone()
	dup.sessionToken = token
	return dup
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
