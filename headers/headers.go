// Package headers defines HTTP header names used by the LedgerPay API.
// This is the single source of truth for the protocol-prefixed header names
// that participate in request signing and response verification.
package headers

// Prefix marks protocol metadata headers. Any header carrying this prefix is
// part of the signed canonical header block on both requests and responses.
const Prefix = "X-Ledgerpay-"

const (
	// ClientAuthentication carries the installation or session token.
	ClientAuthentication = "X-Ledgerpay-Client-Authentication" //nolint:gosec // This is a header name, not a credential

	// ClientSignature carries the base64 RSA signature over the outgoing request.
	ClientSignature = "X-Ledgerpay-Client-Signature"

	// ServerSignature carries the server's signature over the response.
	// It is excluded from the verified header subset.
	ServerSignature = "X-Ledgerpay-Server-Signature"

	// ClientRequestID is a fresh correlation id generated per request.
	// It is a correlation aid, not a security token.
	ClientRequestID = "X-Ledgerpay-Client-Request-Id"

	// Language is the caller locale, e.g. "en_US".
	Language = "X-Ledgerpay-Language"

	// Region is the caller region, e.g. "nl_NL".
	Region = "X-Ledgerpay-Region"

	// Geolocation is a coarse location placeholder required by the API.
	Geolocation = "X-Ledgerpay-Geolocation"
)
