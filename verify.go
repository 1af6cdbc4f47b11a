package sdk

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

// verifyResponse checks the server's signature over the raw response. With no
// server public key configured the response passes through unchanged. An
// absent signature header also passes through unless the client was built
// with RequireResponseSignature; not every response carries one. A signature
// that is present but does not verify fails the whole call.
func verifyResponse(status int, hs []Header, body []byte, c *Client) error {
	if c.serverKey == nil {
		return nil
	}
	sig, ok := headerLookup(hs, headers.ServerSignature)
	if !ok {
		if c.requireSignature {
			return VerificationError{Reason: "response signature header missing"}
		}
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return VerificationError{Reason: "malformed response signature", Err: err}
	}
	base := verifiableString(status, hs, body)
	digest := sha256.Sum256([]byte(base))
	if err := rsa.VerifyPKCS1v15(c.serverKey, crypto.SHA256, digest[:], raw); err != nil {
		return VerificationError{Reason: "response signature does not verify", Err: err}
	}
	return nil
}

// verifiableHeader reports whether a response header participates in the
// verified subset: protocol-prefixed headers minus the signature itself.
func verifiableHeader(name string) bool {
	return strings.HasPrefix(name, headers.Prefix) && name != headers.ServerSignature
}

// verifiableString is the exact byte sequence the server signature covers:
//
//	<status>\n
//	<canonical header block>\n
//	\n
//	<raw body>
func verifiableString(status int, hs []Header, body []byte) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(status))
	b.WriteByte('\n')
	b.WriteString(canonicalHeaderBlock(hs, verifiableHeader))
	b.WriteString("\n\n")
	b.Write(body)
	return b.String()
}
