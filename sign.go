package sdk

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

// signRequest attaches the client signature header. Install is the bootstrap
// call that establishes trust, so it carries an empty signature; every other
// kind is signed with the client private key over the canonical signable
// string. Signing is the last header mutation before the transport runs.
func signRequest(req Request, c *Client, body []byte) (Request, error) {
	switch req.Kind {
	case KindInstall:
		return req.withHeaderFront(headers.ClientSignature, ""), nil
	case KindRegisterDevice, KindCreateSession, KindOther:
		if c.clientKey == nil {
			return Request{}, UsageError{Message: fmt.Sprintf("client private key required to sign %s %s", req.Method, req.Path)}
		}
		base := signableString(req.Method, req.Path, req.Headers, body)
		digest := sha256.Sum256([]byte(base))
		sig, err := rsa.SignPKCS1v15(rand.Reader, c.clientKey, crypto.SHA256, digest[:])
		if err != nil {
			return Request{}, fmt.Errorf("ledgerpay: sign request: %w", err)
		}
		return req.withHeaderFront(headers.ClientSignature, base64.StdEncoding.EncodeToString(sig)), nil
	default:
		return Request{}, UsageError{Message: fmt.Sprintf("unknown payload kind %q", req.Kind)}
	}
}

// signableHeader reports whether a request header participates in the
// signature: Cache-Control, User-Agent, and every protocol-prefixed header.
func signableHeader(name string) bool {
	return name == "Cache-Control" || name == "User-Agent" || strings.HasPrefix(name, headers.Prefix)
}

// canonicalHeaderBlock filters hs with include, sorts by name (stable, so
// duplicates keep insertion order), and renders "name: value" lines joined by
// a single newline.
func canonicalHeaderBlock(hs []Header, include func(name string) bool) string {
	picked := make([]Header, 0, len(hs))
	for _, h := range hs {
		if include(h.Name) {
			picked = append(picked, h)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Name < picked[j].Name })
	lines := make([]string, len(picked))
	for i, h := range picked {
		lines[i] = h.Name + ": " + h.Value
	}
	return strings.Join(lines, "\n")
}

// signableString is the exact byte sequence the request signature covers:
//
//	METHOD path\n
//	<canonical header block>\n
//	\n
//	<body>
func signableString(method, path string, hs []Header, body []byte) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(method))
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(canonicalHeaderBlock(hs, signableHeader))
	b.WriteString("\n\n")
	b.Write(body)
	return b.String()
}
