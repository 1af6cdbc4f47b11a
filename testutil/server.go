// Package testutil provides helpers for SDK tests.
package testutil

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

// SigningServerConfig configures the signing test server.
type SigningServerConfig struct {
	// ServerKey signs every response when set.
	ServerKey *rsa.PrivateKey
	// ClientKey, when set, makes the server verify each incoming request
	// signature and answer 401 on mismatch.
	ClientKey *rsa.PublicKey
	Status    int
	Body      []byte
	// Headers are emitted on every response; protocol-prefixed names are
	// covered by the response signature.
	Headers map[string]string
}

// NewSigningServer returns an httptest server that canonicalizes requests and
// responses the way the LedgerPay API does: it checks incoming client
// signatures (when ClientKey is set) and signs outgoing responses (when
// ServerKey is set).
func NewSigningServer(cfg SigningServerConfig) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if cfg.ClientKey != nil {
			if err := VerifyRequestSignature(r, body, cfg.ClientKey); err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprintf(w, `{"error":{"code":"INVALID_SIGNATURE","message":%q}}`, err.Error())
				return
			}
		}
		status := cfg.Status
		if status == 0 {
			status = http.StatusOK
		}
		for k, v := range cfg.Headers {
			w.Header().Set(k, v)
		}
		if cfg.ServerKey != nil {
			sig, err := signResponse(status, w.Header(), cfg.Body, cfg.ServerKey)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set(headers.ServerSignature, sig)
		}
		w.WriteHeader(status)
		_, _ = w.Write(cfg.Body)
	}))
}

// VerifyRequestSignature checks the client signature header on an incoming
// request against the client public key, using the same canonicalization the
// SDK signs with.
func VerifyRequestSignature(r *http.Request, body []byte, key *rsa.PublicKey) error {
	sig := r.Header.Get(headers.ClientSignature)
	if sig == "" {
		return fmt.Errorf("missing %s header", headers.ClientSignature)
	}
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return fmt.Errorf("malformed client signature: %w", err)
	}
	picked := pickHeaders(r.Header, func(name string) bool {
		if name == headers.ClientSignature {
			return false
		}
		return name == "Cache-Control" || name == "User-Agent" || strings.HasPrefix(name, headers.Prefix)
	})
	base := strings.ToUpper(r.Method) + " " + r.URL.Path + "\n" + strings.Join(picked, "\n") + "\n\n" + string(body)
	digest := sha256.Sum256([]byte(base))
	if err := rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], raw); err != nil {
		return fmt.Errorf("client signature does not verify: %w", err)
	}
	return nil
}

// pickHeaders filters h with include and returns "name: value" lines sorted
// by header name, matching the SDK's canonical header block exactly.
func pickHeaders(h http.Header, include func(name string) bool) []string {
	type pair struct {
		name  string
		value string
	}
	var picked []pair
	for name, values := range h {
		if !include(name) {
			continue
		}
		for _, v := range values {
			picked = append(picked, pair{name: name, value: v})
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].name < picked[j].name })
	lines := make([]string, len(picked))
	for i, p := range picked {
		lines[i] = p.name + ": " + p.value
	}
	return lines
}

func signResponse(status int, h http.Header, body []byte, key *rsa.PrivateKey) (string, error) {
	picked := pickHeaders(h, func(name string) bool {
		return strings.HasPrefix(name, headers.Prefix) && name != headers.ServerSignature
	})
	base := strconv.Itoa(status) + "\n" + strings.Join(picked, "\n") + "\n\n" + string(body)
	digest := sha256.Sum256([]byte(base))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}
