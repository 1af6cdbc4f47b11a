package sdk

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

func TestSignInstallAttachesEmptySignature(t *testing.T) {
	// No key material needed for the bootstrap call.
	client := testClient(t, Config{})
	req := NewRequest("POST", "/v1/installation", nil).WithKind(KindInstall)

	signed, err := signRequest(req, client, nil)
	if err != nil {
		t.Fatalf("signRequest failed: %v", err)
	}
	if signed.Headers[0].Name != headers.ClientSignature {
		t.Fatalf("expected signature header first, got %q", signed.Headers[0].Name)
	}
	if signed.Headers[0].Value != "" {
		t.Errorf("install signature must be empty, got %q", signed.Headers[0].Value)
	}
}

func TestSignDeterminism(t *testing.T) {
	key := testKey(t)
	client := testClient(t, Config{ClientPrivateKey: key})
	req := NewRequest("post", "/v1/payment", nil).
		WithHeader("Cache-Control", "no-cache").
		WithHeader(headers.ClientRequestID, "fixed-id").
		WithHeader("User-Agent", "ledgerpay-go/test")
	body := []byte(`{"amount":"10.00"}`)

	first, err := signRequest(req, client, body)
	if err != nil {
		t.Fatalf("signRequest failed: %v", err)
	}
	second, err := signRequest(req, client, body)
	if err != nil {
		t.Fatalf("signRequest failed: %v", err)
	}
	sig1, _ := headerLookup(first.Headers, headers.ClientSignature)
	sig2, _ := headerLookup(second.Headers, headers.ClientSignature)
	if sig1 == "" || sig1 != sig2 {
		t.Errorf("signing is not deterministic: %q vs %q", sig1, sig2)
	}
}

func TestSignableStringShape(t *testing.T) {
	hs := []Header{
		{Name: "User-Agent", Value: "ua"},
		{Name: headers.ClientRequestID, Value: "rid"},
		{Name: "Cache-Control", Value: "no-cache"},
	}
	got := signableString("get", "/v1/user", hs, []byte("body"))
	want := "GET /v1/user\n" +
		"Cache-Control: no-cache\n" +
		"User-Agent: ua\n" +
		headers.ClientRequestID + ": rid" +
		"\n\nbody"
	if got != want {
		t.Errorf("signable string mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSignFilterExcludesUnrelatedHeaders(t *testing.T) {
	hs := []Header{
		{Name: "Accept", Value: "application/json"},
		{Name: "Content-Type", Value: "application/json"},
		{Name: "X-Custom", Value: "nope"},
		{Name: headers.Geolocation, Value: "0 0 0 0 000"},
	}
	block := canonicalHeaderBlock(hs, signableHeader)
	if strings.Contains(block, "Accept") || strings.Contains(block, "Content-Type") || strings.Contains(block, "X-Custom") {
		t.Errorf("unrelated headers leaked into canonical block: %q", block)
	}
	if !strings.Contains(block, headers.Geolocation) {
		t.Errorf("prefixed header missing from canonical block: %q", block)
	}
}

func TestSignWithoutKeyIsUsageError(t *testing.T) {
	client := testClient(t, Config{})
	req := NewRequest("GET", "/v1/user", nil)
	if _, err := signRequest(req, client, nil); !IsUsageError(err) {
		t.Errorf("expected UsageError, got %v", err)
	}
}

func TestSignatureVerifiesAgainstPublicKey(t *testing.T) {
	key := testKey(t)
	client := testClient(t, Config{ClientPrivateKey: key})
	req := NewRequest("PUT", "/v1/account", nil).WithHeader("User-Agent", "ua")
	body := []byte(`{}`)

	signed, err := signRequest(req, client, body)
	if err != nil {
		t.Fatalf("signRequest failed: %v", err)
	}
	sig, _ := headerLookup(signed.Headers, headers.ClientSignature)
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		t.Fatalf("signature is not valid base64: %v", err)
	}
	digest := sha256.Sum256([]byte(signableString("PUT", "/v1/account", req.Headers, body)))
	if err := rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, digest[:], raw); err != nil {
		t.Errorf("signature does not verify: %v", err)
	}
}
