package sdk

import (
	"bytes"
	"encoding/json"
)

// PayloadKind identifies the operation category. The credential selector and
// the request signer both dispatch on it with exhaustive switches.
type PayloadKind string

const (
	// KindInstall is the bootstrap call that registers the client public key.
	// It needs no credential and carries an empty signature.
	KindInstall PayloadKind = "install"
	// KindRegisterDevice registers the calling device; authenticated with the
	// installation token.
	KindRegisterDevice PayloadKind = "register-device"
	// KindCreateSession opens a session; authenticated with the installation
	// token.
	KindCreateSession PayloadKind = "create-session"
	// KindOther is every ordinary operation; authenticated with the session
	// token.
	KindOther PayloadKind = "other"
)

// Codec serializes outgoing payloads and decodes response bodies. Encoding
// must be deterministic for a fixed payload value: the encoded bytes are the
// final segment of the signable string. Decode failures must surface
// explicitly, never drop fields silently.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// jsonCodec is the default Codec. encoding/json is deterministic for a fixed
// value (struct fields in declaration order, map keys sorted).
type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (jsonCodec) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return DecodeError{Err: err}
	}
	return nil
}
