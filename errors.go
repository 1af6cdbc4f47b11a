package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UsageError reports a missing credential or key for the attempted operation
// kind. It is a precondition failure on the caller's side and is never
// retried.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e UsageError) Error() string {
	return "ledgerpay: " + e.Message
}

// VerificationError reports a response signature that was present but did not
// verify against the configured server public key. It is a trust signal, not
// a transient network fault.
type VerificationError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ledgerpay: %s: %v", e.Reason, e.Err)
	}
	return "ledgerpay: " + e.Reason
}

// Unwrap exposes the underlying crypto error.
func (e VerificationError) Unwrap() error { return e.Err }

// TransportError wraps a network or connection failure from the transport
// adapter. The pipeline does not retry; retry policy belongs to the caller.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e TransportError) Error() string {
	return fmt.Sprintf("ledgerpay: transport: %v", e.Err)
}

// Unwrap exposes the underlying transport failure.
func (e TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be decoded. Signature
// verification runs on the raw bytes first, so a DecodeError means the body
// was authentic but malformed.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("ledgerpay: decode response body: %v", e.Err)
}

// Unwrap exposes the underlying decode failure.
func (e DecodeError) Unwrap() error { return e.Err }

// IsUsageError reports whether err is a missing-credential precondition failure.
func IsUsageError(err error) bool {
	var e UsageError
	return errors.As(err, &e)
}

// IsVerificationError reports whether err is a response signature mismatch.
func IsVerificationError(err error) bool {
	var e VerificationError
	return errors.As(err, &e)
}

// IsTransportError reports whether err originated in the transport adapter.
func IsTransportError(err error) bool {
	var e TransportError
	return errors.As(err, &e)
}

// IsDecodeError reports whether err is a malformed response body.
func IsDecodeError(err error) bool {
	var e DecodeError
	return errors.As(err, &e)
}

// APIError captures structured error metadata returned by the API for
// non-2xx responses. The body is only decoded after signature verification
// succeeds.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Code == "" {
		e.Code = "UNKNOWN"
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("%s (%d)", e.Code, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func decodeAPIError(wire *WireResponse) error {
	apiErr := APIError{Status: wire.Status}
	if len(wire.Body) == 0 {
		apiErr.Message = fmt.Sprintf("HTTP %d", wire.Status)
		return apiErr
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(wire.Body, &payload); err != nil {
		apiErr.Message = string(wire.Body)
		return apiErr
	}
	apiErr.Code = payload.Error.Code
	apiErr.Message = payload.Error.Message
	if payload.Error.Status != 0 {
		apiErr.Status = payload.Error.Status
	}
	apiErr.RequestID = payload.RequestID
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d", wire.Status)
	}
	return apiErr
}
