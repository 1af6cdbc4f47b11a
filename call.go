package sdk

import (
	"context"
	"fmt"
	"time"
)

// Do runs the full request pipeline: compose headers, attach the credential,
// sign, execute, verify the response signature, and surface the verified
// response. Every stage works on a fresh Request value; nothing is mutated
// after the signature is attached. Errors propagate immediately, no retries.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	body, err := c.codec.Encode(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("ledgerpay: encode payload: %w", err)
	}
	prepared := composeHeaders(ctx, req, c)
	prepared, err = authenticate(prepared, c)
	if err != nil {
		return nil, err
	}
	prepared, err = signRequest(prepared, c, body)
	if err != nil {
		return nil, err
	}

	url := c.buildURL(prepared.Path)
	if c.telemetry.OnRequest != nil {
		c.telemetry.OnRequest(ctx, prepared)
	}
	c.telemetry.log(ctx, LogLevelInfo, "http_request", map[string]any{
		"method": prepared.Method,
		"url":    url,
	})
	start := time.Now()
	wire, err := c.transport.Execute(ctx, prepared.Method, url, prepared.Headers, body, prepared.Options)
	latency := time.Since(start)
	if c.telemetry.OnResponse != nil {
		c.telemetry.OnResponse(ctx, prepared, wire, err, latency)
	}
	c.telemetry.metric(ctx, "sdk_http_request_latency_ms", float64(latency.Milliseconds()), map[string]string{
		"path": prepared.Path,
	})
	if err != nil {
		return nil, err
	}

	verr := verifyResponse(wire.Status, wire.Headers, wire.Body, c)
	if c.telemetry.OnVerification != nil {
		c.telemetry.OnVerification(ctx, prepared, verr)
	}
	if verr != nil {
		c.telemetry.log(ctx, LogLevelError, "response_verification_failed", map[string]any{
			"method": prepared.Method,
			"path":   prepared.Path,
		})
		return nil, verr
	}
	if wire.Status >= 400 {
		return nil, decodeAPIError(wire)
	}
	return &Response{
		Status:  wire.Status,
		Headers: wire.Headers,
		Body:    wire.Body,
		Client:  c,
	}, nil
}
