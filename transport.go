package sdk

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// WireResponse is the raw transport result: status, headers, and body exactly
// as received. The verifier canonicalizes over these bytes, so adapters must
// not normalize or re-encode anything.
type WireResponse struct {
	Status  int
	Headers []Header
	Body    []byte
}

// Transport executes a single HTTP exchange. Implementations honor ctx for
// cancellation and must not retry; retry policy belongs to the caller.
type Transport interface {
	Execute(ctx context.Context, method, url string, hs []Header, body []byte, opts RequestOptions) (*WireResponse, error)
}

type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport adapts a *http.Client to the Transport contract.
func NewHTTPTransport(client *http.Client) Transport {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransport{client: client}
}

func (t *httpTransport) Execute(ctx context.Context, method, url string, hs []Header, body []byte, opts RequestOptions) (*WireResponse, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, TransportError{Err: err}
	}
	for _, h := range hs {
		req.Header.Add(h.Name, h.Value)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, TransportError{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError{Err: err}
	}
	return &WireResponse{
		Status:  resp.StatusCode,
		Headers: flattenHeader(resp.Header),
		Body:    data,
	}, nil
}

// flattenHeader converts a net/http header map into an ordered pair list,
// preserving repeated values. Map iteration order is irrelevant downstream:
// the verifier sorts its subset by name.
func flattenHeader(h http.Header) []Header {
	flat := make([]Header, 0, len(h))
	for name, values := range h {
		for _, v := range values {
			flat = append(flat, Header{Name: name, Value: v})
		}
	}
	return flat
}
