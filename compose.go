package sdk

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerpay/ledgerpay-go/headers"
)

// composeHeaders merges request-specific headers, client default headers, and
// the library defaults, in that order. Nothing is deduplicated; later stages
// tolerate repeated names. The request id is fresh randomness per call, never
// drawn from shared state.
func composeHeaders(ctx context.Context, req Request, c *Client) Request {
	merged := make([]Header, 0, len(req.Headers)+len(c.defaultHeaders)+8)
	merged = append(merged, req.Headers...)
	merged = append(merged, c.defaultHeaders...)
	merged = append(merged,
		Header{Name: "User-Agent", Value: c.userAgent},
		Header{Name: "Cache-Control", Value: defaultCacheControl},
		Header{Name: headers.ClientRequestID, Value: uuid.NewString()},
		Header{Name: headers.Language, Value: defaultLanguage},
		Header{Name: headers.Region, Value: defaultRegion},
		Header{Name: headers.Geolocation, Value: defaultGeolocation},
	)
	if req.Payload != nil {
		merged = append(merged, Header{Name: "Content-Type", Value: "application/json"})
	}
	if tp, ok := traceparentHeader(ctx); ok {
		merged = append(merged, Header{Name: "Traceparent", Value: tp})
	}
	req.Headers = merged
	return req
}
