package sdk

import "time"

// Header is a single (name, value) pair. Header sets are ordered and may
// contain duplicate names; insertion order is preserved up to the signing
// filter, which sorts its own subset.
type Header struct {
	Name  string
	Value string
}

// RequestOptions carries transport knobs for a single call.
type RequestOptions struct {
	// Timeout bounds the transport execution for this request. Zero means
	// only the caller's context deadline applies.
	Timeout time.Duration
}

// Request describes one outgoing API call. Pipeline stages never mutate a
// Request in place; each returns a copy with headers appended, so the
// signature header is always the last header attached before the transport
// runs.
type Request struct {
	Method  string
	Path    string
	Kind    PayloadKind
	Payload any
	Headers []Header
	Options RequestOptions
}

// NewRequest returns a request of kind KindOther. Bootstrap operations
// override the kind with WithKind.
func NewRequest(method, path string, payload any) Request {
	return Request{
		Method:  method,
		Path:    path,
		Kind:    KindOther,
		Payload: payload,
	}
}

// WithKind returns a copy with the payload kind set.
func (r Request) WithKind(kind PayloadKind) Request {
	r.Kind = kind
	return r
}

// WithOptions returns a copy with the transport options set.
func (r Request) WithOptions(opts RequestOptions) Request {
	r.Options = opts
	return r
}

// WithHeader returns a copy with the header appended. Duplicate names are
// kept; nothing is replaced.
func (r Request) WithHeader(name, value string) Request {
	hs := make([]Header, 0, len(r.Headers)+1)
	hs = append(hs, r.Headers...)
	hs = append(hs, Header{Name: name, Value: value})
	r.Headers = hs
	return r
}

// withHeaderFront returns a copy with the header prepended. The credential
// selector and signer both attach at the front.
func (r Request) withHeaderFront(name, value string) Request {
	hs := make([]Header, 0, len(r.Headers)+1)
	hs = append(hs, Header{Name: name, Value: value})
	hs = append(hs, r.Headers...)
	r.Headers = hs
	return r
}

// headerLookup returns the first value for name in hs.
func headerLookup(hs []Header, name string) (string, bool) {
	for _, h := range hs {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}
