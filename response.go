package sdk

// Response is the verified result of one API call. Body holds the raw bytes
// the signature was checked against; Decode interprets them through the
// client's codec.
type Response struct {
	Status  int
	Headers []Header
	Body    []byte

	// Client is the client that produced this response. Convenience
	// back-reference only; the pipeline never mutates it.
	Client *Client
}

// Header returns the first value of the named response header.
func (r *Response) Header(name string) (string, bool) {
	return headerLookup(r.Headers, name)
}

// Decode unmarshals the verified body into v.
func (r *Response) Decode(v any) error {
	codec := Codec(jsonCodec{})
	if r.Client != nil && r.Client.codec != nil {
		codec = r.Client.codec
	}
	return codec.Decode(r.Body, v)
}
