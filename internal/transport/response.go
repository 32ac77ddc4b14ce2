package transport

// Response is the parsed outcome of one completed HTTP exchange.
// It is immutable once built by ParseRawResponse.
type Response struct {
	statusCode int
	headers    map[string]string
	body       string
}

// StatusCode returns the status code of the final response, or 0 when the
// status line could not be read.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// Headers returns a copy of the final response headers.
func (r *Response) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		out[k] = v
	}
	return out
}

// Header returns the value stored under name. Keys are case-sensitive and
// match the header lines as parsed. Responses produced by Client carry
// names in canonical MIME form (x-vk-id is stored as X-Vk-Id) because
// net/http canonicalizes them before the raw text is rebuilt.
func (r *Response) Header(name string) (string, bool) {
	v, ok := r.headers[name]
	return v, ok
}

// Body returns the response payload.
func (r *Response) Body() string {
	return r.body
}
