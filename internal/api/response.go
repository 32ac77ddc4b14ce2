package api

import (
	"encoding/json"
	"fmt"
)

// Response is a successful method call result.
type Response struct {
	Method string
	// Body is the raw "response" member, nil when absent.
	Body json.RawMessage
	// ExecuteErrors lists per-call failures reported by the execute method.
	ExecuteErrors []*Error
}

// Decode unmarshals the response body into v. An absent body leaves v
// untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", r.Method, err)
	}
	return nil
}

// Value returns the decoded body as generic JSON data.
func (r *Response) Value() (any, error) {
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
