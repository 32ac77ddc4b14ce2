package oauth

import (
	"errors"
	"fmt"
)

// ClientError reports a request that did not yield a usable provider
// response: the transport failed or the HTTP status was not 200.
type ClientError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ClientError) Error() string {
	return "oauth client error: " + e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// OAuthError is an error reported by the authorization server in the
// response body.
type OAuthError struct {
	Code        string
	Description string
}

func (e *OAuthError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("oauth error: %s", e.Code)
	}
	return fmt.Sprintf("oauth error %s: %s", e.Code, e.Description)
}

// IsClientError reports whether err is a *ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsOAuthError reports whether err is an *OAuthError.
func IsOAuthError(err error) bool {
	var oe *OAuthError
	return errors.As(err, &oe)
}
