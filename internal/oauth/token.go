package oauth

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// TokenResult is a successful token endpoint response.
type TokenResult struct {
	// AccessToken is set when the response carried a non-null access_token.
	AccessToken string
	// Fields holds the whole decoded response.
	Fields map[string]any
}

// HasToken reports whether the response carried an access token.
func (r *TokenResult) HasToken() bool {
	v, ok := r.Fields[keyAccessToken]
	return ok && v != nil
}

// Value returns the access token when one was issued, otherwise the full
// decoded mapping.
func (r *TokenResult) Value() any {
	if r.HasToken() {
		return r.AccessToken
	}
	return r.Fields
}

// UserID returns the user_id field, or 0.
func (r *TokenResult) UserID() int64 {
	switch v := r.Fields["user_id"].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

// Email returns the email field granted with the email scope.
func (r *TokenResult) Email() string {
	s, _ := r.Fields["email"].(string)
	return s
}

// ExpiresIn returns the token lifetime. Zero means the token does not expire.
func (r *TokenResult) ExpiresIn() time.Duration {
	switch v := r.Fields["expires_in"].(type) {
	case float64:
		return time.Duration(v) * time.Second
	case string:
		n, _ := strconv.Atoi(v)
		return time.Duration(n) * time.Second
	}
	return 0
}

// OAuth2Token converts the result to an oauth2.Token. The raw fields are
// available through Token.Extra.
func (r *TokenResult) OAuth2Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: r.AccessToken,
		TokenType:   "bearer",
	}
	if d := r.ExpiresIn(); d > 0 {
		tok.Expiry = time.Now().Add(d)
	}
	return tok.WithExtra(r.Fields)
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "1"
		}
		return ""
	}
	return fmt.Sprint(v)
}

// truthy follows loose scripting truthiness: empty strings, "0", zero,
// false, null and empty containers are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
