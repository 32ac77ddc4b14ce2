package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vkcom/vk-cli/internal/oauth"
	"github.com/vkcom/vk-cli/internal/transport"
)

// ErrorCode is a machine-readable error class for scripted callers.
type ErrorCode string

const (
	ErrBadRequest    ErrorCode = "bad_request"
	ErrUnauthorized  ErrorCode = "unauthorized"
	ErrForbidden     ErrorCode = "forbidden"
	ErrNotFound      ErrorCode = "not_found"
	ErrValidation    ErrorCode = "validation_failed"
	ErrRateLimited   ErrorCode = "rate_limited"
	ErrCaptcha       ErrorCode = "captcha_needed"
	ErrServerError   ErrorCode = "server_error"
	ErrNetwork       ErrorCode = "network"
	ErrTimeout       ErrorCode = "timeout"
	ErrUnknownMethod ErrorCode = "unknown_method"
	ErrUnknown       ErrorCode = "unknown"
)

// IsRetryable returns true if errors with this code may succeed when the
// caller tries again later.
func (c ErrorCode) IsRetryable() bool {
	switch c {
	case ErrRateLimited, ErrServerError, ErrTimeout, ErrNetwork:
		return true
	default:
		return false
	}
}

// Suggestion returns a human-readable hint for resolving this error.
func (c ErrorCode) Suggestion() string {
	switch c {
	case ErrUnauthorized:
		return "Run 'vk auth login' or pass --token"
	case ErrForbidden:
		return "Request a token with the required scope (see 'vk auth url --scope')"
	case ErrNotFound:
		return "Verify the object ID exists"
	case ErrRateLimited:
		return "Slow down with --rps and try again"
	case ErrCaptcha:
		return "Open captcha_img, then repeat the call with -f captcha_sid=... -f captcha_key=..."
	case ErrValidation:
		return "Check the method parameters"
	case ErrBadRequest:
		return "Check the request format and parameters"
	case ErrUnknownMethod:
		return "Run 'vk methods' to list known methods"
	case ErrServerError:
		return "The server encountered an error; try again later"
	case ErrNetwork:
		return "Check network connectivity"
	case ErrTimeout:
		return "The connection timed out; check network connectivity and retry"
	default:
		return ""
	}
}

// ErrorCodeFromStatus maps an HTTP status code to an ErrorCode.
func ErrorCodeFromStatus(statusCode int) ErrorCode {
	switch statusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 422:
		return ErrValidation
	case 429:
		return ErrRateLimited
	default:
		if statusCode >= 500 && statusCode < 600 {
			return ErrServerError
		}
		return ErrUnknown
	}
}

// ErrorCodeFromAPICode maps a VK API error code to an ErrorCode.
func ErrorCodeFromAPICode(code int) ErrorCode {
	switch code {
	case ErrorCodeAuth, ErrorCodeAuthHTTPS, ErrorCodeAuthValidation, ErrorCodeNeedTokenConfirmation,
		ErrorCodeGroupAuth, ErrorCodeAppAuth, ErrorCodeSignature:
		return ErrUnauthorized
	case ErrorCodePermission, ErrorCodeAccess, ErrorCodeMethodPermission, ErrorCodeMethodAds,
		ErrorCodePrivateProfile, ErrorCodeAccessAlbum, ErrorCodeAccessAudio, ErrorCodeAccessGroup,
		ErrorCodeWallAccessPost, ErrorCodeWallAccessReplies, ErrorCodeWallAccessComment,
		ErrorCodeWallAccessAddPost, ErrorCodeVotesPermission, ErrorCodeAdsPermission,
		ErrorCodeAppDisabled, ErrorCodeEnabledInTest, ErrorCodeAccessMenu, ErrorCodeUserDeleted:
		return ErrForbidden
	case ErrorCodeTooMany, ErrorCodeFlood, ErrorCodeRateLimit:
		return ErrRateLimited
	case ErrorCodeCaptcha:
		return ErrCaptcha
	case ErrorCodeParam, ErrorCodeParamAPIID, ErrorCodeParamUserID, ErrorCodeParamTimestamp,
		ErrorCodeAccountInvalidScreenName:
		return ErrValidation
	case ErrorCodeRequest, ErrorCodeMethodDisabled:
		return ErrBadRequest
	case ErrorCodeUnknownMethod:
		return ErrUnknownMethod
	case ErrorCodeNotFound:
		return ErrNotFound
	case ErrorCodeServer:
		return ErrServerError
	default:
		return ErrUnknown
	}
}

// StructuredError provides machine-readable error information.
type StructuredError struct {
	Code          ErrorCode      `json:"code"`
	Message       string         `json:"message"`
	Retryable     bool           `json:"retryable"`
	Suggestion    string         `json:"suggestion,omitempty"`
	Context       map[string]any `json:"context,omitempty"`
	AllowedValues []string       `json:"allowed_values,omitempty"`
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MarshalJSON implements custom JSON marshaling.
func (e *StructuredError) MarshalJSON() ([]byte, error) {
	type Alias StructuredError
	return json.Marshal((*Alias)(e))
}

// NewStructuredError creates a StructuredError from an ErrorCode and message.
func NewStructuredError(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:       code,
		Message:    message,
		Retryable:  code.IsRetryable(),
		Suggestion: code.Suggestion(),
	}
}

// NewValidationError creates a StructuredError for input validation failures,
// including the list of allowed values.
func NewValidationError(field string, got string, allowed []string) *StructuredError {
	return &StructuredError{
		Code:          ErrValidation,
		Message:       fmt.Sprintf("invalid %s %q: must be one of %s", field, got, strings.Join(allowed, ", ")),
		Suggestion:    fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", ")),
		AllowedValues: allowed,
		Context:       map[string]any{"field": field, "got": got},
	}
}

// StructuredErrorFromAPIError converts an API error to a StructuredError.
func StructuredErrorFromAPIError(apiErr *Error) *StructuredError {
	code := ErrorCodeFromAPICode(apiErr.Code)
	ctx := map[string]any{
		"error_code": apiErr.Code,
		"title":      apiErr.Title,
	}
	if apiErr.Method != "" {
		ctx["method"] = apiErr.Method
	}
	if apiErr.CaptchaSID != "" {
		ctx["captcha_sid"] = apiErr.CaptchaSID
		ctx["captcha_img"] = apiErr.CaptchaImg
	}
	if apiErr.RedirectURI != "" {
		ctx["redirect_uri"] = apiErr.RedirectURI
	}
	return &StructuredError{
		Code:       code,
		Message:    apiErr.Message,
		Retryable:  code.IsRetryable(),
		Suggestion: code.Suggestion(),
		Context:    ctx,
	}
}

// StructuredErrorFromError converts any error to a StructuredError. It
// understands API errors, client errors, OAuth errors and transport errors;
// everything else is classified as unknown.
func StructuredErrorFromError(err error) *StructuredError {
	if err == nil {
		return nil
	}

	var se *StructuredError
	if errors.As(err, &se) {
		return se
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return StructuredErrorFromAPIError(apiErr)
	}

	var oauthErr *oauth.OAuthError
	if errors.As(err, &oauthErr) {
		s := NewStructuredError(ErrUnauthorized, oauthErr.Error())
		s.Context = map[string]any{"error": oauthErr.Code}
		return s
	}

	var transportErr *transport.Error
	if errors.As(err, &transportErr) {
		code := ErrNetwork
		if transportErr.Timeout {
			code = ErrTimeout
		}
		s := NewStructuredError(code, err.Error())
		if transportErr.Code != 0 {
			s.Context = map[string]any{"errno": transportErr.Code}
		}
		return s
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr.StatusCode != 0 {
		s := NewStructuredError(ErrorCodeFromStatus(clientErr.StatusCode), clientErr.Error())
		s.Context = map[string]any{"status_code": clientErr.StatusCode}
		return s
	}

	var oauthClientErr *oauth.ClientError
	if errors.As(err, &oauthClientErr) && oauthClientErr.StatusCode != 0 {
		s := NewStructuredError(ErrorCodeFromStatus(oauthClientErr.StatusCode), oauthClientErr.Error())
		s.Context = map[string]any{"status_code": oauthClientErr.StatusCode}
		return s
	}

	return &StructuredError{
		Code:    ErrUnknown,
		Message: err.Error(),
	}
}
