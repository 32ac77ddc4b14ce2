package api

import (
	"errors"
	"fmt"
)

// VK API error codes.
const (
	ErrorCodeUnknown                  = 1
	ErrorCodeAppDisabled              = 2
	ErrorCodeUnknownMethod            = 3
	ErrorCodeSignature                = 4
	ErrorCodeAuth                     = 5
	ErrorCodeTooMany                  = 6
	ErrorCodePermission               = 7
	ErrorCodeRequest                  = 8
	ErrorCodeFlood                    = 9
	ErrorCodeServer                   = 10
	ErrorCodeEnabledInTest            = 11
	ErrorCodeCaptcha                  = 14
	ErrorCodeAccess                   = 15
	ErrorCodeAuthHTTPS                = 16
	ErrorCodeAuthValidation           = 17
	ErrorCodeUserDeleted              = 18
	ErrorCodeMethodPermission         = 20
	ErrorCodeMethodAds                = 21
	ErrorCodeUpload                   = 22
	ErrorCodeMethodDisabled           = 23
	ErrorCodeNeedConfirmation         = 24
	ErrorCodeNeedTokenConfirmation    = 25
	ErrorCodeGroupAuth                = 27
	ErrorCodeAppAuth                  = 28
	ErrorCodeRateLimit                = 29
	ErrorCodePrivateProfile           = 30
	ErrorCodeParam                    = 100
	ErrorCodeParamAPIID               = 101
	ErrorCodeLimits                   = 103
	ErrorCodeNotFound                 = 104
	ErrorCodeParamUserID              = 113
	ErrorCodeParamTimestamp           = 150
	ErrorCodeAccessAlbum              = 200
	ErrorCodeAccessAudio              = 201
	ErrorCodeAccessGroup              = 203
	ErrorCodeWallAccessPost           = 210
	ErrorCodeWallAccessReplies        = 211
	ErrorCodeWallAccessComment        = 212
	ErrorCodeWallAccessAddPost        = 214
	ErrorCodeWallAdsPublished         = 219
	ErrorCodeWallTooManyRecipients    = 220
	ErrorCodeWallLinksForbidden       = 222
	ErrorCodeAlbumFull                = 300
	ErrorCodeVotesPermission          = 500
	ErrorCodeAdsPermission            = 600
	ErrorCodeAdsSpecific              = 603
	ErrorCodeMobileNotActivated       = 146
	ErrorCodeInsufficientFunds        = 147
	ErrorCodeAccessMenu               = 148
	ErrorCodeAccountInvalidScreenName = 1260
)

var errorTitles = map[int]string{
	ErrorCodeUnknown:                  "Unknown error occurred",
	ErrorCodeAppDisabled:              "Application is disabled. Enable your application or use test mode",
	ErrorCodeUnknownMethod:            "Unknown method passed",
	ErrorCodeSignature:                "Incorrect signature",
	ErrorCodeAuth:                     "User authorization failed",
	ErrorCodeTooMany:                  "Too many requests per second",
	ErrorCodePermission:               "Permission to perform this action is denied",
	ErrorCodeRequest:                  "Invalid request",
	ErrorCodeFlood:                    "Flood control",
	ErrorCodeServer:                   "Internal server error",
	ErrorCodeEnabledInTest:            "In test mode application should be disabled or user should be authorized",
	ErrorCodeCaptcha:                  "Captcha needed",
	ErrorCodeAccess:                   "Access denied",
	ErrorCodeAuthHTTPS:                "HTTP authorization failed",
	ErrorCodeAuthValidation:           "Validation required",
	ErrorCodeUserDeleted:              "User was deleted or banned",
	ErrorCodeMethodPermission:         "Permission to perform this action is denied for non-standalone applications",
	ErrorCodeMethodAds:                "Permission to perform this action is allowed only for standalone and OpenAPI applications",
	ErrorCodeUpload:                   "Upload error",
	ErrorCodeMethodDisabled:           "This method was disabled",
	ErrorCodeNeedConfirmation:         "Confirmation required",
	ErrorCodeNeedTokenConfirmation:    "Token confirmation required",
	ErrorCodeGroupAuth:                "Group authorization failed",
	ErrorCodeAppAuth:                  "Application authorization failed",
	ErrorCodeRateLimit:                "Rate limit reached",
	ErrorCodePrivateProfile:           "This profile is private",
	ErrorCodeParam:                    "One of the parameters specified was missing or invalid",
	ErrorCodeParamAPIID:               "Invalid application API ID",
	ErrorCodeLimits:                   "Out of limits",
	ErrorCodeNotFound:                 "Not found",
	ErrorCodeParamUserID:              "Invalid user id",
	ErrorCodeParamTimestamp:           "Invalid timestamp",
	ErrorCodeAccessAlbum:              "Access denied",
	ErrorCodeAccessAudio:              "Access denied",
	ErrorCodeAccessGroup:              "Access to group denied",
	ErrorCodeWallAccessPost:           "Access to wall's post denied",
	ErrorCodeWallAccessReplies:        "Access to wall's comment denied",
	ErrorCodeWallAccessComment:        "Access to post comments denied",
	ErrorCodeWallAccessAddPost:        "Access to adding post denied",
	ErrorCodeWallAdsPublished:         "Advertisement post was recently added",
	ErrorCodeWallTooManyRecipients:    "Too many recipients",
	ErrorCodeWallLinksForbidden:       "Hyperlinks are forbidden",
	ErrorCodeAlbumFull:                "This album is full",
	ErrorCodeVotesPermission:          "Permission denied. You must enable votes processing in application settings",
	ErrorCodeAdsPermission:            "Permission denied. You have no access to operations specified with given object(s)",
	ErrorCodeAdsSpecific:              "Some ads error occurs",
	ErrorCodeMobileNotActivated:       "The mobile number of the user is unknown",
	ErrorCodeInsufficientFunds:        "Application has insufficient funds",
	ErrorCodeAccessMenu:               "Access to the menu of the user denied",
	ErrorCodeAccountInvalidScreenName: "Invalid screen name",
}

// ErrorTitle returns the documented title for an API error code.
func ErrorTitle(code int) string {
	if title, ok := errorTitles[code]; ok {
		return title
	}
	return "Unknown error"
}

// RequestParam echoes one request parameter in an error payload.
type RequestParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Error is an error returned by the API in the response body.
type Error struct {
	Code             int            `json:"error_code"`
	Title            string         `json:"title"`
	Message          string         `json:"error_msg"`
	Method           string         `json:"method,omitempty"`
	RequestParams    []RequestParam `json:"request_params,omitempty"`
	CaptchaSID       string         `json:"captcha_sid,omitempty"`
	CaptchaImg       string         `json:"captcha_img,omitempty"`
	RedirectURI      string         `json:"redirect_uri,omitempty"`
	ConfirmationText string         `json:"confirmation_text,omitempty"`
}

// NewError builds an Error with the title looked up from code.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Title: ErrorTitle(code), Message: message}
}

func (e *Error) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%s: api error %d (%s): %s", e.Method, e.Code, e.Title, e.Message)
	}
	return fmt.Sprintf("api error %d (%s): %s", e.Code, e.Title, e.Message)
}

// ClientError reports a request that did not produce a decodable API
// answer: the transport failed or the HTTP status was not 200.
type ClientError struct {
	Method     string
	StatusCode int
	Message    string
	Err        error
}

func (e *ClientError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%s: client error: %s", e.Method, e.Message)
	}
	return "client error: " + e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is an API error.
func IsAPIError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// IsClientError reports whether err is a client error.
func IsClientError(err error) bool {
	var e *ClientError
	return errors.As(err, &e)
}

// IsErrorCode reports whether err is an API error with the given code.
func IsErrorCode(err error, code int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsCaptchaError reports whether the API asked for a captcha.
func IsCaptchaError(err error) bool {
	return IsErrorCode(err, ErrorCodeCaptcha)
}
