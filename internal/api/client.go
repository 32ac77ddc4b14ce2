// Package api dispatches VK API method calls and decodes their results.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vkcom/vk-cli/internal/debug"
	"github.com/vkcom/vk-cli/internal/transport"
)

const (
	DefaultBaseURL    = "https://api.vk.com/method/"
	DefaultAPIVersion = "5.199"

	paramAccessToken = "access_token"
	paramVersion     = "v"
	paramLang        = "lang"
)

// Transport is the HTTP layer used by the Client.
type Transport interface {
	Post(ctx context.Context, url string, fields transport.Params) (*transport.Response, error)
	Upload(ctx context.Context, url, fieldName, filePath string) (*transport.Response, error)
}

// ErrorObserver is notified of every API error returned by the server.
type ErrorObserver interface {
	ObserveAPIError(code int)
}

// Client calls API methods. Settings are fixed at construction.
type Client struct {
	baseURL    string
	apiVersion string
	lang       string
	transport  Transport
	limiter    *rate.Limiter
	observer   ErrorObserver
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL. The method name is appended to it.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithAPIVersion overrides DefaultAPIVersion.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.apiVersion = v
		}
	}
}

// WithLang sets the language of localized response fields.
func WithLang(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithTransport replaces the HTTP layer.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithErrorObserver registers an API error observer.
func WithErrorObserver(o ErrorObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New()
	}
	return c
}

// APIVersion returns the version sent with every request.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Endpoint returns the URL a method is posted to.
func (c *Client) Endpoint(method string) string {
	return c.baseURL + method
}

// Fields returns the form fields Request would post for params.
func (c *Client) Fields(accessToken string, params map[string]any) transport.Params {
	fields := FormatParams(params)
	fields[paramAccessToken] = accessToken
	fields[paramVersion] = c.apiVersion
	if c.lang != "" {
		fields[paramLang] = c.lang
	}
	return fields
}

// Request calls method with params on behalf of accessToken.
func (c *Client) Request(ctx context.Context, method, accessToken string, params map[string]any) (*Response, error) {
	if err := c.wait(ctx); err != nil {
		return nil, &ClientError{Method: method, Message: err.Error(), Err: err}
	}

	fields := c.Fields(accessToken, params)
	start := time.Now()
	resp, err := c.transport.Post(ctx, c.Endpoint(method), fields)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "method", method, "error", err)
		}
		return nil, &ClientError{Method: method, Message: err.Error(), Err: err}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", method, "status", resp.StatusCode(), "duration", time.Since(start))
	}

	return c.parseResponse(method, resp)
}

func (c *Client) parseResponse(method string, resp *transport.Response) (*Response, error) {
	if resp.StatusCode() != http.StatusOK {
		return nil, &ClientError{
			Method:     method,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("invalid http status: %d", resp.StatusCode()),
		}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resp.Body()), &envelope); err != nil {
		return &Response{Method: method}, nil
	}

	if raw, ok := envelope["error"]; ok && !isNull(raw) {
		apiErr := decodeError(raw)
		apiErr.Method = method
		c.observeError(apiErr.Code)
		return nil, apiErr
	}

	out := &Response{Method: method}
	if raw, ok := envelope["response"]; ok && !isNull(raw) {
		out.Body = raw
	}
	if raw, ok := envelope["execute_errors"]; ok {
		var items []errorPayload
		if err := json.Unmarshal(raw, &items); err == nil {
			for _, item := range items {
				out.ExecuteErrors = append(out.ExecuteErrors, item.toError())
			}
		}
	}
	return out, nil
}

// UploadFile sends a file to an upload server URL obtained from a
// *.getUploadServer method and returns the decoded reply.
func (c *Client) UploadFile(ctx context.Context, uploadURL, fieldName, filePath string) (map[string]any, error) {
	resp, err := c.transport.Upload(ctx, uploadURL, fieldName, filePath)
	if err != nil {
		return nil, &ClientError{Message: err.Error(), Err: err}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("upload complete", "field", fieldName, "status", resp.StatusCode())
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &ClientError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("invalid http status: %d", resp.StatusCode()),
		}
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(resp.Body()), &out); err != nil || out == nil {
		out = map[string]any{}
	}
	if msg, ok := out["error"]; ok && msg != nil && msg != "" {
		return nil, &ClientError{Message: fmt.Sprintf("upload failed: %v", msg)}
	}
	return out, nil
}

func (c *Client) observeError(code int) {
	if c.observer != nil {
		c.observer.ObserveAPIError(code)
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

type errorPayload struct {
	ErrorCode        int            `json:"error_code"`
	ErrorMsg         string         `json:"error_msg"`
	Method           string         `json:"method"`
	RequestParams    []RequestParam `json:"request_params"`
	CaptchaSID       flexString     `json:"captcha_sid"`
	CaptchaImg       string         `json:"captcha_img"`
	RedirectURI      string         `json:"redirect_uri"`
	ConfirmationText string         `json:"confirmation_text"`
}

func (p errorPayload) toError() *Error {
	e := NewError(p.ErrorCode, p.ErrorMsg)
	e.Method = p.Method
	e.RequestParams = p.RequestParams
	e.CaptchaSID = string(p.CaptchaSID)
	e.CaptchaImg = p.CaptchaImg
	e.RedirectURI = p.RedirectURI
	e.ConfirmationText = p.ConfirmationText
	return e
}

// flexString decodes a JSON string or number as text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) != "null" {
		*f = flexString(data)
	}
	return nil
}

// decodeError accepts both the structured error object and a bare string.
func decodeError(raw json.RawMessage) *Error {
	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload.toError()
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return NewError(0, msg)
	}
	return NewError(0, string(raw))
}
