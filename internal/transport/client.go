package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vkcom/vk-cli/internal/validation"
)

// DefaultConnectTimeout bounds connection setup for every request.
const DefaultConnectTimeout = 10 * time.Second

const formContentType = "application/x-www-form-urlencoded"

// Observer receives one notification per finished request.
type Observer interface {
	ObserveRequest(statusCode int, duration time.Duration, err error)
}

// Client sends single POST requests and returns parsed responses.
// It never retries and holds only construction-time settings, so one
// Client may be shared across goroutines.
type Client struct {
	connectTimeout time.Duration
	userAgent      string
	base           http.RoundTripper
	observer       Observer
}

// Option configures a Client.
type Option func(*Client)

// WithConnectTimeout overrides DefaultConnectTimeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.connectTimeout = d
	}
}

// WithHTTPTransport replaces the underlying round tripper.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.base = rt
	}
}

// WithObserver registers a request observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{connectTimeout: DefaultConnectTimeout}
	for _, opt := range opts {
		opt(c)
	}
	if c.base == nil {
		c.base = newHTTPTransport(c.connectTimeout)
	}
	return c
}

func newHTTPTransport(connectTimeout time.Duration) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// ConnectTimeout returns the connect timeout applied to every request.
func (c *Client) ConnectTimeout() time.Duration {
	return c.connectTimeout
}

// Post sends fields as an urlencoded form.
func (c *Client) Post(ctx context.Context, rawURL string, fields Params) (*Response, error) {
	if err := validation.ValidateEndpointURL(rawURL); err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	return c.send(ctx, rawURL, strings.NewReader(fields.Encode()), formContentType)
}

// Upload sends the file at filePath as a multipart part named fieldName.
func (c *Client) Upload(ctx context.Context, rawURL, fieldName, filePath string) (*Response, error) {
	if err := validation.ValidateEndpointURL(rawURL); err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	body, contentType, err := multipartFile(fieldName, filePath)
	if err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	return c.send(ctx, rawURL, body, contentType)
}

func multipartFile(fieldName, filePath string) (*bytes.Buffer, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", errors.Wrap(err, "open upload file")
	}
	defer func() { _ = f.Close() }()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filepath.Base(filePath))
	if err != nil {
		return nil, "", errors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", errors.Wrapf(err, "read upload file %s", filePath)
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}
	return body, writer.FormDataContentType(), nil
}

func (c *Client) send(ctx context.Context, rawURL string, body io.Reader, contentType string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return nil, newError(errors.Wrap(err, "build request"))
	}
	req.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	recorder := &headerRecorder{next: c.base}
	httpClient := &http.Client{Transport: recorder}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		c.observe(0, start, err)
		return nil, newError(err)
	}
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		c.observe(resp.StatusCode, start, err)
		return nil, newError(errors.Wrap(err, "read response body"))
	}
	c.observe(resp.StatusCode, start, nil)

	return ParseRawResponse(recorder.raw(string(data))), nil
}

func (c *Client) observe(statusCode int, start time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveRequest(statusCode, time.Since(start), err)
	}
}

// headerRecorder keeps the header block of every hop the HTTP client
// follows, so redirects show up in the raw text as they would on the wire.
type headerRecorder struct {
	next   http.RoundTripper
	blocks []string
}

func (h *headerRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := h.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	h.blocks = append(h.blocks, headerBlock(resp))
	return resp, nil
}

func (h *headerRecorder) raw(body string) string {
	parts := append(append([]string(nil), h.blocks...), body)
	return strings.Join(parts, blockSeparator)
}

// headerBlock rebuilds the header text of one hop. Header names are the
// canonical keys net/http stored, not the exact wire spelling.
func headerBlock(resp *http.Response) string {
	proto := resp.Proto
	if proto == "" {
		major, minor := resp.ProtoMajor, resp.ProtoMinor
		if major == 0 {
			major, minor = 1, 1
		}
		proto = fmt.Sprintf("HTTP/%d.%d", major, minor)
	}
	status := resp.Status
	if !strings.Contains(status, " ") {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	lines := []string{proto + " " + status}
	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range resp.Header[k] {
			lines = append(lines, k+headerSeparator+v)
		}
	}
	return strings.Join(lines, "\r\n")
}
