// Package oauth implements the authorization-code exchange against the VK
// OAuth server.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/vkcom/vk-cli/internal/transport"
)

const (
	AuthorizeEndpoint   = "https://oauth.vk.com/authorize"
	AccessTokenEndpoint = "https://oauth.vk.com/access_token"

	// ConnectTimeout is the connect timeout of the default transport.
	ConnectTimeout = 10 * time.Second

	DefaultResponseType = ResponseTypeCode
)

const (
	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
	paramRedirectURI  = "redirect_uri"
	paramDisplay      = "display"
	paramScope        = "scope"
	paramState        = "state"
	paramResponseType = "response_type"
	paramVersion      = "v"
	paramCode         = "code"

	keyError            = "error"
	keyErrorDescription = "error_description"
	keyAccessToken      = "access_token"
)

// Poster sends one urlencoded POST request.
type Poster interface {
	Post(ctx context.Context, url string, fields transport.Params) (*transport.Response, error)
}

// Client talks to the OAuth endpoints. Settings are fixed at construction,
// so a Client is safe for concurrent use.
type Client struct {
	http                Poster
	apiVersion          string
	authorizeEndpoint   string
	accessTokenEndpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithPoster replaces the HTTP transport.
func WithPoster(p Poster) Option {
	return func(c *Client) {
		c.http = p
	}
}

// WithEndpoints overrides the authorize and token endpoint URLs.
func WithEndpoints(authorize, accessToken string) Option {
	return func(c *Client) {
		if authorize != "" {
			c.authorizeEndpoint = authorize
		}
		if accessToken != "" {
			c.accessTokenEndpoint = accessToken
		}
	}
}

// NewClient creates a Client that sends apiVersion with authorization
// requests.
func NewClient(apiVersion string, opts ...Option) *Client {
	c := &Client{
		apiVersion:          apiVersion,
		authorizeEndpoint:   AuthorizeEndpoint,
		accessTokenEndpoint: AccessTokenEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = transport.New(transport.WithConnectTimeout(ConnectTimeout))
	}
	return c
}

// APIVersion returns the API version sent with authorization requests.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// AuthorizeRequest holds the parameters of an authorization request.
type AuthorizeRequest struct {
	ClientID     string
	RedirectURI  string
	Display      Display
	Scopes       []Scope
	State        string
	ResponseType ResponseType
}

func (r AuthorizeRequest) responseType() ResponseType {
	if r.ResponseType == "" {
		return DefaultResponseType
	}
	return r.ResponseType
}

func (r AuthorizeRequest) params(apiVersion string) transport.Params {
	return transport.Params{
		paramClientID:     r.ClientID,
		paramRedirectURI:  r.RedirectURI,
		paramDisplay:      string(r.Display),
		paramScope:        ScopeValue(r.Scopes...),
		paramState:        r.State,
		paramResponseType: string(r.responseType()),
		paramVersion:      apiVersion,
	}
}

// Authorize submits an authorization request. It only reports whether the
// provider accepted it.
func (c *Client) Authorize(ctx context.Context, req AuthorizeRequest) error {
	resp, err := c.http.Post(ctx, c.authorizeEndpoint, req.params(c.apiVersion))
	if err != nil {
		return &ClientError{Message: err.Error(), Err: err}
	}
	_, err = checkResponse(resp)
	return err
}

// AccessToken exchanges an authorization code for an access token.
func (c *Client) AccessToken(ctx context.Context, clientID, clientSecret, redirectURI, code string) (*TokenResult, error) {
	fields := transport.Params{
		paramClientID:     clientID,
		paramClientSecret: clientSecret,
		paramRedirectURI:  redirectURI,
		paramCode:         code,
	}
	resp, err := c.http.Post(ctx, c.accessTokenEndpoint, fields)
	if err != nil {
		return nil, &ClientError{Message: err.Error(), Err: err}
	}
	return checkResponse(resp)
}

// AuthorizeURL returns the URL a user opens in a browser to grant access
// with the same parameters Authorize would send.
func (c *Client) AuthorizeURL(req AuthorizeRequest) string {
	cfg := oauth2.Config{
		ClientID:    req.ClientID,
		RedirectURL: req.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.authorizeEndpoint,
			TokenURL:  c.accessTokenEndpoint,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{strconv.Itoa(ScopeValue(req.Scopes...))},
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam(paramResponseType, string(req.responseType())),
		oauth2.SetAuthURLParam(paramVersion, c.apiVersion),
	}
	if req.Display != "" {
		opts = append(opts, oauth2.SetAuthURLParam(paramDisplay, string(req.Display)))
	}
	return cfg.AuthCodeURL(req.State, opts...)
}

// checkResponse validates a provider response shared by both endpoints.
func checkResponse(resp *transport.Response) (*TokenResult, error) {
	if resp.StatusCode() != http.StatusOK {
		return nil, &ClientError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("invalid http status: %d", resp.StatusCode()),
		}
	}

	body := decodeBody(resp.Body())
	if v, ok := body[keyError]; ok && truthy(v) {
		return nil, &OAuthError{
			Code:        stringValue(v),
			Description: stringValue(body[keyErrorDescription]),
		}
	}

	result := &TokenResult{Fields: body}
	if v, ok := body[keyAccessToken]; ok && v != nil {
		result.AccessToken = stringValue(v)
	}
	return result, nil
}

// decodeBody decodes a JSON object. Anything else yields an empty mapping.
func decodeBody(body string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}
