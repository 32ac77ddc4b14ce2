package cmd

import (
	"fmt"
	"strings"

	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/config"
	"github.com/vkcom/vk-cli/internal/metrics"
	"github.com/vkcom/vk-cli/internal/oauth"
	"github.com/vkcom/vk-cli/internal/transport"
	"github.com/vkcom/vk-cli/internal/validation"
)

type clientFactory struct {
	userAgent string
	rps       float64
	collector *metrics.Collector
}

func newClientFactory() *clientFactory {
	return &clientFactory{
		userAgent: fmt.Sprintf("vk-cli/%s", version),
		rps:       flags.RPS,
	}
}

// withMetrics records every request of clients built afterwards in c.
func (f *clientFactory) withMetrics(c *metrics.Collector) *clientFactory {
	f.collector = c
	return f
}

func (f *clientFactory) config() (config.ClientConfig, error) {
	return config.ResolveClientConfig(config.Overrides{
		Profile:     flags.Profile,
		AccessToken: flags.Token,
		APIVersion:  flags.APIVersion,
		Lang:        flags.Lang,
	})
}

func (f *clientFactory) transport() *transport.Client {
	opts := []transport.Option{transport.WithUserAgent(f.userAgent)}
	if f.collector != nil {
		opts = append(opts, transport.WithObserver(f.collector))
	}
	return transport.New(opts...)
}

func (f *clientFactory) api(cfg config.ClientConfig) (*api.Client, error) {
	baseURL := cfg.APIURL
	if baseURL != "" {
		if err := validation.ValidateEndpointURL(baseURL); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.EnvAPIURL, err)
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
	}
	opts := []api.Option{
		api.WithBaseURL(baseURL),
		api.WithAPIVersion(cfg.APIVersion),
		api.WithLang(cfg.Lang),
		api.WithTransport(f.transport()),
		api.WithRateLimit(f.rps),
	}
	if f.collector != nil {
		opts = append(opts, api.WithErrorObserver(f.collector))
	}
	return api.New(opts...), nil
}

func (f *clientFactory) oauth(cfg config.ClientConfig) (*oauth.Client, error) {
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = api.DefaultAPIVersion
	}
	opts := []oauth.Option{
		oauth.WithPoster(transport.New(
			transport.WithConnectTimeout(oauth.ConnectTimeout),
			transport.WithUserAgent(f.userAgent),
		)),
	}
	authorize, token, err := oauthEndpoints(cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, oauth.WithEndpoints(authorize, token))
	return oauth.NewClient(apiVersion, opts...), nil
}

// oauthEndpoints returns the authorize and token URLs, honoring VK_OAUTH_URL.
func oauthEndpoints(cfg config.ClientConfig) (string, string, error) {
	base := strings.TrimRight(cfg.OAuthURL, "/")
	if base == "" {
		return oauth.AuthorizeEndpoint, oauth.AccessTokenEndpoint, nil
	}
	if err := validation.ValidateEndpointURL(base); err != nil {
		return "", "", fmt.Errorf("invalid %s: %w", config.EnvOAuthURL, err)
	}
	return base + "/authorize", base + "/access_token", nil
}

// authedAPI resolves the configuration, requires a token and builds an API
// client. It returns the token alongside the client.
func (f *clientFactory) authedAPI() (*api.Client, string, error) {
	cfg, err := f.config()
	if err != nil {
		return nil, "", err
	}
	if err := cfg.RequireToken(); err != nil {
		return nil, "", err
	}
	client, err := f.api(cfg)
	if err != nil {
		return nil, "", err
	}
	return client, cfg.AccessToken, nil
}
