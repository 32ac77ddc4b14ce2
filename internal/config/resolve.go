package config

import (
	"errors"
	"fmt"
	"strings"
)

// ClientConfig contains resolved API client settings.
type ClientConfig struct {
	Profile      string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AccessToken  string
	APIVersion   string
	Lang         string
	APIURL       string
	OAuthURL     string
}

// Overrides carries command-line values, which win over everything else.
type Overrides struct {
	Profile     string
	AccessToken string
	APIVersion  string
	Lang        string
}

// ResolveClientConfig merges the stored profile, the environment and
// overrides, in that order of precedence. A missing profile is not an
// error; the caller decides whether a token is required.
func ResolveClientConfig(overrides Overrides) (ClientConfig, error) {
	var cfg ClientConfig

	name := strings.TrimSpace(overrides.Profile)
	if name == "" {
		current, err := CurrentProfile()
		if err != nil && envValue(EnvAccessToken) == "" {
			return ClientConfig{}, err
		}
		name = current
	}
	cfg.Profile = name

	if name != "" {
		profile, err := LoadProfile(name)
		switch {
		case err == nil:
			cfg.ClientID = profile.ClientID
			cfg.ClientSecret = profile.ClientSecret
			cfg.RedirectURI = profile.RedirectURI
			cfg.AccessToken = profile.AccessToken
			cfg.APIVersion = profile.APIVersion
		case errors.Is(err, ErrNotConfigured):
		case envValue(EnvAccessToken) != "":
			// keyring unavailable but the token comes from the environment
		default:
			return ClientConfig{}, err
		}
	}

	overlay(&cfg.ClientID, envValue(EnvClientID))
	overlay(&cfg.ClientSecret, envValue(EnvClientSecret))
	overlay(&cfg.RedirectURI, envValue(EnvRedirectURI))
	overlay(&cfg.AccessToken, envValue(EnvAccessToken))
	overlay(&cfg.APIVersion, envValue(EnvAPIVersion))
	overlay(&cfg.Lang, envValue(EnvLang))
	overlay(&cfg.APIURL, envValue(EnvAPIURL))
	overlay(&cfg.OAuthURL, envValue(EnvOAuthURL))

	overlay(&cfg.AccessToken, strings.TrimSpace(overrides.AccessToken))
	overlay(&cfg.APIVersion, strings.TrimSpace(overrides.APIVersion))
	overlay(&cfg.Lang, strings.TrimSpace(overrides.Lang))

	return cfg, nil
}

// RequireToken returns an error when cfg carries no access token.
func (c ClientConfig) RequireToken() error {
	if c.AccessToken == "" {
		return fmt.Errorf("no access token (set %s, pass --token, or run 'vk auth login'): %w", EnvAccessToken, ErrNotConfigured)
	}
	return nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
