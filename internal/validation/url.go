// Package validation checks user-supplied URLs and names before they reach
// the network.
//
// Endpoint URLs must be absolute http(s) URLs with a host. Upload targets
// additionally may not point at cloud metadata endpoints, and OAuth redirect
// URIs used by the local login flow must resolve to a loopback listener.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ValidateEndpointURL checks that rawURL is a non-empty absolute http or
// https URL with a hostname.
func ValidateEndpointURL(rawURL string) error {
	_, err := parseHTTPURL(rawURL)
	return err
}

// ValidateUploadURL validates an upload server URL returned by the API.
// Cloud metadata endpoints are always rejected.
func ValidateUploadURL(rawURL string) error {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return err
	}
	if isCloudMetadata(u.Hostname()) {
		return fmt.Errorf("cloud metadata endpoints are not allowed")
	}
	return nil
}

// ValidateRedirectURI validates an OAuth redirect URI.
func ValidateRedirectURI(rawURL string) error {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return fmt.Errorf("invalid redirect URI: %w", err)
	}
	if u.Fragment != "" {
		return fmt.Errorf("invalid redirect URI: fragment is not allowed")
	}
	return nil
}

// ParseLoopbackRedirect parses a redirect URI that the CLI can listen on
// itself. The host must be a loopback address and the port explicit.
func ParseLoopbackRedirect(rawURL string) (*url.URL, error) {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect URI: %w", err)
	}
	if u.Scheme != "http" {
		return nil, fmt.Errorf("login redirect URI must use http, got %q", u.Scheme)
	}
	if !IsLoopbackHost(u.Hostname()) {
		return nil, fmt.Errorf("login redirect URI must point to localhost, got %q", u.Hostname())
	}
	if u.Port() == "" {
		return nil, fmt.Errorf("login redirect URI must include a port")
	}
	return u, nil
}

// IsLoopbackHost reports whether host names the local machine.
func IsLoopbackHost(host string) bool {
	lowercase := strings.ToLower(host)
	if lowercase == "localhost" || strings.HasSuffix(lowercase, ".localhost") {
		return true
	}
	ip := net.ParseIP(lowercase)
	return ip != nil && ip.IsLoopback()
}

func parseHTTPURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("URL cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("URL exceeds maximum length of %d characters", MaxURLLength)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme: only http and https are allowed, got %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("URL must contain a hostname")
	}
	return u, nil
}

// isCloudMetadata checks for cloud metadata endpoints
func isCloudMetadata(hostname string) bool {
	lowercase := strings.ToLower(hostname)
	switch lowercase {
	case "169.254.169.254", // AWS, Azure, GCP, DigitalOcean
		"metadata.google.internal",
		"metadata",
		"instance-data",
		"fd00:ec2::254":
		return true
	}
	return strings.HasSuffix(lowercase, ".metadata.google.internal")
}
