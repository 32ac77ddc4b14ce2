// Package update checks GitHub releases for a newer vk binary.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// DefaultReleasesURL is the latest-release endpoint of the project.
	DefaultReleasesURL = "https://api.github.com/repos/vkcom/vk-cli/releases/latest"
	CheckTimeout       = 5 * time.Second
)

// Release is the subset of the GitHub release payload the check reads.
type Release struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Prerelease bool   `json:"prerelease"`
}

// CheckResult reports the outcome of a successful check.
type CheckResult struct {
	CurrentVersion  string `json:"current_version"`
	LatestVersion   string `json:"latest_version"`
	UpdateURL       string `json:"update_url,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
}

// Checker queries a releases endpoint.
type Checker struct {
	URL        string
	HTTPClient *http.Client
}

// NewChecker returns a Checker for DefaultReleasesURL.
func NewChecker() *Checker {
	return &Checker{URL: DefaultReleasesURL, HTTPClient: http.DefaultClient}
}

// Check reports whether a release newer than currentVersion exists.
// It returns nil when the check cannot complete; it never blocks the CLI
// for longer than CheckTimeout.
func (c *Checker) Check(ctx context.Context, currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil || release.TagName == "" {
		return nil
	}

	result := &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		UpdateURL:      release.HTMLURL,
	}

	current := normalizeVersion(currentVersion)
	latest := normalizeVersion(release.TagName)
	if !release.Prerelease && semver.IsValid(current) && semver.IsValid(latest) {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}
	return result
}

func normalizeVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
