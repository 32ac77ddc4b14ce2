package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/99designs/keyring"
)

func clearVKEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAccessToken, EnvAPIVersion, EnvClientID, EnvClientSecret,
		EnvRedirectURI, EnvProfile, EnvLang, EnvAPIURL, EnvOAuthURL,
	} {
		t.Setenv(key, "")
	}
}

func TestResolveClientConfig_Precedence(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))
	clearVKEnv(t)

	if err := SaveProfile("work", Profile{
		ClientID:    "profile-id",
		AccessToken: "profile-token",
		APIVersion:  "5.131",
		RedirectURI: "http://127.0.0.1:9000/cb",
	}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvAPIVersion, "5.150")
	t.Setenv(EnvLang, "en")

	cfg, err := ResolveClientConfig(Overrides{AccessToken: "flag-token"})
	if err != nil {
		t.Fatalf("ResolveClientConfig() error: %v", err)
	}

	if cfg.Profile != "work" {
		t.Errorf("Profile = %q, want work", cfg.Profile)
	}
	if cfg.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want env-id", cfg.ClientID)
	}
	if cfg.AccessToken != "flag-token" {
		t.Errorf("AccessToken = %q, want flag-token", cfg.AccessToken)
	}
	if cfg.APIVersion != "5.150" {
		t.Errorf("APIVersion = %q, want 5.150", cfg.APIVersion)
	}
	if cfg.RedirectURI != "http://127.0.0.1:9000/cb" {
		t.Errorf("RedirectURI = %q", cfg.RedirectURI)
	}
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q, want en", cfg.Lang)
	}
}

func TestResolveClientConfig_NoProfile(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))
	clearVKEnv(t)

	cfg, err := ResolveClientConfig(Overrides{})
	if err != nil {
		t.Fatalf("ResolveClientConfig() error: %v", err)
	}
	if err := cfg.RequireToken(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("RequireToken() = %v, want ErrNotConfigured", err)
	}
}

func TestResolveClientConfig_EnvTokenWithoutKeyring(t *testing.T) {
	withFailingKeyring(t, errors.New("no keyring"))
	clearVKEnv(t)
	t.Setenv(EnvAccessToken, "env-token")

	cfg, err := ResolveClientConfig(Overrides{})
	if err != nil {
		t.Fatalf("ResolveClientConfig() error: %v", err)
	}
	if cfg.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q, want env-token", cfg.AccessToken)
	}
	if err := cfg.RequireToken(); err != nil {
		t.Errorf("RequireToken() = %v", err)
	}
}

func TestResolveClientConfig_KeyringFailure(t *testing.T) {
	openErr := errors.New("no keyring")
	withFailingKeyring(t, openErr)
	clearVKEnv(t)

	if _, err := ResolveClientConfig(Overrides{}); !errors.Is(err, openErr) {
		t.Fatalf("error = %v, want %v", err, openErr)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearVKEnv(t)
	t.Setenv(EnvClientID, "exported")

	path := filepath.Join(t.TempDir(), ".env")
	content := "VK_CLIENT_ID=from-file\nVK_ACCESS_TOKEN=file-token\nOTHER=ignored\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OTHER", "")
	_ = os.Unsetenv("OTHER")
	_ = os.Unsetenv(EnvAccessToken)

	applied, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}
	if !slices.Equal(applied, []string{EnvAccessToken}) {
		t.Errorf("applied = %v, want [%s]", applied, EnvAccessToken)
	}
	if got := os.Getenv(EnvClientID); got != "exported" {
		t.Errorf("%s = %q, exported value must win", EnvClientID, got)
	}
	if got := os.Getenv(EnvAccessToken); got != "file-token" {
		t.Errorf("%s = %q, want file-token", EnvAccessToken, got)
	}
	if _, ok := os.LookupEnv("OTHER"); ok {
		t.Error("non-VK variable should not be applied")
	}
}

func TestLoadEnvFileErrors(t *testing.T) {
	if _, err := LoadEnvFile("  "); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultEnvFile(t *testing.T) {
	base := t.TempDir()
	original := userConfigDir
	userConfigDir = func() (string, error) { return base, nil }
	t.Cleanup(func() { userConfigDir = original })

	if got, want := DefaultEnvFile(), filepath.Join(base, serviceName, ".env"); got != want {
		t.Errorf("DefaultEnvFile() = %q, want %q", got, want)
	}
}
