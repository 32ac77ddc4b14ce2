package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI.
const (
	EnvAccessToken     = "VK_ACCESS_TOKEN"
	EnvAPIVersion      = "VK_API_VERSION"
	EnvClientID        = "VK_CLIENT_ID"
	EnvClientSecret    = "VK_CLIENT_SECRET"
	EnvRedirectURI     = "VK_REDIRECT_URI"
	EnvProfile         = "VK_PROFILE"
	EnvLang            = "VK_LANG"
	EnvAPIURL          = "VK_API_URL"
	EnvOAuthURL        = "VK_OAUTH_URL"
	EnvKeyringBackend  = "VK_KEYRING_BACKEND"
	EnvKeyringPassword = "VK_KEYRING_PASSWORD"
	EnvCredentialsDir  = "VK_CREDENTIALS_DIR"
)

// DefaultEnvFile returns the .env file loaded on every run when present.
func DefaultEnvFile() string {
	return filepath.Join(Dir(), ".env")
}

// LoadDefaultEnv loads DefaultEnvFile if it exists. Variables already set in
// the environment are kept.
func LoadDefaultEnv() {
	path := DefaultEnvFile()
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// LoadEnvFile loads VK_* variables from path into the process environment
// without overwriting exported values. It returns the names it applied.
func LoadEnvFile(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("--env-file requires a file path")
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read --env-file %q: %w", path, err)
	}

	var applied []string
	for key, value := range vars {
		if !strings.HasPrefix(key, "VK_") {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("failed to set %s: %w", key, err)
		}
		applied = append(applied, key)
	}
	return applied, nil
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
