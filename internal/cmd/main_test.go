package cmd

import (
	"os"
	"testing"

	"github.com/99designs/keyring"

	"github.com/vkcom/vk-cli/internal/config"
)

func TestMain(m *testing.M) {
	// Ensure tests use text output by default (prevents VK_OUTPUT from the shell affecting tests)
	_ = os.Setenv("VK_OUTPUT", "text")

	cleanup := config.SetOpenKeyring(func(cfg keyring.Config) (keyring.Keyring, error) {
		return keyring.NewArrayKeyring(nil), nil
	})
	code := m.Run()
	cleanup()
	os.Exit(code)
}
