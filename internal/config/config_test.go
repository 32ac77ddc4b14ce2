package config

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/99designs/keyring"
)

// withMockKeyring sets up a mock keyring for the duration of a test
func withMockKeyring(t *testing.T, ring keyring.Keyring) {
	t.Helper()
	t.Setenv(EnvProfile, "")
	restore := SetOpenKeyring(func(cfg keyring.Config) (keyring.Keyring, error) {
		return ring, nil
	})
	t.Cleanup(restore)
}

// withFailingKeyring sets up a keyring that always fails to open
func withFailingKeyring(t *testing.T, err error) {
	t.Helper()
	t.Setenv(EnvProfile, "")
	restore := SetOpenKeyring(func(cfg keyring.Config) (keyring.Keyring, error) {
		return nil, err
	})
	t.Cleanup(restore)
}

func TestProfileKey(t *testing.T) {
	tests := []struct {
		profile  string
		expected string
	}{
		{"", profilePrefix + defaultProfile},
		{"default", profilePrefix + defaultProfile},
		{"work", profilePrefix + "work"},
	}

	for _, tt := range tests {
		if got := profileKey(tt.profile); got != tt.expected {
			t.Errorf("profileKey(%q) = %q, want %q", tt.profile, got, tt.expected)
		}
	}
}

func TestNormalizeProfiles(t *testing.T) {
	got := normalizeProfiles([]string{" work ", "", "default", "work", "  "})
	want := []string{"work", "default"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("normalizeProfiles() = %v, want %v", got, want)
	}
}

func TestLoadProfileIndex(t *testing.T) {
	t.Run("missing index", func(t *testing.T) {
		profiles, err := loadProfileIndex(keyring.NewArrayKeyring(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 0 {
			t.Errorf("profiles = %v, want empty", profiles)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ring := keyring.NewArrayKeyring([]keyring.Item{{Key: profileIndexKey, Data: []byte("{")}})
		if _, err := loadProfileIndex(ring); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestKeyringConfig(t *testing.T) {
	t.Setenv(EnvKeyringBackend, "")
	t.Setenv(EnvCredentialsDir, "")

	cfg := keyringConfig()
	if cfg.ServiceName != serviceName {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, serviceName)
	}
	if cfg.FileDir == "" {
		t.Error("FileDir should be configured in auto backend mode")
	}
	if cfg.FilePasswordFunc == nil {
		t.Error("FilePasswordFunc should be configured in auto backend mode")
	}
}

func TestKeyringConfig_FileBackendOverride(t *testing.T) {
	t.Setenv(EnvKeyringBackend, "file")
	base := t.TempDir()
	t.Setenv(EnvCredentialsDir, base)

	cfg := keyringConfig()
	if len(cfg.AllowedBackends) != 1 || cfg.AllowedBackends[0] != keyring.FileBackend {
		t.Fatalf("AllowedBackends = %v, want [%s]", cfg.AllowedBackends, keyring.FileBackend)
	}
	if want := filepath.Join(base, "keyring"); cfg.FileDir != want {
		t.Fatalf("FileDir = %q, want %q", cfg.FileDir, want)
	}
}

func TestKeyringConfig_SystemBackendOverride(t *testing.T) {
	t.Setenv(EnvKeyringBackend, "native")

	cfg := keyringConfig()
	if cfg.FileDir != "" || cfg.FilePasswordFunc != nil || len(cfg.AllowedBackends) != 0 {
		t.Fatalf("system backend should leave file settings empty, got %+v", cfg)
	}
}

func TestShouldForceFileBackend(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		backend  string
		dbusAddr string
		want     bool
	}{
		{"explicit file backend", "darwin", keyringBackendFile, "ignored", true},
		{"headless linux", "linux", keyringBackendAuto, "", true},
		{"linux desktop", "linux", keyringBackendAuto, "unix:path=/run/user/1000/bus", false},
		{"system backend", "linux", keyringBackendSystem, "", false},
		{"non-linux auto", "windows", keyringBackendAuto, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldForceFileBackend(tt.goos, tt.backend, tt.dbusAddr); got != tt.want {
				t.Errorf("shouldForceFileBackend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyringBackendMode(t *testing.T) {
	tests := map[string]string{
		"":       keyringBackendAuto,
		"auto":   keyringBackendAuto,
		"FILE":   keyringBackendFile,
		"system": keyringBackendSystem,
		"os":     keyringBackendSystem,
		"bogus":  keyringBackendAuto,
	}
	for value, want := range tests {
		t.Setenv(EnvKeyringBackend, value)
		if got := keyringBackendMode(); got != want {
			t.Errorf("keyringBackendMode(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestKeyringFileDir_DefaultsToUserConfigDir(t *testing.T) {
	t.Setenv(EnvCredentialsDir, "")
	base := t.TempDir()
	original := userConfigDir
	userConfigDir = func() (string, error) { return base, nil }
	t.Cleanup(func() { userConfigDir = original })

	if got, want := keyringFileDir(), filepath.Join(base, serviceName, "keyring"); got != want {
		t.Errorf("keyringFileDir() = %q, want %q", got, want)
	}
}

func TestKeyringFilePassword(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		t.Setenv(EnvKeyringPassword, "s3cret")
		got, err := keyringFilePassword("prompt")
		if err != nil || got != "s3cret" {
			t.Fatalf("keyringFilePassword() = %q, %v", got, err)
		}
	})

	t.Run("non-interactive", func(t *testing.T) {
		t.Setenv(EnvKeyringPassword, "")
		original := stdinHasTTY
		stdinHasTTY = func() bool { return false }
		t.Cleanup(func() { stdinHasTTY = original })

		_, err := keyringFilePassword("prompt")
		if err == nil || !strings.Contains(err.Error(), EnvKeyringPassword) {
			t.Fatalf("error = %v, want mention of %s", err, EnvKeyringPassword)
		}
	})
}

func TestSaveAndLoadProfile(t *testing.T) {
	ring := keyring.NewArrayKeyring(nil)
	withMockKeyring(t, ring)

	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	profile := Profile{
		ClientID:     "51234",
		ClientSecret: "secret",
		RedirectURI:  "http://127.0.0.1:8765/callback",
		AccessToken:  "token",
		UserID:       "55",
		Scope:        8192,
		ExpiresAt:    expires,
	}
	if err := SaveProfile("work", profile); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	got, err := LoadProfile("work")
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if got.AccessToken != "token" || got.UserID != "55" || !got.ExpiresAt.Equal(expires) {
		t.Errorf("LoadProfile() = %+v", got)
	}

	current, err := CurrentProfile()
	if err != nil || current != "work" {
		t.Errorf("CurrentProfile() = %q, %v; want work", current, err)
	}

	profiles, err := ListProfiles()
	if err != nil || len(profiles) != 1 || profiles[0] != "work" {
		t.Errorf("ListProfiles() = %v, %v", profiles, err)
	}
}

func TestSaveProfileIsIdempotentInIndex(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	for range 2 {
		if err := SaveProfile("", Profile{ClientID: "1"}); err != nil {
			t.Fatalf("SaveProfile() error: %v", err)
		}
	}
	profiles, _ := ListProfiles()
	if len(profiles) != 1 || profiles[0] != defaultProfile {
		t.Errorf("profiles = %v, want [default]", profiles)
	}
}

func TestProfileJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(Profile{ClientID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"client_id":"1"}` {
		t.Errorf("json = %s", data)
	}
}

func TestLoadProfileMissing(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	_, err := LoadProfile("nope")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestLoadProfileInvalidJSON(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring([]keyring.Item{{Key: profileKey("bad"), Data: []byte("nope")}}))

	if _, err := LoadProfile("bad"); err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want unmarshal failure", err)
	}
}

func TestKeyringOpenFailure(t *testing.T) {
	openErr := errors.New("locked")
	withFailingKeyring(t, openErr)

	checks := map[string]error{
		"SaveProfile":       SaveProfile("x", Profile{}),
		"DeleteProfile":     DeleteProfile("x"),
		"SetCurrentProfile": SetCurrentProfile("x"),
	}
	_, checks["LoadProfile"] = LoadProfile("x")
	_, checks["ListProfiles"] = ListProfiles()
	_, checks["CurrentProfile"] = CurrentProfile()

	for name, err := range checks {
		if !errors.Is(err, openErr) {
			t.Errorf("%s error = %v, want wrapped %v", name, err, openErr)
		}
	}
}

func TestDeleteProfileSwitchesCurrentProfile(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	if err := SaveProfile("a", Profile{ClientID: "1"}); err != nil {
		t.Fatal(err)
	}
	if err := SaveProfile("b", Profile{ClientID: "2"}); err != nil {
		t.Fatal(err)
	}
	if err := DeleteProfile("b"); err != nil {
		t.Fatalf("DeleteProfile() error: %v", err)
	}

	current, _ := CurrentProfile()
	if current != "a" {
		t.Errorf("current = %q, want a", current)
	}
	if _, err := LoadProfile("b"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("deleted profile still loads: %v", err)
	}
	profiles, _ := ListProfiles()
	if len(profiles) != 1 || profiles[0] != "a" {
		t.Errorf("profiles = %v, want [a]", profiles)
	}
}

func TestDeleteMissingProfile(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	if err := DeleteProfile("ghost"); err != nil {
		t.Fatalf("DeleteProfile() error: %v", err)
	}
}

func TestSetCurrentProfile(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	if err := SetCurrentProfile("ghost"); err == nil {
		t.Fatal("expected error for unknown profile")
	}

	_ = SaveProfile("a", Profile{})
	_ = SaveProfile("b", Profile{})
	if err := SetCurrentProfile("a"); err != nil {
		t.Fatalf("SetCurrentProfile() error: %v", err)
	}
	if current, _ := CurrentProfile(); current != "a" {
		t.Errorf("current = %q, want a", current)
	}
}

func TestCurrentProfileFromEnv(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))
	t.Setenv(EnvProfile, "staging")

	if current, _ := CurrentProfile(); current != "staging" {
		t.Errorf("current = %q, want staging", current)
	}
}

func TestCurrentProfileDefault(t *testing.T) {
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	if current, _ := CurrentProfile(); current != defaultProfile {
		t.Errorf("current = %q, want %q", current, defaultProfile)
	}
}

func TestProfileExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{"no expiry", time.Time{}, false},
		{"future", now.Add(time.Hour), false},
		{"past", now.Add(-time.Hour), true},
		{"exactly now", now, true},
	}
	for _, tt := range tests {
		if got := (Profile{ExpiresAt: tt.expires}).Expired(now); got != tt.want {
			t.Errorf("%s: Expired() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
