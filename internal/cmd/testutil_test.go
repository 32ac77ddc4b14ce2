package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/99designs/keyring"

	"github.com/vkcom/vk-cli/internal/config"
)

// captureStdout executes a function and captures its stdout output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// captureStderr executes a function and captures its stderr output.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// apiRequest is one form POST received by the mock server.
type apiRequest struct {
	Path string
	Form url.Values
}

// mockAPI serves VK-style envelopes per method path and records every
// request it receives.
type mockAPI struct {
	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []apiRequest
}

func newMockAPI() *mockAPI {
	return &mockAPI{routes: make(map[string]http.HandlerFunc)}
}

// On registers a handler for a path such as "/method/wall.get".
func (m *mockAPI) On(path string, handler http.HandlerFunc) *mockAPI {
	m.routes[path] = handler
	return m
}

func (m *mockAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(1 << 20)
	m.mu.Lock()
	m.requests = append(m.requests, apiRequest{Path: r.URL.Path, Form: r.PostForm})
	handler, ok := m.routes[r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found: ` + r.URL.Path + `"}`))
		return
	}
	handler(w, r)
}

// Requests returns a copy of the recorded requests.
func (m *mockAPI) Requests() []apiRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]apiRequest(nil), m.requests...)
}

// jsonResponse returns a handler writing body with the given status.
func jsonResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// vkResponse wraps body in a {"response": ...} envelope.
func vkResponse(body string) http.HandlerFunc {
	return jsonResponse(http.StatusOK, `{"response": `+body+`}`)
}

// vkError returns an API error envelope.
func vkError(code int, message string) http.HandlerFunc {
	payload, _ := json.Marshal(map[string]any{
		"error": map[string]any{
			"error_code": code,
			"error_msg":  message,
		},
	})
	return jsonResponse(http.StatusOK, string(payload))
}

// testEnv holds the mock server of a test.
type testEnv struct {
	server *httptest.Server
	api    *mockAPI
}

// setupTestEnv starts a mock API server, points VK_API_URL and VK_OAUTH_URL
// at it and gives the test a token and an empty keyring.
func setupTestEnv(t *testing.T, api *mockAPI) *testEnv {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	t.Setenv(config.EnvAPIURL, server.URL+"/method/")
	t.Setenv(config.EnvOAuthURL, server.URL+"/oauth")
	t.Setenv(config.EnvAccessToken, "test-token")
	t.Setenv(config.EnvAPIVersion, "")
	t.Setenv(config.EnvProfile, "")
	t.Setenv(config.EnvClientID, "")
	t.Setenv(config.EnvClientSecret, "")
	t.Setenv(config.EnvRedirectURI, "")
	t.Setenv(config.EnvLang, "")
	t.Setenv("VK_OUTPUT", "text")
	useFreshKeyring(t)

	return &testEnv{server: server, api: api}
}

// useFreshKeyring replaces the keyring with an empty in-memory one for the
// duration of the test.
func useFreshKeyring(t *testing.T) keyring.Keyring {
	t.Helper()
	ring := keyring.NewArrayKeyring(nil)
	restore := config.SetOpenKeyring(func(keyring.Config) (keyring.Keyring, error) {
		return ring, nil
	})
	t.Cleanup(restore)
	return ring
}

// decodeJSON decodes a JSON object printed by a command.
func decodeJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &out); err != nil {
		t.Fatalf("invalid JSON output %q: %v", output, err)
	}
	return out
}
