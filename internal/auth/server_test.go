package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/vkcom/vk-cli/internal/oauth"
)

func newTestServer(t *testing.T) *CallbackServer {
	t.Helper()
	s, err := NewCallbackServer("http://127.0.0.1:8765/callback")
	if err != nil {
		t.Fatalf("NewCallbackServer() error = %v", err)
	}
	return s
}

func callback(t *testing.T, s *CallbackServer, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/callback?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewCallbackServer(t *testing.T) {
	t.Run("issues unique states", func(t *testing.T) {
		a := newTestServer(t)
		b := newTestServer(t)
		if a.State() == "" || a.State() == b.State() {
			t.Errorf("states = %q, %q; want distinct non-empty", a.State(), b.State())
		}
	})

	t.Run("rejects non-loopback redirect", func(t *testing.T) {
		invalid := []string{
			"https://example.com/callback",
			"http://example.com:8765/callback",
			"http://127.0.0.1/callback",
			"",
		}
		for _, uri := range invalid {
			if _, err := NewCallbackServer(uri); err == nil {
				t.Errorf("NewCallbackServer(%q) expected error", uri)
			}
		}
	})
}

func TestHandleCallback(t *testing.T) {
	t.Run("delivers code", func(t *testing.T) {
		s := newTestServer(t)
		rec := callback(t, s, url.Values{"code": {"abc"}, "state": {s.State()}})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authorization complete") {
			t.Errorf("body missing success text: %s", rec.Body.String())
		}
		select {
		case result := <-s.result:
			if result.Code != "abc" || result.Err() != nil {
				t.Errorf("result = %+v", result)
			}
		default:
			t.Fatal("no result delivered")
		}
	})

	t.Run("delivers provider error", func(t *testing.T) {
		s := newTestServer(t)
		rec := callback(t, s, url.Values{
			"error":             {"access_denied"},
			"error_description": {"User denied your request"},
			"state":             {s.State()},
		})

		if !strings.Contains(rec.Body.String(), "User denied your request") {
			t.Errorf("body missing description: %s", rec.Body.String())
		}
		result := <-s.result
		var oe *oauth.OAuthError
		if !errors.As(result.Err(), &oe) || oe.Code != "access_denied" {
			t.Errorf("Err() = %v, want access_denied OAuthError", result.Err())
		}
	})

	t.Run("rejects state mismatch", func(t *testing.T) {
		s := newTestServer(t)
		rec := callback(t, s, url.Values{"code": {"abc"}, "state": {"forged"}})

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if len(s.result) != 0 {
			t.Error("result delivered despite state mismatch")
		}
	})

	t.Run("rejects missing code", func(t *testing.T) {
		s := newTestServer(t)
		rec := callback(t, s, url.Values{"state": {s.State()}})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/callback", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("only first callback is delivered", func(t *testing.T) {
		s := newTestServer(t)
		callback(t, s, url.Values{"code": {"first"}, "state": {s.State()}})
		callback(t, s, url.Values{"code": {"second"}, "state": {s.State()}})

		if result := <-s.result; result.Code != "first" {
			t.Errorf("code = %q, want first", result.Code)
		}
	})

	t.Run("escapes provider text", func(t *testing.T) {
		s := newTestServer(t)
		rec := callback(t, s, url.Values{
			"error":             {"x"},
			"error_description": {"<script>alert(1)</script>"},
			"state":             {s.State()},
		})
		if strings.Contains(rec.Body.String(), "<script>alert(1)</script>") {
			t.Error("description rendered unescaped")
		}
	})
}

func TestServe(t *testing.T) {
	s := newTestServer(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	callbackURL := "http://" + listener.Addr().String() + "/callback?code=xyz&state=" + url.QueryEscape(s.State())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		resp, err := http.Get(callbackURL)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}()

	var out bytes.Buffer
	result, err := s.Serve(ctx, listener, "https://oauth.vk.com/authorize?client_id=1", &out)
	if err != nil {
		t.Fatalf("Serve() error = %v", err)
	}
	if result.Code != "xyz" {
		t.Errorf("code = %q, want xyz", result.Code)
	}
	if !strings.Contains(out.String(), "https://oauth.vk.com/authorize?client_id=1") {
		t.Errorf("output missing authorize URL: %q", out.String())
	}
}

func TestServeContextCancelled(t *testing.T) {
	s := newTestServer(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Serve(ctx, listener, "https://oauth.vk.com/authorize", io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}

func TestShouldSkipAutoBrowserOpenUnderTest(t *testing.T) {
	if !shouldSkipAutoBrowserOpen() {
		t.Error("browser launch must be skipped under go test")
	}
}
