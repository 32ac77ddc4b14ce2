package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestClientPostSendsForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != formContentType {
			t.Errorf("Content-Type = %q", ct)
		}
		if ua := r.Header.Get("User-Agent"); ua != "vk-cli/test" {
			t.Errorf("User-Agent = %q", ua)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("user_ids"); got != "1" {
			t.Errorf("user_ids = %q", got)
		}
		if got := r.PostForm.Get("fields[1]"); got != "city" {
			t.Errorf("fields[1] = %q", got)
		}
		w.Header().Set("X-Request", "abc")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"response":[]}`))
	}))
	defer server.Close()

	client := New(WithUserAgent("vk-cli/test"))
	resp, err := client.Post(context.Background(), server.URL, Params{
		"user_ids": 1,
		"fields":   []string{"sex", "city"},
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d", resp.StatusCode())
	}
	if v, ok := resp.Header("X-Request"); !ok || v != "abc" {
		t.Errorf("Header(X-Request) = %q, %v", v, ok)
	}
	if resp.Body() != `{"response":[]}` {
		t.Errorf("Body() = %q", resp.Body())
	}
}

func TestClientHeaderNamesAreCanonical(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["x-vk-id"] = []string{"1"}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	resp, err := New().Post(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if v, ok := resp.Header("X-Vk-Id"); !ok || v != "1" {
		t.Errorf("Header(X-Vk-Id) = %q, %v", v, ok)
	}
	if _, ok := resp.Headers()["x-vk-id"]; ok {
		t.Error("wire spelling should not be kept as a key")
	}
}

func TestClientPostNonOKIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("nope"))
	}))
	defer server.Close()

	resp, err := New().Post(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusForbidden {
		t.Errorf("StatusCode() = %d, want 403", resp.StatusCode())
	}
	if resp.Body() != "nope" {
		t.Errorf("Body() = %q", resp.Body())
	}
}

func TestClientFollowsRedirectAndKeepsLastHeaders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hop", "first")
		http.Redirect(w, r, "/final", http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		w.Header().Set("X-Final", r.PostForm.Get("a"))
		_, _ = w.Write([]byte("ok"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := New().Post(context.Background(), server.URL+"/start", Params{"a": "b"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200", resp.StatusCode())
	}
	if _, ok := resp.Header("X-Hop"); ok {
		t.Error("headers from the redirect hop should not survive")
	}
	if v, _ := resp.Header("X-Final"); v != "b" {
		t.Errorf("X-Final = %q, want b (body replayed on 307)", v)
	}
}

func TestClientUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary=") {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		file, header, err := r.FormFile("photo")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer func() { _ = file.Close() }()
		data, _ := io.ReadAll(file)
		if string(data) != "jpeg-bytes" {
			t.Errorf("file content = %q", data)
		}
		if header.Filename != "photo.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}
		_, _ = w.Write([]byte(`{"server":1,"photo":"x","hash":"y"}`))
	}))
	defer server.Close()

	resp, err := New().Upload(context.Background(), server.URL, "photo", path)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resp.Body() != `{"server":1,"photo":"x","hash":"y"}` {
		t.Errorf("Body() = %q", resp.Body())
	}
}

func TestClientUploadMissingFile(t *testing.T) {
	_, err := New().Upload(context.Background(), "http://127.0.0.1:1/", "file", filepath.Join(t.TempDir(), "missing.bin"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsError(err) {
		t.Errorf("expected *Error, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestClientInvalidURL(t *testing.T) {
	called := false
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return nil, errors.New("unreachable")
	})

	for _, u := range []string{"", "not a url", "ftp://example.com"} {
		_, err := New(WithHTTPTransport(rt)).Post(context.Background(), u, nil)
		if !IsError(err) {
			t.Errorf("Post(%q) error = %v, want *Error", u, err)
		}
	}
	if called {
		t.Error("no request should be sent for an invalid URL")
	}
}

func TestClientConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	_, err = New().Post(context.Background(), "http://"+addr+"/", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if te.Code != int(syscall.ECONNREFUSED) {
		t.Errorf("Code = %d, want ECONNREFUSED (%d)", te.Code, int(syscall.ECONNREFUSED))
	}
	if te.Message == "" {
		t.Error("Message should not be empty")
	}
}

func TestClientTimeoutFlag(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}
	})

	_, err := New(WithHTTPTransport(rt)).Post(context.Background(), "http://vk.test/", nil)
	if !IsTimeout(err) {
		t.Errorf("IsTimeout(%v) = false", err)
	}
}

func TestClientObserver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	obs := &recordingObserver{}
	client := New(WithObserver(obs))
	if _, err := client.Post(context.Background(), server.URL, nil); err != nil {
		t.Fatalf("Post: %v", err)
	}

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.codes) != 1 || obs.codes[0] != http.StatusAccepted {
		t.Errorf("observed codes = %v", obs.codes)
	}
}

func TestClientDefaults(t *testing.T) {
	if got := New().ConnectTimeout(); got != DefaultConnectTimeout {
		t.Errorf("ConnectTimeout() = %v", got)
	}
	if got := New(WithConnectTimeout(time.Second)).ConnectTimeout(); got != time.Second {
		t.Errorf("ConnectTimeout() = %v", got)
	}
}

func TestHeaderBlockSynthesizesStatusLine(t *testing.T) {
	resp := &http.Response{
		StatusCode: 200,
		Status:     "200",
		Header:     http.Header{"B": {"2"}, "A": {"1", "3"}},
	}
	got := headerBlock(resp)
	want := "HTTP/1.1 200 OK\r\nA: 1\r\nA: 3\r\nB: 2"
	if got != want {
		t.Errorf("headerBlock() = %q, want %q", got, want)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

type recordingObserver struct {
	mu    sync.Mutex
	codes []int
}

func (o *recordingObserver) ObserveRequest(statusCode int, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes = append(o.codes, statusCode)
}
