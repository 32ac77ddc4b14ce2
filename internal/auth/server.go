// Package auth runs the local callback server for the browser login flow.
package auth

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vkcom/vk-cli/internal/oauth"
	"github.com/vkcom/vk-cli/internal/validation"
)

// ErrStateMismatch is reported to the browser when the callback carries a
// state other than the one the server issued.
var ErrStateMismatch = errors.New("state mismatch")

var (
	successPage = template.Must(template.New("success").Parse(successTemplate))
	failurePage = template.Must(template.New("failure").Parse(failureTemplate))
)

// CallbackResult is what the provider sent back to the redirect URI.
type CallbackResult struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// Err returns the provider error carried by the callback, if any.
func (r *CallbackResult) Err() error {
	if r.Error == "" {
		return nil
	}
	return &oauth.OAuthError{Code: r.Error, Description: r.ErrorDescription}
}

// CallbackServer receives the authorization redirect on a loopback address.
type CallbackServer struct {
	redirect *url.URL
	state    string
	result   chan CallbackResult
	once     sync.Once
}

// NewCallbackServer creates a server for redirectURI, which must be an http
// loopback URL with an explicit port.
func NewCallbackServer(redirectURI string) (*CallbackServer, error) {
	u, err := validation.ParseLoopbackRedirect(redirectURI)
	if err != nil {
		return nil, err
	}
	return &CallbackServer{
		redirect: u,
		state:    uuid.NewString(),
		result:   make(chan CallbackResult, 1),
	}, nil
}

// State returns the state value to put into the authorize URL.
func (s *CallbackServer) State() string {
	return s.state
}

// Handler returns the HTTP handler serving the callback path.
func (s *CallbackServer) Handler() http.Handler {
	path := s.redirect.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.HandleFunc(path, s.handleCallback)
	return mux
}

// Start listens on the redirect URI's address, opens authURL in the browser
// and waits for the callback.
func (s *CallbackServer) Start(ctx context.Context, authURL string, out io.Writer) (*CallbackResult, error) {
	listener, err := net.Listen("tcp", s.redirect.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to start callback server on %s: %w", s.redirect.Host, err)
	}
	return s.Serve(ctx, listener, authURL, out)
}

// Serve is Start on an existing listener.
func (s *CallbackServer) Serve(ctx context.Context, listener net.Listener, authURL string, out io.Writer) (*CallbackResult, error) {
	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		_ = server.Serve(listener)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
		}
	}()

	_, _ = fmt.Fprintf(out, "Open this URL in your browser to authorize:\n  %s\n", authURL)
	if err := openBrowser(authURL); err != nil {
		_, _ = fmt.Fprintf(out, "Could not open browser automatically: %v\n", err)
	}

	select {
	case result := <-s.result:
		return &result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	result := CallbackResult{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Error:            query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	}

	if result.State != s.state {
		renderPage(w, http.StatusBadRequest, failurePage, ErrStateMismatch.Error())
		return
	}
	if result.Error == "" && result.Code == "" {
		renderPage(w, http.StatusBadRequest, failurePage, "missing authorization code")
		return
	}

	s.once.Do(func() { s.result <- result })

	if err := result.Err(); err != nil {
		renderPage(w, http.StatusOK, failurePage, err.Error())
		return
	}
	renderPage(w, http.StatusOK, successPage, "")
}

func renderPage(w http.ResponseWriter, status int, tmpl *template.Template, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = tmpl.Execute(w, map[string]string{"Message": message})
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	if shouldSkipAutoBrowserOpen() {
		return nil
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}

func shouldSkipAutoBrowserOpen() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}

	noBrowser := strings.TrimSpace(strings.ToLower(os.Getenv("VK_NO_BROWSER")))
	return noBrowser == "1" || noBrowser == "true" || noBrowser == "yes"
}
