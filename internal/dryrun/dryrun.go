// Package dryrun previews requests instead of sending them.
package dryrun

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/vkcom/vk-cli/internal/debug"
)

type contextKey string

const dryRunKey contextKey = "dry_run_enabled"

// secretFields are masked in previews.
var secretFields = map[string]bool{
	"access_token":  true,
	"client_secret": true,
	"code":          true,
}

// WithDryRun returns a context with dry-run mode enabled/disabled.
func WithDryRun(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, dryRunKey, enabled)
}

// IsEnabled returns true if dry-run mode is enabled.
func IsEnabled(ctx context.Context) bool {
	if v, ok := ctx.Value(dryRunKey).(bool); ok {
		return v
	}
	return false
}

// Preview describes a request that was not sent.
type Preview struct {
	Operation string            `json:"operation"`
	Endpoint  string            `json:"endpoint"`
	Fields    map[string]string `json:"fields,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// NewPreview builds a preview from the form fields of a request. Multiple
// values of one field are shown comma-separated; secrets are masked.
func NewPreview(operation, endpoint string, fields url.Values) *Preview {
	p := &Preview{
		Operation: operation,
		Endpoint:  endpoint,
		Fields:    make(map[string]string, len(fields)),
	}
	for key, values := range fields {
		value := strings.Join(values, ",")
		if secretFields[key] {
			value = debug.Redact(value)
		}
		p.Fields[key] = value
	}
	return p
}

// Warn appends a warning shown with the preview.
func (p *Preview) Warn(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Write outputs the preview to the writer
func (p *Preview) Write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "[DRY-RUN] Would %s %s\n", p.Operation, p.Endpoint)
	_, _ = fmt.Fprintf(w, "───────────────────────────────────────\n")

	if len(p.Fields) > 0 {
		keys := make([]string, 0, len(p.Fields))
		for k := range p.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", k, p.Fields[k])
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(p.Warnings) > 0 {
		_, _ = fmt.Fprintln(w, "Warnings:")
		for _, warning := range p.Warnings {
			_, _ = fmt.Fprintf(w, "  ! %s\n", warning)
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "───────────────────────────────────────\n")
	_, _ = fmt.Fprintln(w, "No request sent (dry-run mode)")
}
