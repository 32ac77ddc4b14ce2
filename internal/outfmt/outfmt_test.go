package outfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"json", JSON, false},
		{"jsonl", JSONL, false},
		{"ndjson", JSONL, false},
		{"yaml", Text, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModeContext(t *testing.T) {
	ctx := context.Background()
	if ModeFromContext(ctx) != Text || IsJSON(ctx) {
		t.Error("default mode should be text")
	}

	ctx = WithMode(ctx, JSONL)
	if !IsJSON(ctx) || !IsJSONL(ctx) {
		t.Error("jsonl mode should count as JSON")
	}
	if JSONL.String() != "jsonl" || JSON.String() != "json" || Text.String() != "text" {
		t.Error("unexpected mode names")
	}

	if IsCompact(ctx) {
		t.Error("compact should default to false")
	}
	if !IsCompact(WithCompact(ctx, true)) {
		t.Error("compact flag not stored")
	}
}

func TestWriteJSONMaybeCompact(t *testing.T) {
	var pretty, compact bytes.Buffer
	v := map[string]any{"url": "https://vk.com/?a=1&b=2"}

	if err := WriteJSON(&pretty, v); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSONMaybeCompact(&compact, v, true); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(pretty.String(), "\n  ") {
		t.Errorf("pretty output not indented: %q", pretty.String())
	}
	if compact.String() != `{"url":"https://vk.com/?a=1&b=2"}`+"\n" {
		t.Errorf("compact output = %q", compact.String())
	}
}

func TestWriteJSONLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONLines(&buf, []any{map[string]any{"id": 1}, map[string]any{"id": 2}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\"id\":1}\n{\"id\":2}\n" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteJSONLines(&buf, json.RawMessage(`[1, 2]`)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[1,2]\n" {
		t.Errorf("raw message output = %q", buf.String())
	}
}

func TestNormalizeJSONOutput(t *testing.T) {
	var nilSlice []string
	if got, ok := normalizeJSONOutput(nilSlice).([]any); !ok || len(got) != 0 {
		t.Errorf("nil slice should become empty slice, got %#v", normalizeJSONOutput(nilSlice))
	}

	decoded, ok := normalizeJSONOutput(json.RawMessage(`{"count":1}`)).(map[string]any)
	if !ok || decoded["count"] != float64(1) {
		t.Errorf("raw message not decoded: %#v", decoded)
	}

	bad := json.RawMessage(`{`)
	if got, ok := normalizeJSONOutput(bad).(json.RawMessage); !ok || string(got) != "{" {
		t.Errorf("invalid raw message should pass through, got %#v", got)
	}

	if normalizeJSONOutput(nil) != nil {
		t.Error("nil should stay nil")
	}
}

func TestApplyQuery(t *testing.T) {
	raw := json.RawMessage(`{"count":2,"items":[{"id":1},{"id":2}]}`)

	got, err := ApplyQuery(raw, ".count")
	if err != nil {
		t.Fatalf("ApplyQuery() error: %v", err)
	}
	if got != float64(2) {
		t.Errorf("ApplyQuery() = %v", got)
	}

	if _, err := ApplyQuery(raw, "[[["); err == nil {
		t.Error("expected error for invalid query")
	}
}

func TestWriteJSONFiltered(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONFiltered(&buf, map[string]any{"items": []any{map[string]any{"id": 7}}}, ".items[0].id", true)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "7\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data any
		want string
	}{
		{"field", "{{.first_name}}", map[string]any{"first_name": "Pavel"}, "Pavel\n"},
		{"missing key", "[{{.nope}}]", map[string]any{}, "[<no value>]\n"},
		{"json func", "{{json .}}", map[string]any{"a": 1}, "{\"a\":1}\n"},
		{"join func", "{{join \",\" .ids}}", map[string]any{"ids": []any{1, 2, 3}}, "1,2,3\n"},
		{"keeps trailing newline", "x\n", nil, "x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTemplate(&buf, tt.data, tt.tmpl); err != nil {
				t.Fatalf("WriteTemplate() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteTemplateErrors(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTemplate(&buf, nil, "{{.x")
	if err == nil || !strings.Contains(err.Error(), "invalid template") {
		t.Errorf("parse error = %v", err)
	}

	err = WriteTemplate(&buf, map[string]any{"n": 1}, "{{index .n 0}}")
	if err == nil || !strings.Contains(err.Error(), "template execution error") {
		t.Errorf("exec error = %v", err)
	}
}
