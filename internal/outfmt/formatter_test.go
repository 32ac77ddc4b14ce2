package outfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatter_Output(t *testing.T) {
	data := map[string]string{"name": "test"}

	t.Run("text mode leaves output to caller", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(WithMode(context.Background(), Text), &buf, &buf)
		handled, err := f.Output(data)
		if err != nil || handled {
			t.Fatalf("Output() = %v, %v; want false, nil", handled, err)
		}
		if buf.Len() != 0 {
			t.Errorf("text mode wrote %q", buf.String())
		}
	})

	t.Run("json mode", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(WithMode(context.Background(), JSON), &buf, &buf)
		handled, err := f.Output(data)
		if err != nil || !handled {
			t.Fatalf("Output() = %v, %v", handled, err)
		}
		if !strings.Contains(buf.String(), `"name": "test"`) {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("template in text mode", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithTemplate(context.Background(), "hi {{.name}}")
		f := NewFormatter(ctx, &buf, &buf)
		handled, err := f.Output(data)
		if err != nil || !handled {
			t.Fatalf("Output() = %v, %v", handled, err)
		}
		if buf.String() != "hi test\n" {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestFormatter_Print(t *testing.T) {
	raw := json.RawMessage(`{"count":2,"items":[{"id":1},{"id":2}]}`)

	t.Run("text mode prints indented JSON", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(context.Background(), &buf, &buf)
		if err := f.Print(raw); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  \"count\": 2") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("jsonl with query", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithQuery(WithMode(context.Background(), JSONL), ".items")
		f := NewFormatter(ctx, &buf, &buf)
		if err := f.Print(raw); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "{\"id\":1}\n{\"id\":2}\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("compact json", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithCompact(WithMode(context.Background(), JSON), true)
		f := NewFormatter(ctx, &buf, &buf)
		if err := f.Print(raw); err != nil {
			t.Fatal(err)
		}
		if buf.String() != `{"count":2,"items":[{"id":1},{"id":2}]}`+"\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("query error", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithQuery(context.Background(), "[[[")
		if err := NewFormatter(ctx, &buf, &buf).Print(raw); err == nil {
			t.Error("expected query error")
		}
	})
}

func TestFormatter_Table(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(WithMode(context.Background(), Text), &buf, &buf)

	if !f.StartTable([]string{"METHOD", "SUMMARY"}) {
		t.Fatal("StartTable() should report text mode")
	}
	f.Row("wall.get", "Returns a list of posts")
	if err := f.EndTable(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "METHOD") {
		t.Errorf("table = %q", buf.String())
	}
	if strings.Index(lines[0], "SUMMARY") != strings.Index(lines[1], "Returns") {
		t.Errorf("columns not aligned: %q", buf.String())
	}
}

func TestFormatter_TableSkippedInJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(WithMode(context.Background(), JSON), &buf, &buf)
	if f.StartTable([]string{"A"}) {
		t.Error("StartTable() should return false in JSON mode")
	}
}

func TestFormatter_Empty(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewFormatter(context.Background(), &out, &errOut)

	f.Empty("No methods found")

	if !strings.Contains(errOut.String(), "No methods found") || out.Len() != 0 {
		t.Error("empty message should be written to stderr only")
	}
}
