package validation

import (
	"strings"
	"testing"
)

func TestValidateMethodName(t *testing.T) {
	valid := []string{"users.get", "wall.getById", "execute", "secure.sendSMSNotification"}
	for _, name := range valid {
		if err := ValidateMethodName(name); err != nil {
			t.Errorf("ValidateMethodName(%q) unexpected error: %v", name, err)
		}
	}

	invalid := []string{"", "users.", ".get", "users.get.all", "users/get", "1users.get", strings.Repeat("a", MaxMethodLength+1)}
	for _, name := range invalid {
		if err := ValidateMethodName(name); err == nil {
			t.Errorf("ValidateMethodName(%q) expected error", name)
		}
	}
}

func TestValidateFieldKey(t *testing.T) {
	if err := ValidateFieldKey("owner_id"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateFieldKey("  "); err == nil {
		t.Error("expected error for blank key")
	}
	if err := ValidateFieldKey(strings.Repeat("k", MaxFieldKeyBytes+1)); err == nil {
		t.Error("expected error for long key")
	}
}

func TestValidateJSONPayload(t *testing.T) {
	if err := ValidateJSONPayload(`{"a":1}`); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateJSONPayload(""); err == nil {
		t.Error("expected error for empty payload")
	}
	if err := ValidateJSONPayload(strings.Repeat("x", MaxJSONPayload+1)); err == nil {
		t.Error("expected error for oversized payload")
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: " 7 ", want: 7},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePositiveInt(tt.in, "count")
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePositiveInt(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePositiveInt(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}
