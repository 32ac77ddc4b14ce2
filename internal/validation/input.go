package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Input limits
const (
	MaxURLLength     = 2048
	MaxJSONPayload   = 1048576 // 1MB for -d/--data payloads
	MaxMethodLength  = 128
	MaxFieldKeyBytes = 256
)

// methodNamePattern matches "namespace.method" and bare names such as "execute".
var methodNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(\.[A-Za-z][A-Za-z0-9]*)?$`)

// ValidateMethodName validates a remote API method name.
func ValidateMethodName(name string) error {
	if name == "" {
		return fmt.Errorf("method name cannot be empty")
	}
	if len(name) > MaxMethodLength {
		return fmt.Errorf("method name exceeds maximum length of %d characters", MaxMethodLength)
	}
	if !methodNamePattern.MatchString(name) {
		return fmt.Errorf("invalid method name %q: expected namespace.method", name)
	}
	return nil
}

// ValidateFieldKey validates a request parameter name.
func ValidateFieldKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}
	if len(key) > MaxFieldKeyBytes {
		return fmt.Errorf("parameter name exceeds maximum length of %d bytes", MaxFieldKeyBytes)
	}
	return nil
}

// ValidateJSONPayload validates JSON payload size
func ValidateJSONPayload(payload string) error {
	if payload == "" {
		return fmt.Errorf("JSON payload cannot be empty")
	}
	if len(payload) > MaxJSONPayload {
		return fmt.Errorf("JSON payload exceeds maximum size of %d bytes (got %d)", MaxJSONPayload, len(payload))
	}
	return nil
}

// ParsePositiveInt parses s as a positive integer. Used for ids and counts.
func ParsePositiveInt(s string, fieldName string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", fieldName, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", fieldName)
	}
	return int(n), nil
}
