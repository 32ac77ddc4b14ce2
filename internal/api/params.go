package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vkcom/vk-cli/internal/transport"
)

// FormatParams converts method parameters to their wire form: sequences are
// joined with commas and booleans become 1 or 0. Nil values are dropped.
func FormatParams(params map[string]any) transport.Params {
	out := make(transport.Params, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		out[k] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if b, ok := v.([]byte); ok {
			return string(b)
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, formatValue(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ",")
	}
	if rv.Kind() == reflect.Float64 || rv.Kind() == reflect.Float32 {
		f := rv.Float()
		if f == float64(int64(f)) {
			return fmt.Sprintf("%d", int64(f))
		}
	}
	return fmt.Sprint(v)
}
