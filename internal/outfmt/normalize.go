package outfmt

import (
	"encoding/json"
	"reflect"
)

// normalizeJSONOutput decodes raw JSON so filters see plain values, and
// turns nil slices into empty ones so they print as [] instead of null.
func normalizeJSONOutput(v any) any {
	switch raw := v.(type) {
	case nil:
		return nil
	case json.RawMessage:
		var decoded any
		if len(raw) == 0 || json.Unmarshal(raw, &decoded) != nil {
			return v
		}
		return decoded
	case []byte:
		return v
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.IsNil() && rv.Type().Elem().Kind() != reflect.Uint8 {
		return []any{}
	}
	return v
}
