package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
)

// Params holds request fields. Values may be scalars, sequences or nested
// sequences of scalars.
type Params map[string]any

// Values flattens p into form fields. Sequences become indexed keys
// (key[0], key[1]) and nest further for nested sequences.
func (p Params) Values() url.Values {
	values := url.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		appendField(values, k, p[k])
	}
	return values
}

// Encode returns p in application/x-www-form-urlencoded form.
func (p Params) Encode() string {
	return p.Values().Encode()
}

func appendField(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
		values.Add(key, "")
	case string:
		values.Add(key, v)
	case []byte:
		values.Add(key, string(v))
	case bool:
		if v {
			values.Add(key, "1")
		} else {
			values.Add(key, "")
		}
	case fmt.Stringer:
		values.Add(key, v.String())
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				appendField(values, fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
			}
			return
		}
		values.Add(key, fmt.Sprint(value))
	}
}
