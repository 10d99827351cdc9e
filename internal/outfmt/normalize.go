package outfmt

import (
	"encoding/json"
	"reflect"
)

// wrapList puts list results under an "items" key so every collection
// prints as an object, and `.items[]` works the same for products, orders
// or a page with one entry. Single objects and raw JSON pass through.
func wrapList(v any) any {
	switch v.(type) {
	case nil, []byte, json.RawMessage:
		return v
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return v
		}
		rv = rv.Elem()
	}

	switch {
	case rv.Kind() == reflect.Array:
		return map[string]any{"items": rv.Interface()}
	case rv.Kind() != reflect.Slice, rv.Type().Elem().Kind() == reflect.Uint8:
		return v
	case rv.IsNil():
		// null would break `.items[]`.
		return map[string]any{"items": []any{}}
	default:
		return map[string]any{"items": rv.Interface()}
	}
}
