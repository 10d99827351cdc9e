package outfmt

import (
	"context"
	"encoding/json"
	"io"

	"github.com/woopy/woo-cli/internal/filter"
)

type queryKey struct{}

// WithQuery adds a jq query to the context
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryKey{}, query)
}

// GetQuery retrieves the jq query from context
func GetQuery(ctx context.Context) string {
	if q, ok := ctx.Value(queryKey{}).(string); ok {
		return q
	}
	return ""
}

// WriteJSONFiltered writes JSON with optional jq filtering.
// Uses pretty-printed output by default; pass compact=true for single-line output.
func WriteJSONFiltered(w io.Writer, v any, query string, compact bool) error {
	result, err := ApplyQuery(v, query)
	if err != nil {
		return err
	}
	return WriteJSONMaybeCompact(w, result, compact)
}

// ApplyQuery applies a jq query to structured data and returns the filtered value.
func ApplyQuery(v any, query string) (any, error) {
	v = wrapList(v)
	if query == "" {
		return v, nil
	}

	// Round-trip through JSON so jq sees plain maps and slices.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return filter.ApplyFromJSON(data, query)
}

// WriteJSONLines writes each element of items as one compact JSON line.
// Non-list values are written as a single line.
func WriteJSONLines(w io.Writer, v any) error {
	if m, ok := v.(map[string]any); ok {
		if items, ok := m["items"].([]any); ok {
			for _, item := range items {
				if err := WriteJSONMaybeCompact(w, item, true); err != nil {
					return err
				}
			}
			return nil
		}
	}
	if items, ok := v.([]any); ok {
		for _, item := range items {
			if err := WriteJSONMaybeCompact(w, item, true); err != nil {
				return err
			}
		}
		return nil
	}
	return WriteJSONMaybeCompact(w, v, true)
}
