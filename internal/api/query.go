package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Params holds query parameters before they are normalised for the wire.
// Nil values (including nil pointers and empty slices) are dropped and
// slices are joined into a comma-separated string.
type Params map[string]any

// Set stores value under key and returns p for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// clone returns a shallow copy so callers' maps are never mutated.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Normalize converts p into wire strings.
func (p Params) Normalize() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok := formatParam(v); ok {
			out[k] = s
		}
	}
	return out
}

// Values returns the normalised parameters as url.Values.
func (p Params) Values() url.Values {
	values := url.Values{}
	for k, v := range p.Normalize() {
		values.Set(k, v)
	}
	return values
}

func formatParam(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case time.Time:
		if val.IsZero() {
			return "", false
		}
		return val.Format(time.RFC3339), true
	case []string:
		return joinParam(len(val), func(i int) string { return val[i] })
	case []int:
		return joinParam(len(val), func(i int) string { return strconv.Itoa(val[i]) })
	case fmt.Stringer:
		return val.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return formatParam(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return joinParam(rv.Len(), func(i int) string {
			s, _ := formatParam(rv.Index(i).Interface())
			return s
		})
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return fmt.Sprint(v), true
}

func joinParam(n int, item func(int) string) (string, bool) {
	if n == 0 {
		return "", false
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = item(i)
	}
	return strings.Join(parts, ","), true
}

// ListParams are the collection filters shared by every list endpoint.
// Zero values are omitted from the request.
type ListParams struct {
	ListOptions

	Context string // view | edit
	Search  string
	After   *time.Time
	Before  *time.Time
	Exclude []int
	Include []int
	Offset  int
	Order   string // asc | desc
	OrderBy string
}

// params converts the shared filters into query parameters. Paging keys are
// left to List.
func (p ListParams) params() Params {
	params := Params{}
	setString(params, "context", p.Context)
	setString(params, "search", p.Search)
	if p.After != nil {
		params["after"] = *p.After
	}
	if p.Before != nil {
		params["before"] = *p.Before
	}
	params["exclude"] = p.Exclude
	params["include"] = p.Include
	setInt(params, "offset", p.Offset)
	setString(params, "order", p.Order)
	setString(params, "orderby", p.OrderBy)
	return params
}

func setString(p Params, key, value string) {
	if value != "" {
		p[key] = value
	}
}

func setInt(p Params, key string, value int) {
	if value != 0 {
		p[key] = value
	}
}
