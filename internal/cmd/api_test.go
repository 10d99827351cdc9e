package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGet(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/system_status/tools", jsonResponse(200, `[{"id":"clear_transients","name":"WC transients"}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "api", "get", "/system_status/tools", "--param", "context=edit")

	assert.Contains(t, out, "clear_transients")
	assert.Equal(t, "edit", handler.last(t, "GET", "/system_status/tools").Query["context"])
}

func TestAPIGetInclude(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products", jsonResponse(200, `[]`))
	setupTestEnvWithHandler(t, handler)

	obj := decodeObject(t, mustRun(t, "api", "get", "products", "--include"))

	assert.Equal(t, float64(200), obj["status"])
	assert.Contains(t, obj, "headers")
	assert.Equal(t, []any{}, obj["body"])
}

func TestAPIPostMergesFields(t *testing.T) {
	handler := newRouteHandler().
		On("POST", "/products/batch", jsonResponse(200, `{"create":[]}`))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "api", "post", "products/batch",
		"-d", `{"delete":[799],"name":"from data"}`,
		"-f", "name=from field",
		"-F", "update=[{\"id\":794,\"featured\":true}]",
	)

	body := handler.last(t, "POST", "/products/batch").Body
	assert.Equal(t, []any{float64(799)}, body["delete"])
	assert.Equal(t, "from field", body["name"])
	assert.Equal(t, []any{map[string]any{"id": float64(794), "featured": true}}, body["update"])
}

func TestAPIDeleteSilent(t *testing.T) {
	handler := newRouteHandler().
		On("DELETE", "/coupons/719", jsonResponse(200, `{"id":719}`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "api", "delete", "coupons/719", "--param", "force=true", "-s")

	assert.Empty(t, out)
	assert.Equal(t, "true", handler.last(t, "DELETE", "/coupons/719").Query["force"])
}

func TestAPIErrors(t *testing.T) {
	handler := newRouteHandler()
	setupTestEnvWithHandler(t, handler)

	_, err := run(t, "api", "post", "products", "-f", "name")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))

	_, err = run(t, "api", "put", "products/1", "-F", "price={bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for --raw-field")

	_, err = run(t, "api", "get", "nothing/here")
	require.Error(t, err)
	assert.Equal(t, exitNotFound, ExitCode(err))
}

func TestParseField(t *testing.T) {
	key, value, err := parseField(" status = draft")
	require.NoError(t, err)
	assert.Equal(t, "status", key)
	assert.Equal(t, " draft", value)

	_, _, err = parseField("=x")
	assert.Error(t, err)
}

func TestAPIGetSplitsInlineQuery(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products", jsonResponse(200, `[{"id":794}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "api", "get", "products?per_page=5&orderby=date", "--param", "orderby=price")

	assert.Contains(t, out, "794")
	q := handler.last(t, "GET", "/products").Query
	assert.Equal(t, "5", q["per_page"])
	assert.Equal(t, "price", q["orderby"])
	assert.NotEmpty(t, q["oauth_signature"])
}

func TestAPIGetWritesJSONInTextMode(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/system_status", jsonResponse(200, `{"environment":{"version":"9.1.0"}}`))
	setupTestEnvWithHandler(t, handler)

	obj := decodeObject(t, mustRun(t, "api", "get", "system_status", "-o", "text"))

	assert.Equal(t, map[string]any{"version": "9.1.0"}, obj["environment"])
}
