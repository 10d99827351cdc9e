package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products/tags", jsonResponse(200, `[{"id": 34, "name": "Leather", "slug": "leather", "count": 3}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "tags", "list", "--product", "794", "--slug", "leather")

	assert.Contains(t, out, "Leather")
	q := handler.last(t, "GET", "/products/tags").Query
	assert.Equal(t, "794", q["product"])
	assert.Equal(t, "leather", q["slug"])
}

func TestTagsUpdateSendsNameAndChanges(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products/tags/34", jsonResponse(200, `{"id": 34, "name": "Leather", "slug": "leather"}`)).
		On("PUT", "/products/tags/34", jsonResponse(200, `{"id": 34, "name": "Leather", "slug": "genuine-leather"}`))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "tags", "update", "34", "--slug", "genuine-leather")

	assert.Equal(t, map[string]any{
		"name": "Leather",
		"slug": "genuine-leather",
	}, handler.last(t, "PUT", "/products/tags/34").Body)
}

func TestTagsDelete(t *testing.T) {
	handler := newRouteHandler().
		On("DELETE", "/products/tags/34", jsonResponse(200, `{"id": 34, "name": "Leather"}`))
	setupTestEnvWithHandler(t, handler)

	stderr := captureStderr(t, func() {
		mustRun(t, "tags", "delete", "34")
	})
	assert.Contains(t, stderr, "Deleted tag 34: Leather")
	assert.Equal(t, "true", handler.last(t, "DELETE", "/products/tags/34").Query["force"])
}
