package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const variationJSON = `{
	"id": 733,
	"sku": "SHIRT-BLUE",
	"status": "publish",
	"price": "9.00",
	"regular_price": "9.00",
	"stock_status": "instock",
	"attributes": [{"id": 6, "name": "Color", "option": "Blue"}]
}`

func TestVariationsList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products/22/variations", jsonResponse(200, `[`+variationJSON+`]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "variations", "list", "22", "--stock-status", "instock")

	assert.Contains(t, out, "SHIRT-BLUE")
	assert.Contains(t, out, "Color=Blue")
	assert.Equal(t, "instock", handler.last(t, "GET", "/products/22/variations").Query["stock_status"])
}

func TestVariationsCreateWithOptions(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products/attributes", jsonResponse(200, `[{"id": 6, "name": "Color", "slug": "pa_color"}]`)).
		On("POST", "/products/22/variations", jsonResponse(201, variationJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "variations", "create", "22",
		"--regular-price", "9.5",
		"--option", "Color=Blue",
		"--option", "7=XL",
		"--option", "Engraving=None",
	)

	body := handler.last(t, "POST", "/products/22/variations").Body
	assert.Equal(t, "9.5", body["regular_price"])
	assert.Equal(t, []any{
		map[string]any{"id": float64(6), "option": "Blue"},
		map[string]any{"id": float64(7), "option": "XL"},
		map[string]any{"name": "Engraving", "option": "None"},
	}, body["attributes"])
}

func TestVariationsCreateRejectsInvalidOption(t *testing.T) {
	handler := newRouteHandler()
	setupTestEnvWithHandler(t, handler)

	_, err := run(t, "variations", "create", "22", "--option", "Blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for --option")
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestVariationsUpdateSendsOnlyChanges(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/products/22/variations/733", jsonResponse(200, variationJSON)).
		On("PUT", "/products/22/variations/733", jsonResponse(200, variationJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "variations", "update", "22", "733", "--stock-quantity", "5")

	assert.Equal(t, map[string]any{
		"stock_quantity": float64(5),
		"manage_stock":   true,
	}, handler.last(t, "PUT", "/products/22/variations/733").Body)
}

func TestVariationsRejectInvalidProductID(t *testing.T) {
	handler := newRouteHandler()
	setupTestEnvWithHandler(t, handler)

	_, err := run(t, "variations", "get", "shirt", "733")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}
