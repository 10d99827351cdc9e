package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
	"id": 727,
	"number": "727",
	"status": "processing",
	"currency": "USD",
	"total": "29.35",
	"customer_id": 25,
	"billing": {"first_name": "John", "last_name": "Doe", "email": "john.doe@example.com"},
	"line_items": [{"id": 315, "name": "Woo Single #1", "product_id": 93, "quantity": 2, "total": "6.00"}],
	"date_created": "2024-03-02T11:30:00"
}`

func TestOrdersList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/orders", jsonResponse(200, `[`+orderJSON+`,{"id":728,"number":"728","status":"on-hold","customer_id":0}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "orders", "list", "--status", "processing,on-hold", "--customer", "25")

	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "29.35 USD")
	assert.Contains(t, out, "guest")

	q := handler.last(t, "GET", "/orders").Query
	assert.Equal(t, "processing,on-hold", q["status"])
	assert.Equal(t, "25", q["customer"])
	_, hasProduct := q["product"]
	assert.False(t, hasProduct)
}

func TestOrdersListEmpty(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/orders", jsonResponse(200, `[]`))
	setupTestEnvWithHandler(t, handler)

	var out string
	stderr := captureStderr(t, func() {
		out = mustRun(t, "orders", "list")
	})
	assert.Empty(t, out)
	assert.Contains(t, stderr, "No orders found")
}

func TestOrdersCreateWithLineItems(t *testing.T) {
	handler := newRouteHandler().
		On("POST", "/orders", jsonResponse(201, orderJSON))
	setupTestEnvWithHandler(t, handler)

	stderr := captureStderr(t, func() {
		mustRun(t, "orders", "create",
			"--customer", "25",
			"--item", "93:2",
			"--item", "22/23",
			"--payment-method", "bacs",
			"--set-paid",
		)
	})
	assert.Contains(t, stderr, "Created order 727")

	body := handler.last(t, "POST", "/orders").Body
	assert.Equal(t, float64(25), body["customer_id"])
	assert.Equal(t, "bacs", body["payment_method"])
	assert.Equal(t, true, body["set_paid"])

	items, ok := body["line_items"].([]any)
	require.True(t, ok, "line_items: %v", body["line_items"])
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, float64(93), first["product_id"])
	assert.Equal(t, float64(2), first["quantity"])
	second := items[1].(map[string]any)
	assert.Equal(t, float64(22), second["product_id"])
	assert.Equal(t, float64(23), second["variation_id"])
	assert.Equal(t, float64(1), second["quantity"])
}

func TestOrdersCreateRejectsInvalidItem(t *testing.T) {
	tests := []string{"abc:1", "93:0", "93:x", "22/:1"}
	for _, item := range tests {
		t.Run(item, func(t *testing.T) {
			handler := newRouteHandler().
				On("POST", "/orders", jsonResponse(201, orderJSON))
			setupTestEnvWithHandler(t, handler)

			_, err := run(t, "orders", "create", "--item", item)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid value for --item")
			assert.Equal(t, exitUsage, ExitCode(err))
			assert.Zero(t, handler.count("POST", "/orders"))
		})
	}
}

func TestParseLineItem(t *testing.T) {
	line, err := parseLineItem(" 93 : 4 ")
	require.NoError(t, err)
	assert.Equal(t, 93, line.ProductID)
	assert.Equal(t, 4, line.Quantity)
	assert.Zero(t, line.VariationID)

	line, err = parseLineItem("22/23")
	require.NoError(t, err)
	assert.Equal(t, 22, line.ProductID)
	assert.Equal(t, 23, line.VariationID)
	assert.Equal(t, 1, line.Quantity)
}

func TestOrdersUpdateStatus(t *testing.T) {
	handler := newRouteHandler().
		On("PUT", "/orders/727", jsonResponse(200, orderJSON))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "orders", "update", "727", "--status", "completed", "-o", "json")

	assert.Equal(t, float64(727), decodeObject(t, out)["id"])
	assert.Equal(t, map[string]any{"status": "completed"}, handler.last(t, "PUT", "/orders/727").Body)
	assert.Zero(t, handler.count("GET", "/orders/727"), "orders are updated without a prior fetch")
}

func TestOrdersDelete(t *testing.T) {
	handler := newRouteHandler().
		On("DELETE", "/orders/727", jsonResponse(200, orderJSON))
	setupTestEnvWithHandler(t, handler)

	stderr := captureStderr(t, func() {
		mustRun(t, "orders", "delete", "727", "--force")
	})
	assert.Contains(t, stderr, "Deleted order 727")
	assert.Equal(t, "true", handler.last(t, "DELETE", "/orders/727").Query["force"])
}

func TestOrdersListDateFilters(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/orders", jsonResponse(200, `[]`))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "orders", "list", "--after", "2024-01-01T00:00:00Z", "--before", "7d ago")

	q := handler.last(t, "GET", "/orders").Query
	assert.Equal(t, "2024-01-01T00:00:00Z", q["after"])
	before, err := time.Parse(time.RFC3339, q["before"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), before, time.Minute)

	_, err = run(t, "orders", "list", "--after", "next week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for --after")
	assert.Equal(t, exitUsage, ExitCode(err))
}
