package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookJSON = `{
	"id": 142,
	"name": "Order updated",
	"status": "active",
	"topic": "order.updated",
	"delivery_url": "https://example.com/hooks/orders"
}`

func TestWebhooksList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/webhooks", jsonResponse(200, `[`+webhookJSON+`]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "webhooks", "list")

	assert.Contains(t, out, "order.updated")
	assert.Contains(t, out, "https://example.com/hooks/orders")
}

func TestWebhooksCreate(t *testing.T) {
	handler := newRouteHandler().
		On("POST", "/webhooks", jsonResponse(201, webhookJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "webhooks", "create", "--name", "Order updated", "--topic", "order.updated",
		"--delivery-url", "https://example.com/hooks/orders", "--secret", "s3cret")

	body := handler.last(t, "POST", "/webhooks").Body
	assert.Equal(t, "order.updated", body["topic"])
	assert.Equal(t, "https://example.com/hooks/orders", body["delivery_url"])
	assert.Equal(t, "s3cret", body["secret"])
}

func TestWebhooksRejectInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"relative url", []string{"--delivery-url", "/hooks"}, "invalid value for --delivery-url"},
		{"ftp url", []string{"--delivery-url", "ftp://example.com/hooks"}, "invalid value for --delivery-url"},
		{"metadata url", []string{"--delivery-url", "http://169.254.169.254/latest"}, "cloud metadata endpoints are not allowed"},
		{"loopback url", []string{"--delivery-url", "http://localhost:3000/hooks"}, "localhost is not reachable"},
		{"status", []string{"--status", "on"}, "--status must be active, paused or disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newRouteHandler()
			setupTestEnvWithHandler(t, handler)

			_, err := run(t, append([]string{"webhooks", "create", "--topic", "order.created"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, exitUsage, ExitCode(err))
			assert.Zero(t, handler.count("POST", "/webhooks"))
		})
	}
}

func TestWebhooksUpdateStatus(t *testing.T) {
	handler := newRouteHandler().
		On("PUT", "/webhooks/142", jsonResponse(200, webhookJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "webhooks", "update", "142", "--status", "paused")

	assert.Equal(t, map[string]any{"status": "paused"}, handler.last(t, "PUT", "/webhooks/142").Body)
}
