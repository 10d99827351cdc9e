package api

import (
	"context"
)

// Webhook statuses.
const (
	WebhookStatusActive   = "active"
	WebhookStatusPaused   = "paused"
	WebhookStatusDisabled = "disabled"
)

// Webhook delivers store events to a URL.
type Webhook struct {
	Timestamps

	ID          int      `json:"id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Topic       *string  `json:"topic,omitempty"`
	Resource    string   `json:"resource,omitempty"`
	Event       string   `json:"event,omitempty"`
	Hooks       []string `json:"hooks,omitempty"`
	DeliveryURL *string  `json:"delivery_url,omitempty"`
	Secret      *string  `json:"secret,omitempty"`
}

// WebhookListParams filters webhooks.
type WebhookListParams struct {
	ListParams

	Status string // all | active | paused | disabled
}

func (p WebhookListParams) params() Params {
	params := p.ListParams.params()
	setString(params, "status", p.Status)
	return params
}

// List retrieves webhooks.
func (s WebhooksService) List(ctx context.Context, params WebhookListParams) (*Page[Webhook], error) {
	return List[Webhook](ctx, s, "webhooks", params.params(), params.ListOptions)
}

// Get retrieves a single webhook by ID. It returns nil when it does not exist.
func (s WebhooksService) Get(ctx context.Context, id int) (*Webhook, error) {
	return getOne[Webhook](ctx, s, endpointf("webhooks/%d", id), nil)
}

// Create creates a new webhook.
func (s WebhooksService) Create(ctx context.Context, webhook *Webhook) (*Webhook, error) {
	return create[Webhook](ctx, s, "webhooks", webhook)
}

// Update updates an existing webhook.
func (s WebhooksService) Update(ctx context.Context, id int, webhook *Webhook) (*Webhook, error) {
	return update[Webhook](ctx, s, endpointf("webhooks/%d", id), webhook)
}

// Delete deletes a webhook. Without force it is moved to the trash.
func (s WebhooksService) Delete(ctx context.Context, id int, force bool) (*Webhook, error) {
	return remove[Webhook](ctx, s, endpointf("webhooks/%d", id), forceParams(force))
}
