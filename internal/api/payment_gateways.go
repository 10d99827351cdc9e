package api

import (
	"context"
)

// GatewaySetting is one configurable setting of a payment gateway.
type GatewaySetting struct {
	ID          string            `json:"id"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	Value       FlexString        `json:"value,omitempty"`
	Default     FlexString        `json:"default,omitempty"`
	Tip         string            `json:"tip,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
}

// PaymentGateway is an installed payment method.
type PaymentGateway struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title,omitempty"`
	Description       string                    `json:"description,omitempty"`
	Order             FlexInt                   `json:"order,omitempty"`
	Enabled           bool                      `json:"enabled"`
	MethodTitle       string                    `json:"method_title,omitempty"`
	MethodDescription string                    `json:"method_description,omitempty"`
	MethodSupports    []string                  `json:"method_supports,omitempty"`
	Settings          map[string]GatewaySetting `json:"settings,omitempty"`
}

// PaymentGatewayUpdate holds the writable fields of a gateway. Settings
// map a setting ID to its new value.
type PaymentGatewayUpdate struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Enabled     *bool             `json:"enabled,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"`
}

// List retrieves every payment gateway.
func (s PaymentGatewaysService) List(ctx context.Context) ([]PaymentGateway, error) {
	return getList[PaymentGateway](ctx, s, "payment_gateways", nil)
}

// Get retrieves a gateway by ID. It returns nil when it does not exist.
func (s PaymentGatewaysService) Get(ctx context.Context, id string) (*PaymentGateway, error) {
	return getOne[PaymentGateway](ctx, s, endpointf("payment_gateways/%s", id), nil)
}

// Update changes a gateway's writable fields.
func (s PaymentGatewaysService) Update(ctx context.Context, id string, changes PaymentGatewayUpdate) (*PaymentGateway, error) {
	return update[PaymentGateway](ctx, s, endpointf("payment_gateways/%s", id), changes)
}
