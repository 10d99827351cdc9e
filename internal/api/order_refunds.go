package api

import (
	"context"
)

// Refund is a refund of an order. Updates send only changed fields.
type Refund struct {
	Tracker `json:"-"`

	ID              int            `json:"id,omitempty"`
	DateCreated     *Time          `json:"date_created,omitempty"`
	DateCreatedGMT  *Time          `json:"date_created_gmt,omitempty"`
	Amount          *Money         `json:"amount,omitempty"`
	Reason          *string        `json:"reason,omitempty"`
	RefundedBy      *int           `json:"refunded_by,omitempty"`
	RefundedPayment bool           `json:"refunded_payment,omitempty"`
	MetaData        []MetaData     `json:"meta_data,omitempty"`
	LineItems       []LineItem     `json:"line_items,omitempty"`
	TaxLines        []TaxLine      `json:"tax_lines,omitempty"`
	ShippingLines   []ShippingLine `json:"shipping_lines,omitempty"`
	FeeLines        []FeeLine      `json:"fee_lines,omitempty"`
	APIRefund       *bool          `json:"api_refund,omitempty"`
	APIRestock      *bool          `json:"api_restock,omitempty"`
}

// RefundListParams filters the refunds of an order.
type RefundListParams struct {
	ListParams

	Parent        []int
	ParentExclude []int
	DecimalPoints int
}

func (p RefundListParams) params() Params {
	params := p.ListParams.params()
	params["parent"] = p.Parent
	params["parent_exclude"] = p.ParentExclude
	setInt(params, "dp", p.DecimalPoints)
	return params
}

func refundsPath(orderID int) string {
	return endpointf("orders/%d/refunds", orderID)
}

// List retrieves the refunds of an order.
func (s OrderRefundsService) List(ctx context.Context, orderID int, params RefundListParams) (*Page[Refund], error) {
	return List[Refund](ctx, s, refundsPath(orderID), params.params(), params.ListOptions)
}

// Get retrieves a refund. It returns nil when it does not exist.
func (s OrderRefundsService) Get(ctx context.Context, orderID, id int) (*Refund, error) {
	return getOne[Refund](ctx, s, endpointf("%s/%d", refundsPath(orderID), id), nil)
}

// Create refunds an order.
func (s OrderRefundsService) Create(ctx context.Context, orderID int, refund *Refund) (*Refund, error) {
	return create[Refund](ctx, s, refundsPath(orderID), refund)
}

// Delete deletes a refund record. Refunds do not support the trash.
func (s OrderRefundsService) Delete(ctx context.Context, orderID, id int) (*Refund, error) {
	return remove[Refund](ctx, s, endpointf("%s/%d", refundsPath(orderID), id), forceParams(true))
}
