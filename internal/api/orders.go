package api

import (
	"context"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusOnHold     = "on-hold"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
	OrderStatusFailed     = "failed"
	OrderStatusTrash      = "trash"
)

// TaxLine is a tax applied to an order or one of its lines.
type TaxLine struct {
	ID               int        `json:"id,omitempty"`
	RateCode         string     `json:"rate_code,omitempty"`
	RateID           int        `json:"rate_id,omitempty"`
	Label            string     `json:"label,omitempty"`
	Compound         bool       `json:"compound,omitempty"`
	TaxTotal         *Money     `json:"tax_total,omitempty"`
	ShippingTaxTotal *Money     `json:"shipping_tax_total,omitempty"`
	MetaData         []MetaData `json:"meta_data,omitempty"`
}

// LineItemTax is the per-rate tax of a line.
type LineItemTax struct {
	ID       int    `json:"id"`
	Total    *Money `json:"total,omitempty"`
	Subtotal *Money `json:"subtotal,omitempty"`
}

// LineItem is a product line of an order or refund.
type LineItem struct {
	ID          int           `json:"id,omitempty"`
	Name        string        `json:"name,omitempty"`
	ProductID   int           `json:"product_id,omitempty"`
	VariationID int           `json:"variation_id,omitempty"`
	Quantity    int           `json:"quantity,omitempty"`
	TaxClass    string        `json:"tax_class,omitempty"`
	Subtotal    *Money        `json:"subtotal,omitempty"`
	SubtotalTax *Money        `json:"subtotal_tax,omitempty"`
	Total       *Money        `json:"total,omitempty"`
	TotalTax    *Money        `json:"total_tax,omitempty"`
	Taxes       []LineItemTax `json:"taxes,omitempty"`
	MetaData    []MetaData    `json:"meta_data,omitempty"`
	SKU         string        `json:"sku,omitempty"`
	Price       FlexFloat     `json:"price,omitempty"`
	RefundTotal FlexFloat     `json:"refund_total,omitempty"`
}

// ShippingLine is a shipping charge of an order.
type ShippingLine struct {
	ID          int           `json:"id,omitempty"`
	MethodTitle string        `json:"method_title,omitempty"`
	MethodID    string        `json:"method_id,omitempty"`
	Total       *Money        `json:"total,omitempty"`
	TotalTax    *Money        `json:"total_tax,omitempty"`
	Taxes       []LineItemTax `json:"taxes,omitempty"`
	MetaData    []MetaData    `json:"meta_data,omitempty"`
}

// FeeLine is an extra fee on an order.
type FeeLine struct {
	ID        int           `json:"id,omitempty"`
	Name      string        `json:"name,omitempty"`
	TaxClass  string        `json:"tax_class,omitempty"`
	TaxStatus string        `json:"tax_status,omitempty"`
	Total     *Money        `json:"total,omitempty"`
	TotalTax  *Money        `json:"total_tax,omitempty"`
	Taxes     []LineItemTax `json:"taxes,omitempty"`
	MetaData  []MetaData    `json:"meta_data,omitempty"`
}

// CouponLine is a coupon applied to an order.
type CouponLine struct {
	ID          int        `json:"id,omitempty"`
	Code        string     `json:"code,omitempty"`
	Discount    *Money     `json:"discount,omitempty"`
	DiscountTax *Money     `json:"discount_tax,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// RefundSummary is the short refund entry embedded in an order.
type RefundSummary struct {
	ID     int    `json:"id"`
	Reason string `json:"reason,omitempty"`
	Total  *Money `json:"total,omitempty"`
}

// Order is a store order.
type Order struct {
	Timestamps

	ID                 int             `json:"id,omitempty"`
	ParentID           *int            `json:"parent_id,omitempty"`
	Number             string          `json:"number,omitempty"`
	OrderKey           string          `json:"order_key,omitempty"`
	CreatedVia         string          `json:"created_via,omitempty"`
	Version            string          `json:"version,omitempty"`
	Status             *string         `json:"status,omitempty"`
	Currency           *string         `json:"currency,omitempty"`
	DiscountTotal      *Money          `json:"discount_total,omitempty"`
	DiscountTax        *Money          `json:"discount_tax,omitempty"`
	ShippingTotal      *Money          `json:"shipping_total,omitempty"`
	ShippingTax        *Money          `json:"shipping_tax,omitempty"`
	CartTax            *Money          `json:"cart_tax,omitempty"`
	Total              *Money          `json:"total,omitempty"`
	TotalTax           *Money          `json:"total_tax,omitempty"`
	PricesIncludeTax   bool            `json:"prices_include_tax,omitempty"`
	CustomerID         *int            `json:"customer_id,omitempty"`
	CustomerIPAddress  string          `json:"customer_ip_address,omitempty"`
	CustomerUserAgent  string          `json:"customer_user_agent,omitempty"`
	CustomerNote       *string         `json:"customer_note,omitempty"`
	Billing            *BillingAddress `json:"billing,omitempty"`
	Shipping           *Address        `json:"shipping,omitempty"`
	PaymentMethod      *string         `json:"payment_method,omitempty"`
	PaymentMethodTitle *string         `json:"payment_method_title,omitempty"`
	TransactionID      *string         `json:"transaction_id,omitempty"`
	DatePaid           *Time           `json:"date_paid,omitempty"`
	DatePaidGMT        *Time           `json:"date_paid_gmt,omitempty"`
	DateCompleted      *Time           `json:"date_completed,omitempty"`
	DateCompletedGMT   *Time           `json:"date_completed_gmt,omitempty"`
	CartHash           string          `json:"cart_hash,omitempty"`
	MetaData           []MetaData      `json:"meta_data,omitempty"`
	LineItems          []LineItem      `json:"line_items,omitempty"`
	TaxLines           []TaxLine       `json:"tax_lines,omitempty"`
	ShippingLines      []ShippingLine  `json:"shipping_lines,omitempty"`
	FeeLines           []FeeLine       `json:"fee_lines,omitempty"`
	CouponLines        []CouponLine    `json:"coupon_lines,omitempty"`
	Refunds            []RefundSummary `json:"refunds,omitempty"`
	SetPaid            *bool           `json:"set_paid,omitempty"`
}

// OrderListParams filters orders.
type OrderListParams struct {
	ListParams

	Parent        []int
	ParentExclude []int
	Status        []string
	Customer      int
	Product       int
	DecimalPoints int
}

func (p OrderListParams) params() Params {
	params := p.ListParams.params()
	params["parent"] = p.Parent
	params["parent_exclude"] = p.ParentExclude
	params["status"] = p.Status
	setInt(params, "customer", p.Customer)
	setInt(params, "product", p.Product)
	setInt(params, "dp", p.DecimalPoints)
	return params
}

// List retrieves orders.
func (s OrdersService) List(ctx context.Context, params OrderListParams) (*Page[Order], error) {
	return List[Order](ctx, s, "orders", params.params(), params.ListOptions)
}

// Get retrieves an order. It returns nil when it does not exist.
func (s OrdersService) Get(ctx context.Context, id int) (*Order, error) {
	return getOne[Order](ctx, s, endpointf("orders/%d", id), nil)
}

// Create creates an order.
func (s OrdersService) Create(ctx context.Context, order *Order) (*Order, error) {
	return create[Order](ctx, s, "orders", order)
}

// Update sends every set field of order.
func (s OrdersService) Update(ctx context.Context, id int, order *Order) (*Order, error) {
	return update[Order](ctx, s, endpointf("orders/%d", id), order)
}

// Delete deletes an order. Without force it is moved to the trash.
func (s OrdersService) Delete(ctx context.Context, id int, force bool) (*Order, error) {
	return remove[Order](ctx, s, endpointf("orders/%d", id), forceParams(force))
}
