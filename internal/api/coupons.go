package api

import (
	"context"
)

// Coupon discount types.
const (
	DiscountPercent      = "percent"
	DiscountFixedCart    = "fixed_cart"
	DiscountFixedProduct = "fixed_product"
)

// Coupon is a discount code.
type Coupon struct {
	Timestamps

	ID                        int          `json:"id,omitempty"`
	Code                      *string      `json:"code,omitempty"`
	Amount                    *Money       `json:"amount,omitempty"`
	DiscountType              *string      `json:"discount_type,omitempty"`
	Description               *string      `json:"description,omitempty"`
	DateExpires               *Time        `json:"date_expires,omitempty"`
	DateExpiresGMT            *Time        `json:"date_expires_gmt,omitempty"`
	UsageCount                int          `json:"usage_count,omitempty"`
	IndividualUse             *bool        `json:"individual_use,omitempty"`
	ProductIDs                []int        `json:"product_ids,omitempty"`
	ExcludedProductIDs        []int        `json:"excluded_product_ids,omitempty"`
	UsageLimit                *int         `json:"usage_limit,omitempty"`
	UsageLimitPerUser         *int         `json:"usage_limit_per_user,omitempty"`
	LimitUsageToXItems        *int         `json:"limit_usage_to_x_items,omitempty"`
	FreeShipping              *bool        `json:"free_shipping,omitempty"`
	ProductCategories         []int        `json:"product_categories,omitempty"`
	ExcludedProductCategories []int        `json:"excluded_product_categories,omitempty"`
	ExcludeSaleItems          *bool        `json:"exclude_sale_items,omitempty"`
	MinimumAmount             *Money       `json:"minimum_amount,omitempty"`
	MaximumAmount             *Money       `json:"maximum_amount,omitempty"`
	EmailRestrictions         []string     `json:"email_restrictions,omitempty"`
	UsedBy                    []FlexString `json:"used_by,omitempty"`
	MetaData                  []MetaData   `json:"meta_data,omitempty"`
}

// CouponListParams filters coupons.
type CouponListParams struct {
	ListParams

	Code string
}

func (p CouponListParams) params() Params {
	params := p.ListParams.params()
	setString(params, "code", p.Code)
	return params
}

// List retrieves coupons.
func (s CouponsService) List(ctx context.Context, params CouponListParams) (*Page[Coupon], error) {
	return List[Coupon](ctx, s, "coupons", params.params(), params.ListOptions)
}

// Get retrieves a coupon. It returns nil when it does not exist.
func (s CouponsService) Get(ctx context.Context, id int) (*Coupon, error) {
	return getOne[Coupon](ctx, s, endpointf("coupons/%d", id), nil)
}

// Create creates a coupon.
func (s CouponsService) Create(ctx context.Context, coupon *Coupon) (*Coupon, error) {
	return create[Coupon](ctx, s, "coupons", coupon)
}

// Update sends every set field of coupon.
func (s CouponsService) Update(ctx context.Context, id int, coupon *Coupon) (*Coupon, error) {
	return update[Coupon](ctx, s, endpointf("coupons/%d", id), coupon)
}

// Delete deletes a coupon. Without force it is moved to the trash.
func (s CouponsService) Delete(ctx context.Context, id int, force bool) (*Coupon, error) {
	return remove[Coupon](ctx, s, endpointf("coupons/%d", id), forceParams(force))
}
