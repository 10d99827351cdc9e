package api

import (
	"context"
)

// TaxRate is a tax rate. Updates send only changed fields.
type TaxRate struct {
	Tracker `json:"-"`

	ID        int      `json:"id,omitempty"`
	Country   *string  `json:"country,omitempty"`
	State     *string  `json:"state,omitempty"`
	Postcode  *string  `json:"postcode,omitempty"`
	City      *string  `json:"city,omitempty"`
	Postcodes []string `json:"postcodes,omitempty"`
	Cities    []string `json:"cities,omitempty"`
	Rate      *string  `json:"rate,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Priority  *int     `json:"priority,omitempty"`
	Compound  *bool    `json:"compound,omitempty"`
	Shipping  *bool    `json:"shipping,omitempty"`
	Order     *int     `json:"order,omitempty"`
	Class     *string  `json:"class,omitempty"`
}

// TaxRateListParams filters tax rates.
type TaxRateListParams struct {
	ListOptions

	Order   string
	OrderBy string
	Class   string
}

func (p TaxRateListParams) params() Params {
	params := Params{}
	setString(params, "order", p.Order)
	setString(params, "orderby", p.OrderBy)
	setString(params, "class", p.Class)
	return params
}

// List retrieves tax rates.
func (s TaxRatesService) List(ctx context.Context, params TaxRateListParams) (*Page[TaxRate], error) {
	return List[TaxRate](ctx, s, "taxes", params.params(), params.ListOptions)
}

// Get retrieves a tax rate. It returns nil when it does not exist.
func (s TaxRatesService) Get(ctx context.Context, id int) (*TaxRate, error) {
	return getOne[TaxRate](ctx, s, endpointf("taxes/%d", id), nil)
}

// Create creates a tax rate.
func (s TaxRatesService) Create(ctx context.Context, rate *TaxRate) (*TaxRate, error) {
	return create[TaxRate](ctx, s, "taxes", rate)
}

// Update sends the fields of rate that changed since it was fetched.
func (s TaxRatesService) Update(ctx context.Context, id int, rate *TaxRate) (*TaxRate, error) {
	return update[TaxRate](ctx, s, endpointf("taxes/%d", id), rate)
}

// Delete deletes a tax rate. Tax rates do not support the trash.
func (s TaxRatesService) Delete(ctx context.Context, id int) (*TaxRate, error) {
	return remove[TaxRate](ctx, s, endpointf("taxes/%d", id), forceParams(true))
}
