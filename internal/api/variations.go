package api

import (
	"context"
)

// VariationAttribute is the option a variation takes for one attribute.
type VariationAttribute struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Option string `json:"option,omitempty"`
}

// Variation is one variant of a variable product. Updates send only
// changed fields.
type Variation struct {
	Tracker `json:"-"`
	Timestamps

	ID             int                  `json:"id,omitempty"`
	Description    *string              `json:"description,omitempty"`
	Permalink      string               `json:"permalink,omitempty"`
	SKU            *string              `json:"sku,omitempty"`
	Price          *Money               `json:"price,omitempty"`
	RegularPrice   *Money               `json:"regular_price,omitempty"`
	SalePrice      *Money               `json:"sale_price,omitempty"`
	DateOnSaleFrom *Time                `json:"date_on_sale_from,omitempty"`
	DateOnSaleTo   *Time                `json:"date_on_sale_to,omitempty"`
	OnSale         bool                 `json:"on_sale,omitempty"`
	Status         *string              `json:"status,omitempty"`
	Purchasable    bool                 `json:"purchasable,omitempty"`
	Virtual        *bool                `json:"virtual,omitempty"`
	Downloadable   *bool                `json:"downloadable,omitempty"`
	Downloads      []Download           `json:"downloads,omitempty"`
	DownloadLimit  *int                 `json:"download_limit,omitempty"`
	DownloadExpiry *int                 `json:"download_expiry,omitempty"`
	TaxStatus      *string              `json:"tax_status,omitempty"`
	TaxClass       *string              `json:"tax_class,omitempty"`
	ManageStock    *bool                `json:"manage_stock,omitempty"`
	StockQuantity  *int                 `json:"stock_quantity,omitempty"`
	StockStatus    *string              `json:"stock_status,omitempty"`
	Backorders     *string              `json:"backorders,omitempty"`
	Weight         *string              `json:"weight,omitempty"`
	Dimensions     *Dimensions          `json:"dimensions,omitempty"`
	ShippingClass  *string              `json:"shipping_class,omitempty"`
	Image          *Image               `json:"image,omitempty"`
	Attributes     []VariationAttribute `json:"attributes,omitempty"`
	MenuOrder      *int                 `json:"menu_order,omitempty"`
	MetaData       []MetaData           `json:"meta_data,omitempty"`
}

// VariationListParams filters a product's variations.
type VariationListParams struct {
	ListParams

	Status      string
	SKU         string
	StockStatus string
	OnSale      *bool
	MinPrice    string
	MaxPrice    string
}

func (p VariationListParams) params() Params {
	params := p.ListParams.params()
	setString(params, "status", p.Status)
	setString(params, "sku", p.SKU)
	setString(params, "stock_status", p.StockStatus)
	params["on_sale"] = p.OnSale
	setString(params, "min_price", p.MinPrice)
	setString(params, "max_price", p.MaxPrice)
	return params
}

func variationsPath(productID int) string {
	return endpointf("products/%d/variations", productID)
}

// List retrieves the variations of a product.
func (s VariationsService) List(ctx context.Context, productID int, params VariationListParams) (*Page[Variation], error) {
	return List[Variation](ctx, s, variationsPath(productID), params.params(), params.ListOptions)
}

// Get retrieves a variation. It returns nil when it does not exist.
func (s VariationsService) Get(ctx context.Context, productID, id int) (*Variation, error) {
	return getOne[Variation](ctx, s, endpointf("%s/%d", variationsPath(productID), id), nil)
}

// Create creates a variation of a product.
func (s VariationsService) Create(ctx context.Context, productID int, variation *Variation) (*Variation, error) {
	return create[Variation](ctx, s, variationsPath(productID), variation)
}

// Update sends the fields of variation that changed since it was fetched.
func (s VariationsService) Update(ctx context.Context, productID, id int, variation *Variation) (*Variation, error) {
	return update[Variation](ctx, s, endpointf("%s/%d", variationsPath(productID), id), variation)
}

// Delete deletes a variation.
func (s VariationsService) Delete(ctx context.Context, productID, id int, force bool) (*Variation, error) {
	return remove[Variation](ctx, s, endpointf("%s/%d", variationsPath(productID), id), forceParams(force))
}
