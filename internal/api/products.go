package api

import (
	"context"
)

// Product types.
const (
	ProductTypeSimple   = "simple"
	ProductTypeGrouped  = "grouped"
	ProductTypeExternal = "external"
	ProductTypeVariable = "variable"
)

// Product and variation stock statuses.
const (
	StockStatusInStock     = "instock"
	StockStatusOutOfStock  = "outofstock"
	StockStatusOnBackorder = "onbackorder"
)

// ProductTerm references a category or tag on a product.
type ProductTerm struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ProductAttribute is an attribute assigned to a product.
type ProductAttribute struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Position  int      `json:"position,omitempty"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options,omitempty"`
}

// DefaultAttribute is the preselected option of a variable product.
type DefaultAttribute struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Option string `json:"option,omitempty"`
}

// Product is a catalog product. Updates send only changed fields.
type Product struct {
	Tracker `json:"-"`
	Timestamps

	ID                int                `json:"id,omitempty"`
	Name              *string            `json:"name,omitempty"`
	Slug              *string            `json:"slug,omitempty"`
	Permalink         string             `json:"permalink,omitempty"`
	Type              *string            `json:"type,omitempty"`
	Status            *string            `json:"status,omitempty"`
	Featured          *bool              `json:"featured,omitempty"`
	CatalogVisibility *string            `json:"catalog_visibility,omitempty"`
	Description       *string            `json:"description,omitempty"`
	ShortDescription  *string            `json:"short_description,omitempty"`
	SKU               *string            `json:"sku,omitempty"`
	Price             *Money             `json:"price,omitempty"`
	RegularPrice      *Money             `json:"regular_price,omitempty"`
	SalePrice         *Money             `json:"sale_price,omitempty"`
	DateOnSaleFrom    *Time              `json:"date_on_sale_from,omitempty"`
	DateOnSaleTo      *Time              `json:"date_on_sale_to,omitempty"`
	OnSale            bool               `json:"on_sale,omitempty"`
	Purchasable       bool               `json:"purchasable,omitempty"`
	TotalSales        FlexInt            `json:"total_sales,omitempty"`
	Virtual           *bool              `json:"virtual,omitempty"`
	Downloadable      *bool              `json:"downloadable,omitempty"`
	Downloads         []Download         `json:"downloads,omitempty"`
	DownloadLimit     *int               `json:"download_limit,omitempty"`
	DownloadExpiry    *int               `json:"download_expiry,omitempty"`
	ExternalURL       *string            `json:"external_url,omitempty"`
	ButtonText        *string            `json:"button_text,omitempty"`
	TaxStatus         *string            `json:"tax_status,omitempty"`
	TaxClass          *string            `json:"tax_class,omitempty"`
	ManageStock       *bool              `json:"manage_stock,omitempty"`
	StockQuantity     *int               `json:"stock_quantity,omitempty"`
	StockStatus       *string            `json:"stock_status,omitempty"`
	Backorders        *string            `json:"backorders,omitempty"`
	SoldIndividually  *bool              `json:"sold_individually,omitempty"`
	Weight            *string            `json:"weight,omitempty"`
	Dimensions        *Dimensions        `json:"dimensions,omitempty"`
	ShippingClass     *string            `json:"shipping_class,omitempty"`
	ReviewsAllowed    *bool              `json:"reviews_allowed,omitempty"`
	AverageRating     string             `json:"average_rating,omitempty"`
	RatingCount       int                `json:"rating_count,omitempty"`
	UpsellIDs         []int              `json:"upsell_ids,omitempty"`
	CrossSellIDs      []int              `json:"cross_sell_ids,omitempty"`
	ParentID          *int               `json:"parent_id,omitempty"`
	PurchaseNote      *string            `json:"purchase_note,omitempty"`
	Categories        []ProductTerm      `json:"categories,omitempty"`
	Tags              []ProductTerm      `json:"tags,omitempty"`
	Images            []Image            `json:"images,omitempty"`
	Attributes        []ProductAttribute `json:"attributes,omitempty"`
	DefaultAttributes []DefaultAttribute `json:"default_attributes,omitempty"`
	Variations        []int              `json:"variations,omitempty"`
	GroupedProducts   []int              `json:"grouped_products,omitempty"`
	MenuOrder         *int               `json:"menu_order,omitempty"`
	MetaData          []MetaData         `json:"meta_data,omitempty"`
}

// ProductListParams filters the product collection.
type ProductListParams struct {
	ListParams

	Status      string
	Type        string
	SKU         string
	Featured    *bool
	Category    string
	Tag         string
	StockStatus string
	OnSale      *bool
	MinPrice    string
	MaxPrice    string
	Parent      []int
}

func (p ProductListParams) params() Params {
	params := p.ListParams.params()
	setString(params, "status", p.Status)
	setString(params, "type", p.Type)
	setString(params, "sku", p.SKU)
	params["featured"] = p.Featured
	setString(params, "category", p.Category)
	setString(params, "tag", p.Tag)
	setString(params, "stock_status", p.StockStatus)
	params["on_sale"] = p.OnSale
	setString(params, "min_price", p.MinPrice)
	setString(params, "max_price", p.MaxPrice)
	params["parent"] = p.Parent
	return params
}

// List retrieves products.
func (s ProductsService) List(ctx context.Context, params ProductListParams) (*Page[Product], error) {
	return List[Product](ctx, s, "products", params.params(), params.ListOptions)
}

// Get retrieves a product by ID. It returns nil when the product does not exist.
func (s ProductsService) Get(ctx context.Context, id int) (*Product, error) {
	return getOne[Product](ctx, s, endpointf("products/%d", id), nil)
}

// Create creates a product.
func (s ProductsService) Create(ctx context.Context, product *Product) (*Product, error) {
	return create[Product](ctx, s, "products", product)
}

// Update sends the fields of product that changed since it was fetched.
func (s ProductsService) Update(ctx context.Context, id int, product *Product) (*Product, error) {
	return update[Product](ctx, s, endpointf("products/%d", id), product)
}

// Delete deletes a product. Without force it is moved to the trash.
func (s ProductsService) Delete(ctx context.Context, id int, force bool) (*Product, error) {
	return remove[Product](ctx, s, endpointf("products/%d", id), forceParams(force))
}
