package api

import (
	"context"
)

// Category display types.
const (
	CategoryDisplayDefault       = "default"
	CategoryDisplayProducts      = "products"
	CategoryDisplaySubcategories = "subcategories"
	CategoryDisplayBoth          = "both"
)

// Category is a product category. Updates send only changed fields, plus
// the name.
type Category struct {
	Tracker `json:"-"`

	ID          int     `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Parent      *int    `json:"parent,omitempty"`
	Description *string `json:"description,omitempty"`
	Display     *string `json:"display,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	MenuOrder   *int    `json:"menu_order,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (c *Category) RequiredFields() []string {
	return []string{"name"}
}

// CategoryListParams filters product categories.
type CategoryListParams struct {
	ListParams

	HideEmpty *bool
	Parent    *int
	Product   int
	Slug      string
}

func (p CategoryListParams) params() Params {
	params := p.ListParams.params()
	params["hide_empty"] = p.HideEmpty
	params["parent"] = p.Parent
	setInt(params, "product", p.Product)
	setString(params, "slug", p.Slug)
	return params
}

// List retrieves product categories.
func (s CategoriesService) List(ctx context.Context, params CategoryListParams) (*Page[Category], error) {
	return List[Category](ctx, s, "products/categories", params.params(), params.ListOptions)
}

// Get retrieves a category. It returns nil when it does not exist.
func (s CategoriesService) Get(ctx context.Context, id int) (*Category, error) {
	return getOne[Category](ctx, s, endpointf("products/categories/%d", id), nil)
}

// Create creates a category.
func (s CategoriesService) Create(ctx context.Context, category *Category) (*Category, error) {
	return create[Category](ctx, s, "products/categories", category)
}

// Update sends the fields of category that changed since it was fetched.
func (s CategoriesService) Update(ctx context.Context, id int, category *Category) (*Category, error) {
	return update[Category](ctx, s, endpointf("products/categories/%d", id), category)
}

// Delete deletes a category. Categories do not support the trash, so the
// request always forces.
func (s CategoriesService) Delete(ctx context.Context, id int) (*Category, error) {
	return remove[Category](ctx, s, endpointf("products/categories/%d", id), forceParams(true))
}
