package api

import (
	"context"
)

// Attribute is a global product attribute. Updates send only changed
// fields, plus the name.
type Attribute struct {
	Tracker `json:"-"`

	ID          int     `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Type        *string `json:"type,omitempty"`
	OrderBy     *string `json:"order_by,omitempty"`
	HasArchives *bool   `json:"has_archives,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (a *Attribute) RequiredFields() []string {
	return []string{"name"}
}

// AttributeTerm is one value of a global attribute.
type AttributeTerm struct {
	Tracker `json:"-"`

	ID          int     `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	MenuOrder   *int    `json:"menu_order,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (t *AttributeTerm) RequiredFields() []string {
	return []string{"name"}
}

// List retrieves product attributes. The endpoint ignores paging and
// returns every attribute.
func (s AttributesService) List(ctx context.Context, opts ListOptions) (*Page[Attribute], error) {
	return List[Attribute](ctx, s, "products/attributes", nil, opts)
}

// Get retrieves an attribute. It returns nil when it does not exist.
func (s AttributesService) Get(ctx context.Context, id int) (*Attribute, error) {
	return getOne[Attribute](ctx, s, endpointf("products/attributes/%d", id), nil)
}

// Create creates an attribute.
func (s AttributesService) Create(ctx context.Context, attribute *Attribute) (*Attribute, error) {
	return create[Attribute](ctx, s, "products/attributes", attribute)
}

// Update sends the fields of attribute that changed since it was fetched.
func (s AttributesService) Update(ctx context.Context, id int, attribute *Attribute) (*Attribute, error) {
	return update[Attribute](ctx, s, endpointf("products/attributes/%d", id), attribute)
}

// Delete deletes an attribute and all of its terms.
func (s AttributesService) Delete(ctx context.Context, id int) (*Attribute, error) {
	return remove[Attribute](ctx, s, endpointf("products/attributes/%d", id), forceParams(true))
}

// AttributeTermListParams filters the terms of an attribute.
type AttributeTermListParams struct {
	ListParams

	HideEmpty *bool
	Parent    *int
	Product   int
	Slug      string
}

func (p AttributeTermListParams) params() Params {
	params := p.ListParams.params()
	params["hide_empty"] = p.HideEmpty
	params["parent"] = p.Parent
	setInt(params, "product", p.Product)
	setString(params, "slug", p.Slug)
	return params
}

func termsPath(attributeID int) string {
	return endpointf("products/attributes/%d/terms", attributeID)
}

// List retrieves the terms of an attribute.
func (s AttributeTermsService) List(ctx context.Context, attributeID int, params AttributeTermListParams) (*Page[AttributeTerm], error) {
	return List[AttributeTerm](ctx, s, termsPath(attributeID), params.params(), params.ListOptions)
}

// Get retrieves a term. It returns nil when it does not exist.
func (s AttributeTermsService) Get(ctx context.Context, attributeID, id int) (*AttributeTerm, error) {
	return getOne[AttributeTerm](ctx, s, endpointf("%s/%d", termsPath(attributeID), id), nil)
}

// Create creates a term.
func (s AttributeTermsService) Create(ctx context.Context, attributeID int, term *AttributeTerm) (*AttributeTerm, error) {
	return create[AttributeTerm](ctx, s, termsPath(attributeID), term)
}

// Update sends the fields of term that changed since it was fetched.
func (s AttributeTermsService) Update(ctx context.Context, attributeID, id int, term *AttributeTerm) (*AttributeTerm, error) {
	return update[AttributeTerm](ctx, s, endpointf("%s/%d", termsPath(attributeID), id), term)
}

// Delete deletes a term.
func (s AttributeTermsService) Delete(ctx context.Context, attributeID, id int) (*AttributeTerm, error) {
	return remove[AttributeTerm](ctx, s, endpointf("%s/%d", termsPath(attributeID), id), forceParams(true))
}
