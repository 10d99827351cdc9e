package api

import (
	"context"
)

// Tag is a product tag. Updates send only changed fields, plus the name.
type Tag struct {
	Tracker `json:"-"`

	ID          int     `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (t *Tag) RequiredFields() []string {
	return []string{"name"}
}

// TagListParams filters product tags.
type TagListParams struct {
	ListParams

	HideEmpty *bool
	Product   int
	Slug      string
}

func (p TagListParams) params() Params {
	params := p.ListParams.params()
	params["hide_empty"] = p.HideEmpty
	setInt(params, "product", p.Product)
	setString(params, "slug", p.Slug)
	return params
}

// List retrieves product tags.
func (s TagsService) List(ctx context.Context, params TagListParams) (*Page[Tag], error) {
	return List[Tag](ctx, s, "products/tags", params.params(), params.ListOptions)
}

// Get retrieves a tag. It returns nil when it does not exist.
func (s TagsService) Get(ctx context.Context, id int) (*Tag, error) {
	return getOne[Tag](ctx, s, endpointf("products/tags/%d", id), nil)
}

// Create creates a tag.
func (s TagsService) Create(ctx context.Context, tag *Tag) (*Tag, error) {
	return create[Tag](ctx, s, "products/tags", tag)
}

// Update sends the fields of tag that changed since it was fetched.
func (s TagsService) Update(ctx context.Context, id int, tag *Tag) (*Tag, error) {
	return update[Tag](ctx, s, endpointf("products/tags/%d", id), tag)
}

// Delete deletes a tag. Tags do not support the trash.
func (s TagsService) Delete(ctx context.Context, id int) (*Tag, error) {
	return remove[Tag](ctx, s, endpointf("products/tags/%d", id), forceParams(true))
}
