package api

import (
	"context"
)

// TaxClass is a named tax class. The slug identifies it.
type TaxClass struct {
	Tracker `json:"-"`

	Slug string  `json:"slug,omitempty"`
	Name *string `json:"name,omitempty"`
}

// List retrieves every tax class.
func (s TaxClassesService) List(ctx context.Context) ([]TaxClass, error) {
	return getList[TaxClass](ctx, s, "taxes/classes", nil)
}

// Create creates a tax class.
func (s TaxClassesService) Create(ctx context.Context, class *TaxClass) (*TaxClass, error) {
	return create[TaxClass](ctx, s, "taxes/classes", class)
}

// Delete deletes a tax class. Tax classes do not support the trash.
func (s TaxClassesService) Delete(ctx context.Context, slug string) (*TaxClass, error) {
	return remove[TaxClass](ctx, s, endpointf("taxes/classes/%s", slug), forceParams(true))
}
