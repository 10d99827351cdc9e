package cmd

import (
	"context"
	"fmt"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/cache"
	"github.com/woopy/woo-cli/internal/resolve"
)

// Reference data kinds that accept names as well as IDs.
const (
	termCategories = "categories"
	termTags       = "tags"
	termAttributes = "attributes"
)

// termIDs resolves comma-separated category, tag or attribute references
// (ID, slug or name) to IDs. Candidates are fetched only when a reference
// is not numeric and come from the cache when possible.
func termIDs(ctx context.Context, s *session, kind, refs string) ([]int, error) {
	if !resolve.NeedsLookup(refs) {
		return resolve.IDs(refs, nil)
	}
	items, err := cache.Fetch(ctx, s.cache(), kind, func(ctx context.Context) ([]resolve.Named, error) {
		return loadTerms(ctx, s.client, kind)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no %s found to match %q", kind, refs)
	}
	return resolve.IDs(refs, items)
}

// termID resolves a single reference.
func termID(ctx context.Context, s *session, kind, ref string) (int, error) {
	ids, err := termIDs(ctx, s, kind, ref)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("expected one %s reference, got %q", kind, ref)
	}
	return ids[0], nil
}

func loadTerms(ctx context.Context, client *api.Client, kind string) ([]resolve.Named, error) {
	all := api.ListParams{ListOptions: api.ListOptions{PerPage: 100, FollowPages: true}}
	var named []resolve.Named
	switch kind {
	case termCategories:
		page, err := client.Categories().List(ctx, api.CategoryListParams{ListParams: all})
		if err != nil {
			return nil, err
		}
		for _, c := range page.Items {
			named = append(named, resolve.Named{ID: c.ID, Name: str(c.Name), Slug: str(c.Slug)})
		}
	case termTags:
		page, err := client.Tags().List(ctx, api.TagListParams{ListParams: all})
		if err != nil {
			return nil, err
		}
		for _, t := range page.Items {
			named = append(named, resolve.Named{ID: t.ID, Name: str(t.Name), Slug: str(t.Slug)})
		}
	case termAttributes:
		page, err := client.Attributes().List(ctx, all.ListOptions)
		if err != nil {
			return nil, err
		}
		for _, a := range page.Items {
			named = append(named, resolve.Named{ID: a.ID, Name: str(a.Name), Slug: str(a.Slug)})
		}
	default:
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	return named, nil
}

// productTerms turns IDs into the term references a product carries.
func productTerms(ids []int) []api.ProductTerm {
	terms := make([]api.ProductTerm, len(ids))
	for i, id := range ids {
		terms[i] = api.ProductTerm{ID: id}
	}
	return terms
}
