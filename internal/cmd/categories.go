package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var categoryColumns = columns[api.Category]{
	headers: []string{"ID", "NAME", "SLUG", "PARENT", "COUNT"},
	row: func(c api.Category) []string {
		parent := ""
		if c.Parent != nil && *c.Parent != 0 {
			parent = strconv.Itoa(*c.Parent)
		}
		return []string{strconv.Itoa(c.ID), str(c.Name), str(c.Slug), parent, strconv.Itoa(c.Count)}
	},
}

var categories = resource[api.Category]{
	singular: "category",
	plural:   "categories",
	cols:     categoryColumns,
	title:    func(c *api.Category) string { return str(c.Name) },
	id:       func(c *api.Category) any { return c.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Category, error) {
		return c.Categories().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Category) (*api.Category, error) {
		return c.Categories().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Category) (*api.Category, error) {
		return c.Categories().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, _ bool) (any, error) {
		return c.Categories().Delete(ctx, id)
	},
	fields: func() mutation[api.Category] { return &categoryFields{} },
	example: `  woo categories create --name Clothing
  woo categories create --name T-shirts --parent Clothing
  woo categories update 9 --description "All kinds of clothes"`,
}

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage product categories",
	}
	cmd.AddCommand(newCategoriesListCmd())
	cmd.AddCommand(categories.getCmd())
	cmd.AddCommand(withTermInvalidation(categories.createCmd(), termCategories))
	cmd.AddCommand(withTermInvalidation(categories.updateCmd(), termCategories))
	cmd.AddCommand(withTermInvalidation(categories.deleteCmd(), termCategories))
	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	var (
		lf        listFlags
		hideEmpty bool
		parent    int
		product   int
		slug      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List product categories",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			base, err := lf.params()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			params := api.CategoryListParams{
				ListParams: base,
				HideEmpty:  optionalBool(cmd, "hide-empty", hideEmpty),
				Product:    product,
				Slug:       slug,
			}
			if cmd.Flags().Changed("parent") {
				params.Parent = &parent
			}

			page, err := client.Categories().List(cmdContext(cmd), params)
			if err != nil {
				return err
			}
			return printPage(cmd, page, categoryColumns, "categories")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&hideEmpty, "hide-empty", false, "Hide categories without products")
	fs.IntVar(&parent, "parent", 0, "Only children of this category ID (0 for top level)")
	fs.IntVar(&product, "product", 0, "Only categories of this product ID")
	fs.StringVar(&slug, "slug", "", "Filter by slug")
	return cmd
}

type categoryFields struct {
	name        string
	slug        string
	parent      string
	description string
	display     string
}

func (f *categoryFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Category name")
	fs.StringVar(&f.slug, "slug", "", "URL slug")
	fs.StringVar(&f.parent, "parent", "", "Parent category ID, slug or name (0 for top level)")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.StringVar(&f.display, "display", "", "Archive display: default|products|subcategories|both")
}

func (f *categoryFields) apply(ctx context.Context, cmd *cobra.Command, s *session, c *api.Category) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		c.Name = api.Ptr(f.name)
	}
	if changed("slug") {
		c.Slug = api.Ptr(f.slug)
	}
	if changed("description") {
		c.Description = api.Ptr(f.description)
	}
	if changed("display") {
		c.Display = api.Ptr(f.display)
	}
	if changed("parent") {
		if f.parent == "0" {
			c.Parent = api.Ptr(0)
		} else {
			id, err := termID(ctx, s, termCategories, f.parent)
			if err != nil {
				return err
			}
			c.Parent = api.Ptr(id)
		}
	}
	return nil
}

// withTermInvalidation drops the cached reference list of kind after a
// successful change to it.
func withTermInvalidation(cmd *cobra.Command, kind string) *cobra.Command {
	cmd.PostRunE = func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return nil
		}
		defer s.close()
		if store := s.cache(); store != nil {
			_ = store.Delete(cmdContext(cmd), kind)
		}
		return nil
	}
	return cmd
}
