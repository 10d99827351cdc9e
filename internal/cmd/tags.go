package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var tagColumns = columns[api.Tag]{
	headers: []string{"ID", "NAME", "SLUG", "COUNT"},
	row: func(t api.Tag) []string {
		return []string{strconv.Itoa(t.ID), str(t.Name), str(t.Slug), strconv.Itoa(t.Count)}
	},
}

var tags = resource[api.Tag]{
	singular: "tag",
	plural:   "tags",
	cols:     tagColumns,
	title:    func(t *api.Tag) string { return str(t.Name) },
	id:       func(t *api.Tag) any { return t.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Tag, error) {
		return c.Tags().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Tag) (*api.Tag, error) {
		return c.Tags().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Tag) (*api.Tag, error) {
		return c.Tags().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, _ bool) (any, error) {
		return c.Tags().Delete(ctx, id)
	},
	fields:  func() mutation[api.Tag] { return &tagFields{} },
	example: `  woo tags create --name Leather --slug leather`,
}

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage product tags",
	}
	cmd.AddCommand(newTagsListCmd())
	cmd.AddCommand(tags.getCmd())
	cmd.AddCommand(withTermInvalidation(tags.createCmd(), termTags))
	cmd.AddCommand(withTermInvalidation(tags.updateCmd(), termTags))
	cmd.AddCommand(withTermInvalidation(tags.deleteCmd(), termTags))
	return cmd
}

func newTagsListCmd() *cobra.Command {
	var (
		lf        listFlags
		hideEmpty bool
		product   int
		slug      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List product tags",
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
			page, err := client.Tags().List(cmdContext(cmd), api.TagListParams{
				ListParams: base,
				HideEmpty:  optionalBool(cmd, "hide-empty", hideEmpty),
				Product:    product,
				Slug:       slug,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, tagColumns, "tags")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&hideEmpty, "hide-empty", false, "Hide tags without products")
	fs.IntVar(&product, "product", 0, "Only tags of this product ID")
	fs.StringVar(&slug, "slug", "", "Filter by slug")
	return cmd
}

type tagFields struct {
	name        string
	slug        string
	description string
}

func (f *tagFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Tag name")
	fs.StringVar(&f.slug, "slug", "", "URL slug")
	fs.StringVar(&f.description, "description", "", "Description")
}

func (f *tagFields) apply(_ context.Context, cmd *cobra.Command, _ *session, t *api.Tag) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		t.Name = api.Ptr(f.name)
	}
	if changed("slug") {
		t.Slug = api.Ptr(f.slug)
	}
	if changed("description") {
		t.Description = api.Ptr(f.description)
	}
	return nil
}
