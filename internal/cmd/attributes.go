package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var attributeColumns = columns[api.Attribute]{
	headers: []string{"ID", "NAME", "SLUG", "TYPE", "ORDER BY", "ARCHIVES"},
	row: func(a api.Attribute) []string {
		return []string{strconv.Itoa(a.ID), str(a.Name), str(a.Slug), str(a.Type), str(a.OrderBy), boolStr(a.HasArchives)}
	},
}

var attributes = resource[api.Attribute]{
	singular: "attribute",
	plural:   "attributes",
	cols:     attributeColumns,
	title:    func(a *api.Attribute) string { return str(a.Name) },
	id:       func(a *api.Attribute) any { return a.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Attribute, error) {
		return c.Attributes().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Attribute) (*api.Attribute, error) {
		return c.Attributes().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Attribute) (*api.Attribute, error) {
		return c.Attributes().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, _ bool) (any, error) {
		return c.Attributes().Delete(ctx, id)
	},
	fields: func() mutation[api.Attribute] { return &attributeFields{} },
	example: `  woo attributes create --name Color --order-by menu_order --has-archives
  woo attributes update 1 --name Colour`,
}

func newAttributesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attributes",
		Aliases: []string{"attribute", "attr"},
		Short:   "Manage global product attributes",
	}
	cmd.AddCommand(newAttributesListCmd())
	cmd.AddCommand(attributes.getCmd())
	cmd.AddCommand(withTermInvalidation(attributes.createCmd(), termAttributes))
	cmd.AddCommand(withTermInvalidation(attributes.updateCmd(), termAttributes))
	deleteCmd := attributes.deleteCmd()
	deleteCmd.Long = "Delete attributes. Every term of a deleted attribute is deleted with it."
	cmd.AddCommand(withTermInvalidation(deleteCmd, termAttributes))
	return cmd
}

func newAttributesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List global product attributes",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			page, err := client.Attributes().List(cmdContext(cmd), api.ListOptions{})
			if err != nil {
				return err
			}
			return printPage(cmd, page, attributeColumns, "attributes")
		}),
	}
}

type attributeFields struct {
	name        string
	slug        string
	attrType    string
	orderBy     string
	hasArchives bool
}

func (f *attributeFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Attribute name")
	fs.StringVar(&f.slug, "slug", "", "Slug (pa_ prefix is added by the store)")
	fs.StringVar(&f.attrType, "type", "", "Attribute type (select)")
	fs.StringVar(&f.orderBy, "order-by", "", "Default sort: menu_order|name|name_num|id")
	fs.BoolVar(&f.hasArchives, "has-archives", false, "Enable archive pages")
}

func (f *attributeFields) apply(_ context.Context, cmd *cobra.Command, _ *session, a *api.Attribute) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		a.Name = api.Ptr(f.name)
	}
	if changed("slug") {
		a.Slug = api.Ptr(f.slug)
	}
	if changed("type") {
		a.Type = api.Ptr(f.attrType)
	}
	if changed("order-by") {
		a.OrderBy = api.Ptr(f.orderBy)
	}
	if changed("has-archives") {
		a.HasArchives = api.Ptr(f.hasArchives)
	}
	return nil
}

var attributeTermColumns = columns[api.AttributeTerm]{
	headers: []string{"ID", "NAME", "SLUG", "ORDER", "COUNT"},
	row: func(t api.AttributeTerm) []string {
		return []string{strconv.Itoa(t.ID), str(t.Name), str(t.Slug), intStr(t.MenuOrder), strconv.Itoa(t.Count)}
	},
}

var attributeTerms = resource[api.AttributeTerm]{
	singular: "term",
	plural:   "terms",
	parents:  []string{"attribute"},
	cols:     attributeTermColumns,
	title:    func(t *api.AttributeTerm) string { return str(t.Name) },
	id:       func(t *api.AttributeTerm) any { return t.ID },
	get: func(ctx context.Context, c *api.Client, parents []int, id int) (*api.AttributeTerm, error) {
		return c.AttributeTerms().Get(ctx, parents[0], id)
	},
	create: func(ctx context.Context, c *api.Client, parents []int, v *api.AttributeTerm) (*api.AttributeTerm, error) {
		return c.AttributeTerms().Create(ctx, parents[0], v)
	},
	update: func(ctx context.Context, c *api.Client, parents []int, id int, v *api.AttributeTerm) (*api.AttributeTerm, error) {
		return c.AttributeTerms().Update(ctx, parents[0], id, v)
	},
	remove: func(ctx context.Context, c *api.Client, parents []int, id int, _ bool) (any, error) {
		return c.AttributeTerms().Delete(ctx, parents[0], id)
	},
	fields:  func() mutation[api.AttributeTerm] { return &attributeTermFields{} },
	example: `  woo attribute-terms create 1 --name XXS --menu-order 1`,
}

func newAttributeTermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attribute-terms",
		Aliases: []string{"terms", "term"},
		Short:   "Manage the terms of a global attribute",
	}
	cmd.AddCommand(newAttributeTermsListCmd())
	cmd.AddCommand(attributeTerms.getCmd())
	cmd.AddCommand(attributeTerms.createCmd())
	cmd.AddCommand(attributeTerms.updateCmd())
	cmd.AddCommand(attributeTerms.deleteCmd())
	return cmd
}

func newAttributeTermsListCmd() *cobra.Command {
	var (
		lf        listFlags
		hideEmpty bool
		product   int
		slug      string
	)

	cmd := &cobra.Command{
		Use:     "list <attribute>",
		Aliases: []string{"ls"},
		Short:   "List the terms of an attribute (ID, slug or name)",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			base, err := lf.params()
			if err != nil {
				return err
			}
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()
			ctx := cmdContext(cmd)

			attributeID, err := termID(ctx, s, termAttributes, args[0])
			if err != nil {
				return err
			}
			page, err := s.client.AttributeTerms().List(ctx, attributeID, api.AttributeTermListParams{
				ListParams: base,
				HideEmpty:  optionalBool(cmd, "hide-empty", hideEmpty),
				Product:    product,
				Slug:       slug,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, attributeTermColumns, "terms")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&hideEmpty, "hide-empty", false, "Hide terms without products")
	fs.IntVar(&product, "product", 0, "Only terms of this product ID")
	fs.StringVar(&slug, "slug", "", "Filter by slug")
	return cmd
}

type attributeTermFields struct {
	name        string
	slug        string
	description string
	menuOrder   int
}

func (f *attributeTermFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Term name")
	fs.StringVar(&f.slug, "slug", "", "URL slug")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.IntVar(&f.menuOrder, "menu-order", 0, "Custom sort position")
}

func (f *attributeTermFields) apply(_ context.Context, cmd *cobra.Command, _ *session, t *api.AttributeTerm) error {
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
	if changed("menu-order") {
		t.MenuOrder = api.Ptr(f.menuOrder)
	}
	return nil
}
