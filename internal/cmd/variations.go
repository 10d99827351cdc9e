package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var variationColumns = columns[api.Variation]{
	headers: []string{"ID", "SKU", "ATTRIBUTES", "STATUS", "PRICE", "STOCK"},
	row: func(v api.Variation) []string {
		return []string{
			strconv.Itoa(v.ID),
			str(v.SKU),
			variationOptions(v.Attributes),
			str(v.Status),
			money(v.Price),
			stockLabel(v.StockStatus, v.StockQuantity),
		}
	},
}

func variationOptions(attrs []api.VariationAttribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.Name+"="+a.Option)
	}
	return truncate(strings.Join(parts, ", "), 40)
}

var variations = resource[api.Variation]{
	singular: "variation",
	plural:   "variations",
	parents:  []string{"product"},
	cols:     variationColumns,
	title:    func(v *api.Variation) string { return str(v.SKU) },
	id:       func(v *api.Variation) any { return v.ID },
	get: func(ctx context.Context, c *api.Client, parents []int, id int) (*api.Variation, error) {
		return c.Variations().Get(ctx, parents[0], id)
	},
	create: func(ctx context.Context, c *api.Client, parents []int, v *api.Variation) (*api.Variation, error) {
		return c.Variations().Create(ctx, parents[0], v)
	},
	update: func(ctx context.Context, c *api.Client, parents []int, id int, v *api.Variation) (*api.Variation, error) {
		return c.Variations().Update(ctx, parents[0], id, v)
	},
	remove: func(ctx context.Context, c *api.Client, parents []int, id int, force bool) (any, error) {
		return c.Variations().Delete(ctx, parents[0], id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Variation] { return &variationFields{} },
	example: `  woo variations create 22 --regular-price 9.00 --option Color=Black --option Size=M
  woo variations update 22 732 --stock-quantity 5`,
}

func newVariationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variations",
		Aliases: []string{"variation", "var"},
		Short:   "Manage product variations",
	}
	cmd.AddCommand(newVariationsListCmd())
	cmd.AddCommand(variations.getCmd())
	cmd.AddCommand(variations.createCmd())
	cmd.AddCommand(variations.updateCmd())
	cmd.AddCommand(variations.deleteCmd())
	return cmd
}

func newVariationsListCmd() *cobra.Command {
	var (
		lf          listFlags
		status      string
		sku         string
		stockStatus string
		onSale      bool
		minPrice    string
		maxPrice    string
	)

	cmd := &cobra.Command{
		Use:     "list <product-id>",
		Aliases: []string{"ls"},
		Short:   "List the variations of a product",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			base, err := lf.params()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}

			page, err := client.Variations().List(cmdContext(cmd), productID, api.VariationListParams{
				ListParams:  base,
				Status:      status,
				SKU:         sku,
				StockStatus: stockStatus,
				OnSale:      optionalBool(cmd, "on-sale", onSale),
				MinPrice:    minPrice,
				MaxPrice:    maxPrice,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, variationColumns, "variations")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&status, "status", "", "Filter by status")
	fs.StringVar(&sku, "sku", "", "Filter by SKU")
	fs.StringVar(&stockStatus, "stock-status", "", "Filter by stock status: instock|outofstock|onbackorder")
	fs.BoolVar(&onSale, "on-sale", false, "Only variations on sale")
	fs.StringVar(&minPrice, "min-price", "", "Minimum price")
	fs.StringVar(&maxPrice, "max-price", "", "Maximum price")
	return cmd
}

type variationFields struct {
	sku           string
	status        string
	description   string
	regularPrice  string
	salePrice     string
	manageStock   bool
	stockQuantity int
	stockStatus   string
	options       []string
}

func (f *variationFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.sku, "sku", "", "Stock keeping unit")
	fs.StringVar(&f.status, "status", "", "Status: draft|pending|private|publish")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.StringVar(&f.regularPrice, "regular-price", "", "Regular price")
	fs.StringVar(&f.salePrice, "sale-price", "", "Sale price (empty string clears it)")
	fs.BoolVar(&f.manageStock, "manage-stock", false, "Enable stock management")
	fs.IntVar(&f.stockQuantity, "stock-quantity", 0, "Stock quantity (enables stock management)")
	fs.StringVar(&f.stockStatus, "stock-status", "", "Stock status: instock|outofstock|onbackorder")
	fs.StringArrayVar(&f.options, "option", nil, "Attribute option as name=value (repeatable; attribute ID or name)")
}

func (f *variationFields) apply(ctx context.Context, cmd *cobra.Command, s *session, v *api.Variation) error {
	changed := cmd.Flags().Changed
	if changed("sku") {
		v.SKU = api.Ptr(f.sku)
	}
	if changed("status") {
		v.Status = api.Ptr(f.status)
	}
	if changed("description") {
		v.Description = api.Ptr(f.description)
	}
	if changed("stock-status") {
		v.StockStatus = api.Ptr(f.stockStatus)
	}
	if err := setMoneyFlag(cmd, "regular-price", f.regularPrice, &v.RegularPrice); err != nil {
		return err
	}
	if err := setMoneyFlag(cmd, "sale-price", f.salePrice, &v.SalePrice); err != nil {
		return err
	}
	if changed("manage-stock") {
		v.ManageStock = api.Ptr(f.manageStock)
	}
	if changed("stock-quantity") {
		v.StockQuantity = api.Ptr(f.stockQuantity)
		if !changed("manage-stock") {
			v.ManageStock = api.Ptr(true)
		}
	}
	if changed("option") {
		attrs, err := variationAttributes(ctx, s, f.options)
		if err != nil {
			return err
		}
		v.Attributes = attrs
	}
	return nil
}

// variationAttributes parses name=value options. A numeric name is a
// global attribute ID; a name matching a global attribute uses its ID;
// anything else stays a custom (local) attribute name.
func variationAttributes(ctx context.Context, s *session, options []string) ([]api.VariationAttribute, error) {
	attrs := make([]api.VariationAttribute, 0, len(options))
	for _, opt := range options {
		name, value, ok := strings.Cut(opt, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid value for --option %q: use name=value", opt)
		}
		attr := api.VariationAttribute{Option: strings.TrimSpace(value)}
		if id, err := strconv.Atoi(name); err == nil {
			attr.ID = id
		} else if id, err := termID(ctx, s, termAttributes, name); err == nil {
			attr.ID = id
		} else {
			attr.Name = name
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}
