package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var productColumns = columns[api.Product]{
	headers: []string{"ID", "NAME", "SKU", "TYPE", "STATUS", "PRICE", "STOCK"},
	row: func(p api.Product) []string {
		return []string{
			strconv.Itoa(p.ID),
			truncate(str(p.Name), 40),
			str(p.SKU),
			str(p.Type),
			str(p.Status),
			money(p.Price),
			stockLabel(p.StockStatus, p.StockQuantity),
		}
	},
}

func stockLabel(status *string, quantity *int) string {
	if quantity != nil {
		return str(status) + " (" + strconv.Itoa(*quantity) + ")"
	}
	return str(status)
}

var products = resource[api.Product]{
	singular: "product",
	plural:   "products",
	cols:     productColumns,
	title:    func(p *api.Product) string { return str(p.Name) },
	id:       func(p *api.Product) any { return p.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Product, error) {
		return c.Products().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Product) (*api.Product, error) {
		return c.Products().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Product) (*api.Product, error) {
		return c.Products().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, force bool) (any, error) {
		return c.Products().Delete(ctx, id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Product] { return &productFields{} },
	example: `  woo products create --name "Premium Quality" --regular-price 21.99 --categories "Clothing,T-shirts"
  woo products update 794 --sale-price 19.99 --stock-quantity 12
  woo products update 794 --data '{"short_description":"Now in blue"}'
  woo products create --data @product.json`,
}

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Manage products",
	}
	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(products.getCmd())
	cmd.AddCommand(products.createCmd())
	cmd.AddCommand(products.updateCmd())
	cmd.AddCommand(products.deleteCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var (
		lf          listFlags
		status      string
		productType string
		sku         string
		featured    bool
		category    string
		tag         string
		stockStatus string
		onSale      bool
		minPrice    string
		maxPrice    string
		parent      []int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List products",
		Example: `  woo products list --status publish --per-page 50
  woo products list --category Clothing --on-sale
  woo products list --all -o json --jq '.items[].sku'`,
		Args: cobra.NoArgs,
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

			params := api.ProductListParams{
				ListParams:  base,
				Status:      status,
				Type:        productType,
				SKU:         sku,
				Featured:    optionalBool(cmd, "featured", featured),
				StockStatus: stockStatus,
				OnSale:      optionalBool(cmd, "on-sale", onSale),
				MinPrice:    minPrice,
				MaxPrice:    maxPrice,
				Parent:      parent,
			}
			if category != "" {
				id, err := termID(ctx, s, termCategories, category)
				if err != nil {
					return err
				}
				params.Category = strconv.Itoa(id)
			}
			if tag != "" {
				id, err := termID(ctx, s, termTags, tag)
				if err != nil {
					return err
				}
				params.Tag = strconv.Itoa(id)
			}

			page, err := s.client.Products().List(ctx, params)
			if err != nil {
				return err
			}
			return printPage(cmd, page, productColumns, "products")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&status, "status", "", "Filter by status: draft|pending|private|publish|any")
	fs.StringVar(&productType, "type", "", "Filter by type: simple|grouped|external|variable")
	fs.StringVar(&sku, "sku", "", "Filter by SKU")
	fs.BoolVar(&featured, "featured", false, "Only featured products (--featured=false for the rest)")
	fs.StringVar(&category, "category", "", "Filter by category ID, slug or name")
	fs.StringVar(&tag, "tag", "", "Filter by tag ID, slug or name")
	fs.StringVar(&stockStatus, "stock-status", "", "Filter by stock status: instock|outofstock|onbackorder")
	fs.BoolVar(&onSale, "on-sale", false, "Only products on sale")
	fs.StringVar(&minPrice, "min-price", "", "Minimum price")
	fs.StringVar(&maxPrice, "max-price", "", "Maximum price")
	fs.IntSliceVar(&parent, "parent", nil, "Limit to children of these product IDs")
	return cmd
}

// productFields are the flags that set common product fields.
type productFields struct {
	name             string
	productType      string
	status           string
	sku              string
	regularPrice     string
	salePrice        string
	description      string
	shortDescription string
	manageStock      bool
	stockQuantity    int
	stockStatus      string
	featured         bool
	categories       string
	tags             string
}

func (f *productFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Product name")
	fs.StringVar(&f.productType, "type", "", "Product type: simple|grouped|external|variable")
	fs.StringVar(&f.status, "status", "", "Status: draft|pending|private|publish")
	fs.StringVar(&f.sku, "sku", "", "Stock keeping unit")
	fs.StringVar(&f.regularPrice, "regular-price", "", "Regular price")
	fs.StringVar(&f.salePrice, "sale-price", "", "Sale price (empty string clears it)")
	fs.StringVar(&f.description, "description", "", "Description (HTML allowed)")
	fs.StringVar(&f.shortDescription, "short-description", "", "Short description")
	fs.BoolVar(&f.manageStock, "manage-stock", false, "Enable stock management")
	fs.IntVar(&f.stockQuantity, "stock-quantity", 0, "Stock quantity (enables stock management)")
	fs.StringVar(&f.stockStatus, "stock-status", "", "Stock status: instock|outofstock|onbackorder")
	fs.BoolVar(&f.featured, "featured", false, "Mark as featured")
	fs.StringVar(&f.categories, "categories", "", "Categories as comma-separated IDs, slugs or names (replaces the current set)")
	fs.StringVar(&f.tags, "tags", "", "Tags as comma-separated IDs, slugs or names (replaces the current set)")
}

func (f *productFields) apply(ctx context.Context, cmd *cobra.Command, s *session, p *api.Product) error {
	changed := cmd.Flags().Changed
	setString := func(flag string, dst **string, value string) {
		if changed(flag) {
			*dst = api.Ptr(value)
		}
	}
	setString("name", &p.Name, f.name)
	setString("type", &p.Type, f.productType)
	setString("status", &p.Status, f.status)
	setString("sku", &p.SKU, f.sku)
	setString("description", &p.Description, f.description)
	setString("short-description", &p.ShortDescription, f.shortDescription)
	setString("stock-status", &p.StockStatus, f.stockStatus)

	if err := setMoneyFlag(cmd, "regular-price", f.regularPrice, &p.RegularPrice); err != nil {
		return err
	}
	if err := setMoneyFlag(cmd, "sale-price", f.salePrice, &p.SalePrice); err != nil {
		return err
	}
	if changed("manage-stock") {
		p.ManageStock = api.Ptr(f.manageStock)
	}
	if changed("stock-quantity") {
		p.StockQuantity = api.Ptr(f.stockQuantity)
		if !changed("manage-stock") {
			p.ManageStock = api.Ptr(true)
		}
	}
	if changed("featured") {
		p.Featured = api.Ptr(f.featured)
	}
	if changed("categories") {
		ids, err := termIDs(ctx, s, termCategories, f.categories)
		if err != nil {
			return err
		}
		p.Categories = productTerms(ids)
	}
	if changed("tags") {
		ids, err := termIDs(ctx, s, termTags, f.tags)
		if err != nil {
			return err
		}
		p.Tags = productTerms(ids)
	}
	return nil
}

// setMoneyFlag parses an amount flag into dst. An empty value clears the
// amount (sent as "").
func setMoneyFlag(cmd *cobra.Command, name, value string, dst **api.Money) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		*dst = &api.Money{}
		return nil
	}
	m, err := api.NewMoney(value)
	if err != nil {
		return fmt.Errorf("invalid value for --%s: %w", name, err)
	}
	*dst = &m
	return nil
}
