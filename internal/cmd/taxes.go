package cmd

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
)

var taxRateColumns = columns[api.TaxRate]{
	headers: []string{"ID", "COUNTRY", "STATE", "RATE", "NAME", "CLASS", "PRIORITY"},
	row: func(r api.TaxRate) []string {
		class := str(r.Class)
		if class == "" {
			class = "standard"
		}
		return []string{strconv.Itoa(r.ID), str(r.Country), str(r.State), str(r.Rate), str(r.Name), class, intStr(r.Priority)}
	},
}

var taxRates = resource[api.TaxRate]{
	singular: "tax rate",
	plural:   "tax rates",
	cols:     taxRateColumns,
	title:    func(r *api.TaxRate) string { return str(r.Name) },
	id:       func(r *api.TaxRate) any { return r.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.TaxRate, error) {
		return c.TaxRates().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.TaxRate) (*api.TaxRate, error) {
		return c.TaxRates().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.TaxRate) (*api.TaxRate, error) {
		return c.TaxRates().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, _ bool) (any, error) {
		return c.TaxRates().Delete(ctx, id)
	},
	fields: func() mutation[api.TaxRate] { return &taxRateFields{} },
	example: `  woo taxes create --country US --state AL --postcodes 35041,35042 --rate 4.0000 --name "State Tax" --shipping=false
  woo taxes update 72 --rate 4.5`,
}

func newTaxesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taxes",
		Aliases: []string{"tax-rates", "tax"},
		Short:   "Manage tax rates",
	}
	cmd.AddCommand(newTaxesListCmd())
	cmd.AddCommand(taxRates.getCmd())
	cmd.AddCommand(taxRates.createCmd())
	cmd.AddCommand(taxRates.updateCmd())
	cmd.AddCommand(taxRates.deleteCmd())
	return cmd
}

func newTaxesListCmd() *cobra.Command {
	var (
		lf      listFlags
		order   string
		orderBy string
		class   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tax rates",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			opts, err := lf.options()
			if err != nil {
				return err
			}
			if order != "" && order != "asc" && order != "desc" {
				return fmt.Errorf("--order must be asc or desc")
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			page, err := client.TaxRates().List(cmdContext(cmd), api.TaxRateListParams{
				ListOptions: opts,
				Order:       order,
				OrderBy:     orderBy,
				Class:       class,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, taxRateColumns, "tax rates")
		}),
	}

	lf.registerPaging(cmd)
	fs := cmd.Flags()
	fs.StringVar(&order, "order", "", "Sort direction: asc|desc")
	fs.StringVar(&orderBy, "orderby", "", "Sort field: id|order|priority")
	fs.StringVar(&class, "class", "", "Filter by tax class slug")
	return cmd
}

type taxRateFields struct {
	country   string
	state     string
	postcodes []string
	cities    []string
	rate      string
	name      string
	priority  int
	compound  bool
	shipping  bool
	order     int
	class     string
}

func (f *taxRateFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.country, "country", "", "Country ISO 3166 code")
	fs.StringVar(&f.state, "state", "", "State code")
	fs.StringSliceVar(&f.postcodes, "postcodes", nil, "Postcodes / ZIPs (comma-separated)")
	fs.StringSliceVar(&f.cities, "cities", nil, "City names (comma-separated)")
	fs.StringVar(&f.rate, "rate", "", "Tax rate, e.g. 7.25")
	fs.StringVar(&f.name, "name", "", "Tax rate name")
	fs.IntVar(&f.priority, "priority", 1, "Priority")
	fs.BoolVar(&f.compound, "compound", false, "Compound rate")
	fs.BoolVar(&f.shipping, "shipping", true, "Apply to shipping")
	fs.IntVar(&f.order, "order", 0, "Order in queries")
	fs.StringVar(&f.class, "class", "", "Tax class slug")
}

func (f *taxRateFields) apply(_ context.Context, cmd *cobra.Command, _ *session, r *api.TaxRate) error {
	changed := cmd.Flags().Changed
	if changed("country") {
		r.Country = api.Ptr(strings.ToUpper(f.country))
	}
	if changed("state") {
		r.State = api.Ptr(strings.ToUpper(f.state))
	}
	if changed("postcodes") {
		r.Postcodes = f.postcodes
	}
	if changed("cities") {
		r.Cities = f.cities
	}
	if changed("rate") {
		if _, err := strconv.ParseFloat(f.rate, 64); err != nil {
			return fmt.Errorf("invalid value for --rate %q: must be a number", f.rate)
		}
		r.Rate = api.Ptr(f.rate)
	}
	if changed("name") {
		r.Name = api.Ptr(f.name)
	}
	if changed("priority") {
		r.Priority = api.Ptr(f.priority)
	}
	if changed("compound") {
		r.Compound = api.Ptr(f.compound)
	}
	if changed("shipping") {
		r.Shipping = api.Ptr(f.shipping)
	}
	if changed("order") {
		r.Order = api.Ptr(f.order)
	}
	if changed("class") {
		r.Class = api.Ptr(f.class)
	}
	return nil
}

var taxClassColumns = columns[api.TaxClass]{
	headers: []string{"SLUG", "NAME"},
	row:     func(c api.TaxClass) []string { return []string{c.Slug, str(c.Name)} },
}

func newTaxClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tax-classes",
		Aliases: []string{"tax-class"},
		Short:   "Manage tax classes",
	}
	cmd.AddCommand(newTaxClassesListCmd())
	cmd.AddCommand(newTaxClassesCreateCmd())
	cmd.AddCommand(newTaxClassesDeleteCmd())
	return cmd
}

func newTaxClassesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tax classes",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			classes, err := client.TaxClasses().List(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printItems(cmd, classes, taxClassColumns, "tax classes")
		}),
	}
}

func newTaxClassesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"new", "add"},
		Short:   "Create a tax class",
		Example: `  woo tax-classes create Zero`,
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("tax class name is required")
			}
			class := &api.TaxClass{Name: &name}
			if ok, err := previewWrite(cmd, &dryrun.Preview{Operation: "create", Resource: "tax class"}, class, api.BodyFull); ok {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			class, err = client.TaxClasses().Create(cmdContext(cmd), class)
			if err != nil {
				return err
			}
			printAction(cmd, "Created", "tax class", class.Slug, str(class.Name))
			return printItem(cmd, class, taxClassColumns)
		}),
	}
}

func newTaxClassesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <slug>...",
		Aliases: []string{"rm"},
		Short:   "Delete tax classes by slug",
		Long:    "Delete tax classes by slug. The standard class cannot be deleted.",
		Args:    cobra.MinimumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if slices.Contains(args, "standard") {
				return fmt.Errorf("the standard tax class cannot be deleted")
			}
			preview := &dryrun.Preview{Operation: "delete", Resource: "tax class", ID: previewIDs(args), Params: map[string]any{"force": true}}
			if ok, err := maybeDryRun(cmd, preview); ok {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			var deleted []api.TaxClass
			for _, slug := range args {
				class, err := client.TaxClasses().Delete(cmdContext(cmd), slug)
				if err != nil {
					return fmt.Errorf("delete tax class %s: %w", slug, err)
				}
				printAction(cmd, "Deleted", "tax class", slug, "")
				if class != nil {
					deleted = append(deleted, *class)
				}
			}
			if isJSON(cmd) {
				return printItems(cmd, deleted, taxClassColumns, "tax classes")
			}
			return nil
		}),
	}
}
