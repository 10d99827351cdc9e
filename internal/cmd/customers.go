package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
	"github.com/woopy/woo-cli/internal/validation"
)

var customerColumns = columns[api.Customer]{
	headers: []string{"ID", "EMAIL", "NAME", "USERNAME", "ROLE", "PAYING"},
	row: func(c api.Customer) []string {
		return []string{
			strconv.Itoa(c.ID),
			str(c.Email),
			customerName(&c),
			str(c.Username),
			c.Role,
			strconv.FormatBool(c.IsPayingCustomer),
		}
	},
}

func customerName(c *api.Customer) string {
	return strings.TrimSpace(str(c.FirstName) + " " + str(c.LastName))
}

var customers = resource[api.Customer]{
	singular: "customer",
	plural:   "customers",
	cols:     customerColumns,
	title:    func(c *api.Customer) string { return str(c.Email) },
	id:       func(c *api.Customer) any { return c.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Customer, error) {
		return c.Customers().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Customer) (*api.Customer, error) {
		return c.Customers().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Customer) (*api.Customer, error) {
		return c.Customers().Update(ctx, id, v)
	},
	fields: func() mutation[api.Customer] { return &customerFields{} },
	example: `  woo customers create --email john.doe@example.com --first-name John --last-name Doe --username john.doe
  woo customers update 25 --first-name James`,
}

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "c"},
		Short:   "Manage customers",
	}
	cmd.AddCommand(newCustomersListCmd())
	cmd.AddCommand(customers.getCmd())
	cmd.AddCommand(customers.createCmd())
	cmd.AddCommand(customers.updateCmd())
	cmd.AddCommand(newCustomersDeleteCmd())
	return cmd
}

func newCustomersListCmd() *cobra.Command {
	var (
		lf    listFlags
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List customers",
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
			page, err := client.Customers().List(cmdContext(cmd), api.CustomerListParams{
				ListParams: base,
				Email:      email,
				Role:       role,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, customerColumns, "customers")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&email, "email", "", "Filter by email")
	fs.StringVar(&role, "role", "", "Filter by role: all|administrator|editor|author|contributor|subscriber|customer|shop_manager")
	return cmd
}

// Customers are always deleted permanently; the endpoint has no trash.
func newCustomersDeleteCmd() *cobra.Command {
	var reassign int

	cmd := &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete one or more customers",
		Args:    cobra.MinimumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args, "customer")
			if err != nil {
				return err
			}
			if reassign < 0 {
				return fmt.Errorf("--reassign must be a user ID")
			}
			preview := &dryrun.Preview{Operation: "delete", Resource: "customer", ID: previewIDs(ids), Params: map[string]any{"force": true}}
			if reassign > 0 {
				preview.Params["reassign"] = reassign
			}
			if ok, err := maybeDryRun(cmd, preview); ok {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}

			var deleted []api.Customer
			for _, id := range ids {
				c, err := client.Customers().Delete(cmdContext(cmd), id, reassign)
				if err != nil {
					return fmt.Errorf("delete customer %d: %w", id, err)
				}
				if c == nil {
					return notFound("customer", id)
				}
				printAction(cmd, "Deleted", "customer", id, str(c.Email))
				deleted = append(deleted, *c)
			}
			if !isJSON(cmd) {
				return nil
			}
			if len(deleted) == 1 {
				return printJSON(cmd, deleted[0])
			}
			return printJSON(cmd, api.Page[api.Customer]{Items: deleted})
		}),
	}
	cmd.Flags().IntVar(&reassign, "reassign", 0, "User ID to reassign the deleted customer's posts to")
	return cmd
}

type customerFields struct {
	email     string
	firstName string
	lastName  string
	username  string
	password  string
	billing   addressFlags
	shipping  addressFlags
}

func (f *customerFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.email, "email", "", "Email address")
	fs.StringVar(&f.firstName, "first-name", "", "First name")
	fs.StringVar(&f.lastName, "last-name", "", "Last name")
	fs.StringVar(&f.username, "username", "", "Login name (create only)")
	fs.StringVar(&f.password, "password", "", "Password (write only)")
	f.billing.bind(cmd, "billing")
	f.shipping.bind(cmd, "shipping")
}

func (f *customerFields) apply(_ context.Context, cmd *cobra.Command, _ *session, c *api.Customer) error {
	changed := cmd.Flags().Changed
	if changed("email") {
		if err := validation.Email(f.email); err != nil {
			return fmt.Errorf("invalid value for --email %q: %w", f.email, err)
		}
		c.Email = api.Ptr(f.email)
	}
	if changed("first-name") {
		c.FirstName = api.Ptr(f.firstName)
	}
	if changed("last-name") {
		c.LastName = api.Ptr(f.lastName)
	}
	if changed("username") {
		c.Username = api.Ptr(f.username)
	}
	if changed("password") {
		c.Password = api.Ptr(f.password)
	}
	if f.billing.changed(cmd) {
		if c.Billing == nil {
			c.Billing = &api.BillingAddress{}
		}
		if err := f.billing.apply(cmd, &c.Billing.Address); err != nil {
			return err
		}
	}
	if f.shipping.changed(cmd) {
		if c.Shipping == nil {
			c.Shipping = &api.Address{}
		}
		if err := f.shipping.apply(cmd, c.Shipping); err != nil {
			return err
		}
	}
	return nil
}

// addressFlags are --<prefix>-<field> flags for one address.
type addressFlags struct {
	prefix string
	values map[string]*string
}

var addressFields = []string{"first-name", "last-name", "company", "address-1", "address-2", "city", "state", "postcode", "country"}

func (a *addressFlags) bind(cmd *cobra.Command, prefix string) {
	a.prefix = prefix
	a.values = make(map[string]*string, len(addressFields))
	for _, field := range addressFields {
		a.values[field] = cmd.Flags().String(prefix+"-"+field, "", fmt.Sprintf("%s address %s", prefix, strings.ReplaceAll(field, "-", " ")))
	}
}

func (a *addressFlags) changed(cmd *cobra.Command) bool {
	for _, field := range addressFields {
		if cmd.Flags().Changed(a.prefix + "-" + field) {
			return true
		}
	}
	return false
}

func (a *addressFlags) apply(cmd *cobra.Command, addr *api.Address) error {
	targets := map[string]*string{
		"first-name": &addr.FirstName,
		"last-name":  &addr.LastName,
		"company":    &addr.Company,
		"address-1":  &addr.Address1,
		"address-2":  &addr.Address2,
		"city":       &addr.City,
		"state":      &addr.State,
		"postcode":   &addr.Postcode,
		"country":    &addr.Country,
	}
	for field, dst := range targets {
		if cmd.Flags().Changed(a.prefix + "-" + field) {
			*dst = *a.values[field]
		}
	}
	if cmd.Flags().Changed(a.prefix+"-country") && addr.Country != "" {
		code, err := validation.CountryCode(addr.Country)
		if err != nil {
			return fmt.Errorf("invalid value for --%s-country %q: %w", a.prefix, addr.Country, err)
		}
		addr.Country = code
	}
	return nil
}
