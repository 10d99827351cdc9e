package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var orderColumns = columns[api.Order]{
	headers: []string{"ID", "NUMBER", "STATUS", "CUSTOMER", "TOTAL", "ITEMS", "CREATED"},
	row: func(o api.Order) []string {
		return []string{
			strconv.Itoa(o.ID),
			o.Number,
			str(o.Status),
			orderCustomer(o),
			strings.TrimSpace(money(o.Total) + " " + str(o.Currency)),
			strconv.Itoa(len(o.LineItems)),
			dateStr(o.DateCreated),
		}
	},
}

func orderCustomer(o api.Order) string {
	if o.Billing != nil {
		name := strings.TrimSpace(o.Billing.FirstName + " " + o.Billing.LastName)
		if name != "" {
			return name
		}
		if o.Billing.Email != "" {
			return o.Billing.Email
		}
	}
	if o.CustomerID != nil && *o.CustomerID != 0 {
		return "#" + strconv.Itoa(*o.CustomerID)
	}
	return "guest"
}

var orders = resource[api.Order]{
	singular: "order",
	plural:   "orders",
	cols:     orderColumns,
	title:    func(o *api.Order) string { return o.Number },
	id:       func(o *api.Order) any { return o.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Order, error) {
		return c.Orders().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Order) (*api.Order, error) {
		return c.Orders().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Order) (*api.Order, error) {
		return c.Orders().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, force bool) (any, error) {
		return c.Orders().Delete(ctx, id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Order] { return &orderFields{} },
	example: `  woo orders create --customer 25 --item 93:2 --item 22/23:1 --payment-method bacs --set-paid
  woo orders update 727 --status completed
  woo orders create --data @order.json`,
}

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "o"},
		Short:   "Manage orders",
	}
	cmd.AddCommand(newOrdersListCmd())
	cmd.AddCommand(orders.getCmd())
	cmd.AddCommand(orders.createCmd())
	cmd.AddCommand(orders.updateCmd())
	cmd.AddCommand(orders.deleteCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var (
		lf            listFlags
		status        []string
		customer      int
		product       int
		parent        []int
		parentExclude []int
		decimals      int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List orders",
		Example: `  woo orders list --status processing,on-hold
  woo orders list --customer 25 --after 2024-01-01 --all`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			base, err := lf.params()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			page, err := client.Orders().List(cmdContext(cmd), api.OrderListParams{
				ListParams:    base,
				Status:        status,
				Customer:      customer,
				Product:       product,
				Parent:        parent,
				ParentExclude: parentExclude,
				DecimalPoints: decimals,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, orderColumns, "orders")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.StringSliceVar(&status, "status", nil, "Filter by status (comma-separated): pending|processing|on-hold|completed|cancelled|refunded|failed|trash|any")
	fs.IntVar(&customer, "customer", 0, "Only orders of this customer ID")
	fs.IntVar(&product, "product", 0, "Only orders containing this product ID")
	fs.IntSliceVar(&parent, "parent", nil, "Only orders with these parent IDs")
	fs.IntSliceVar(&parentExclude, "parent-exclude", nil, "Exclude orders with these parent IDs")
	fs.IntVar(&decimals, "dp", 0, "Decimal places for amounts")
	return cmd
}

type orderFields struct {
	status        string
	customer      int
	customerNote  string
	paymentMethod string
	paymentTitle  string
	transactionID string
	currency      string
	setPaid       bool
	items         []string
}

func (f *orderFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.status, "status", "", "Order status")
	fs.IntVar(&f.customer, "customer", 0, "Customer ID (0 for guest)")
	fs.StringVar(&f.customerNote, "customer-note", "", "Note left by the customer")
	fs.StringVar(&f.paymentMethod, "payment-method", "", "Payment method ID")
	fs.StringVar(&f.paymentTitle, "payment-method-title", "", "Payment method title")
	fs.StringVar(&f.transactionID, "transaction-id", "", "Payment transaction ID")
	fs.StringVar(&f.currency, "currency", "", "Currency code (ISO 4217)")
	fs.BoolVar(&f.setPaid, "set-paid", false, "Mark as paid (sets processing and reduces stock)")
	fs.StringArrayVar(&f.items, "item", nil, "Line item as product[/variation]:quantity (repeatable)")
}

func (f *orderFields) apply(_ context.Context, cmd *cobra.Command, _ *session, o *api.Order) error {
	changed := cmd.Flags().Changed
	if changed("status") {
		o.Status = api.Ptr(f.status)
	}
	if changed("customer") {
		o.CustomerID = api.Ptr(f.customer)
	}
	if changed("customer-note") {
		o.CustomerNote = api.Ptr(f.customerNote)
	}
	if changed("payment-method") {
		o.PaymentMethod = api.Ptr(f.paymentMethod)
	}
	if changed("payment-method-title") {
		o.PaymentMethodTitle = api.Ptr(f.paymentTitle)
	}
	if changed("transaction-id") {
		o.TransactionID = api.Ptr(f.transactionID)
	}
	if changed("currency") {
		o.Currency = api.Ptr(strings.ToUpper(f.currency))
	}
	if changed("set-paid") {
		o.SetPaid = api.Ptr(f.setPaid)
	}
	for _, item := range f.items {
		line, err := parseLineItem(item)
		if err != nil {
			return err
		}
		o.LineItems = append(o.LineItems, line)
	}
	return nil
}

// parseLineItem parses "93:2" or "22/23:1" (product 22, variation 23). The
// quantity defaults to 1.
func parseLineItem(s string) (api.LineItem, error) {
	ref, qty, hasQty := strings.Cut(strings.TrimSpace(s), ":")
	line := api.LineItem{Quantity: 1}
	if hasQty {
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil || n <= 0 {
			return api.LineItem{}, fmt.Errorf("invalid value for --item %q: quantity must be a positive integer", s)
		}
		line.Quantity = n
	}
	productRef, variationRef, hasVariation := strings.Cut(ref, "/")
	id, err := parseID(productRef, "product")
	if err != nil {
		return api.LineItem{}, fmt.Errorf("invalid value for --item %q: %w", s, err)
	}
	line.ProductID = id
	if hasVariation {
		vid, err := parseID(variationRef, "variation")
		if err != nil {
			return api.LineItem{}, fmt.Errorf("invalid value for --item %q: %w", s, err)
		}
		line.VariationID = vid
	}
	return line, nil
}
