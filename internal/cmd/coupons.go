package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var couponColumns = columns[api.Coupon]{
	headers: []string{"ID", "CODE", "TYPE", "AMOUNT", "USED", "LIMIT", "EXPIRES"},
	row: func(c api.Coupon) []string {
		return []string{
			strconv.Itoa(c.ID),
			str(c.Code),
			str(c.DiscountType),
			money(c.Amount),
			strconv.Itoa(c.UsageCount),
			intStr(c.UsageLimit),
			dateStr(c.DateExpires),
		}
	},
}

var coupons = resource[api.Coupon]{
	singular: "coupon",
	plural:   "coupons",
	cols:     couponColumns,
	title:    func(c *api.Coupon) string { return str(c.Code) },
	id:       func(c *api.Coupon) any { return c.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Coupon, error) {
		return c.Coupons().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Coupon) (*api.Coupon, error) {
		return c.Coupons().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Coupon) (*api.Coupon, error) {
		return c.Coupons().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, force bool) (any, error) {
		return c.Coupons().Delete(ctx, id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Coupon] { return &couponFields{} },
	example: `  woo coupons create --code 10off --discount-type percent --amount 10 --individual-use --exclude-sale-items --minimum-amount 100.00
  woo coupons update 719 --amount 5 --expires 2025-12-31`,
}

func newCouponsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coupons",
		Aliases: []string{"coupon"},
		Short:   "Manage coupons",
	}
	cmd.AddCommand(newCouponsListCmd())
	cmd.AddCommand(coupons.getCmd())
	cmd.AddCommand(coupons.createCmd())
	cmd.AddCommand(coupons.updateCmd())
	cmd.AddCommand(coupons.deleteCmd())
	return cmd
}

func newCouponsListCmd() *cobra.Command {
	var (
		lf   listFlags
		code string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List coupons",
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
			page, err := client.Coupons().List(cmdContext(cmd), api.CouponListParams{ListParams: base, Code: code})
			if err != nil {
				return err
			}
			return printPage(cmd, page, couponColumns, "coupons")
		}),
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&code, "code", "", "Filter by coupon code")
	return cmd
}

type couponFields struct {
	code             string
	discountType     string
	amount           string
	description      string
	expires          string
	individualUse    bool
	excludeSaleItems bool
	freeShipping     bool
	usageLimit       int
	usageLimitUser   int
	minimumAmount    string
	maximumAmount    string
	products         []int
	emails           []string
}

func (f *couponFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.code, "code", "", "Coupon code")
	fs.StringVar(&f.discountType, "discount-type", "", "Discount type: percent|fixed_cart|fixed_product")
	fs.StringVar(&f.amount, "amount", "", "Discount amount")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.StringVar(&f.expires, "expires", "", "Expiry date (YYYY-MM-DD or RFC 3339; empty clears it)")
	fs.BoolVar(&f.individualUse, "individual-use", false, "Cannot be combined with other coupons")
	fs.BoolVar(&f.excludeSaleItems, "exclude-sale-items", false, "Do not apply to items on sale")
	fs.BoolVar(&f.freeShipping, "free-shipping", false, "Grant free shipping")
	fs.IntVar(&f.usageLimit, "usage-limit", 0, "Total uses allowed")
	fs.IntVar(&f.usageLimitUser, "usage-limit-per-user", 0, "Uses allowed per customer")
	fs.StringVar(&f.minimumAmount, "minimum-amount", "", "Minimum order amount")
	fs.StringVar(&f.maximumAmount, "maximum-amount", "", "Maximum order amount")
	fs.IntSliceVar(&f.products, "products", nil, "Product IDs the coupon applies to")
	fs.StringSliceVar(&f.emails, "emails", nil, "Billing emails allowed to use the coupon")
}

func (f *couponFields) apply(_ context.Context, cmd *cobra.Command, _ *session, c *api.Coupon) error {
	changed := cmd.Flags().Changed
	if changed("code") {
		c.Code = api.Ptr(f.code)
	}
	if changed("discount-type") {
		c.DiscountType = api.Ptr(f.discountType)
	}
	if changed("description") {
		c.Description = api.Ptr(f.description)
	}
	if err := setMoneyFlag(cmd, "amount", f.amount, &c.Amount); err != nil {
		return err
	}
	if err := setMoneyFlag(cmd, "minimum-amount", f.minimumAmount, &c.MinimumAmount); err != nil {
		return err
	}
	if err := setMoneyFlag(cmd, "maximum-amount", f.maximumAmount, &c.MaximumAmount); err != nil {
		return err
	}
	if changed("expires") {
		t, err := parseDateFlag("expires", f.expires)
		if err != nil {
			return err
		}
		if t == nil {
			c.DateExpires = &api.Time{}
		} else {
			c.DateExpires = &api.Time{Time: *t}
		}
	}
	if changed("individual-use") {
		c.IndividualUse = api.Ptr(f.individualUse)
	}
	if changed("exclude-sale-items") {
		c.ExcludeSaleItems = api.Ptr(f.excludeSaleItems)
	}
	if changed("free-shipping") {
		c.FreeShipping = api.Ptr(f.freeShipping)
	}
	if changed("usage-limit") {
		c.UsageLimit = api.Ptr(f.usageLimit)
	}
	if changed("usage-limit-per-user") {
		c.UsageLimitPerUser = api.Ptr(f.usageLimitUser)
	}
	if changed("products") {
		c.ProductIDs = f.products
	}
	if changed("emails") {
		c.EmailRestrictions = f.emails
	}
	return nil
}
