package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var refundColumns = columns[api.Refund]{
	headers: []string{"ID", "AMOUNT", "REASON", "BY", "DATE"},
	row: func(r api.Refund) []string {
		return []string{
			strconv.Itoa(r.ID),
			money(r.Amount),
			truncate(str(r.Reason), 40),
			intStr(r.RefundedBy),
			dateStr(r.DateCreated),
		}
	},
}

var refunds = resource[api.Refund]{
	singular: "refund",
	plural:   "refunds",
	parents:  []string{"order"},
	cols:     refundColumns,
	title:    func(r *api.Refund) string { return money(r.Amount) },
	id:       func(r *api.Refund) any { return r.ID },
	get: func(ctx context.Context, c *api.Client, parents []int, id int) (*api.Refund, error) {
		return c.OrderRefunds().Get(ctx, parents[0], id)
	},
	create: func(ctx context.Context, c *api.Client, parents []int, v *api.Refund) (*api.Refund, error) {
		return c.OrderRefunds().Create(ctx, parents[0], v)
	},
	remove: func(ctx context.Context, c *api.Client, parents []int, id int, _ bool) (any, error) {
		return c.OrderRefunds().Delete(ctx, parents[0], id)
	},
	fields: func() mutation[api.Refund] { return &refundFields{} },
	example: `  woo refunds create 723 --amount 10.00 --reason "Damaged in transit"
  woo refunds create 723 --amount 30 --api-refund=false --data '{"line_items":[{"id":111,"quantity":1,"refund_total":30}]}'`,
}

func newRefundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Manage order refunds",
		Long:    "Manage order refunds. Refunds cannot be edited once created.",
	}
	cmd.AddCommand(newRefundsListCmd())
	cmd.AddCommand(refunds.getCmd())
	cmd.AddCommand(refunds.createCmd())
	cmd.AddCommand(refunds.deleteCmd())
	return cmd
}

func newRefundsListCmd() *cobra.Command {
	var (
		lf            listFlags
		parent        []int
		parentExclude []int
		decimals      int
	)

	cmd := &cobra.Command{
		Use:     "list <order-id>",
		Aliases: []string{"ls"},
		Short:   "List the refunds of an order",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID(args[0], "order")
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
			page, err := client.OrderRefunds().List(cmdContext(cmd), orderID, api.RefundListParams{
				ListParams:    base,
				Parent:        parent,
				ParentExclude: parentExclude,
				DecimalPoints: decimals,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, refundColumns, "refunds")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.IntSliceVar(&parent, "parent", nil, "Only refunds with these parent IDs")
	fs.IntSliceVar(&parentExclude, "parent-exclude", nil, "Exclude refunds with these parent IDs")
	fs.IntVar(&decimals, "dp", 0, "Decimal places for amounts")
	return cmd
}

type refundFields struct {
	amount     string
	reason     string
	refundedBy int
	apiRefund  bool
	apiRestock bool
}

func (f *refundFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.amount, "amount", "", "Refund amount")
	fs.StringVar(&f.reason, "reason", "", "Reason for the refund")
	fs.IntVar(&f.refundedBy, "refunded-by", 0, "User ID of the refunding user")
	fs.BoolVar(&f.apiRefund, "api-refund", true, "Refund through the payment gateway")
	fs.BoolVar(&f.apiRestock, "api-restock", true, "Restock refunded items")
}

func (f *refundFields) apply(_ context.Context, cmd *cobra.Command, _ *session, r *api.Refund) error {
	changed := cmd.Flags().Changed
	if err := setMoneyFlag(cmd, "amount", f.amount, &r.Amount); err != nil {
		return err
	}
	if changed("reason") {
		r.Reason = api.Ptr(f.reason)
	}
	if changed("refunded-by") {
		r.RefundedBy = api.Ptr(f.refundedBy)
	}
	if changed("api-refund") {
		r.APIRefund = api.Ptr(f.apiRefund)
	}
	if changed("api-restock") {
		r.APIRestock = api.Ptr(f.apiRestock)
	}
	return nil
}
