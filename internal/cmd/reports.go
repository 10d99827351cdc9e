package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "View store reports",
	}
	cmd.AddCommand(newReportsListCmd())
	cmd.AddCommand(newReportsSalesCmd())
	cmd.AddCommand(newReportsTopSellersCmd())
	return cmd
}

var reportColumns = columns[api.Report]{
	headers: []string{"SLUG", "DESCRIPTION"},
	row:     func(r api.Report) []string { return []string{r.Slug, r.Description} },
}

func newReportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available reports",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			reports, err := client.Reports().List(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printItems(cmd, reports, reportColumns, "reports")
		}),
	}
}

// periodFlags select the range of a report.
type periodFlags struct {
	period  string
	dateMin string
	dateMax string
}

func (p *periodFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&p.period, "period", "", "Period: week|month|last_month|year")
	fs.StringVar(&p.dateMin, "date-min", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(&p.dateMax, "date-max", "", "End date (YYYY-MM-DD)")
}

func (p *periodFlags) value() (api.ReportPeriod, error) {
	switch p.period {
	case "", api.PeriodWeek, api.PeriodMonth, api.PeriodLastMonth, api.PeriodYear:
	default:
		return api.ReportPeriod{}, fmt.Errorf("--period must be week, month, last_month or year")
	}
	if p.period != "" && (p.dateMin != "" || p.dateMax != "") {
		return api.ReportPeriod{}, fmt.Errorf("--period cannot be combined with --date-min or --date-max")
	}
	for name, v := range map[string]string{"date-min": p.dateMin, "date-max": p.dateMax} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, v); err != nil {
			return api.ReportPeriod{}, fmt.Errorf("invalid value for --%s %q: use YYYY-MM-DD", name, v)
		}
	}
	return api.ReportPeriod{Period: p.period, DateMin: p.dateMin, DateMax: p.dateMax}, nil
}

type salesRow struct {
	label string
	value string
}

var salesColumns = columns[salesRow]{
	headers: []string{"METRIC", "VALUE"},
	row:     func(r salesRow) []string { return []string{r.label, r.value} },
}

func newReportsSalesCmd() *cobra.Command {
	var pf periodFlags

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Show the sales report",
		Example: `  woo reports sales --period last_month
  woo reports sales --date-min 2024-01-01 --date-max 2024-03-31 -o json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			period, err := pf.value()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			report, err := client.Reports().Sales(cmdContext(cmd), period)
			if err != nil {
				return err
			}
			if report == nil {
				report = &api.SalesReport{}
			}
			if isJSON(cmd) {
				return printJSON(cmd, report)
			}
			rows := []salesRow{
				{"Total sales", money(report.TotalSales)},
				{"Net sales", money(report.NetSales)},
				{"Average sales", money(report.AverageSales)},
				{"Orders", strconv.Itoa(int(report.TotalOrders))},
				{"Items", strconv.Itoa(int(report.TotalItems))},
				{"Tax", money(report.TotalTax)},
				{"Shipping", money(report.TotalShipping)},
				{"Refunds", strconv.FormatFloat(float64(report.TotalRefunds), 'f', -1, 64)},
				{"Discounts", strconv.FormatFloat(float64(report.TotalDiscount), 'f', -1, 64)},
				{"Customers", strconv.Itoa(int(report.TotalCustomers))},
			}
			return printItems(cmd, rows, salesColumns, "sales")
		}),
	}
	pf.register(cmd)
	return cmd
}

var topSellerColumns = columns[api.TopSeller]{
	headers: []string{"PRODUCT", "NAME", "QUANTITY"},
	row: func(t api.TopSeller) []string {
		return []string{strconv.Itoa(t.ProductID), t.Name, strconv.Itoa(int(t.Quantity))}
	},
}

func newReportsTopSellersCmd() *cobra.Command {
	var pf periodFlags

	cmd := &cobra.Command{
		Use:     "top-sellers",
		Aliases: []string{"top"},
		Short:   "Show the best selling products",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			period, err := pf.value()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			sellers, err := client.Reports().TopSellers(cmdContext(cmd), period)
			if err != nil {
				return err
			}
			return printItems(cmd, sellers, topSellerColumns, "top sellers")
		}),
	}
	pf.register(cmd)
	return cmd
}
