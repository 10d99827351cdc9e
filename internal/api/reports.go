package api

import (
	"context"
	"encoding/json"
)

// Report periods.
const (
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodLastMonth = "last_month"
	PeriodYear      = "year"
)

// ReportPeriod selects the date range of a report. Either Period or the
// DateMin/DateMax pair (YYYY-MM-DD) is used.
type ReportPeriod struct {
	Period  string
	DateMin string
	DateMax string
}

func (p ReportPeriod) params() Params {
	params := Params{}
	setString(params, "period", p.Period)
	setString(params, "date_min", p.DateMin)
	setString(params, "date_max", p.DateMax)
	return params
}

// Report is an entry of the reports index.
type Report struct {
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// SalesReport summarises sales over a period.
type SalesReport struct {
	TotalSales     *Money                     `json:"total_sales,omitempty"`
	NetSales       *Money                     `json:"net_sales,omitempty"`
	AverageSales   *Money                     `json:"average_sales,omitempty"`
	TotalOrders    FlexInt                    `json:"total_orders"`
	TotalItems     FlexInt                    `json:"total_items"`
	TotalTax       *Money                     `json:"total_tax,omitempty"`
	TotalShipping  *Money                     `json:"total_shipping,omitempty"`
	TotalRefunds   FlexFloat                  `json:"total_refunds"`
	TotalDiscount  FlexFloat                  `json:"total_discount"`
	TotalCustomers FlexInt                    `json:"total_customers"`
	TotalsGroupBy  string                     `json:"totals_grouped_by,omitempty"`
	Totals         map[string]json.RawMessage `json:"totals,omitempty"`
}

// TopSeller is one row of the top sellers report.
type TopSeller struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  FlexInt `json:"quantity"`
}

// List retrieves the available reports.
func (s ReportsService) List(ctx context.Context) ([]Report, error) {
	return getList[Report](ctx, s, "reports", nil)
}

// Sales retrieves the sales report. The endpoint answers with a one-element
// array; an empty array yields nil.
func (s ReportsService) Sales(ctx context.Context, period ReportPeriod) (*SalesReport, error) {
	reports, err := getList[SalesReport](ctx, s, "reports/sales", period.params())
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

// TopSellers retrieves the best selling products for a period.
func (s ReportsService) TopSellers(ctx context.Context, period ReportPeriod) ([]TopSeller, error) {
	return getList[TopSeller](ctx, s, "reports/top_sellers", period.params())
}
