package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/reports", jsonResponse(200, `[{"slug":"sales","description":"List of sales reports."},{"slug":"top_sellers","description":"List of top sellers products."}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "reports", "list")

	assert.Contains(t, out, "top_sellers")
}

func TestReportsSales(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/reports/sales", jsonResponse(200, `[{"total_sales":"14.00","net_sales":"4.00","average_sales":"2.00","total_orders":3,"total_items":6,"total_tax":"0.00","total_shipping":"10.00","total_refunds":0,"total_discount":"0.00","total_customers":"2"}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "reports", "sales", "--period", "last_month")

	assert.Contains(t, out, "Total sales")
	assert.Contains(t, out, "14")
	assert.Contains(t, out, "Customers")
	assert.Equal(t, "last_month", handler.last(t, "GET", "/reports/sales").Query["period"])
}

func TestReportsSalesDateRange(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/reports/sales", jsonResponse(200, `[{"total_sales":"1.00","total_orders":1}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "reports", "sales", "--date-min", "2024-01-01", "--date-max", "2024-03-31", "-o", "json")

	assert.Equal(t, float64(1), decodeObject(t, out)["total_orders"])
	q := handler.last(t, "GET", "/reports/sales").Query
	assert.Equal(t, "2024-01-01", q["date_min"])
	assert.Equal(t, "2024-03-31", q["date_max"])
}

func TestReportsPeriodValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown period", []string{"--period", "decade"}, "--period must be"},
		{"combined", []string{"--period", "week", "--date-min", "2024-01-01"}, "cannot be combined"},
		{"bad date", []string{"--date-max", "March"}, "invalid value for --date-max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newRouteHandler()
			setupTestEnvWithHandler(t, handler)

			_, err := run(t, append([]string{"reports", "top-sellers"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, exitUsage, ExitCode(err))
			assert.Zero(t, handler.count("GET", "/reports/top_sellers"))
		})
	}
}

func TestReportsTopSellers(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/reports/top_sellers", jsonResponse(200, `[{"product_id":96,"name":"Woo Album #4","quantity":2}]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "reports", "top-sellers", "--period", "week")

	assert.Contains(t, out, "Woo Album #4")
	assert.Equal(t, "week", handler.last(t, "GET", "/reports/top_sellers").Query["period"])
}
