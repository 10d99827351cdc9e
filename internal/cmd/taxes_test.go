package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxRateJSON = `{"id": 72, "country": "US", "state": "AL", "rate": "4.0000", "name": "State Tax", "priority": 0, "compound": false, "shipping": true, "order": 1, "class": "standard"}`

func TestTaxesList(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/taxes", jsonResponse(200, `[`+taxRateJSON+`]`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "taxes", "list", "--class", "reduced-rate", "--order", "desc")

	assert.Contains(t, out, "State Tax")
	q := handler.last(t, "GET", "/taxes").Query
	assert.Equal(t, "reduced-rate", q["class"])
	assert.Equal(t, "desc", q["order"])
}

func TestTaxesListRejectsOrder(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	_, err := run(t, "taxes", "list", "--order", "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--order must be asc or desc")
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestTaxesCreate(t *testing.T) {
	handler := newRouteHandler().
		On("POST", "/taxes", jsonResponse(201, taxRateJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "taxes", "create", "--country", "us", "--state", "al", "--rate", "4.0000",
		"--name", "State Tax", "--postcodes", "35004,35005", "--shipping=false")

	body := handler.last(t, "POST", "/taxes").Body
	assert.Equal(t, "US", body["country"])
	assert.Equal(t, "AL", body["state"])
	assert.Equal(t, "4.0000", body["rate"])
	assert.Equal(t, []any{"35004", "35005"}, body["postcodes"])
	assert.Equal(t, false, body["shipping"])
	_, hasPriority := body["priority"]
	assert.False(t, hasPriority)
}

func TestTaxesCreateRejectsRate(t *testing.T) {
	setupTestEnvWithHandler(t, newRouteHandler())

	_, err := run(t, "taxes", "create", "--country", "US", "--rate", "four")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for --rate")
}

func TestTaxesUpdateSendsOnlyChanges(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/taxes/72", jsonResponse(200, taxRateJSON)).
		On("PUT", "/taxes/72", jsonResponse(200, taxRateJSON))
	setupTestEnvWithHandler(t, handler)

	mustRun(t, "taxes", "update", "72", "--name", "Alabama", "--country", "US")

	assert.Equal(t, map[string]any{"name": "Alabama"}, handler.last(t, "PUT", "/taxes/72").Body)
}

func TestTaxClasses(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/taxes/classes", jsonResponse(200, `[{"slug":"standard","name":"Standard rate"},{"slug":"zero-rate","name":"Zero rate"}]`)).
		On("POST", "/taxes/classes", jsonResponse(201, `{"slug":"zero","name":"Zero"}`)).
		On("DELETE", "/taxes/classes/zero", jsonResponse(200, `{"slug":"zero","name":"Zero"}`))
	setupTestEnvWithHandler(t, handler)

	out := mustRun(t, "tax-classes", "list")
	assert.Contains(t, out, "zero-rate")

	mustRun(t, "tax-classes", "create", "Zero")
	assert.Equal(t, map[string]any{"name": "Zero"}, handler.last(t, "POST", "/taxes/classes").Body)

	mustRun(t, "tax-classes", "delete", "zero")
	assert.Equal(t, "true", handler.last(t, "DELETE", "/taxes/classes/zero").Query["force"])
}

func TestTaxClassesRefuseStandard(t *testing.T) {
	handler := newRouteHandler()
	setupTestEnvWithHandler(t, handler)

	_, err := run(t, "tax-classes", "delete", "standard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the standard tax class cannot be deleted")
	assert.Zero(t, handler.count("DELETE", "/taxes/classes/standard"))
}
