package api

import (
	"context"
	"strings"
)

// State is a state or province of a country.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country is a country with its states.
type Country struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	States []State `json:"states,omitempty"`
}

// Currency is a currency the store can use.
type Currency struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Position          string  `json:"position,omitempty"`
	ThousandSeparator string  `json:"thousand_separator,omitempty"`
	DecimalSeparator  string  `json:"decimal_separator,omitempty"`
	Decimals          FlexInt `json:"decimals,omitempty"`
}

// Countries retrieves every country.
func (s DataService) Countries(ctx context.Context) ([]Country, error) {
	return getList[Country](ctx, s, "data/countries", nil)
}

// Country retrieves a country by ISO code. It returns nil when unknown.
func (s DataService) Country(ctx context.Context, code string) (*Country, error) {
	return getOne[Country](ctx, s, endpointf("data/countries/%s", strings.ToLower(code)), nil)
}

// Currencies retrieves every currency.
func (s DataService) Currencies(ctx context.Context) ([]Currency, error) {
	return getList[Currency](ctx, s, "data/currencies", nil)
}

// Currency retrieves a currency by ISO code. It returns nil when unknown.
func (s DataService) Currency(ctx context.Context, code string) (*Currency, error) {
	return getOne[Currency](ctx, s, endpointf("data/currencies/%s", strings.ToUpper(code)), nil)
}

// CurrentCurrency retrieves the store's currency.
func (s DataService) CurrentCurrency(ctx context.Context) (*Currency, error) {
	return getOne[Currency](ctx, s, "data/currencies/current", nil)
}
