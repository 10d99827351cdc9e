package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/cache"
)

// Cache keys of the static reference data.
const (
	cacheCountries  = "data/countries"
	cacheCurrencies = "data/currencies"
)

func newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Browse reference data (countries, currencies)",
		Long: "Browse the store's reference data. Country and currency lists are cached;\n" +
			"pass --no-cache to bypass the cache.",
	}
	cmd.AddCommand(newDataCountriesCmd())
	cmd.AddCommand(newDataCurrenciesCmd())
	return cmd
}

var countryColumns = columns[api.Country]{
	headers: []string{"CODE", "NAME", "STATES"},
	row: func(c api.Country) []string {
		return []string{c.Code, c.Name, strconv.Itoa(len(c.States))}
	},
}

var stateColumns = columns[api.State]{
	headers: []string{"CODE", "NAME"},
	row:     func(s api.State) []string { return []string{s.Code, s.Name} },
}

func newDataCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "countries [code]",
		Aliases: []string{"country"},
		Short:   "List countries, or show one country's states",
		Example: `  woo data countries
  woo data countries br`,
		Args: cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()
			ctx := cmdContext(cmd)

			countries, err := cache.Fetch(ctx, s.cache(), cacheCountries, s.client.Data().Countries)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printItems(cmd, countries, countryColumns, "countries")
			}

			code := strings.ToUpper(strings.TrimSpace(args[0]))
			country, err := findCountry(ctx, s.client, countries, code)
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, country)
			}
			return printItems(cmd, country.States, stateColumns, "states of "+country.Name)
		}),
	}
}

// findCountry looks code up in the list, falling back to the API for codes
// the list lacks.
func findCountry(ctx context.Context, client *api.Client, countries []api.Country, code string) (*api.Country, error) {
	for i := range countries {
		if strings.EqualFold(countries[i].Code, code) {
			return &countries[i], nil
		}
	}
	country, err := client.Data().Country(ctx, code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, notFound("country", code)
	}
	return country, nil
}

var currencyColumns = columns[api.Currency]{
	headers: []string{"CODE", "NAME", "SYMBOL"},
	row:     func(c api.Currency) []string { return []string{c.Code, c.Name, c.Symbol} },
}

func newDataCurrenciesCmd() *cobra.Command {
	var current bool

	cmd := &cobra.Command{
		Use:     "currencies [code]",
		Aliases: []string{"currency"},
		Short:   "List currencies, or show one",
		Example: `  woo data currencies
  woo data currencies brl
  woo data currencies --current`,
		Args: cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()
			ctx := cmdContext(cmd)

			if current {
				currency, err := s.client.Data().CurrentCurrency(ctx)
				if err != nil {
					return err
				}
				if currency == nil {
					return notFound("currency", "current")
				}
				return printItem(cmd, currency, currencyColumns)
			}

			currencies, err := cache.Fetch(ctx, s.cache(), cacheCurrencies, s.client.Data().Currencies)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printItems(cmd, currencies, currencyColumns, "currencies")
			}
			code := strings.ToUpper(strings.TrimSpace(args[0]))
			for i := range currencies {
				if currencies[i].Code == code {
					return printItem(cmd, &currencies[i], currencyColumns)
				}
			}
			currency, err := s.client.Data().Currency(ctx, code)
			if err != nil {
				return err
			}
			if currency == nil {
				return notFound("currency", code)
			}
			return printItem(cmd, currency, currencyColumns)
		}),
	}
	cmd.Flags().BoolVar(&current, "current", false, "Show the store's currency")
	return cmd
}
