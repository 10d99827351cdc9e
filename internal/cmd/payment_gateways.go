package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
)

var paymentGatewayColumns = columns[api.PaymentGateway]{
	headers: []string{"ID", "TITLE", "ENABLED", "ORDER", "METHOD"},
	row: func(g api.PaymentGateway) []string {
		return []string{g.ID, g.Title, strconv.FormatBool(g.Enabled), strconv.Itoa(int(g.Order)), g.MethodTitle}
	},
}

func newPaymentGatewaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payment-gateways",
		Aliases: []string{"gateways", "gateway", "pg"},
		Short:   "Manage payment gateways",
	}
	cmd.AddCommand(newPaymentGatewaysListCmd())
	cmd.AddCommand(newPaymentGatewaysGetCmd())
	cmd.AddCommand(newPaymentGatewaysUpdateCmd())
	return cmd
}

func newPaymentGatewaysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List payment gateways",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			gateways, err := client.PaymentGateways().List(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printItems(cmd, gateways, paymentGatewayColumns, "payment gateways")
		}),
	}
}

var gatewaySettingColumns = columns[api.GatewaySetting]{
	headers: []string{"SETTING", "TYPE", "VALUE", "LABEL"},
	row: func(s api.GatewaySetting) []string {
		return []string{s.ID, s.Type, truncate(s.Value.String(), 40), s.Label}
	},
}

func newPaymentGatewaysGetCmd() *cobra.Command {
	var showSettings bool

	cmd := &cobra.Command{
		Use:     "get <id>",
		Aliases: []string{"g", "show"},
		Short:   "Get a payment gateway",
		Example: `  woo payment-gateways get bacs
  woo payment-gateways get stripe --settings`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			gateway, err := client.PaymentGateways().Get(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			if gateway == nil {
				return notFound("payment gateway", args[0])
			}
			if isJSON(cmd) || !showSettings {
				return printItem(cmd, gateway, paymentGatewayColumns)
			}
			if err := printItem(cmd, gateway, paymentGatewayColumns); err != nil {
				return err
			}
			return printItems(cmd, sortedSettings(gateway.Settings), gatewaySettingColumns, "settings")
		}),
	}
	cmd.Flags().BoolVar(&showSettings, "settings", false, "Also list the gateway's settings")
	return cmd
}

func sortedSettings(settings map[string]api.GatewaySetting) []api.GatewaySetting {
	out := make([]api.GatewaySetting, 0, len(settings))
	for _, s := range settings {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b api.GatewaySetting) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func newPaymentGatewaysUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		order       int
		enabled     bool
		settings    []string
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"edit", "set"},
		Short:   "Update a payment gateway",
		Example: `  woo payment-gateways update bacs --enabled
  woo payment-gateways update cheque --title "Pay by cheque" --setting instructions="Send to ..."`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			changes := api.PaymentGatewayUpdate{}
			fs := cmd.Flags()
			if fs.Changed("title") {
				changes.Title = &title
			}
			if fs.Changed("description") {
				changes.Description = &description
			}
			if fs.Changed("order") {
				changes.Order = &order
			}
			if fs.Changed("enabled") {
				changes.Enabled = &enabled
			}
			for _, kv := range settings {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf("invalid value for --setting %q: use key=value", kv)
				}
				if changes.Settings == nil {
					changes.Settings = map[string]string{}
				}
				changes.Settings[strings.TrimSpace(key)] = value
			}
			if !localFlagsChanged(cmd) {
				return fmt.Errorf("at least one field flag is required")
			}
			preview := &dryrun.Preview{Operation: "update", Resource: "payment gateway", ID: args[0]}
			if ok, err := previewWrite(cmd, preview, changes, api.BodyFull); ok {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			gateway, err := client.PaymentGateways().Update(cmdContext(cmd), args[0], changes)
			if err != nil {
				return err
			}
			printAction(cmd, "Updated", "payment gateway", gateway.ID, gateway.Title)
			return printItem(cmd, gateway, paymentGatewayColumns)
		}),
	}
	fs := cmd.Flags()
	fs.StringVar(&title, "title", "", "Title shown at checkout")
	fs.StringVar(&description, "description", "", "Description shown at checkout")
	fs.IntVar(&order, "order", 0, "Sort position at checkout")
	fs.BoolVar(&enabled, "enabled", false, "Enable the gateway (--enabled=false to disable)")
	fs.StringArrayVar(&settings, "setting", nil, "Setting as key=value (repeatable)")
	return cmd
}
