package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"setting"},
		Short:   "View and change store settings",
	}
	cmd.AddCommand(newSettingsGroupsCmd())
	cmd.AddCommand(newSettingsListCmd())
	cmd.AddCommand(newSettingsGetCmd())
	cmd.AddCommand(newSettingsUpdateCmd())
	return cmd
}

var settingGroupColumns = columns[api.SettingGroup]{
	headers: []string{"ID", "LABEL", "PARENT"},
	row:     func(g api.SettingGroup) []string { return []string{g.ID, g.Label, g.ParentID} },
}

var settingColumns = columns[api.SettingOption]{
	headers: []string{"ID", "TYPE", "VALUE", "LABEL"},
	row: func(o api.SettingOption) []string {
		return []string{o.ID, o.Type, truncate(settingValueString(o.Value), 40), o.Label}
	},
}

// settingValueString renders string values as is and anything else as JSON.
func settingValueString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func newSettingsGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List setting groups",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			groups, err := client.Settings().Groups(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printItems(cmd, groups, settingGroupColumns, "setting groups")
		}),
	}
}

func newSettingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <group>",
		Aliases: []string{"ls"},
		Short:   "List the options of a setting group",
		Example: `  woo settings list general
  woo settings list products -o json --jq '.items[] | {id, value}'`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			options, err := client.Settings().List(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printItems(cmd, options, settingColumns, "settings")
		}),
	}
}

func newSettingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <group> <id>",
		Aliases: []string{"g", "show"},
		Short:   "Get one setting",
		Args:    cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			option, err := client.Settings().Get(cmdContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			if option == nil {
				return notFound("setting", args[0]+"/"+args[1])
			}
			return printItem(cmd, option, settingColumns)
		}),
	}
}

func newSettingsUpdateCmd() *cobra.Command {
	var (
		value   string
		rawJSON bool
	)

	cmd := &cobra.Command{
		Use:     "update <group> <id>",
		Aliases: []string{"set"},
		Short:   "Change one setting",
		Example: `  woo settings update general woocommerce_allowed_countries --value all_except
  woo settings update general woocommerce_specific_allowed_countries --json-value --value '["BR","US"]'`,
		Args: cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("value") {
				return fmt.Errorf("--value is required")
			}
			var v any = value
			if rawJSON {
				dec := json.NewDecoder(strings.NewReader(value))
				dec.UseNumber()
				if err := dec.Decode(&v); err != nil {
					return fmt.Errorf("invalid value for --value: %w", err)
				}
			}
			preview := &dryrun.Preview{Operation: "update", Resource: "setting", ID: args[0] + "/" + args[1]}
			if ok, err := previewWrite(cmd, preview, map[string]any{"value": v}, api.BodyFull); ok {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			option, err := client.Settings().Update(cmdContext(cmd), args[0], args[1], v)
			if err != nil {
				return err
			}
			printAction(cmd, "Updated", "setting", args[0]+"/"+option.ID, settingValueString(option.Value))
			return printItem(cmd, option, settingColumns)
		}),
	}
	cmd.Flags().StringVar(&value, "value", "", "New value")
	cmd.Flags().BoolVar(&rawJSON, "json-value", false, "Parse --value as JSON (for array and object settings)")
	return cmd
}
