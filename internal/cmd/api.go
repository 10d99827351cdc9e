package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
	"github.com/woopy/woo-cli/internal/iocontext"
	"github.com/woopy/woo-cli/internal/outfmt"
)

func newAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "api",
		Aliases: []string{"ap"},
		Short:   "Make raw requests to any REST API endpoint",
		Long: `Make raw requests to any WooCommerce REST API endpoint.

Endpoints are relative to the API path of the store, so "products/12"
becomes https://shop.example.com/wp-json/wc/v3/products/12. Requests are
authenticated the same way as every other command.`,
	}

	cmd.AddCommand(newAPIMethodCmd(http.MethodGet, `  woo api get system_status
  woo api get products --param per_page=5 --param orderby=price --jq '.[].name'`))
	cmd.AddCommand(newAPIMethodCmd(http.MethodPost, `  woo api post products/batch -d @batch.json
  woo api post customers -f email=ana@example.com -f first_name=Ana`))
	cmd.AddCommand(newAPIMethodCmd(http.MethodPut, `  woo api put products/12 -F 'featured=true'`))
	cmd.AddCommand(newAPIMethodCmd(http.MethodDelete, `  woo api delete products/12 --param force=true`))
	return cmd
}

func newAPIMethodCmd(method, example string) *cobra.Command {
	var (
		params         []string
		fields         []string
		rawFields      []string
		data           string
		includeHeaders bool
		silent         bool
	)

	hasBody := method == http.MethodPost || method == http.MethodPut
	cmd := &cobra.Command{
		Use:     strings.ToLower(method) + " <endpoint>",
		Short:   fmt.Sprintf("Send a %s request", method),
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			endpoint, inline, _ := strings.Cut(strings.TrimSpace(args[0]), "?")
			endpoint = strings.TrimLeft(endpoint, "/")
			if endpoint == "" {
				return fmt.Errorf("endpoint is required")
			}

			// An inline query is merged into the signed parameters; --param wins.
			query := api.Params{}
			if inline != "" {
				values, err := url.ParseQuery(inline)
				if err != nil {
					return fmt.Errorf("invalid value for endpoint query %q: %w", inline, err)
				}
				for key := range values {
					query[key] = values.Get(key)
				}
			}
			for _, p := range params {
				key, value, err := parseField(p)
				if err != nil {
					return err
				}
				query[key] = value
			}

			var body any
			if hasBody {
				b, err := buildRequestBody(cmd, fields, rawFields, data)
				if err != nil {
					return err
				}
				if b != nil {
					body = b
				}
			}

			if method != http.MethodGet {
				preview := &dryrun.Preview{Operation: strings.ToLower(method), Resource: endpoint}
				if len(query) > 0 {
					preview.Params = map[string]any(query)
				}
				if ok, err := previewWrite(cmd, preview, body, api.BodyFull); ok {
					return err
				}
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if method == http.MethodGet && !includeHeaders {
				raw, err := client.GetJSON(cmdContext(cmd), endpoint, query)
				if err != nil {
					return err
				}
				if silent {
					return nil
				}
				return printRawJSON(cmd, raw)
			}

			resp, err := client.Do(cmdContext(cmd), method, endpoint, body, api.BodyFull, query)
			if err != nil {
				return err
			}
			if silent {
				return nil
			}
			return printRawJSON(cmd, apiJSONPayload(resp, includeHeaders))
		}),
	}

	fs := cmd.Flags()
	fs.StringArrayVar(&params, "param", nil, "Query parameter as key=value (repeatable)")
	if hasBody {
		fs.StringArrayVarP(&fields, "field", "f", nil, "Body field as key=value (string)")
		fs.StringArrayVarP(&rawFields, "raw-field", "F", nil, "Body field as key=value (JSON parsed)")
		fs.StringVarP(&data, "data", "d", "", "Request body: JSON, @file or - for stdin")
	}
	fs.BoolVar(&includeHeaders, "include", false, "Wrap the output with the status code and response headers")
	fs.BoolVarP(&silent, "silent", "s", false, "Suppress output")
	flagAlias(fs, "include", "inc")

	return cmd
}

// printRawJSON writes a passthrough response as JSON whatever the output
// mode; --jq and --template still apply in JSON mode.
func printRawJSON(cmd *cobra.Command, v any) error {
	if isJSON(cmd) {
		return printJSON(cmd, v)
	}
	return outfmt.WriteJSONMaybeCompact(iocontext.GetIO(cmd.Context()).Out, v, outfmt.IsCompact(cmd.Context()))
}

func apiJSONPayload(resp *api.Response, includeHeaders bool) any {
	body := apiJSONBody(resp.Body)
	if !includeHeaders {
		return body
	}
	return map[string]any{
		"status":  resp.StatusCode,
		"headers": resp.Header,
		"body":    body,
	}
}

func apiJSONBody(respBody []byte) any {
	if len(respBody) == 0 {
		return nil
	}
	if !json.Valid(respBody) {
		return string(respBody)
	}
	return json.RawMessage(respBody)
}

// buildRequestBody merges --data with the field flags. Fields win over
// keys of the same name in --data.
func buildRequestBody(cmd *cobra.Command, fields, rawFields []string, data string) (map[string]any, error) {
	body := make(map[string]any)

	if data != "" {
		raw, err := iocontext.ReadSource(cmdContext(cmd), data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("invalid --data: must be a JSON object: %w", err)
		}
	}

	for _, field := range fields {
		key, value, err := parseField(field)
		if err != nil {
			return nil, err
		}
		body[key] = value
	}

	for _, field := range rawFields {
		key, value, err := parseRawField(field)
		if err != nil {
			return nil, err
		}
		body[key] = value
	}

	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}

// parseField parses a key=value pair where value is a string.
func parseField(field string) (string, string, error) {
	key, value, ok := strings.Cut(field, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("invalid value %q: must be key=value", field)
	}
	return strings.TrimSpace(key), value, nil
}

// parseRawField parses a key=value pair where value is JSON.
func parseRawField(field string) (string, any, error) {
	key, raw, err := parseField(field)
	if err != nil {
		return "", nil, err
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("invalid value for --raw-field %q: %w", key, err)
	}
	return key, value, nil
}
