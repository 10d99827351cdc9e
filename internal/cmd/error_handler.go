package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/config"
	"github.com/woopy/woo-cli/internal/resolve"
)

// HandleError processes an error and returns a user-friendly message with suggestions
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var apiErr *api.APIError
	var decodeErr *api.DecodeError
	var ambiguous *resolve.AmbiguousError

	switch {
	case errors.Is(err, config.ErrNotConfigured):
		fmt.Fprintf(&msg, "Error: %s\n\n", err)
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: woo auth login --url https://shop.example.com\n")
		msg.WriteString("  - Or set WOO_URL, WOO_CONSUMER_KEY and WOO_CONSUMER_SECRET\n")

	case errors.As(err, &apiErr):
		fmt.Fprintf(&msg, "Error: %s\n\n", apiErr.Error())
		msg.WriteString(suggestionsForStatusCode(apiErr.StatusCode, apiErr.Code))

	case errors.As(err, &decodeErr):
		fmt.Fprintf(&msg, "Error: %s\n\n", decodeErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check that the store URL points at a WordPress site with WooCommerce\n")
		msg.WriteString("  - A security plugin or cache may be rewriting API responses\n")
		msg.WriteString("  - Use --debug to see the request\n")

	case errors.As(err, &ambiguous):
		fmt.Fprintf(&msg, "Error: %s\n\n", ambiguous.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Use the numeric ID or the exact slug\n")

	case strings.Contains(err.Error(), "connection refused"):
		msg.WriteString("Connection refused.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check that the store is running\n")
		msg.WriteString("  - Verify the URL: woo auth status\n")

	case strings.Contains(err.Error(), "no such host"):
		msg.WriteString("DNS resolution failed.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check the store URL spelling\n")
		msg.WriteString("  - Verify your DNS settings\n")

	case strings.Contains(err.Error(), "certificate"):
		msg.WriteString("TLS certificate error.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the store's SSL certificate\n")
		msg.WriteString("  - For a local store with a self-signed certificate, log in with --insecure-skip-verify\n")

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}

func suggestionsForStatusCode(status int, code string) string {
	var s strings.Builder
	s.WriteString("Suggestions:\n")

	switch status {
	case 400:
		s.WriteString("  - Check your request parameters\n")
		if strings.Contains(code, "invalid_param") {
			s.WriteString("  - One of the fields has an invalid value (see details above)\n")
		}
		s.WriteString("  - Use --debug to see the full request\n")

	case 401:
		s.WriteString("  - The consumer key or secret may be wrong or revoked\n")
		s.WriteString("  - Run: woo auth login\n")
		s.WriteString("  - Over plain HTTP some servers strip the Authorization header; try query_string_auth\n")

	case 403:
		s.WriteString("  - The API key may be read-only; write operations need a read/write key\n")

	case 404:
		s.WriteString("  - The resource doesn't exist or was deleted\n")
		s.WriteString("  - Check the ID is correct\n")
		if strings.Contains(code, "no_route") {
			s.WriteString("  - The endpoint is unknown; check the store URL and api_path setting\n")
		}

	case 429:
		s.WriteString("  - Too many requests; wait and retry\n")
		s.WriteString("  - Set rate_limit in the profile to throttle requests\n")

	case 500, 502, 503, 504:
		s.WriteString("  - Server error - not your fault\n")
		s.WriteString("  - Wait and retry\n")

	default:
		s.WriteString("  - Use --debug for more details\n")
	}

	return s.String()
}
