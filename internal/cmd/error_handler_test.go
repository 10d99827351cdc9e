package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/config"
	"github.com/woopy/woo-cli/internal/resolve"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "not configured",
			err:      config.ErrNotConfigured,
			contains: []string{"woo auth login", "WOO_URL"},
		},
		{
			name:     "unauthorized",
			err:      &api.APIError{StatusCode: 401, Code: "woocommerce_rest_cannot_view", Message: "Sorry, you cannot list resources."},
			contains: []string{"woocommerce_rest_cannot_view", "consumer key", "query_string_auth"},
		},
		{
			name:     "invalid param",
			err:      fmt.Errorf("create: %w", &api.APIError{StatusCode: 400, Code: "rest_invalid_param", Message: "Invalid parameter(s): status"}),
			contains: []string{"Invalid parameter(s): status", "invalid value"},
		},
		{
			name:     "no route",
			err:      &api.APIError{StatusCode: 404, Code: "rest_no_route"},
			contains: []string{"api_path"},
		},
		{
			name:     "decode",
			err:      &api.DecodeError{Endpoint: "products", Err: errors.New("invalid character '<'")},
			contains: []string{"WooCommerce"},
		},
		{
			name:     "ambiguous",
			err:      &resolve.AmbiguousError{Query: "shirt", Matches: []resolve.Match{{ID: 1, Name: "Shirts"}, {ID: 2, Name: "T-Shirts"}}},
			contains: []string{"slug"},
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp: connection refused"),
			contains: []string{"Connection refused", "woo auth status"},
		},
		{
			name:     "plain",
			err:      errors.New("something broke"),
			contains: []string{"Error: something broke"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandleError(tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("HandleError() = %q, missing %q", got, want)
				}
			}
		})
	}

	if HandleError(nil) != "" {
		t.Error("HandleError(nil) should be empty")
	}
}
