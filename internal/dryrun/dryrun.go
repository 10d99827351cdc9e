// Package dryrun previews store writes without sending them.
package dryrun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
)

type contextKey string

const dryRunKey contextKey = "dry_run_enabled"

// WithDryRun returns a context with dry-run mode enabled/disabled.
func WithDryRun(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, dryRunKey, enabled)
}

// IsEnabled returns true if dry-run mode is enabled.
func IsEnabled(ctx context.Context) bool {
	if v, ok := ctx.Value(dryRunKey).(bool); ok {
		return v
	}
	return false
}

// Preview is a write that would have been sent.
type Preview struct {
	DryRun    bool            `json:"dry_run"`
	Operation string          `json:"operation"`
	Resource  string          `json:"resource"`
	ID        any             `json:"id,omitempty"`
	Params    map[string]any  `json:"params,omitempty"`
	Body      json.RawMessage `json:"body,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// Write renders the preview as text.
func (p *Preview) Write(w io.Writer) error {
	target := p.Resource
	if p.ID != nil {
		target = fmt.Sprintf("%s %v", target, p.ID)
	}
	if _, err := fmt.Fprintf(w, "[DRY-RUN] Would %s %s\n", p.Operation, target); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(p.Params)) {
		_, _ = fmt.Fprintf(w, "  %s=%v\n", key, p.Params[key])
	}
	if len(p.Body) > 0 {
		var indented bytes.Buffer
		if err := json.Indent(&indented, p.Body, "  ", "  "); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "  %s\n", indented.String())
	}
	for _, warning := range p.Warnings {
		_, _ = fmt.Fprintf(w, "  ! %s\n", warning)
	}
	_, err := fmt.Fprintln(w, "No changes made (dry-run mode)")
	return err
}
