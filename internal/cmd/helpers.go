package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/dryrun"
	"github.com/woopy/woo-cli/internal/iocontext"
	"github.com/woopy/woo-cli/internal/outfmt"
)

// errAlreadyHandled is a sentinel error indicating the error was already printed to stderr.
// Commands using RunE return it so Cobra reports failure without printing the error again.
var errAlreadyHandled = errors.New("error already handled")

type handledError struct {
	err      error
	exitCode int
}

func (e *handledError) Error() string {
	return e.err.Error()
}

func (e *handledError) Unwrap() error {
	return errAlreadyHandled
}

func (e *handledError) ExitCode() int {
	return e.exitCode
}

// notFoundError reports an object the store does not have.
type notFoundError struct {
	resource string
	id       string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.resource, e.id)
}

func notFound(resource string, id any) error {
	return &notFoundError{resource: resource, id: fmt.Sprint(id)}
}

// errorPayload is what RunE writes to stderr in JSON mode.
type errorPayload struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Status  int               `json:"status,omitempty"`
	Details []api.ErrorDetail `json:"details,omitempty"`
}

func newErrorPayload(err error) errorPayload {
	payload := errorPayload{Error: err.Error()}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		payload.Error = apiErr.Message
		if payload.Error == "" {
			payload.Error = err.Error()
		}
		payload.Code = apiErr.Code
		payload.Status = apiErr.StatusCode
		payload.Details = apiErr.Details
	}
	return payload
}

// RunE wraps a command function with enhanced error handling
func RunE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}
		errOut := iocontext.GetIO(cmd.Context()).ErrOut
		if isJSON(cmd) {
			_ = outfmt.WriteJSON(errOut, newErrorPayload(err))
		} else {
			_, _ = fmt.Fprint(errOut, HandleError(err))
		}
		// Return a handled error so tests can still inspect the original message.
		return &handledError{err: err, exitCode: ExitCode(err)}
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	return cmd.Context()
}

func isJSON(cmd *cobra.Command) bool {
	return outfmt.IsJSON(cmd.Context())
}

func newFormatter(cmd *cobra.Command) *outfmt.Formatter {
	ioStreams := iocontext.GetIO(cmd.Context())
	return outfmt.NewFormatter(cmd.Context(), ioStreams.Out, ioStreams.ErrOut)
}

// printJSON outputs data as JSON with --jq, --template and jsonl applied.
func printJSON(cmd *cobra.Command, v any) error {
	return newFormatter(cmd).Output(v)
}

// maybeDryRun prints preview and returns true when --dry-run is set. The
// caller returns the error without sending its request.
func maybeDryRun(cmd *cobra.Command, preview *dryrun.Preview) (bool, error) {
	if !dryrun.IsEnabled(cmd.Context()) {
		return false, nil
	}
	preview.DryRun = true
	if isJSON(cmd) {
		return true, printJSON(cmd, preview)
	}
	return true, preview.Write(iocontext.GetIO(cmd.Context()).Out)
}

// previewWrite is maybeDryRun for a request carrying body, encoded the
// way mode would send it. body may be nil.
func previewWrite(cmd *cobra.Command, preview *dryrun.Preview, body any, mode api.BodyMode) (bool, error) {
	if !dryrun.IsEnabled(cmd.Context()) {
		return false, nil
	}
	if body != nil {
		data, err := api.RequestBody(body, mode)
		if err != nil {
			return true, err
		}
		preview.Body = data
	}
	return maybeDryRun(cmd, preview)
}

// printAction reports a completed mutation in text mode.
func printAction(cmd *cobra.Command, action, resource string, id any, name string) {
	if isJSON(cmd) {
		return
	}
	message := fmt.Sprintf("%s %s", action, resource)
	if id != nil {
		if value, ok := id.(string); !ok || value != "" {
			message = fmt.Sprintf("%s %v", message, id)
		}
	}
	if name != "" {
		message = fmt.Sprintf("%s: %s", message, name)
	}
	_, _ = fmt.Fprintln(iocontext.GetIO(cmd.Context()).ErrOut, message)
}

// parseID parses a positive numeric ID. "#12" is accepted for 12.
func parseID(input, label string) (int, error) {
	input = strings.TrimPrefix(strings.TrimSpace(input), "#")
	id, err := strconv.Atoi(input)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a positive integer", label, input)
	}
	return id, nil
}

// parseIDs parses every argument, each of which may itself be a
// comma-separated list.
func parseIDs(args []string, label string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			id, err := parseID(part, label)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one %s ID is required", label)
	}
	return ids, nil
}

// decodeData reads a --data value (JSON, @file or - for stdin) onto v.
// Fields absent from the document keep their current value in v.
func decodeData(ctx context.Context, source string, v any) error {
	data, err := iocontext.ReadSource(ctx, source)
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("--data is empty")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid --data: %w", err)
	}
	return nil
}

// flagAlias registers a hidden alias that shares the value of flag name.
func flagAlias(fs *pflag.FlagSet, name, alias string) {
	f := fs.Lookup(name)
	if f == nil {
		panic(fmt.Sprintf("flagAlias: flag %q not found", name))
	}
	fs.AddFlag(&pflag.Flag{
		Name:        alias,
		Usage:       "alias of --" + name,
		Value:       f.Value,
		DefValue:    f.DefValue,
		NoOptDefVal: f.NoOptDefVal,
		Hidden:      true,
	})
}

// optionalBool returns a pointer to the flag value when the flag was set.
func optionalBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func money(m *api.Money) string {
	if m == nil {
		return ""
	}
	return m.String()
}

func intStr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func boolStr(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func dateStr(t *api.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
