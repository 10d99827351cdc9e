package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/cli"
)

// listFlags are the collection flags every list command takes.
type listFlags struct {
	page    int
	perPage int
	all     bool
	meta    bool
	search  string
	include []int
	exclude []int
	offset  int
	order   string
	orderBy string
	after   string
	before  string
}

func (lf *listFlags) register(cmd *cobra.Command) {
	lf.registerPaging(cmd)
	fs := cmd.Flags()
	fs.StringVar(&lf.search, "search", "", "Limit results to those matching a string")
	fs.IntSliceVar(&lf.include, "include", nil, "Limit results to these IDs")
	fs.IntSliceVar(&lf.exclude, "exclude", nil, "Exclude these IDs")
	fs.IntVar(&lf.offset, "offset", 0, "Offset the result set by this many items")
	fs.StringVar(&lf.order, "order", "", "Sort direction: asc|desc")
	fs.StringVar(&lf.orderBy, "orderby", "", "Sort field (e.g. date, id, title, slug)")
	fs.StringVar(&lf.after, "after", "", "Only items published after this date (YYYY-MM-DD, RFC 3339, today or \"7d ago\")")
	fs.StringVar(&lf.before, "before", "", "Only items published before this date (YYYY-MM-DD, RFC 3339, today or \"7d ago\")")
}

// registerPaging registers only the paging flags, for endpoints without
// the common collection filters.
func (lf *listFlags) registerPaging(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&lf.page, "page", 1, "Page to fetch (with --all: first page of the walk)")
	fs.IntVar(&lf.perPage, "per-page", 0, "Items per page (server default 10, max 100)")
	fs.BoolVar(&lf.all, "all", false, "Fetch every page")
	fs.BoolVar(&lf.meta, "meta", false, "Include paging metadata (totals and page links)")
	flagAlias(fs, "per-page", "limit")
}

// options returns the paging options. Combining --all and --meta is
// rejected by the paginator itself.
func (lf *listFlags) options() (api.ListOptions, error) {
	if lf.page < 1 {
		return api.ListOptions{}, fmt.Errorf("--page must be >= 1")
	}
	if lf.perPage < 0 || lf.perPage > 100 {
		return api.ListOptions{}, fmt.Errorf("--per-page must be between 1 and 100")
	}
	return api.ListOptions{
		Page:            lf.page,
		PerPage:         lf.perPage,
		FollowPages:     lf.all,
		IncludeMetadata: lf.meta,
	}, nil
}

func (lf *listFlags) params() (api.ListParams, error) {
	opts, err := lf.options()
	if err != nil {
		return api.ListParams{}, err
	}
	switch lf.order {
	case "", "asc", "desc":
	default:
		return api.ListParams{}, fmt.Errorf("--order must be asc or desc")
	}
	p := api.ListParams{
		ListOptions: opts,
		Search:      lf.search,
		Include:     lf.include,
		Exclude:     lf.exclude,
		Offset:      lf.offset,
		Order:       lf.order,
		OrderBy:     lf.orderBy,
	}
	if p.After, err = parseDateFlag("after", lf.after); err != nil {
		return api.ListParams{}, err
	}
	if p.Before, err = parseDateFlag("before", lf.before); err != nil {
		return api.ListParams{}, err
	}
	return p, nil
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := cli.ParseDate(value, time.Now())
	if err != nil {
		return nil, fmt.Errorf("invalid value for --%s %q: use YYYY-MM-DD, RFC 3339, today, yesterday, a weekday or \"7d ago\"", name, value)
	}
	return &t, nil
}

// columns describes how items of a resource render as a text table.
type columns[T any] struct {
	headers []string
	row     func(T) []string
}

// printPage writes a list result. JSON output is the page object
// ({"items": [...]} plus metadata in --meta mode).
func printPage[T any](cmd *cobra.Command, page *api.Page[T], cols columns[T], plural string) error {
	if isJSON(cmd) {
		return printJSON(cmd, page)
	}
	return printRows(cmd, page.Items, cols, plural, page)
}

// printItems writes an unpaginated collection.
func printItems[T any](cmd *cobra.Command, items []T, cols columns[T], plural string) error {
	if items == nil {
		items = []T{}
	}
	if isJSON(cmd) {
		return printJSON(cmd, api.Page[T]{Items: items})
	}
	return printRows(cmd, items, cols, plural, (*api.Page[T])(nil))
}

func printRows[T any](cmd *cobra.Command, items []T, cols columns[T], plural string, page *api.Page[T]) error {
	f := newFormatter(cmd)
	if len(items) == 0 {
		f.Empty(fmt.Sprintf("No %s found", plural))
		return nil
	}
	f.StartTable(cols.headers)
	for _, item := range items {
		f.Row(cols.row(item)...)
	}
	if err := f.EndTable(); err != nil {
		return err
	}
	if page != nil && page.Total != nil {
		f.Empty(fmt.Sprintf("Page %d of %d (%d %s)", deref(page.CurrentPage), deref(page.TotalPages), *page.Total, plural))
	}
	return nil
}

// printItem writes one object: JSON as is, text as a single-row table.
func printItem[T any](cmd *cobra.Command, item *T, cols columns[T]) error {
	if isJSON(cmd) {
		return printJSON(cmd, item)
	}
	f := newFormatter(cmd)
	f.StartTable(cols.headers)
	f.Row(cols.row(*item)...)
	return f.EndTable()
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
