package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/woopy/woo-cli/internal/debug"
	"github.com/woopy/woo-cli/internal/metrics"
)

// ListMode selects the shape of a list result.
type ListMode int

const (
	// ListPage fetches one page and returns only its items.
	ListPage ListMode = iota
	// ListAll walks every page from the starting page and returns all items.
	ListAll
	// ListWithMeta fetches one page and returns its items with paging metadata.
	ListWithMeta
)

func (m ListMode) String() string {
	switch m {
	case ListAll:
		return "all"
	case ListWithMeta:
		return "meta"
	default:
		return "page"
	}
}

// ListOptions controls paging for list operations.
type ListOptions struct {
	Page            int // first page to fetch; 0 means 1
	PerPage         int // 0 leaves the server default
	FollowPages     bool
	IncludeMetadata bool
}

// Mode collapses the flags into a ListMode. FollowPages and IncludeMetadata
// together are rejected: metadata for one page of a walk is misleading.
func (o ListOptions) Mode() (ListMode, error) {
	switch {
	case o.FollowPages && o.IncludeMetadata:
		return ListPage, &ConfigError{Reason: "follow pages and include metadata cannot be combined"}
	case o.FollowPages:
		return ListAll, nil
	case o.IncludeMetadata:
		return ListWithMeta, nil
	}
	return ListPage, nil
}

// Page is the result of a list operation. The metadata pointers are only
// set in ListWithMeta mode.
type Page[T any] struct {
	Items []T `json:"items"`

	Total       *int `json:"total,omitempty"`
	TotalPages  *int `json:"total_pages,omitempty"`
	CurrentPage *int `json:"current_page,omitempty"`

	NextURL  string `json:"next_page_url,omitempty"`
	PrevURL  string `json:"previous_page_url,omitempty"`
	FirstURL string `json:"first_page_url,omitempty"`
	LastURL  string `json:"last_page_url,omitempty"`
}

// List fetches a collection endpoint in the mode selected by opts. params
// carries resource filters; page and per_page are set from opts.
func List[T any](ctx context.Context, r Requester, endpoint string, params Params, opts ListOptions) (*Page[T], error) {
	mode, err := opts.Mode()
	if err != nil {
		return nil, err
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}

	if mode != ListAll {
		items, resp, err := fetchPage[T](ctx, r, endpoint, params, opts.PerPage, page)
		if err != nil {
			return nil, err
		}
		result := &Page[T]{Items: items}
		if mode == ListWithMeta {
			applyMetadata(result, resp.Header, page)
		}
		return result, nil
	}

	all := []T{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, resp, err := fetchPage[T](ctx, r, endpoint, params, opts.PerPage, page)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)

		links := ParseLinkHeader(resp.Header.Get("Link"))
		if _, ok := links[RelNext]; !ok {
			break
		}
		page++
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("collection walk complete", "endpoint", r.endpointURL(endpoint), "pages", page, "items", len(all))
	}
	return &Page[T]{Items: all}, nil
}

func fetchPage[T any](ctx context.Context, r Requester, endpoint string, params Params, perPage, page int) ([]T, *Response, error) {
	query := params.clone()
	query["page"] = page
	if perPage > 0 {
		query["per_page"] = perPage
	}

	resp, err := r.Do(ctx, http.MethodGet, endpoint, nil, BodyFull, query)
	if err != nil {
		return nil, nil, err
	}
	metrics.PagesFetched.Inc()

	var items []T
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("decode").Inc()
		return nil, nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	for i := range items {
		trackDecoded(&items[i])
	}
	metrics.ItemsFetched.Add(float64(len(items)))
	return items, resp, nil
}

func applyMetadata[T any](p *Page[T], header http.Header, page int) {
	total := headerInt(header, "X-WP-Total")
	totalPages := headerInt(header, "X-WP-TotalPages")
	p.Total = &total
	p.TotalPages = &totalPages
	p.CurrentPage = &page

	links := ParseLinkHeader(header.Get("Link"))
	p.NextURL = links[RelNext]
	p.PrevURL = links[RelPrev]
	p.FirstURL = links[RelFirst]
	p.LastURL = links[RelLast]
}

// headerInt parses an integer header, returning 0 when absent or invalid.
func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil {
		return 0
	}
	return n
}
