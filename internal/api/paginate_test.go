package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID int `json:"id"`
}

// countingRequester fails the test if any request is dispatched.
type countingRequester struct {
	calls int
}

func (r *countingRequester) endpointURL(endpoint string) string { return "https://shop.test/" + endpoint }

func (r *countingRequester) Do(context.Context, string, string, any, BodyMode, Params) (*Response, error) {
	r.calls++
	return &Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte("[]")}, nil
}

func (r *countingRequester) lookup(context.Context, string, Params) (*Response, error) {
	r.calls++
	return nil, nil
}

// pagedServer serves pages of items; next reports whether page n carries a
// rel="next" link.
func pagedServer(t *testing.T, pages [][]int, next func(page int) bool, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			t.Errorf("bad page parameter %q", r.URL.Query().Get("page"))
			page = 1
		}
		var ids []int
		if page <= len(pages) {
			ids = pages[page-1]
		}
		if next(page) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/wp-json/wc/v3/products?page=%d>; rel="next"`, "https://shop.test", page+1))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("["))
		for i, id := range ids {
			if i > 0 {
				_, _ = w.Write([]byte(","))
			}
			_, _ = fmt.Fprintf(w, `{"id":%d}`, id)
		}
		_, _ = w.Write([]byte("]"))
	}))
}

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestListOptionsMode(t *testing.T) {
	tests := []struct {
		name    string
		opts    ListOptions
		want    ListMode
		wantErr bool
	}{
		{"default", ListOptions{}, ListPage, false},
		{"follow", ListOptions{FollowPages: true}, ListAll, false},
		{"meta", ListOptions{IncludeMetadata: true}, ListWithMeta, false},
		{"conflict", ListOptions{FollowPages: true, IncludeMetadata: true}, ListPage, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Mode()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_ConflictingOptionsSendNothing(t *testing.T) {
	r := &countingRequester{}

	page, err := List[item](context.Background(), r, "products", nil, ListOptions{FollowPages: true, IncludeMetadata: true})

	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Nil(t, page)
	assert.Equal(t, 0, r.calls)
}

func TestList_AllStopsOnEmptyPage(t *testing.T) {
	var hits int32
	server := pagedServer(t, [][]int{{1}, {2}, {}}, func(page int) bool { return page <= 2 }, &hits)
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", nil, ListOptions{FollowPages: true})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(page.Items))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Nil(t, page.Total)
	assert.Empty(t, page.NextURL)
}

func TestList_AllStopsWithoutNextRelation(t *testing.T) {
	var hits int32
	server := pagedServer(t, [][]int{{1, 2, 3}, {4}}, func(int) bool { return false }, &hits)
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", nil, ListOptions{FollowPages: true})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(page.Items))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestList_AllStartsAtGivenPage(t *testing.T) {
	var hits int32
	server := pagedServer(t, [][]int{{1}, {2}, {3}}, func(page int) bool { return page < 3 }, &hits)
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", nil, ListOptions{Page: 2, FollowPages: true})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(page.Items))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestList_AllHonoursCancellation(t *testing.T) {
	var hits int32
	server := pagedServer(t, [][]int{{1}, {2}}, func(int) bool { return true }, &hits)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := List[item](ctx, client, "products", nil, ListOptions{FollowPages: true})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestList_SinglePage(t *testing.T) {
	var hits int32
	server := pagedServer(t, [][]int{{1, 2}, {3}}, func(int) bool { return true }, &hits)
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", nil, ListOptions{})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(page.Items))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Nil(t, page.Total)
	assert.Nil(t, page.CurrentPage)
}

func TestList_WithMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		assert.Equal(t, "publish", r.URL.Query().Get("status"))
		w.Header().Set("X-WP-Total", "120")
		w.Header().Set("X-WP-TotalPages", "5")
		w.Header().Set("Link", `<https://s/p?page=2>; rel="prev", <https://s/p?page=4>; rel="next", <https://s/p?page=1>; rel="first", <https://s/p?page=5>; rel="last"`)
		_, _ = w.Write([]byte(`[{"id":51}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", Params{"status": "publish"},
		ListOptions{Page: 3, PerPage: 25, IncludeMetadata: true})

	require.NoError(t, err)
	assert.Equal(t, []int{51}, ids(page.Items))
	require.NotNil(t, page.Total)
	assert.Equal(t, 120, *page.Total)
	assert.Equal(t, 5, *page.TotalPages)
	assert.Equal(t, 3, *page.CurrentPage)
	assert.Equal(t, "https://s/p?page=4", page.NextURL)
	assert.Equal(t, "https://s/p?page=2", page.PrevURL)
	assert.Equal(t, "https://s/p?page=1", page.FirstURL)
	assert.Equal(t, "https://s/p?page=5", page.LastURL)
}

func TestList_MetadataHeadersDefaultToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-WP-Total", "lots")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := List[item](context.Background(), client, "products", nil, ListOptions{IncludeMetadata: true})

	require.NoError(t, err)
	assert.Equal(t, 0, *page.Total)
	assert.Equal(t, 0, *page.TotalPages)
	assert.Equal(t, 1, *page.CurrentPage)
	assert.Empty(t, page.NextURL)
}

func TestList_NotFoundIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_no_route","message":"No route was found matching the URL and request method.","data":{"status":404}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := List[item](context.Background(), client, "nothing", nil, ListOptions{})

	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
}

func TestList_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := List[item](context.Background(), client, "products", nil, ListOptions{})

	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestList_DoesNotMutateParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	params := Params{"search": "shirt"}
	client := newTestClient(server.URL)
	_, err := List[item](context.Background(), client, "products", params, ListOptions{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, Params{"search": "shirt"}, params)
}
