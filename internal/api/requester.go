package api

import "context"

// PathResolver builds absolute endpoint URLs.
//
// This interface enables testing path resolution independently from
// HTTP execution.
type PathResolver interface {
	// endpointURL returns the absolute URL for an endpoint relative to the
	// API base path, without a query string.
	// Example: endpointURL("products/12") -> "https://shop.test/wp-json/wc/v3/products/12"
	endpointURL(endpoint string) string
}

// HTTPExecutor sends single requests.
//
// It abstracts authentication, body shaping and error mapping, allowing
// the paginator and resource helpers to be tested against a fake.
type HTTPExecutor interface {
	// Do sends exactly one request and returns the raw response. Non-2xx
	// responses return an *APIError alongside the response.
	Do(ctx context.Context, method, endpoint string, body any, mode BodyMode, params Params) (*Response, error)

	// lookup is a GET for which 404 is an expected outcome: it returns
	// (nil, nil) instead of an error.
	lookup(ctx context.Context, endpoint string, params Params) (*Response, error)
}

// Requester combines PathResolver and HTTPExecutor to provide
// the complete request surface used by resource helpers.
//
// Example usage in tests:
//
//	type countingRequester struct{ calls int }
//	func (r *countingRequester) Do(...) (*Response, error) { r.calls++; ... }
type Requester interface {
	PathResolver
	HTTPExecutor
}
