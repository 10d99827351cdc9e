package api

import (
	"context"
	"fmt"
	"net/http"
)

// Typed helpers shared by every service. They turn one dispatched request
// into a decoded value.

// getOne fetches a single object. A 404 is not an error: it returns (nil, nil).
func getOne[T any](ctx context.Context, r Requester, endpoint string, params Params) (*T, error) {
	resp, err := r.lookup(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return decodeJSON[T](endpoint, resp.Body)
}

// create POSTs every set field of body.
func create[T any](ctx context.Context, r Requester, endpoint string, body any) (*T, error) {
	resp, err := r.Do(ctx, http.MethodPost, endpoint, body, BodyFull, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[T](endpoint, resp.Body)
}

// update PUTs body. Change-tracked values send only their changed fields.
func update[T any](ctx context.Context, r Requester, endpoint string, body any) (*T, error) {
	resp, err := r.Do(ctx, http.MethodPut, endpoint, body, BodyChanges, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[T](endpoint, resp.Body)
}

// remove DELETEs the object and returns the server's copy of it.
func remove[T any](ctx context.Context, r Requester, endpoint string, params Params) (*T, error) {
	resp, err := r.Do(ctx, http.MethodDelete, endpoint, nil, BodyFull, params)
	if err != nil {
		return nil, err
	}
	return decodeJSON[T](endpoint, resp.Body)
}

// forceParams is the query for deletes that support bypassing the trash.
func forceParams(force bool) Params {
	if !force {
		return nil
	}
	return Params{"force": true}
}

// endpointf formats an endpoint path.
func endpointf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// getList fetches an endpoint that returns an unpaginated array.
func getList[T any](ctx context.Context, r Requester, endpoint string, params Params) ([]T, error) {
	resp, err := r.Do(ctx, http.MethodGet, endpoint, nil, BodyFull, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeJSON[[]T](endpoint, resp.Body)
	if err != nil {
		return nil, err
	}
	for i := range *items {
		trackDecoded(&(*items)[i])
	}
	return *items, nil
}
