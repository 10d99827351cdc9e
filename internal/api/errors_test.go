package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError_WooBody(t *testing.T) {
	body := `{"code":"woocommerce_rest_shop_order_invalid_id","message":"Invalid ID.","data":{"status":"404"}}`

	err := newAPIError(http.MethodGet, "orders/1", http.StatusNotFound, []byte(body))

	assert.Equal(t, "woocommerce_rest_shop_order_invalid_id", err.Code)
	assert.Equal(t, "Invalid ID.", err.Message)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "API error (status 404) GET orders/1: woocommerce_rest_shop_order_invalid_id: Invalid ID.", err.Error())
}

func TestNewAPIError_DetailsSorted(t *testing.T) {
	body := `{"code":"rest_invalid_param","message":"Invalid parameter(s): b, a","data":{"status":400,"details":{
		"b":{"code":"rest_b","message":"b is bad"},
		"a":{"code":"rest_a","message":"a is bad"}}}}`

	err := newAPIError(http.MethodPut, "products/3", http.StatusBadRequest, []byte(body))

	require.Len(t, err.Details, 2)
	assert.Equal(t, "a", err.Details[0].Param)
	assert.Equal(t, "b", err.Details[1].Param)
	assert.True(t, strings.HasSuffix(err.Error(), "\n  rest_a: a is bad\n  rest_b: b is bad"))
}

func TestNewAPIError_NonJSON(t *testing.T) {
	err := newAPIError(http.MethodGet, "products", http.StatusBadGateway, []byte("<html>bad gateway</html>"))

	assert.Empty(t, err.Code)
	assert.Equal(t, "Failed to parse error JSON: <html>bad gateway</html>", err.Message)
	assert.Contains(t, err.Error(), "Unknown code")
}

func TestNewAPIError_EmptyBody(t *testing.T) {
	err := newAPIError(http.MethodDelete, "products/1", http.StatusInternalServerError, nil)

	assert.Equal(t, "Internal Server Error", err.Message)
}

func TestNewAPIError_TruncatesBody(t *testing.T) {
	err := newAPIError(http.MethodGet, "products", http.StatusBadGateway, []byte(strings.Repeat("x", 2000)))

	assert.Len(t, err.Body, maxRawErrorBody+len("..."))
}

func TestAPIError_NoMessage(t *testing.T) {
	err := &APIError{StatusCode: 500}
	assert.Equal(t, "API error (status 500): Unknown code: No message", err.Error())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(&APIError{StatusCode: 404}))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", &APIError{StatusCode: 404})))
	assert.False(t, IsNotFoundError(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFoundError(errors.New("404")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{StatusCode: 401}))
	assert.True(t, IsAuthError(&APIError{StatusCode: 403}))
	assert.False(t, IsAuthError(&APIError{StatusCode: 400}))
}

func TestConfigError(t *testing.T) {
	err := fmt.Errorf("list: %w", &ConfigError{Reason: "bad combo"})
	assert.True(t, IsConfigError(err))
	assert.Equal(t, "list: invalid configuration: bad combo", err.Error())
	assert.False(t, IsConfigError(&APIError{}))
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{Endpoint: "products", Err: inner}

	assert.True(t, IsDecodeError(err))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "products")
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 429, StatusCode(fmt.Errorf("x: %w", &APIError{StatusCode: 429})))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}
