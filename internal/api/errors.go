package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const maxRawErrorBody = 512

// ErrorDetail is one entry of data.details in a WooCommerce error body.
type ErrorDetail struct {
	Param   string `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	Endpoint   string

	// Parsed from the body when it is a WooCommerce error document.
	Code    string
	Message string
	Status  int
	Details []ErrorDetail

	// Body is the raw response body, truncated.
	Body string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API error (status %d)", e.StatusCode)
	if e.Method != "" {
		fmt.Fprintf(&b, " %s %s", e.Method, e.Endpoint)
	}
	b.WriteString(": ")
	b.WriteString(e.summary())
	for _, d := range e.Details {
		fmt.Fprintf(&b, "\n  %s: %s", d.Code, d.Message)
	}
	return b.String()
}

func (e *APIError) summary() string {
	code := e.Code
	if code == "" {
		code = "Unknown code"
	}
	msg := e.Message
	if msg == "" {
		msg = "No message"
	}
	return code + ": " + msg
}

type wooErrorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type wooErrorData struct {
	Status  FlexInt                `json:"status"`
	Details map[string]ErrorDetail `json:"details"`
}

// newAPIError builds an APIError from a failed response. Bodies that are
// not JSON degrade to a message carrying the raw text.
func newAPIError(method, endpoint string, statusCode int, body []byte) *APIError {
	raw := string(body)
	if len(raw) > maxRawErrorBody {
		raw = raw[:maxRawErrorBody] + "..."
	}
	apiErr := &APIError{
		StatusCode: statusCode,
		Method:     method,
		Endpoint:   endpoint,
		Body:       raw,
	}

	var parsed wooErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		apiErr.Message = "Failed to parse error JSON: " + raw
		if strings.TrimSpace(raw) == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
		return apiErr
	}
	apiErr.Code = parsed.Code
	apiErr.Message = parsed.Message

	var data wooErrorData
	if len(parsed.Data) > 0 && json.Unmarshal(parsed.Data, &data) == nil {
		apiErr.Status = int(data.Status)
		params := make([]string, 0, len(data.Details))
		for param := range data.Details {
			params = append(params, param)
		}
		sort.Strings(params)
		for _, param := range params {
			d := data.Details[param]
			d.Param = param
			apiErr.Details = append(apiErr.Details, d)
		}
	}
	return apiErr
}

// ConfigError reports an invalid combination of caller options. It is
// always returned before any request is sent.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// DecodeError reports a response body that is not the expected JSON shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected API response format from %s (JSON decode failed): %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFoundError checks if the error is a 404 from the API.
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsAuthError checks if the API rejected the credentials.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsConfigError checks if the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsDecodeError checks if the error is a DecodeError.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
