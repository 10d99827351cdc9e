package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/pflag"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/config"
)

const (
	exitOK          = 0
	exitGeneric     = 1
	exitUsage       = 2
	exitAuth        = 3
	exitNotFound    = 4
	exitForbidden   = 5
	exitRateLimited = 6
	exitServer      = 7
	exitNetwork     = 8
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	var handled *handledError
	if errors.As(err, &handled) {
		if handled.exitCode != 0 {
			return handled.exitCode
		}
		err = handled.err
	}

	if code := exitCodeFromStatus(api.StatusCode(err)); code != 0 {
		return code
	}
	var nf *notFoundError
	switch {
	case errors.As(err, &nf):
		return exitNotFound
	case errors.Is(err, config.ErrNotConfigured):
		return exitAuth
	case api.IsConfigError(err):
		return exitUsage
	case isUsageError(err):
		return exitUsage
	case isNetworkError(err):
		return exitNetwork
	}
	return exitGeneric
}

func exitCodeFromStatus(status int) int {
	switch {
	case status == 0:
		return 0
	case status == http.StatusUnauthorized:
		return exitAuth
	case status == http.StatusForbidden:
		return exitForbidden
	case status == http.StatusNotFound:
		return exitNotFound
	case status == http.StatusTooManyRequests:
		return exitRateLimited
	case status >= 500:
		return exitServer
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		return exitUsage
	}
	return exitGeneric
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "certificate") ||
		strings.Contains(msg, "i/o timeout")
}

func isUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	indicators := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"accepts ",
		"requires at least",
		"requires exactly",
		"invalid argument",
		"invalid value",
		"invalid id",
		"must be",
		"is required",
		"cannot be combined",
		"conflicts with",
	}
	for _, indicator := range indicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
