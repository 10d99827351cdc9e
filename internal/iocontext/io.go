// Package iocontext provides injectable I/O streams via context for testability.
package iocontext

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// IO holds the input/output streams for commands.
type IO struct {
	Out    io.Writer // stdout
	ErrOut io.Writer // stderr
	In     io.Reader // stdin
}

// DefaultIO returns the standard IO streams.
func DefaultIO() *IO {
	return &IO{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		In:     os.Stdin,
	}
}

type ioKey struct{}

// WithIO adds IO streams to a context.
func WithIO(ctx context.Context, io *IO) context.Context {
	return context.WithValue(ctx, ioKey{}, io)
}

// GetIO retrieves IO streams from context, defaulting to standard streams.
func GetIO(ctx context.Context) *IO {
	if io, ok := ctx.Value(ioKey{}).(*IO); ok && io != nil {
		return io
	}
	return DefaultIO()
}

// ReadSource resolves a request body argument. "-" reads the context's
// stdin, "@path" reads a file and anything else is returned as is.
func ReadSource(ctx context.Context, arg string) ([]byte, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(GetIO(ctx).In)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(arg, "@"):
		path := strings.TrimPrefix(arg, "@")
		if path == "" {
			return nil, fmt.Errorf("missing file name after @")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}
	return []byte(arg), nil
}
