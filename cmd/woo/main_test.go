package main

import (
	"context"
	"errors"
	"testing"
)

func TestRun_Success(t *testing.T) {
	origExec := executeCmd
	origMap := mapExitCode
	t.Cleanup(func() {
		executeCmd = origExec
		mapExitCode = origMap
	})

	var gotArgs []string
	executeCmd = func(_ context.Context, args []string) error {
		gotArgs = append([]string(nil), args...)
		return nil
	}
	mapExitCode = func(_ error) int {
		t.Fatal("mapExitCode should not be called on success")
		return 99
	}

	if code := run([]string{"products", "list", "-o", "json"}); code != 0 {
		t.Fatalf("run() code = %d, want 0", code)
	}
	want := []string{"products", "list", "-o", "json"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
}

func TestRun_ErrorUsesMappedExitCode(t *testing.T) {
	origExec := executeCmd
	origMap := mapExitCode
	t.Cleanup(func() {
		executeCmd = origExec
		mapExitCode = origMap
	})

	executeErr := errors.New("boom")
	executeCmd = func(_ context.Context, _ []string) error {
		return executeErr
	}
	var mapped error
	mapExitCode = func(err error) int {
		mapped = err
		return 4
	}

	if code := run(nil); code != 4 {
		t.Fatalf("run() code = %d, want 4", code)
	}
	if !errors.Is(mapped, executeErr) {
		t.Fatalf("mapExitCode got %v, want %v", mapped, executeErr)
	}
}

func TestMain_UsesTerminate(t *testing.T) {
	origExec := executeCmd
	origTerminate := terminate
	t.Cleanup(func() {
		executeCmd = origExec
		terminate = origTerminate
	})

	executeCmd = func(_ context.Context, _ []string) error { return nil }
	got := -1
	terminate = func(code int) { got = code }

	main()
	if got != 0 {
		t.Fatalf("terminate called with %d, want 0", got)
	}
}
