package main

import (
	"context"
	"errors"
	"os"
	"testing"
)

func stubRun(t *testing.T) {
	t.Helper()
	origExec := executeCmd
	origMap := mapExitCode
	origTerminate := terminate
	origArgs := os.Args
	t.Cleanup(func() {
		executeCmd = origExec
		mapExitCode = origMap
		terminate = origTerminate
		os.Args = origArgs
	})
}

func TestRun_Success(t *testing.T) {
	stubRun(t)

	var gotArgs []string
	executeCmd = func(_ context.Context, args []string) error {
		gotArgs = append([]string(nil), args...)
		return nil
	}
	mapExitCode = func(_ error) int {
		t.Fatal("mapExitCode should not be called on success")
		return 99
	}

	code := run([]string{"wall", "get", "--owner-id", "1"})
	if code != 0 {
		t.Fatalf("run() code = %d, want 0", code)
	}

	want := []string{"wall", "get", "--owner-id", "1"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args len = %d, want %d", len(gotArgs), len(want))
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
}

func TestRun_ErrorUsesMappedExitCode(t *testing.T) {
	stubRun(t)

	executeErr := errors.New("boom")
	executeCmd = func(ctx context.Context, _ []string) error {
		if ctx == nil {
			t.Fatal("expected a context")
		}
		return executeErr
	}

	called := false
	mapExitCode = func(err error) int {
		called = true
		if !errors.Is(err, executeErr) {
			t.Fatalf("mapExitCode got err %v, want %v", err, executeErr)
		}
		return 6
	}

	if code := run([]string{"call", "users.get"}); code != 6 {
		t.Fatalf("run() code = %d, want 6", code)
	}
	if !called {
		t.Fatal("expected mapExitCode to be called")
	}
}

func TestMain_UsesTerminateWithRunCode(t *testing.T) {
	stubRun(t)

	var gotArgs []string
	executeCmd = func(_ context.Context, args []string) error {
		gotArgs = append([]string(nil), args...)
		return errors.New("boom")
	}
	mapExitCode = func(_ error) int { return 3 }

	called := false
	gotCode := 0
	terminate = func(code int) {
		called = true
		gotCode = code
	}

	os.Args = []string{"vk", "auth", "status", "--json"}
	main()

	if !called {
		t.Fatal("expected terminate to be called")
	}
	if gotCode != 3 {
		t.Fatalf("terminate code = %d, want 3", gotCode)
	}
	if len(gotArgs) != 3 || gotArgs[0] != "auth" || gotArgs[2] != "--json" {
		t.Fatalf("args = %v, want [auth status --json]", gotArgs)
	}
}
