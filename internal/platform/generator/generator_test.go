package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const okPayload = `{"solution":["CAT","DOG"],"hints":["h1","h2","h3","h4","h5","h6","h7","h8","h9","h10"],"success":true}`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func newShellGenerator(t *testing.T, body string, timeout time.Duration) Generator {
	t.Helper()
	return New(logger.Nop(), Config{
		Command: "sh",
		Script:  writeScript(t, body),
		Timeout: timeout,
	})
}

func defaultParams() puzzle.GenerateParams {
	return puzzle.GenerateParams{
		Theme:       "animals",
		MaxWords:    100,
		MaxAttempts: 15,
		ThemeWords:  3,
		WordTokens:  500,
		HintTokens:  300,
	}
}

func TestGenerateSkipsLogLines(t *testing.T) {
	g := newShellGenerator(t, "echo 'INFO starting'\necho '"+okPayload+"'", 0)
	out, err := g.Generate(context.Background(), defaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.Solution) != 2 || out.Solution[0] != "CAT" {
		t.Fatalf("unexpected solution: %v", out.Solution)
	}
	if len(out.Hints) != 10 || out.Hints[9] != "h10" {
		t.Fatalf("unexpected hints: %v", out.Hints)
	}
}

func TestGenerateMergesStderr(t *testing.T) {
	g := newShellGenerator(t, "echo 'WARN from stderr' >&2\necho '"+okPayload+"'\necho 'trailing log' >&2", 0)
	if _, err := g.Generate(context.Background(), defaultParams()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGeneratePassesPositionalArgs(t *testing.T) {
	body := `printf '{"solution":["%s","%s","%s","%s"],"hints":["%s","%s","%s"],"success":true}\n' "$1" "$2" "$3" "$4" "$5" "$6" "$7"`
	g := newShellGenerator(t, body, 0)
	params := puzzle.GenerateParams{
		Theme:       "space travel",
		Regenerate:  true,
		MaxWords:    50,
		MaxAttempts: 4,
		ThemeWords:  2,
		WordTokens:  600,
		HintTokens:  250,
	}
	out, err := g.Generate(context.Background(), params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := strings.Join(append(append([]string{}, out.Solution...), out.Hints...), "|")
	if want := "space travel|true|50|4|2|600|250"; got != want {
		t.Fatalf("args: got %q want %q", got, want)
	}
}

func TestGenerateNonZeroExitIgnoresOutput(t *testing.T) {
	g := newShellGenerator(t, "echo '"+okPayload+"'\nexit 3", 0)
	_, err := g.Generate(context.Background(), defaultParams())
	if !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
	var xe *ExitError
	if !errors.As(err, &xe) || xe.Code != 3 {
		t.Fatalf("expected exit code 3, got %v", err)
	}
}

func TestGenerateEmptyOutput(t *testing.T) {
	g := newShellGenerator(t, "echo 'only logs here'", 0)
	if _, err := g.Generate(context.Background(), defaultParams()); !errors.Is(err, ErrEmptyOutput) {
		t.Fatalf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestGenerateMalformedOutput(t *testing.T) {
	g := newShellGenerator(t, "echo '{\"solution\": [\"CAT\"'", 0)
	if _, err := g.Generate(context.Background(), defaultParams()); !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestGenerateDeclaredFailure(t *testing.T) {
	g := newShellGenerator(t, `echo '{"solution": null, "hints": null, "success": false}'`, 0)
	if _, err := g.Generate(context.Background(), defaultParams()); !errors.Is(err, ErrDeclaredFailure) {
		t.Fatalf("expected ErrDeclaredFailure, got %v", err)
	}
}

func TestGenerateStartFailure(t *testing.T) {
	g := New(logger.Nop(), Config{Command: filepath.Join(t.TempDir(), "missing-generator")})
	if _, err := g.Generate(context.Background(), defaultParams()); !errors.Is(err, ErrStart) {
		t.Fatalf("expected ErrStart, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	g := newShellGenerator(t, "exec sleep 5", 100*time.Millisecond)
	start := time.Now()
	_, err := g.Generate(context.Background(), defaultParams())
	if !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit on timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline in error chain, got %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatalf("timeout not enforced")
	}
}

func TestGenerateTimeoutKillsGrandchildren(t *testing.T) {
	// sh forks sleep, which inherits the output pipe
	g := newShellGenerator(t, "echo 'INFO waiting'\nsleep 5\necho done", 100*time.Millisecond)
	start := time.Now()
	_, err := g.Generate(context.Background(), defaultParams())
	if !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit on timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline in error chain, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("timeout not enforced: returned after %v", elapsed)
	}
}

func TestAssertReady(t *testing.T) {
	g := New(logger.Nop(), Config{Command: "sh", Script: writeScript(t, "true")})
	if err := g.AssertReady(context.Background()); err != nil {
		t.Fatalf("AssertReady: %v", err)
	}
	g = New(logger.Nop(), Config{Command: "sh", Script: filepath.Join(t.TempDir(), "nope.py")})
	if err := g.AssertReady(context.Background()); err == nil {
		t.Fatal("expected missing script error")
	}
}
