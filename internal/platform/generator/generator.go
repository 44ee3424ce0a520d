package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/platform/ctxutil"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

// Generator runs the external puzzle generation program.
//
// The program is invoked as
//
//	<Command> [<Script>] <theme> <regenerate> <maxWords> <maxAttempts> <themeWords> <wordTokens> <hintTokens>
//
// and must exit 0 and print a single JSON object
// {"solution": [...], "hints": [...], "success": bool} on "{"-led line(s).
// Anything else it prints (on stdout or stderr) is treated as log output.
//
// Calls block until the child exits. There is no retry, and unless Config.Timeout is set
// there is no deadline: a hung generator hangs the caller.
type Generator interface {
	AssertReady(ctx context.Context) error
	Generate(ctx context.Context, params puzzle.GenerateParams) (*puzzle.GenerationOutcome, error)
}

type Config struct {
	// Command is the executable, e.g. "python3" or a path to a compiled generator.
	Command string
	// Script is an optional first argument, e.g. the path to puzzle_generator.py.
	Script string
	// WorkDir is the child's working directory. Empty means inherit.
	WorkDir string
	// Env is appended to the parent environment.
	Env []string
	// Timeout bounds a single run. Zero disables the bound.
	Timeout time.Duration
}

type generator struct {
	log *logger.Logger
	cfg Config
}

func New(log *logger.Logger, cfg Config) Generator {
	if strings.TrimSpace(cfg.Command) == "" {
		cfg.Command = "python3"
	}
	return &generator{
		log: log.With("service", "PuzzleGenerator"),
		cfg: cfg,
	}
}

func (g *generator) AssertReady(ctx context.Context) error {
	if _, err := exec.LookPath(g.cfg.Command); err != nil {
		return fmt.Errorf("missing generator command %q in PATH: %w", g.cfg.Command, err)
	}
	if g.cfg.Script != "" {
		if _, err := os.Stat(g.cfg.Script); err != nil {
			return fmt.Errorf("generator script %q: %w", g.cfg.Script, err)
		}
	}
	return nil
}

func (g *generator) Generate(ctx context.Context, params puzzle.GenerateParams) (*puzzle.GenerationOutcome, error) {
	ctx = ctxutil.Default(ctx)
	ctx, span := otel.Tracer("crossword/generator").Start(ctx, "generator.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("generator.command", g.cfg.Command),
		attribute.Bool("generator.regenerate", params.Regenerate),
		attribute.Int("generator.max_words", params.MaxWords),
		attribute.Int("generator.max_attempts", params.MaxAttempts),
	)

	log := g.log
	if td := ctxutil.GetTraceData(ctx); td != nil && td.RequestID != "" {
		log = log.With("request_id", td.RequestID)
	}

	out, exitCode, err := g.run(ctx, log, params)
	span.SetAttributes(attribute.Int("generator.exit_code", exitCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("Puzzle generation failed", "theme", params.Theme, "exit_code", exitCode, "error", err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("generator.solution_rows", len(out.Solution)),
		attribute.Int("generator.hints", len(out.Hints)),
	)
	log.Info("Puzzle generated", "theme", params.Theme, "rows", len(out.Solution), "hints", len(out.Hints))
	return out, nil
}

func (g *generator) run(ctx context.Context, log *logger.Logger, params puzzle.GenerateParams) (*puzzle.GenerationOutcome, int, error) {
	args := make([]string, 0, 8)
	if g.cfg.Script != "" {
		args = append(args, g.cfg.Script)
	}
	args = append(args, params.Args()...)

	var cmd *exec.Cmd
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
		cmd = exec.CommandContext(ctx, g.cfg.Command, args...)
		// the whole process group is killed on timeout; until then any
		// grandchild holding the output pipe would keep the read below open
		killProcessGroupOnCancel(cmd)
		cmd.WaitDelay = waitDelay
	} else {
		cmd = exec.Command(g.cfg.Command, args...)
	}
	cmd.Dir = g.cfg.WorkDir
	if len(g.cfg.Env) > 0 {
		cmd.Env = append(os.Environ(), g.cfg.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %v", ErrStart, err)
	}
	// stderr shares the stdout pipe so log lines and the payload arrive in print order.
	cmd.Stderr = cmd.Stdout

	log.Info("Starting generator", "command", cmd.String())
	if err := cmd.Start(); err != nil {
		return nil, -1, fmt.Errorf("%w: %v", ErrStart, err)
	}

	raw, scanErr := splitOutput(stdout, func(line string) {
		log.Info("generator", "line", line)
	})
	if scanErr != nil {
		// keep the child from blocking on a full pipe before we wait on it
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			xe := &ExitError{Code: ee.ExitCode(), Err: err}
			if ctxErr := ctx.Err(); g.cfg.Timeout > 0 && ctxErr != nil {
				return nil, xe.Code, fmt.Errorf("%w: %w", xe, ctxErr)
			}
			return nil, xe.Code, xe
		}
		return nil, -1, &ExitError{Code: -1, Err: err}
	}

	if scanErr != nil {
		return nil, 0, fmt.Errorf("%w: read output: %v", ErrMalformedOutput, scanErr)
	}
	out, err := parseOutcome(raw)
	if err != nil {
		return nil, 0, err
	}
	return out, 0, nil
}
