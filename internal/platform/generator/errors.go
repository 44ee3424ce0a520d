package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrStart means the generator process could not be launched.
	ErrStart = errors.New("generator: start failed")
	// ErrExit means the process exited with a non-zero status.
	ErrExit = errors.New("generator: non-zero exit")
	// ErrEmptyOutput means no JSON line was printed.
	ErrEmptyOutput = errors.New("generator: no JSON output")
	// ErrMalformedOutput means the captured JSON could not be decoded into an outcome.
	ErrMalformedOutput = errors.New("generator: malformed output")
	// ErrDeclaredFailure means the generator reported success=false.
	ErrDeclaredFailure = errors.New("generator: generation reported failure")
)

// ExitError carries the exit code of a failed run. It matches ErrExit.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (code %d)", ErrExit.Error(), e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

func (e *ExitError) Is(target error) bool { return target == ErrExit }
