package generator

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
)

const maxLineBytes = 4 << 20

// splitOutput reads the merged output stream. Lines whose trimmed form starts with "{" are
// appended to the returned buffer with no separator; every other line goes to onLog.
func splitOutput(r io.Reader, onLog func(line string)) ([]byte, error) {
	var buf bytes.Buffer
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "{") {
			buf.WriteString(line)
			continue
		}
		if onLog != nil {
			onLog(line)
		}
	}
	if err := sc.Err(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}

// parseOutcome decodes the candidate buffer and applies the success checks.
func parseOutcome(raw []byte) (*puzzle.GenerationOutcome, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyOutput
	}
	var out puzzle.GenerationOutcome
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if !out.Success {
		return nil, ErrDeclaredFailure
	}
	if out.Solution == nil || out.Hints == nil {
		return nil, fmt.Errorf("%w: success without solution or hints", ErrMalformedOutput)
	}
	return &out, nil
}
