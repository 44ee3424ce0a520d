package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
)

var (
	ErrEncoding            = errors.New("puzzle encoding failed")
	ErrMalformedStoredData = errors.New("stored puzzle data is malformed")
	ErrNotFound            = errors.New("puzzle not found")
)

const cluesPerDirection = puzzle.HintCount / 2

// Clues is the client-facing clue layout keyed by direction then clue number.
type Clues struct {
	Across map[string]string `json:"across"`
	Down   map[string]string `json:"down"`
}

// ToStorageForm encodes the solution and hints as two independent JSON arrays.
func ToStorageForm(out *puzzle.GenerationOutcome) (solutionBlob []byte, hintsBlob []byte, err error) {
	if out == nil {
		return nil, nil, fmt.Errorf("%w: nil outcome", ErrEncoding)
	}
	solutionBlob, err = json.Marshal(out.Solution)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: solution: %v", ErrEncoding, err)
	}
	hintsBlob, err = json.Marshal(out.Hints)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hints: %v", ErrEncoding, err)
	}
	return solutionBlob, hintsBlob, nil
}

// ToClientForm re-encodes the stored solution unchanged and lays the hints out as
// across 1-5 (hints 0-4) and down 1-5 (hints 5-9). Anything but exactly ten hints fails.
func ToClientForm(solutionBlob, hintsBlob []byte) (gridJSON string, cluesJSON string, err error) {
	var solution []string
	if err := json.Unmarshal(solutionBlob, &solution); err != nil {
		return "", "", fmt.Errorf("%w: solution: %v", ErrMalformedStoredData, err)
	}
	if solution == nil {
		return "", "", fmt.Errorf("%w: solution is null", ErrMalformedStoredData)
	}
	var hints []string
	if err := json.Unmarshal(hintsBlob, &hints); err != nil {
		return "", "", fmt.Errorf("%w: hints: %v", ErrMalformedStoredData, err)
	}
	clues, err := buildClues(hints)
	if err != nil {
		return "", "", err
	}

	grid, err := json.Marshal(solution)
	if err != nil {
		return "", "", fmt.Errorf("%w: grid: %v", ErrEncoding, err)
	}
	cl, err := json.Marshal(clues)
	if err != nil {
		return "", "", fmt.Errorf("%w: clues: %v", ErrEncoding, err)
	}
	return string(grid), string(cl), nil
}

func buildClues(hints []string) (Clues, error) {
	if len(hints) != puzzle.HintCount {
		return Clues{}, fmt.Errorf("%w: expected %d hints, got %d", ErrMalformedStoredData, puzzle.HintCount, len(hints))
	}
	clues := Clues{
		Across: make(map[string]string, cluesPerDirection),
		Down:   make(map[string]string, cluesPerDirection),
	}
	for i := 0; i < cluesPerDirection; i++ {
		n := strconv.Itoa(i + 1)
		clues.Across[n] = hints[i]
		clues.Down[n] = hints[i+cluesPerDirection]
	}
	return clues, nil
}
