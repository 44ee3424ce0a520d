package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
)

// SampleHints returns ten distinct clues h1..h10.
func SampleHints() []string {
	return []string{"h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8", "h9", "h10"}
}

func SeedPuzzle(tb testing.TB, ctx context.Context, tx *gorm.DB, theme string, solution, hints []string) *puzzle.Puzzle {
	tb.Helper()
	sol, err := json.Marshal(solution)
	if err != nil {
		tb.Fatalf("marshal solution: %v", err)
	}
	h, err := json.Marshal(hints)
	if err != nil {
		tb.Fatalf("marshal hints: %v", err)
	}
	p := &puzzle.Puzzle{
		Theme:        theme,
		SolutionJSON: datatypes.JSON(sol),
		HintsJSON:    datatypes.JSON(h),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed puzzle: %v", err)
	}
	return p
}
