package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/data/repos/puzzles"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

type PuzzleRepo = puzzles.PuzzleRepo

func NewPuzzleRepo(db *gorm.DB, log *logger.Logger) PuzzleRepo {
	return puzzles.NewPuzzleRepo(db, log)
}
