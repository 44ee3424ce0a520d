package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/data/repos"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

type Repos struct {
	Puzzle repos.PuzzleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Puzzle: repos.NewPuzzleRepo(db, log),
	}
}
