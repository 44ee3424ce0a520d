package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/platform/logger"
	"github.com/yungbote/crossword-backend/internal/services"
)

type Services struct {
	Puzzle services.PuzzleService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Puzzle: services.NewPuzzleService(db, log, reposet.Puzzle, clients.Generator, clients.PuzzleEvents),
	}
}
