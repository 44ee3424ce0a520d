package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/data/db"
	httpH "github.com/yungbote/crossword-backend/internal/http/handlers"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Puzzle *httpH.PuzzleHandler
}

func wireHandlers(log *logger.Logger, theDB *gorm.DB, clients Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(map[string]httpH.ReadinessCheck{
			"db": func(ctx context.Context) error {
				return db.Ping(ctx, theDB)
			},
			"generator": clients.Generator.AssertReady,
		}),
		Puzzle: httpH.NewPuzzleHandler(log, services.Puzzle),
	}
}
