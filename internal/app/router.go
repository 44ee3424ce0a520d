package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crossword-backend/internal/http"
	"github.com/yungbote/crossword-backend/internal/observability"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		HealthHandler: handlers.Health,
		PuzzleHandler: handlers.Puzzle,
		Log:           log.With("component", "http"),
		ServiceName:   observability.DefaultServiceName,
		CORSOrigins:   cfg.CORSOrigins,
	})
}
