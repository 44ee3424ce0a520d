package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/crossword-backend/internal/http/handlers"
	httpMW "github.com/yungbote/crossword-backend/internal/http/middleware"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

type RouterConfig struct {
	HealthHandler *httpH.HealthHandler
	PuzzleHandler *httpH.PuzzleHandler

	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(gin.Recovery())
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/healthcheck/ready", cfg.HealthHandler.Ready)
	}

	api := r.Group("/api")
	{
		// Puzzles
		if cfg.PuzzleHandler != nil {
			api.POST("/puzzles/generate", cfg.PuzzleHandler.GeneratePuzzle)
			api.GET("/puzzles/:id", cfg.PuzzleHandler.GetPuzzle)
		}
	}

	return r
}
