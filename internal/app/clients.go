package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/crossword-backend/internal/clients/redis"
	"github.com/yungbote/crossword-backend/internal/platform/generator"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

type Clients struct {
	Generator    generator.Generator
	PuzzleEvents redis.PuzzleEvents
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	gen := generator.New(log, generator.Config{
		Command: cfg.Generator.Command,
		Script:  cfg.Generator.Script,
		WorkDir: cfg.Generator.WorkDir,
		Timeout: cfg.Generator.Timeout,
	})

	// Redis
	var events redis.PuzzleEvents
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		e, err := redis.NewPuzzleEvents(log, redis.Config{
			Addr:    cfg.Redis.Addr,
			Channel: cfg.Redis.Channel,
		})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis puzzle events: %w", err)
		}
		events = e
	}

	return Clients{
		Generator:    gen,
		PuzzleEvents: events,
	}, nil
}

func (c Clients) Close() {
	if c.PuzzleEvents != nil {
		_ = c.PuzzleEvents.Close()
	}
}
