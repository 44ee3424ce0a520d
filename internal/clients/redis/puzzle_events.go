package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

const EventPuzzleCreated = "puzzle.created"

type PuzzleCreatedMessage struct {
	Event     string    `json:"event"`
	ID        string    `json:"id"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
}

// PuzzleEvents announces newly stored puzzles to other processes.
type PuzzleEvents interface {
	PublishCreated(ctx context.Context, p *puzzle.Puzzle) error
	Close() error
}

type Config struct {
	Addr    string
	Channel string
}

type puzzleEvents struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewPuzzleEvents(log *logger.Logger, cfg Config) (PuzzleEvents, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	ch := strings.TrimSpace(cfg.Channel)
	if ch == "" {
		ch = "puzzles"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &puzzleEvents{
		log:     log.With("service", "RedisPuzzleEvents"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (e *puzzleEvents) PublishCreated(ctx context.Context, p *puzzle.Puzzle) error {
	if e == nil || e.rdb == nil {
		return fmt.Errorf("redis puzzle events not initialized")
	}
	raw, err := encodeCreated(p)
	if err != nil {
		return err
	}
	return e.rdb.Publish(ctx, e.channel, raw).Err()
}

func (e *puzzleEvents) Close() error {
	if e == nil || e.rdb == nil {
		return nil
	}
	return e.rdb.Close()
}

func encodeCreated(p *puzzle.Puzzle) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("puzzle required")
	}
	return json.Marshal(PuzzleCreatedMessage{
		Event:     EventPuzzleCreated,
		ID:        p.ID.String(),
		Theme:     p.Theme,
		CreatedAt: p.CreatedAt.UTC(),
	})
}
