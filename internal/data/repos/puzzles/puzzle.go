package puzzles

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/pkg/dbctx"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

// PuzzleRepo is create-and-fetch only; puzzles are never updated.
type PuzzleRepo interface {
	Create(dbc dbctx.Context, p *puzzle.Puzzle) (*puzzle.Puzzle, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*puzzle.Puzzle, error)
}

type puzzleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPuzzleRepo(db *gorm.DB, baseLog *logger.Logger) PuzzleRepo {
	return &puzzleRepo{
		db:  db,
		log: baseLog.With("repo", "PuzzleRepo"),
	}
}

func (r *puzzleRepo) Create(dbc dbctx.Context, p *puzzle.Puzzle) (*puzzle.Puzzle, error) {
	if p == nil {
		return nil, fmt.Errorf("puzzle required")
	}
	if p.ID != uuid.Nil {
		return nil, fmt.Errorf("puzzle id is assigned on create")
	}
	if err := dbc.DB(r.db).Create(p).Error; err != nil {
		r.log.Error("Create puzzle failed", "error", err)
		return nil, err
	}
	return p, nil
}

// GetByID returns (nil, nil) when no puzzle has the id.
func (r *puzzleRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*puzzle.Puzzle, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*puzzle.Puzzle
	if err := dbc.DB(r.db).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
