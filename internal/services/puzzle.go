package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/clients/redis"
	"github.com/yungbote/crossword-backend/internal/data/repos"
	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/pkg/dbctx"
	"github.com/yungbote/crossword-backend/internal/platform/apierr"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
)

const (
	CodeGenerateFailed = "generate_puzzle_failed"
	CodeNotFound       = "puzzle_not_found"
	CodeReadFailed     = "read_puzzle_failed"
)

// GenerationPort produces a puzzle for the given params. The subprocess-backed
// generator.Generator satisfies it.
type GenerationPort interface {
	Generate(ctx context.Context, params puzzle.GenerateParams) (*puzzle.GenerationOutcome, error)
}

// PuzzleView is the response envelope. GridJSON and CluesJSON are JSON documents
// carried as strings.
type PuzzleView struct {
	ID        uuid.UUID `json:"id"`
	Theme     string    `json:"theme"`
	GridJSON  string    `json:"gridJson"`
	CluesJSON string    `json:"cluesJson"`
}

type PuzzleService interface {
	Generate(ctx context.Context, tx *gorm.DB, params puzzle.GenerateParams) (*PuzzleView, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*PuzzleView, error)
}

type puzzleService struct {
	db         *gorm.DB
	log        *logger.Logger
	puzzleRepo repos.PuzzleRepo
	generator  GenerationPort
	events     redis.PuzzleEvents
}

// NewPuzzleService wires the service. events may be nil.
func NewPuzzleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	puzzleRepo repos.PuzzleRepo,
	generator GenerationPort,
	events redis.PuzzleEvents,
) PuzzleService {
	return &puzzleService{
		db:         db,
		log:        baseLog.With("service", "PuzzleService"),
		puzzleRepo: puzzleRepo,
		generator:  generator,
		events:     events,
	}
}

func (s *puzzleService) Generate(ctx context.Context, tx *gorm.DB, params puzzle.GenerateParams) (*PuzzleView, error) {
	out, err := s.generator.Generate(ctx, params)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, CodeGenerateFailed, err)
	}

	solutionBlob, hintsBlob, err := ToStorageForm(out)
	if err != nil {
		s.log.Error("Generate: encode outcome failed", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, CodeGenerateFailed, err)
	}
	// Outcomes that cannot be shaped for clients are never stored.
	gridJSON, cluesJSON, err := ToClientForm(solutionBlob, hintsBlob)
	if err != nil {
		s.log.Warn("Generate: generator output cannot be served", "error", err, "hints", len(out.Hints))
		return nil, apierr.New(http.StatusInternalServerError, CodeGenerateFailed, err)
	}

	created, err := s.puzzleRepo.Create(dbctx.Context{Ctx: ctx, Tx: tx}, &puzzle.Puzzle{
		Theme:        params.Theme,
		SolutionJSON: datatypes.JSON(solutionBlob),
		HintsJSON:    datatypes.JSON(hintsBlob),
	})
	if err != nil {
		s.log.Error("Generate: store puzzle failed", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, CodeGenerateFailed, err)
	}

	if s.events != nil {
		if err := s.events.PublishCreated(ctx, created); err != nil {
			s.log.Warn("Generate: publish puzzle.created failed", "error", err, "puzzle_id", created.ID)
		}
	}

	return &PuzzleView{
		ID:        created.ID,
		Theme:     created.Theme,
		GridJSON:  gridJSON,
		CluesJSON: cluesJSON,
	}, nil
}

func (s *puzzleService) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*PuzzleView, error) {
	if id == uuid.Nil {
		return nil, apierr.New(http.StatusNotFound, CodeNotFound, ErrNotFound)
	}
	p, err := s.puzzleRepo.GetByID(dbctx.Context{Ctx: ctx, Tx: tx}, id)
	if err != nil {
		s.log.Error("GetByID: load puzzle failed", "error", err, "puzzle_id", id)
		return nil, apierr.New(http.StatusInternalServerError, CodeReadFailed, err)
	}
	if p == nil {
		return nil, apierr.New(http.StatusNotFound, CodeNotFound, ErrNotFound)
	}
	gridJSON, cluesJSON, err := ToClientForm(p.SolutionJSON, p.HintsJSON)
	if err != nil {
		s.log.Error("GetByID: stored puzzle is malformed", "error", err, "puzzle_id", id)
		return nil, apierr.New(http.StatusInternalServerError, CodeReadFailed, err)
	}
	return &PuzzleView{
		ID:        p.ID,
		Theme:     p.Theme,
		GridJSON:  gridJSON,
		CluesJSON: cluesJSON,
	}, nil
}

// IsNotFound reports whether err means the puzzle does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
