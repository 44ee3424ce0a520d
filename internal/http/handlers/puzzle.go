package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
	"github.com/yungbote/crossword-backend/internal/http/response"
	"github.com/yungbote/crossword-backend/internal/platform/logger"
	"github.com/yungbote/crossword-backend/internal/services"
)

type PuzzleHandler struct {
	log     *logger.Logger
	puzzles services.PuzzleService
}

func NewPuzzleHandler(log *logger.Logger, puzzles services.PuzzleService) *PuzzleHandler {
	return &PuzzleHandler{
		log:     log.With("handler", "PuzzleHandler"),
		puzzles: puzzles,
	}
}

// Numeric knobs left out of the body fall back to the generator's defaults;
// explicit values, zero included, are passed through as given.
type generatePuzzleRequest struct {
	Theme       string `json:"theme"`
	Regenerate  bool   `json:"regenerate"`
	MaxWords    *int   `json:"maxWords"`
	MaxAttempts *int   `json:"maxAttempts"`
	ThemeWords  *int   `json:"themeWords"`
	WordTokens  *int   `json:"wordTokens"`
	HintTokens  *int   `json:"hintTokens"`
}

func (r generatePuzzleRequest) params() puzzle.GenerateParams {
	return puzzle.GenerateParams{
		Theme:       r.Theme,
		Regenerate:  r.Regenerate,
		MaxWords:    intOr(r.MaxWords, puzzle.DefaultMaxWords),
		MaxAttempts: intOr(r.MaxAttempts, puzzle.DefaultMaxAttempts),
		ThemeWords:  intOr(r.ThemeWords, puzzle.DefaultThemeWords),
		WordTokens:  intOr(r.WordTokens, puzzle.DefaultWordTokens),
		HintTokens:  intOr(r.HintTokens, puzzle.DefaultHintTokens),
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// POST /api/puzzles/generate
func (h *PuzzleHandler) GeneratePuzzle(c *gin.Context) {
	var req generatePuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	view, err := h.puzzles.Generate(c.Request.Context(), nil, req.params())
	if err != nil {
		h.log.Error("GeneratePuzzle failed", "error", err, "theme", req.Theme)
		response.RespondAPIError(c, err, services.CodeGenerateFailed)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/puzzles/:id
func (h *PuzzleHandler) GetPuzzle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// an id that does not parse was never issued
		response.RespondError(c, http.StatusNotFound, services.CodeNotFound, services.ErrNotFound)
		return
	}

	view, err := h.puzzles.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		if !services.IsNotFound(err) {
			h.log.Error("GetPuzzle failed", "error", err, "puzzle_id", id)
		}
		response.RespondAPIError(c, err, services.CodeReadFailed)
		return
	}
	response.RespondOK(c, view)
}
