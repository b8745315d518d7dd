package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/foundly-app/foundly-backend/internal/aictx"
	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SimilarityScorer rates how likely two reports describe the same object.
type SimilarityScorer interface {
	Score(ctx context.Context, a, b *model.Item) (float64, error)
}

type AIHandler struct {
	itemRepo repository.ItemRepository
	scorer   SimilarityScorer
}

func NewAIHandler(itemRepo repository.ItemRepository, scorer SimilarityScorer) *AIHandler {
	return &AIHandler{itemRepo: itemRepo, scorer: scorer}
}

type SuggestionResponse struct {
	Item  model.Item `json:"item"`
	Score float64    `json:"score"`
}

const minSuggestionScore = 40

const maxSuggestionCandidates = 10

// SuggestMatches scores open reports of the opposite type against the given
// report and returns the plausible ones, best first. Scoring failures on
// individual candidates are skipped, not fatal.
func (h *AIHandler) SuggestMatches(c echo.Context) error {
	item, err := h.itemRepo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch item"))
	}

	opposite := model.ItemTypeFound
	if item.Type == model.ItemTypeFound {
		opposite = model.ItemTypeLost
	}
	candidates, err := h.itemRepo.ListOpenByType(c.Request().Context(), opposite, item.ReporterUID, maxSuggestionCandidates)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch candidates"))
	}

	ctx := aictx.WithRID(c.Request().Context(), uuid.NewString())
	ctx = aictx.WithItemID(ctx, item.ID)

	suggestions := make([]SuggestionResponse, 0, len(candidates))
	for i := range candidates {
		score, err := h.scorer.Score(ctx, item, &candidates[i])
		if err != nil {
			continue
		}
		if score >= minSuggestionScore {
			suggestions = append(suggestions, SuggestionResponse{Item: candidates[i], Score: score})
		}
	}
	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return c.JSON(http.StatusOK, dataResponse{Data: suggestions})
}
