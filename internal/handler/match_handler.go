package handler

import (
	"errors"
	"net/http"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

type CreateMatchRequest struct {
	Item1ID string `json:"item1Id" validate:"required"`
	Item2ID string `json:"item2Id" validate:"required"`
}

type ConfirmMatchRequest struct {
	MatchID string `json:"matchId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type ConfirmMatchResponse struct {
	Message              string                `json:"message"`
	Status               service.ConfirmStatus `json:"status"`
	Match                *model.Match          `json:"match"`
	UserConfirmed        string                `json:"userConfirmed,omitempty"`
	AwaitingConfirmation string                `json:"awaitingConfirmation,omitempty"`
}

func (h *MatchHandler) ListByUser(c echo.Context) error {
	userID := c.Param("userId")
	matches, err := h.svc.GetAllByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch matches"))
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return c.JSON(http.StatusOK, matches)
}

func (h *MatchHandler) Get(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Match not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch match"))
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MatchHandler) Delete(c echo.Context) error {
	err := h.svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Match not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete match"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Match and associated notifications deleted successfully"})
}

func (h *MatchHandler) Create(c echo.Context) error {
	var req CreateMatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "Missing required fields: item1Id and item2Id"))
	}
	m, err := h.svc.Create(c.Request().Context(), req.Item1ID, req.Item2ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MatchHandler) Confirm(c echo.Context) error {
	var req ConfirmMatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "Missing required fields: matchId and userId"))
	}

	res, err := h.svc.Confirm(c.Request().Context(), req.MatchID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Match not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "User is not part of this match"))
		case errors.Is(err, service.ErrAlreadyConfirmed):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "You have already confirmed this match"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to confirm match"))
	}

	if res.Status == service.StatusFullyConfirmed {
		return c.JSON(http.StatusOK, ConfirmMatchResponse{
			Message: "Match fully confirmed and completed",
			Status:  res.Status,
			Match:   res.Match,
		})
	}
	return c.JSON(http.StatusOK, ConfirmMatchResponse{
		Message:              "Match confirmation updated",
		Status:               res.Status,
		Match:                res.Match,
		UserConfirmed:        res.UserConfirmed,
		AwaitingConfirmation: res.AwaitingConfirmation,
	})
}
