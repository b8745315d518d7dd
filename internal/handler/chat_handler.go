package handler

import (
	"errors"
	"net/http"

	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type PostMessageRequest struct {
	UserID string `json:"userId"`
	Body   string `json:"body" validate:"required"`
}

// callerUID prefers the authenticated uid; the explicit userId is kept for
// deployments running without the auth middleware.
func callerUID(c echo.Context, fallback string) string {
	if uid, _ := c.Get("uid").(string); uid != "" {
		return uid
	}
	return fallback
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := callerUID(c, c.QueryParam("userId"))
	if uid == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "User ID is required"))
	}
	msgs, err := h.svc.ListMessages(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Match not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "User is not part of this match"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch messages"))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: msgs})
}

func (h *ChatHandler) PostMessage(c echo.Context) error {
	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "body is required"))
	}
	uid := callerUID(c, req.UserID)
	if uid == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "User ID is required"))
	}
	msg, err := h.svc.PostMessage(c.Request().Context(), c.Param("id"), uid, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Match not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "User is not part of this match"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, dataResponse{Data: msg})
}
