package handler

import (
	"errors"
	"net/http"

	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type UserIDRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type MarkAllReadResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

func (h *NotificationHandler) ListByUser(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "User ID is required"))
	}
	list, err := h.svc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch notifications"))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: list})
}

func (h *NotificationHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "Notification ID is required"))
	}
	n, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Notification not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch notification"))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: n})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "Notification ID is required"))
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Notification not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete notification"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Notification deleted successfully"})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "Notification ID is required"))
	}
	n, err := h.svc.MarkRead(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "Notification not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to mark notification as read"))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: n})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	var req UserIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "User ID is required"))
	}
	count, err := h.svc.MarkAllRead(c.Request().Context(), req.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to mark notifications as read"))
	}
	return c.JSON(http.StatusOK, MarkAllReadResponse{
		Message:       "All notifications marked as read",
		ModifiedCount: count,
	})
}

func (h *NotificationHandler) DeleteAllByUser(c echo.Context) error {
	var req UserIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "User ID is required"))
	}
	if _, err := h.svc.DeleteAllByUser(c.Request().Context(), req.UserID); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete notifications"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "All notifications deleted successfully"})
}
