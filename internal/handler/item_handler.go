package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type CreateItemRequest struct {
	Type        string  `json:"type" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	ReporterUID string  `json:"reporterUid"`
}

type ItemListResponse struct {
	Items []model.Item `json:"items"`
	Total int64        `json:"total"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "type, title and description are required"))
	}
	reporter := req.ReporterUID
	if uid, _ := c.Get("uid").(string); uid != "" {
		reporter = uid
	}
	item, err := h.svc.Create(c.Request().Context(), req.Type, req.Title, req.Description, req.Location, req.ImageURL, reporter)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch item"))
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	includeResolved := c.QueryParam("includeResolved") == "true"
	items, total, err := h.svc.List(c.Request().Context(), limit, offset, c.QueryParam("type"), includeResolved)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	if items == nil {
		items = []model.Item{}
	}
	return c.JSON(http.StatusOK, ItemListResponse{Items: items, Total: total})
}

func (h *ItemHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	items, err := h.svc.ListByReporter(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	if items == nil {
		items = []model.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// UploadPhoto accepts a multipart "photo" part and stores it on the item.
func (h *ItemHandler) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "photo file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "failed to read photo"))
	}
	defer f.Close()

	url, err := h.svc.AttachPhoto(c.Request().Context(), c.Param("id"), fh.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to upload photo"))
	}
	return c.JSON(http.StatusOK, map[string]string{"imageUrl": url})
}
