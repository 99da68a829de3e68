package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/service"
)

type SearchHandler struct {
	service *service.SearchService
}

type searchRequest struct {
	City string `json:"city"`
}

type selectRequest struct {
	ID string `json:"id"`
}

type languageRequest struct {
	Language string `json:"language"`
}

func NewSearchHandler(service *service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.GET("/state", h.State)
	g.POST("/state/select", h.SelectLandmark)
	g.PUT("/state/language", h.SetLanguage)
}

// Search runs a city search and returns the resulting view state.
func (h *SearchHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	state, err := h.service.Search(c.Request().Context(), req.City)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// State returns the current view state.
func (h *SearchHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.State())
}

// SelectLandmark marks a landmark as selected. An empty id clears the
// selection.
func (h *SearchHandler) SelectLandmark(c echo.Context) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if req.ID == "" {
		return c.JSON(http.StatusOK, h.service.ClearSelection())
	}
	state, err := h.service.SelectLandmark(req.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// SetLanguage switches the active display language.
func (h *SearchHandler) SetLanguage(c echo.Context) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	state, err := h.service.SetLanguage(model.Language(req.Language))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}
