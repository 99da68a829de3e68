package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkatlas/backend/internal/catalog"
	"inkatlas/backend/internal/model"
)

type CatalogHandler struct{}

type catalogCityResponse struct {
	Key       string              `json:"key"`
	Name      model.LocalizedText `json:"name"`
	Lat       float64             `json:"lat"`
	Lng       float64             `json:"lng"`
	Landmarks int                 `json:"landmarks"`
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cities", h.ListCities)
	g.GET("/cities/:key", h.GetCity)
}

// ListCities returns the bundled offline cities.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	keys := catalog.Keys()
	cities := make([]catalogCityResponse, 0, len(keys))
	for _, key := range keys {
		entry, ok := catalog.Lookup(key)
		if !ok {
			continue
		}
		cities = append(cities, catalogCityResponse{
			Key:       key,
			Name:      entry.Name,
			Lat:       entry.Lat,
			Lng:       entry.Lng,
			Landmarks: len(entry.Landmarks),
		})
	}
	return c.JSON(http.StatusOK, cities)
}

// GetCity returns one bundled city with its full landmark list.
func (h *CatalogHandler) GetCity(c echo.Context) error {
	entry, ok := catalog.Lookup(c.Param("key"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "city not found"})
	}
	return c.JSON(http.StatusOK, entry)
}
