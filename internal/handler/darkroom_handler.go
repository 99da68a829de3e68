package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"inkatlas/backend/internal/service"
)

type DarkroomHandler struct {
	service service.DarkroomService
}

type darkroomRequest struct {
	// Image is base64 data, with or without a data URI prefix.
	Image       string `json:"image"`
	MIMEType    string `json:"mimeType"`
	Instruction string `json:"instruction"`
}

type darkroomResponse struct {
	Edited   bool   `json:"edited"`
	Image    string `json:"image,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
}

func NewDarkroomHandler(service service.DarkroomService) *DarkroomHandler {
	return &DarkroomHandler{service: service}
}

func (h *DarkroomHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/darkroom", h.AgePhoto)
}

// AgePhoto applies the AI photo-aging filter to an uploaded image. When the
// model returns no image the response carries edited=false and the client
// keeps its original.
func (h *DarkroomHandler) AgePhoto(c echo.Context) error {
	var req darkroomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	data, mimeType, err := decodeImage(req.Image, req.MIMEType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid image data"})
	}

	edited, err := h.service.AgePhoto(c.Request().Context(), data, mimeType, req.Instruction)
	if err != nil {
		return writeServiceError(c, err)
	}
	if edited == nil {
		return c.JSON(http.StatusOK, darkroomResponse{Edited: false})
	}

	return c.JSON(http.StatusOK, darkroomResponse{
		Edited:   true,
		Image:    base64.StdEncoding.EncodeToString(edited.Data),
		MIMEType: edited.MIMEType,
	})
}

// decodeImage accepts plain base64 or a data URI; a data URI's media type
// wins over the separate field.
func decodeImage(image, mimeType string) ([]byte, string, error) {
	if rest, ok := strings.CutPrefix(image, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", base64.CorruptInputError(0)
		}
		if mt, _, _ := strings.Cut(meta, ";"); mt != "" {
			mimeType = mt
		}
		image = payload
	}
	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}
