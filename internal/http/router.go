package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inkatlas/backend/internal/handler"
)

func NewRouter(
	searchHandler *handler.SearchHandler,
	settingsHandler *handler.SettingsHandler,
	catalogHandler *handler.CatalogHandler,
	darkroomHandler *handler.DarkroomHandler,
	historyHandler *handler.HistoryHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	searchHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	darkroomHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
