package router // package router defines how HTTP routes are registered for the API

import (
	"log/slog"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/aspire-counter-api/internal/handler"    // handlers for the demo routes
	"github.com/iliyamo/aspire-counter-api/internal/middleware" // request logging
)

// New returns an Echo instance with recovery, request logging and every
// route of the API registered.
func New(h *handler.APIHandler, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	RegisterRoutes(e, h)
	return e
}

// RegisterRoutes registers the unauthenticated demo routes. /health is a
// liveness probe and must stay independent of the cache.
func RegisterRoutes(e *echo.Echo, h *handler.APIHandler) {
	e.GET("/", h.Home)
	e.GET("/health", handler.Health)
	e.GET("/counter", h.Counter)
	e.GET("/info", h.Info)
}
