package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/tone-converter/internal/config"
	"github.com/iliyamo/tone-converter/internal/handler"    // import the handlers that implement the endpoints
	"github.com/iliyamo/tone-converter/internal/middleware" // import middleware for CORS, recovery and logging
)

// Setup installs the error handler and the middleware chain on e.  The
// order matters: the request logger sits outermost so it sees the final
// status, and Recover sits inside it so panics are logged as 500s.
func Setup(e *echo.Echo, cfg config.Config, log *logrus.Logger) error {
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	limit, err := middleware.BodyLimit(cfg.BodyLimit)
	if err != nil {
		return err
	}

	if cfg.LogRequests {
		e.Use(middleware.RequestLogger(log))
	}
	e.Use(middleware.Recover(log))
	e.Use(middleware.APICORS(cfg.CORSAllowOrigins))
	e.Use(limit)
	return nil
}

// RegisterRoutes registers the health check and the /api group on e.
func RegisterRoutes(e *echo.Echo, h *handler.ConvertHandler) {
	// Health check for load balancers and uptime probes.  It lives outside
	// /api so it never carries CORS headers.
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	api.POST("/convert", h.Convert)
}
