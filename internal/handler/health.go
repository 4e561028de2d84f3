package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/iliyamo/tone-converter/internal/model"
)

// Health is a simple health‑check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It always
// returns {"status":"ok"} with an HTTP 200 status code and touches no state.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthStatus{Status: "ok"})
}
