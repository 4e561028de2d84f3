package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/tone-converter/internal/converter"
	"github.com/iliyamo/tone-converter/internal/model"
)

// Fixed client-facing messages.  Details of internal failures go to the log
// only.
const (
	MsgMissingField   = "Missing 'text' or 'target' in request"
	MsgInternalServer = "Internal Server Error"
)

// ErrorHandler returns the echo.HTTPErrorHandler that turns every error a
// handler or middleware returns into a JSON {"error": ...} response.
//
//	*echo.HTTPError           -> its code; 5xx bodies get the generic message
//	converter.ErrMissingField -> 400
//	anything else             -> 500, logged
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := resolveError(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
			}).Error("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, model.ErrorResponse{Error: msg})
		}
		if werr != nil {
			log.WithError(werr).Warn("write error response")
		}
	}
}

// resolveError maps err to a status code and the message shown to callers.
// Framework errors are checked first so that a body-limit rejection surfacing
// through the JSON decoder stays a 413.
func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, MsgInternalServer
		}
		if m, ok := he.Message.(string); ok && m != "" {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	}
	if errors.Is(err, converter.ErrMissingField) {
		return http.StatusBadRequest, MsgMissingField
	}
	return http.StatusInternalServerError, MsgInternalServer
}
