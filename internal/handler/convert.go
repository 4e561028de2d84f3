package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/tone-converter/internal/converter"
	"github.com/iliyamo/tone-converter/internal/groq"
)

// ConvertHandler bundles dependencies for the conversion endpoint.  Both
// fields are set once at startup and only read afterwards.
type ConvertHandler struct {
	LLM *groq.Client
	Log *logrus.Logger
}

func NewConvertHandler(llm *groq.Client, log *logrus.Logger) *ConvertHandler {
	return &ConvertHandler{LLM: llm, Log: log}
}

// Convert: decode {text, target} and return the placeholder conversion.
// Errors are returned unchanged; ErrorHandler turns them into responses.
func (h *ConvertHandler) Convert(c echo.Context) error {
	req, err := converter.Decode(c.Request().Body)
	if err != nil {
		return err
	}
	resp, err := converter.Convert(req)
	if err != nil {
		return err
	}

	h.Log.WithFields(logrus.Fields{
		"target":         resp.Target,
		"text_len":       len([]rune(resp.OriginalText)),
		"llm_configured": h.LLM.Configured(),
		"model":          h.LLM.Model(),
	}).Debug("dummy conversion")

	return c.JSON(http.StatusOK, resp)
}
