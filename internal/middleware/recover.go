package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Recover turns a panic inside the handler chain into an ordinary error so
// that it reaches the HTTP error handler and becomes a 500.  The stack is
// logged at debug level; the error itself is logged by the error handler.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				perr, ok := r.(error)
				if !ok {
					perr = fmt.Errorf("%v", r)
				}
				log.WithFields(logrus.Fields{
					"path":  c.Request().URL.Path,
					"stack": string(debug.Stack()),
				}).Debug("panic recovered")
				err = fmt.Errorf("panic recovered: %w", perr)
			}()
			return next(c)
		}
	}
}
