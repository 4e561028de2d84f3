package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// APIPrefix is the path prefix that receives the cross-origin policy.
const APIPrefix = "/api/"

// APICORS returns a CORS middleware that only applies to paths under
// APIPrefix.  With the default origins ["*"] any origin is allowed and no
// credentials are advertised.  Everything outside the prefix, /health
// included, is served without CORS headers.
func APICORS(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, APIPrefix)
		},
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderOrigin, echo.HeaderXRequestedWith},
	})
}
