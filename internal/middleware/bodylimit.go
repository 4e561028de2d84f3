package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
)

// BodyLimit validates limit (e.g. "512K", "1M") before handing it to echo,
// whose own constructor panics on a malformed size.
func BodyLimit(limit string) (echo.MiddlewareFunc, error) {
	n, err := bytes.Parse(limit)
	if err != nil {
		return nil, fmt.Errorf("body limit %q: %w", limit, err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("body limit %q: must be positive", limit)
	}
	return echomw.BodyLimit(limit), nil
}
