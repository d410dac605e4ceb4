package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/theme"
)

const themeKey = "theme"

// ResolveTenant looks up the theme for the :tenant route parameter. Unknown
// tenants get an empty 404 and nothing further runs.
func ResolveTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t, err := theme.Resolve(c.Param("tenant"))
			if err != nil {
				return c.NoContent(http.StatusNotFound)
			}
			c.Set(themeKey, t)
			return next(c)
		}
	}
}

// Theme returns the tenant theme resolved by ResolveTenant.
func Theme(c echo.Context) (theme.Theme, bool) {
	t, ok := c.Get(themeKey).(theme.Theme)
	return t, ok
}
