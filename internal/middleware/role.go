package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireLogin redirects logged-out browsers to the tenant's login page. The
// login path is built from the :tenant route parameter, so the middleware
// must be mounted on routes that carry it.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := Session(c)
			if s == nil || !s.IsLoggedIn() {
				return c.Redirect(http.StatusSeeOther, "/"+c.Param("tenant")+"/login")
			}
			return next(c)
		}
	}
}
