package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
)

// ExpireStaleSessions signs the browser out as soon as its bearer token
// carries an exp claim in the past, so pages never render a logged-in shell
// around a token the backend will reject. Must run after SessionLoader.
func ExpireStaleSessions() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := Session(c)
			if s == nil {
				return next(c)
			}
			snap := s.Snapshot()
			if snap.LoggedIn() && apiclient.TokenExpired(snap.Token) {
				Logger(c).WithField("user", snap.User.Email).Info("bearer token expired, signing out")
				s.Logout(c.Request().Context())
			}
			return next(c)
		}
	}
}
