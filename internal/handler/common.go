package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/session"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

// BusyMessage answers a second submit while the first is still in flight.
const BusyMessage = "Your previous submission is still being processed. Please wait."

// page assembles the template data shared by every route.
func page(c echo.Context, title string) view.Page {
	p := view.Page{Title: title}
	if t, ok := middleware.Theme(c); ok {
		p.Theme = &t
	}
	if s := middleware.Session(c); s != nil {
		if snap := s.Snapshot(); snap.LoggedIn() {
			p.User = snap.User
		}
	}
	return p
}

// tenantPath joins the current tenant slug with a page path.
func tenantPath(c echo.Context, p string) string {
	t, _ := middleware.Theme(c)
	return t.Path(p)
}

func store(c echo.Context) (*session.Store, error) {
	s := middleware.Session(c)
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware missing")
	}
	return s, nil
}

// statusFor picks the response code of a page that shows err as its banner.
func statusFor(err error) int {
	var (
		regErr  *apiclient.RegistrationFailedError
		authErr *apiclient.AuthFailedError
		valErr  *apiclient.ValidationFailedError
	)
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized), errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &regErr), errors.As(err, &valErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// redirectLogin ends the session after the backend refused its token.
func redirectLogin(c echo.Context, s *session.Store) error {
	signOut(c, s)
	return c.Redirect(http.StatusSeeOther, tenantPath(c, "login"))
}

// signIn starts the authenticated session under a newly issued id, so an id
// the browser held before signing in never becomes authenticated.
func signIn(c echo.Context, user model.AuthUser, token string) error {
	s := middleware.RotateSession(c)
	if s == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session middleware missing")
	}
	return s.Login(c.Request().Context(), user, token)
}

// signOut clears s and moves the browser to a fresh id.
func signOut(c echo.Context, s *session.Store) {
	s.Logout(c.Request().Context())
	middleware.RotateSession(c)
}
