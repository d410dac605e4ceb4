package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/validation"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

// Authenticator is the slice of the API client used by the auth pages.
type Authenticator interface {
	Register(ctx context.Context, in apiclient.RegisterRequest) (*apiclient.Registered, error)
	Login(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
}

// AuthHandler serves the register, login and logout routes.
type AuthHandler struct {
	API Authenticator
}

func NewAuthHandler(api Authenticator) *AuthHandler {
	if api == nil {
		panic("nil authenticator passed to NewAuthHandler")
	}
	return &AuthHandler{API: api}
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	p := page(c, "Register")
	p.Data = view.NewRegister(validation.RegisterForm{})
	return c.Render(http.StatusOK, view.PageRegister, p)
}

// Register creates the account, then signs in with the same credentials.
// If the follow-up login fails the user lands on the login page instead of
// the account page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form validation.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	errs := form.Validate()
	p := page(c, "Register")
	p.Data = view.NewRegister(form)

	if !errs.Ok() {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, view.PageRegister, p)
	}

	s, err := store(c)
	if err != nil {
		return err
	}
	done, ok := s.BeginSubmit("register")
	if !ok {
		p.Error = BusyMessage
		return c.Render(http.StatusConflict, view.PageRegister, p)
	}
	defer done()

	ctx := c.Request().Context()
	_, err = h.API.Register(ctx, apiclient.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		p.Error = apiclient.UserMessage(err)
		return c.Render(statusFor(err), view.PageRegister, p)
	}

	res, err := h.API.Login(ctx, form.Email, form.Password)
	if err == nil {
		err = signIn(c, res.User, res.Token)
	}
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("auto login after registration failed")
		return c.Redirect(http.StatusSeeOther, tenantPath(c, "login"))
	}
	return c.Redirect(http.StatusSeeOther, tenantPath(c, "account"))
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if s := middleware.Session(c); s != nil && s.IsLoggedIn() {
		return c.Redirect(http.StatusSeeOther, tenantPath(c, "account"))
	}
	p := page(c, "Sign in")
	p.Data = view.Login{}
	return c.Render(http.StatusOK, view.PageLogin, p)
}

// Login exchanges the credentials for a session bound to a fresh id. On
// failure the session is left untouched and the backend's message is shown
// as the banner.
func (h *AuthHandler) Login(c echo.Context) error {
	var form validation.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	errs := form.Validate()
	p := page(c, "Sign in")
	p.Data = view.Login{Email: form.Email}

	if !errs.Ok() {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, view.PageLogin, p)
	}

	s, err := store(c)
	if err != nil {
		return err
	}
	done, ok := s.BeginSubmit("login")
	if !ok {
		p.Error = BusyMessage
		return c.Render(http.StatusConflict, view.PageLogin, p)
	}
	defer done()

	ctx := c.Request().Context()
	res, err := h.API.Login(ctx, form.Email, form.Password)
	if err != nil {
		p.Error = apiclient.UserMessage(err)
		return c.Render(statusFor(err), view.PageLogin, p)
	}
	if err := signIn(c, res.User, res.Token); err != nil {
		p.Error = apiclient.FallbackLogin
		return c.Render(http.StatusUnauthorized, view.PageLogin, p)
	}
	middleware.Logger(c).WithField("user", res.User.Email).Info("signed in")
	return c.Redirect(http.StatusSeeOther, tenantPath(c, "account"))
}

// Logout clears the session, retires its id and returns to the tenant home
// page.
func (h *AuthHandler) Logout(c echo.Context) error {
	s, err := store(c)
	if err != nil {
		return err
	}
	signOut(c, s)
	return c.Redirect(http.StatusSeeOther, tenantPath(c, ""))
}
