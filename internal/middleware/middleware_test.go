package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/session"
	"github.com/iliyamo/register-my-marriage/internal/theme"
)

var alice = model.AuthUser{ID: "u-1", Name: "Alice Rao", Email: "alice@example.com"}

func nullLogger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}

func serve(e *echo.Echo, method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	return nil
}

func TestSessionLoader_IssuesCookie(t *testing.T) {
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		require.NotNil(t, Session(c))
		return c.String(http.StatusOK, SessionID(c))
	}, SessionLoader(m, true, time.Hour))

	rec := serve(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	ck := sessionCookie(rec)
	require.NotNil(t, ck)
	assert.True(t, session.ValidID(ck.Value))
	assert.Equal(t, ck.Value, rec.Body.String())
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, 3600, ck.MaxAge)
}

func TestSessionLoader_ReusesValidCookie(t *testing.T) {
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	sid := session.NewID()
	require.NoError(t, m.Get(context.Background(), sid).Login(context.Background(), alice, "tok"))

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		assert.True(t, Session(c).IsLoggedIn())
		return c.NoContent(http.StatusOK)
	}, SessionLoader(m, false, time.Hour))

	rec := serve(e, http.MethodGet, "/", &http.Cookie{Name: session.CookieName, Value: sid})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sid, sessionCookie(rec).Value)
}

func TestSessionLoader_ReplacesForgedCookie(t *testing.T) {
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, SessionLoader(m, false, time.Hour))

	rec := serve(e, http.MethodGet, "/", &http.Cookie{Name: session.CookieName, Value: "../../etc"})
	ck := sessionCookie(rec)
	require.NotNil(t, ck)
	assert.NotEqual(t, "../../etc", ck.Value)
	assert.True(t, session.ValidID(ck.Value))
}

func TestRotateSession(t *testing.T) {
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	sid := session.NewID()
	e := echo.New()
	e.POST("/", func(c echo.Context) error {
		s := RotateSession(c)
		require.NotNil(t, s)
		assert.Same(t, s, Session(c))
		require.NoError(t, s.Login(c.Request().Context(), alice, "tok"))
		return c.String(http.StatusOK, SessionID(c))
	}, SessionLoader(m, false, time.Hour))

	rec := serve(e, http.MethodPost, "/", &http.Cookie{Name: session.CookieName, Value: sid})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, rec.Header().Values(echo.HeaderSetCookie), 1)
	ck := sessionCookie(rec)
	assert.NotEqual(t, sid, ck.Value)
	assert.Equal(t, ck.Value, rec.Body.String())
	assert.True(t, m.Get(context.Background(), ck.Value).IsLoggedIn())
	assert.False(t, m.Get(context.Background(), sid).IsLoggedIn())
}

func TestRotateSession_WithoutLoader(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, RotateSession(c))
}

func TestResolveTenant(t *testing.T) {
	e := echo.New()
	e.GET("/:tenant", func(c echo.Context) error {
		th, ok := Theme(c)
		require.True(t, ok)
		return c.String(http.StatusOK, th.Slug())
	}, ResolveTenant())

	rec := serve(e, http.MethodGet, "/islam")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, theme.KeyIslam.Slug(), rec.Body.String())

	rec = serve(e, http.MethodGet, "/court-marriage")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequireLogin(t *testing.T) {
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	e := echo.New()
	e.GET("/:tenant/account", func(c echo.Context) error {
		return c.String(http.StatusOK, "account")
	}, SessionLoader(m, false, time.Hour), RequireLogin())

	rec := serve(e, http.MethodGet, "/dharmic/account")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dharmic/login", rec.Header().Get(echo.HeaderLocation))

	sid := session.NewID()
	require.NoError(t, m.Get(context.Background(), sid).Login(context.Background(), alice, "tok"))
	rec = serve(e, http.MethodGet, "/dharmic/account", &http.Cookie{Name: session.CookieName, Value: sid})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "account", rec.Body.String())
}

func TestExpireStaleSessions(t *testing.T) {
	sign := func(exp time.Time) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
		require.NoError(t, err)
		return tok
	}
	tests := []struct {
		name     string
		token    string
		loggedIn bool
	}{
		{"expired jwt", sign(time.Now().Add(-time.Minute)), false},
		{"live jwt", sign(time.Now().Add(time.Hour)), true},
		{"opaque token", "abc123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := session.NewManager(session.NewMemoryBackend(), nullLogger())
			sid := session.NewID()
			st := m.Get(context.Background(), sid)
			require.NoError(t, st.Login(context.Background(), alice, tt.token))

			e := echo.New()
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
				SessionLoader(m, false, time.Hour), ExpireStaleSessions())
			serve(e, http.MethodGet, "/", &http.Cookie{Name: session.CookieName, Value: sid})

			assert.Equal(t, tt.loggedIn, st.IsLoggedIn())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error {
		Logger(c).Info("inside")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error { panic("kaboom") })

	const upstream = "0b7e2f1c-9a3d-4c56-8e21-5f4a6b7c8d90"
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, upstream)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, upstream, rec.Header().Get(RequestIDHeader))

	var ids []any
	for _, entry := range hook.AllEntries() {
		ids = append(ids, entry.Data["request-id"])
	}
	assert.Equal(t, []any{upstream, upstream}, ids)
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])

	hook.Reset()
	rec = serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "kaboom", hook.LastEntry().Data["panic"])
}

func TestRequestLogger_ReplacesUntrustedRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, sent := range []string{"req-1", "evil\nlevel=error msg=forged", strings.Repeat("a", 4096)} {
		hook.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, sent)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(RequestIDHeader)
		assert.NotEqual(t, sent, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		assert.Equal(t, got, hook.LastEntry().Data["request-id"])
	}
}

func TestLogger_WithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, Logger(c))
}
