package middleware

// identity.go binds every request to the browser's session Store. The opaque
// session id travels in the rmm_sid cookie; a missing or malformed id is
// replaced by a fresh one.

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/session"
)

const (
	storeKey     = "session"
	sessionIDKey = "session_id"
	issuerKey    = "session_issuer"
)

// cookieIssuer re-issues the session cookie with the loader's settings.
type cookieIssuer struct {
	m      *session.Manager
	secure bool
	ttl    time.Duration
}

// bind points the request at sid. A session cookie already set on this
// response is replaced rather than duplicated.
func (ci cookieIssuer) bind(c echo.Context, sid string, s *session.Store) {
	h := c.Response().Header()
	var kept []string
	for _, v := range h.Values(echo.HeaderSetCookie) {
		if !strings.HasPrefix(v, session.CookieName+"=") {
			kept = append(kept, v)
		}
	}
	h.Del(echo.HeaderSetCookie)
	for _, v := range kept {
		h.Add(echo.HeaderSetCookie, v)
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(ci.ttl / time.Second),
		HttpOnly: true,
		Secure:   ci.secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionIDKey, sid)
	c.Set(storeKey, s)
}

// SessionLoader resolves the Store for the request's session cookie and
// stores it in the echo context. The cookie is refreshed on every request so
// its lifetime slides with activity, and so does the persisted session of a
// signed-in browser.
func SessionLoader(m *session.Manager, secure bool, ttl time.Duration) echo.MiddlewareFunc {
	ci := cookieIssuer{m: m, secure: secure, ttl: ttl}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(session.CookieName); err == nil && session.ValidID(ck.Value) {
				sid = ck.Value
			} else {
				sid = session.NewID()
			}
			ctx := c.Request().Context()
			s := m.Get(ctx, sid)
			s.Refresh(ctx)

			ci.bind(c, sid, s)
			c.Set(issuerKey, ci)
			return next(c)
		}
	}
}

// RotateSession moves the browser to a fresh session id and returns its
// empty Store. The previous id resolves to an empty session. Handlers call it
// whenever the authentication state changes. Without SessionLoader it
// returns nil.
func RotateSession(c echo.Context) *session.Store {
	ci, ok := c.Get(issuerKey).(cookieIssuer)
	if !ok {
		return nil
	}
	sid, s := ci.m.Rotate(c.Request().Context(), SessionID(c))
	ci.bind(c, sid, s)
	return s
}

// Session returns the Store bound by SessionLoader, or nil.
func Session(c echo.Context) *session.Store {
	s, _ := c.Get(storeKey).(*session.Store)
	return s
}

// SessionID returns the opaque id of the current browser session.
func SessionID(c echo.Context) string {
	s, _ := c.Get(sessionIDKey).(string)
	return s
}

// userID identifies the signed-in user for rate limiting, or "anon".
func userID(c echo.Context) string {
	s := Session(c)
	if s == nil {
		return "anon"
	}
	snap := s.Snapshot()
	if !snap.LoggedIn() {
		return "anon"
	}
	if snap.User.ID != "" {
		return snap.User.ID
	}
	return snap.User.Email
}
