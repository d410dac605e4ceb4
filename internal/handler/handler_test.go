package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/document"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/queue"
	"github.com/iliyamo/register-my-marriage/internal/session"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

var alice = model.AuthUser{ID: "u-1", Name: "Alice Rao", Email: "alice@example.com", Phone: "9876543210"}

func nullLogger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}

// app is a tenant-scoped echo instance with an in-memory session manager,
// mounted the same way the router mounts the real handlers.
type app struct {
	e        *echo.Echo
	sessions *session.Manager
	sid      string
}

func newApp(t *testing.T, mount func(g *echo.Group)) *app {
	t.Helper()
	e := echo.New()
	e.Renderer = view.MustNew("")
	m := session.NewManager(session.NewMemoryBackend(), nullLogger())
	g := e.Group("/:tenant", middleware.ResolveTenant(), middleware.SessionLoader(m, false, time.Hour))
	mount(g)
	return &app{e: e, sessions: m, sid: session.NewID()}
}

// store returns the session store the app's next request is bound to.
func (a *app) store() *session.Store {
	return a.sessions.Get(context.Background(), a.sid)
}

func (a *app) login(t *testing.T) {
	t.Helper()
	require.NoError(t, a.store().Login(context.Background(), alice, "tok-1"))
}

func (a *app) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: a.sid})
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	// Keep whatever id the server issued, as a browser would.
	if ck := sessionCookie(rec); ck != nil {
		a.sid = ck.Value
	}
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

func (a *app) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil, "")
}

func (a *app) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, strings.NewReader(form.Encode()), echo.MIMEApplicationForm)
}

type fakeAuth struct {
	registerErr error
	loginErr    error
	registered  []apiclient.RegisterRequest
	logins      int
}

func (f *fakeAuth) Register(_ context.Context, in apiclient.RegisterRequest) (*apiclient.Registered, error) {
	f.registered = append(f.registered, in)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &apiclient.Registered{Message: "ok"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (*apiclient.LoginResult, error) {
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := alice
	u.Email = email
	return &apiclient.LoginResult{User: u, Token: "tok-1"}, nil
}

type fakeContact struct {
	err  error
	sent []model.ContactInquiry
}

func (f *fakeContact) SubmitContact(_ context.Context, in model.ContactInquiry) error {
	f.sent = append(f.sent, in)
	return f.err
}

type fakePublisher struct {
	err    error
	events []queue.ContactSubmittedEvent
}

func (f *fakePublisher) PublishContactSubmitted(_ context.Context, ev queue.ContactSubmittedEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

// fakeGateway stands in for the backend's document endpoints. A create
// stores the body as the current document so the refetch sees it.
type fakeGateway struct {
	mu      sync.Mutex
	current *document.Document
	getErr  error
	mutErr  error
	created []map[string]any
	updated map[string]map[string]any
}

func (f *fakeGateway) GetMyDocument(_ context.Context, _ string) (*document.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.current, nil
}

func (f *fakeGateway) CreateDocument(_ context.Context, _ string, body map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return f.mutErr
	}
	f.created = append(f.created, body)
	d := &document.Document{ID: "doc-1"}
	for _, fld := range document.TextFields {
		if v, ok := body[fld.Key].(string); ok {
			d.SetText(fld.Key, v)
		}
	}
	f.current = d
	return nil
}

func (f *fakeGateway) UpdateDocument(_ context.Context, _ string, id string, body map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return f.mutErr
	}
	if f.updated == nil {
		f.updated = map[string]map[string]any{}
	}
	f.updated[id] = body
	for k, v := range body {
		if s, ok := v.(string); ok && f.current != nil {
			f.current.SetText(k, s)
		}
	}
	return nil
}

type fakeSource struct {
	page model.BlogPage
	err  error
	post *model.Blog
}

func (f *fakeSource) ListBlogs(context.Context, int, int) (model.BlogPage, error) {
	return f.page, f.err
}

func (f *fakeSource) GetBlogBySlug(context.Context, string) (*model.Blog, error) {
	if f.post == nil {
		return nil, apiclient.ErrNotFound
	}
	return f.post, nil
}

func newBlogService(t *testing.T, src blog.Source) *blog.Service {
	t.Helper()
	s, err := blog.NewService(src, 0, nullLogger())
	require.NoError(t, err)
	return s
}
