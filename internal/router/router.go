package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/handler"
	"github.com/iliyamo/register-my-marriage/internal/metrics"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

// Deps bundles the handlers and middleware the routes are wired with. The
// Cache and RateLimit middleware may be pass-through when Redis is absent.
type Deps struct {
	Site    *handler.SiteHandler
	Auth    *handler.AuthHandler
	Contact *handler.ContactHandler
	Account *handler.AccountHandler
	Health  *handler.HealthHandler

	// Session binds the browser's session store; it runs on page routes
	// only, never on probes or assets.
	Session     []echo.MiddlewareFunc
	Cache       echo.MiddlewareFunc
	RateLimit   echo.MiddlewareFunc
	MetricsPath string
}

// RegisterRoutes mounts every route on e.
func RegisterRoutes(e *echo.Echo, d Deps) {
	if d.Cache == nil {
		d.Cache = passThrough
	}
	if d.RateLimit == nil {
		d.RateLimit = passThrough
	}
	registerOps(e, d)

	e.GET("/", d.Site.Picker, chain(d.Session, d.Cache)...)

	// tenant resolution runs before the session so unknown tenants are a
	// bare 404
	tenant := e.Group("/:tenant", chain([]echo.MiddlewareFunc{middleware.ResolveTenant()}, d.Session...)...)
	registerSite(tenant, d)
	registerAuth(tenant, d)
	registerContact(tenant, d)
	registerAccount(tenant, d)
}

// registerOps exposes the probe, the metrics endpoint and embedded assets.
func registerOps(e *echo.Echo, d Deps) {
	e.GET("/healthz", d.Health.Health)
	path := d.MetricsPath
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, metrics.Handler())
	e.StaticFS("/static", view.Static())
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

func chain(head []echo.MiddlewareFunc, tail ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
