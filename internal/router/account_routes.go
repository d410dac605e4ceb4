package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/middleware"
)

// registerAccount mounts the signed-in pages. Logged-out browsers are sent
// to the tenant's login page.
func registerAccount(g *echo.Group, d Deps) {
	a := g.Group("/account", middleware.RequireLogin())
	a.GET("", d.Account.Account)
	a.POST("/document", d.Account.SubmitDocument, d.RateLimit)
}
