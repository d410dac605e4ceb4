package router

import "github.com/labstack/echo/v4"

// registerSite mounts the marketing pages. Anonymous views are served from
// the page cache.
func registerSite(g *echo.Group, d Deps) {
	g.GET("", d.Site.Home, d.Cache)
	g.GET("/blog", d.Site.BlogList, d.Cache)
	g.GET("/blog/:slug", d.Site.BlogPost, d.Cache)
}

func registerContact(g *echo.Group, d Deps) {
	g.GET("/contact", d.Contact.ShowContact)
	g.POST("/contact", d.Contact.Contact, d.RateLimit)
}
