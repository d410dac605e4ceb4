package router

import "github.com/labstack/echo/v4"

// registerAuth mounts register, login and logout. Form posts are rate
// limited; logout is not, so a user can always sign out.
func registerAuth(g *echo.Group, d Deps) {
	g.GET("/register", d.Auth.ShowRegister)
	g.POST("/register", d.Auth.Register, d.RateLimit)
	g.GET("/login", d.Auth.ShowLogin)
	g.POST("/login", d.Auth.Login, d.RateLimit)
	g.POST("/logout", d.Auth.Logout)
}
