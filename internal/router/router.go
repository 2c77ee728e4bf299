// Package router initializes the HTTP router using echo.
//
// It registers the middlewares and maps the API routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/handler"
	"github.com/lightbnb/lightbnb/internal/middleware"
)

// New builds the echo router with all middleware and routes registered.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Global.CORS())

	registerSystemRoutes(r, h)

	// session endpoints
	r.POST("/users", h.Users.SignUp)
	r.POST("/login", h.Users.Login)
	r.POST("/logout", h.Users.Logout)
	r.GET("/users/me", h.Users.Me, m.Auth.RequireSession)

	// api endpoints
	api := r.Group("/api")
	api.GET("/properties", h.Properties.Search)
	api.POST("/properties", h.Properties.Create, m.Auth.RequireSession)
	api.GET("/reservations", h.Reservations.List, m.Auth.RequireSession)

	return r
}
