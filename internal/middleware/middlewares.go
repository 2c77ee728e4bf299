// Package middleware contains the HTTP middleware: request correlation,
// session authentication, request logging, and the global error handler.
package middleware

import (
	"github.com/lightbnb/lightbnb/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives one wired object.
type Middlewares struct {
	// Global holds middleware applied to every route: CORS, request
	// logging, recovery, and the global error handler.
	Global *GlobalMiddlewares

	// Auth provides the session-cookie authentication guard.
	Auth *AuthMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global: NewGlobalMiddlewares(s),
		Auth:   NewAuthMiddleware(s),
	}
}
