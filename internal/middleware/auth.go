package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/auth"
	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/server"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "lightbnb_session"

	// UserIDKey is the echo context key holding the authenticated user id.
	UserIDKey = "user_id"
)

// AuthMiddleware guards routes behind a valid session cookie.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// RequireSession rejects requests without a valid session cookie and stores
// the authenticated user id in context for handlers to read.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return errs.NewUnauthorizedError("Authentication required", false)
		}

		claims, err := auth.ValidateToken(m.server.Config.Auth.SecretKey, cookie.Value)
		if err != nil {
			m.server.Logger.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("invalid session token")
			return errs.NewUnauthorizedError("Invalid or expired session", false)
		}

		c.Set(UserIDKey, claims.UserID)

		return next(c)
	}
}

// GetUserID retrieves the authenticated user id from context. ok is false
// when the request carried no valid session.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(UserIDKey).(int64)
	return userID, ok
}

// NewSessionCookie builds the session cookie for a freshly minted token.
func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
