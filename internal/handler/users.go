package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/auth"
	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/validation"
)

// UserHandler serves signup, login, and session endpoints.
type UserHandler struct {
	server *server.Server
	users  *repository.UserRepository
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *repository.UserRepository) *UserHandler {
	return &UserHandler{server: s, users: users}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp registers a new user and opens a session for them. A duplicate
// email surfaces as a 400 with code USER_ALREADY_EXISTS via the global
// error handler.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewBadRequestError("Invalid request body", false, nil, nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), repository.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(h.server.Config.Auth.SecretKey, user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.NewSessionCookie(token))

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and opens a session. The response for a bad
// email and a bad password is identical so the endpoint does not leak which
// accounts exist.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewBadRequestError("Invalid request body", false, nil, nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, err := h.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		return errs.NewUnauthorizedError("Invalid email or password", true)
	}

	token, err := auth.GenerateToken(h.server.Config.Auth.SecretKey, user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.NewSessionCookie(token))

	return c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(middleware.ExpiredSessionCookie())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the currently authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errs.NewUnauthorizedError("Authentication required", false)
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NewNotFoundError("User not found", false, nil)
	}

	return c.JSON(http.StatusOK, user)
}
