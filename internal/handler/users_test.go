package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/auth"
	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

func testServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    config.AuthConfig{SecretKey: "test-secret"},
		},
		Logger: &log,
	}
}

func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

var userColumns = []string{"id", "name", "email", "password"}

func TestSignUp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.com", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(5), "Alice", "alice@example.com", "$2a$10$stored"))

	h := NewUserHandler(testServer(), repository.NewUserRepository(mock))
	c, rec := jsonContext(t, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2secret"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice@example.com", body["email"])
	// the password hash never leaves the server
	assert.NotContains(t, body, "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpValidation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	h := NewUserHandler(testServer(), repository.NewUserRepository(mock))
	c, _ := jsonContext(t, http.MethodPost, "/users",
		`{"name":"","email":"nope","password":"short"}`)

	err = h.SignUp(c)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Len(t, httpErr.Errors, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hash, err := auth.HashPassword("hunter2secret")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(5), "Alice", "alice@example.com", hash))

	h := NewUserHandler(testServer(), repository.NewUserRepository(mock))
	c, rec := jsonContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"hunter2secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	claims, err := auth.ValidateToken("test-secret", cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hash, err := auth.HashPassword("hunter2secret")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(5), "Alice", "alice@example.com", hash))

	h := NewUserHandler(testServer(), repository.NewUserRepository(mock))
	c, _ := jsonContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err = h.Login(c)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestLoginUnknownEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	h := NewUserHandler(testServer(), repository.NewUserRepository(mock))
	c, _ := jsonContext(t, http.MethodPost, "/login",
		`{"email":"nobody@example.com","password":"whatever"}`)

	err = h.Login(c)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	// same response as a wrong password, no account enumeration
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestLogout(t *testing.T) {
	h := NewUserHandler(testServer(), nil)
	c, rec := jsonContext(t, http.MethodPost, "/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
