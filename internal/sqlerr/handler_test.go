package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, InvalidInput, MapCode("22P02"))
	assert.Equal(t, Other, MapCode("42601"))
	assert.Equal(t, Other, MapCode(""))
}

func TestErrCode(t *testing.T) {
	pgerr := &pgconn.PgError{Code: "23505", TableName: "users"}

	assert.Equal(t, UniqueViolation, ErrCode(pgerr))
	// wrapped driver errors still classify
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("creating user: %w", pgerr)))
	// converted errors classify through their own chain
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgerr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
	assert.Equal(t, Other, ErrCode(nil))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "users",
		ConstraintName: "users_email_key",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		TableName:  "properties",
		ColumnName: "owner_id",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "PROPERTIE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "users",
		ColumnName: "email",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("connection refused"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 500, httpErr.Status)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewUnauthorizedError("nope", false)
	assert.Same(t, original, HandleError(original))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
