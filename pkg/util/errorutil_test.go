package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	orig := NewForbidden("Access denied")
	got := ToDomainError(orig)
	assert.Same(t, orig, got)
	assert.Equal(t, http.StatusForbidden, got.HTTPStatus)
}

func TestToDomainErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading user: %w", NewUnauthorized("Token expired"))
	got := ToDomainError(wrapped)
	assert.Equal(t, "UNAUTHORIZED", got.Code)
	assert.Equal(t, http.StatusUnauthorized, got.HTTPStatus)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	got := ToDomainError(fmt.Errorf("fetching student: %w", pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
}

func TestToDomainErrorMapsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "attendance_records_student_id_class_id_date_key"}
	got := ToDomainError(pgErr)
	require.Equal(t, "CONFLICT", got.Code)
	assert.Equal(t, http.StatusConflict, got.HTTPStatus)
	assert.Equal(t, "attendance_records_student_id_class_id_date_key", got.Details["constraint"])
}

func TestToDomainErrorHidesUnknownDetail(t *testing.T) {
	got := ToDomainError(errors.New("pq: connection refused at 10.0.0.4"))
	assert.Equal(t, "INTERNAL_ERROR", got.Code)
	assert.Equal(t, "internal server error", got.Message)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorErrorString(t *testing.T) {
	err := &DomainError{Message: "fetch failed", Err: errors.New("timeout")}
	assert.Equal(t, "fetch failed: timeout", err.Error())
	assert.Equal(t, "timeout", err.Unwrap().Error())
}
