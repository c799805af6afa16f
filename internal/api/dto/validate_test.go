package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-service/internal/domain"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

func violationFields(violations []FieldViolation) []string {
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	return fields
}

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{Name: "Ada", Email: "ada@school.example.com", Password: "supersecret"}
	assert.Empty(t, req.Validate())

	bad := RegisterRequest{Email: "not-an-email", Password: "short"}
	fields := violationFields(bad.Validate())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAttendanceMarkRequestValidate(t *testing.T) {
	req := AttendanceMarkRequest{
		StudentID: "s1",
		ClassID:   "c1",
		Date:      "2026-01-15",
		Status:    domain.AttendancePresent,
	}
	assert.Empty(t, req.Validate())
	assert.Equal(t, 15, req.ParsedDate().Day())

	bad := AttendanceMarkRequest{StudentID: "s1", ClassID: "c1", Date: "15/01/2026", Status: "SLEEPING"}
	fields := violationFields(bad.Validate())
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "status")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := ValidationError([]FieldViolation{
		{Field: "email", Constraint: "required"},
		{Field: "password", Constraint: "minimum 8 characters"},
	})

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "required", domainErr.Details["email"])
	assert.Equal(t, "minimum 8 characters", domainErr.Details["password"])
}
