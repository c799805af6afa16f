package dto

import (
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// FieldViolation names one failed constraint on a request field.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError converts violations into the operational error the
// terminal responder maps to a 400 envelope.
func ValidationError(violations []FieldViolation) error {
	details := make(map[string]any, len(violations))
	for _, v := range violations {
		details[v.Field] = v.Constraint
	}
	return apperrors.NewValidationError("validation failed", details)
}

func requireString(violations []FieldViolation, field, value string) []FieldViolation {
	if value == "" {
		violations = append(violations, FieldViolation{Field: field, Constraint: "required"})
	}
	return violations
}
