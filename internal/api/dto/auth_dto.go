package dto

import (
	"strings"
	"time"
)

// RegisterRequest payload for self-service registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the payload.
func (r RegisterRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	violations = requireString(violations, "email", r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		violations = append(violations, FieldViolation{Field: "email", Constraint: "must be an email address"})
	}
	if len(r.Password) < 8 {
		violations = append(violations, FieldViolation{Field: "password", Constraint: "minimum 8 characters"})
	}
	return violations
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the payload.
func (r LoginRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "email", r.Email)
	violations = requireString(violations, "password", r.Password)
	return violations
}

// PasswordResetRequest asks for a reset token by email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Validate checks the payload.
func (r PasswordResetRequest) Validate() []FieldViolation {
	return requireString(nil, "email", r.Email)
}

// PasswordResetConfirm redeems a reset token.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Validate checks the payload.
func (r PasswordResetConfirm) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "token", r.Token)
	if len(r.NewPassword) < 8 {
		violations = append(violations, FieldViolation{Field: "new_password", Constraint: "minimum 8 characters"})
	}
	return violations
}

// PasswordChangeRequest changes the caller's own password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate checks the payload.
func (r PasswordChangeRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "current_password", r.CurrentPassword)
	if len(r.NewPassword) < 8 {
		violations = append(violations, FieldViolation{Field: "new_password", Constraint: "minimum 8 characters"})
	}
	return violations
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
