package dto

import (
	"strings"

	"github.com/spec-kit/school-service/internal/domain"
)

// UserCreateRequest payload for admin-created accounts.
type UserCreateRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Validate checks the payload.
func (r UserCreateRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	violations = requireString(violations, "email", r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		violations = append(violations, FieldViolation{Field: "email", Constraint: "must be an email address"})
	}
	if len(r.Password) < 8 {
		violations = append(violations, FieldViolation{Field: "password", Constraint: "minimum 8 characters"})
	}
	if !r.Role.Valid() {
		violations = append(violations, FieldViolation{Field: "role", Constraint: "must be one of ADMIN, TEACHER, STUDENT, PARENT, STAFF"})
	}
	return violations
}

// UserUpdateRequest payload for account updates.
type UserUpdateRequest struct {
	Name   string            `json:"name"`
	Status domain.UserStatus `json:"status"`
}

// Validate checks the payload.
func (r UserUpdateRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	if r.Status != domain.UserStatusActive && r.Status != domain.UserStatusSuspended {
		violations = append(violations, FieldViolation{Field: "status", Constraint: "must be ACTIVE or SUSPENDED"})
	}
	return violations
}

// UserResponse is the wire shape for accounts.
type UserResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// NewUserResponse maps a domain user onto the wire shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
