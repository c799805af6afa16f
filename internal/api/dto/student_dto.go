package dto

import "strings"

// StudentEnrollRequest payload for enrolling a new student.
type StudentEnrollRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	AdmissionNo string  `json:"admission_no"`
	ClassID     *string `json:"class_id,omitempty"`
}

// Validate checks the payload.
func (r StudentEnrollRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	violations = requireString(violations, "email", r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		violations = append(violations, FieldViolation{Field: "email", Constraint: "must be an email address"})
	}
	if len(r.Password) < 8 {
		violations = append(violations, FieldViolation{Field: "password", Constraint: "minimum 8 characters"})
	}
	violations = requireString(violations, "admission_no", r.AdmissionNo)
	return violations
}

// StudentUpdateRequest payload for student updates.
type StudentUpdateRequest struct {
	AdmissionNo string  `json:"admission_no"`
	ClassID     *string `json:"class_id,omitempty"`
}

// Validate checks the payload.
func (r StudentUpdateRequest) Validate() []FieldViolation {
	return requireString(nil, "admission_no", r.AdmissionNo)
}

// ParentLinkRequest ties a parent to a student.
type ParentLinkRequest struct {
	ParentID string `json:"parent_id"`
}

// Validate checks the payload.
func (r ParentLinkRequest) Validate() []FieldViolation {
	return requireString(nil, "parent_id", r.ParentID)
}

// ParentCreateRequest payload for registering a guardian.
type ParentCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Validate checks the payload.
func (r ParentCreateRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	violations = requireString(violations, "email", r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		violations = append(violations, FieldViolation{Field: "email", Constraint: "must be an email address"})
	}
	if len(r.Password) < 8 {
		violations = append(violations, FieldViolation{Field: "password", Constraint: "minimum 8 characters"})
	}
	violations = requireString(violations, "phone", r.Phone)
	return violations
}

// TeacherCreateRequest payload for registering teaching staff.
type TeacherCreateRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	SubjectID *string `json:"subject_id,omitempty"`
}

// Validate checks the payload.
func (r TeacherCreateRequest) Validate() []FieldViolation {
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
