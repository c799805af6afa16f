package dto

// ClassRequest payload for creating or updating a class.
type ClassRequest struct {
	Name              string  `json:"name"`
	GradeLevel        int     `json:"grade_level"`
	HomeroomTeacherID *string `json:"homeroom_teacher_id,omitempty"`
}

// Validate checks the payload.
func (r ClassRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	if r.GradeLevel < 1 || r.GradeLevel > 13 {
		violations = append(violations, FieldViolation{Field: "grade_level", Constraint: "must be between 1 and 13"})
	}
	return violations
}

// ClassAssignRequest moves a student into a class.
type ClassAssignRequest struct {
	StudentID string `json:"student_id"`
}

// Validate checks the payload.
func (r ClassAssignRequest) Validate() []FieldViolation {
	return requireString(nil, "student_id", r.StudentID)
}

// SubjectRequest payload for creating or updating a subject.
type SubjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Validate checks the payload.
func (r SubjectRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "name", r.Name)
	violations = requireString(violations, "code", r.Code)
	return violations
}
