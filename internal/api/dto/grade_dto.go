package dto

// GradeRequest payload for recording a grade.
type GradeRequest struct {
	StudentID string  `json:"student_id"`
	SubjectID string  `json:"subject_id"`
	Term      string  `json:"term"`
	Score     float64 `json:"score"`
	Comment   string  `json:"comment,omitempty"`
}

// Validate checks the payload.
func (r GradeRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "student_id", r.StudentID)
	violations = requireString(violations, "subject_id", r.SubjectID)
	violations = requireString(violations, "term", r.Term)
	if r.Score < 0 || r.Score > 100 {
		violations = append(violations, FieldViolation{Field: "score", Constraint: "must be between 0 and 100"})
	}
	return violations
}

// GradeUpdateRequest payload for correcting a grade.
type GradeUpdateRequest struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment,omitempty"`
}

// Validate checks the payload.
func (r GradeUpdateRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	if r.Score < 0 || r.Score > 100 {
		violations = append(violations, FieldViolation{Field: "score", Constraint: "must be between 0 and 100"})
	}
	return violations
}
