package dto

// MaterialUploadRequest payload for registering teaching material.
type MaterialUploadRequest struct {
	SubjectID   string  `json:"subject_id"`
	ClassID     *string `json:"class_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
}

// Validate checks the payload.
func (r MaterialUploadRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "subject_id", r.SubjectID)
	violations = requireString(violations, "title", r.Title)
	return violations
}

// MaterialUpdateRequest payload for editing material metadata.
type MaterialUpdateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ClassID     *string `json:"class_id,omitempty"`
}

// Validate checks the payload.
func (r MaterialUpdateRequest) Validate() []FieldViolation {
	return requireString(nil, "title", r.Title)
}
