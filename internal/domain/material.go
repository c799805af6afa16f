package domain

import "time"

// Material is teaching content shared with a subject, optionally
// scoped to a single class.
type Material struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	ClassID     *string   `json:"class_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ObjectKey   string    `json:"object_key"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
