package domain

import "time"

// Grade is a score recorded for a student in a subject for a term.
type Grade struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	SubjectID  string    `json:"subject_id"`
	Term       string    `json:"term"`
	Score      float64   `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	RecordedBy string    `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
