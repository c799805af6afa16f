package domain

import "time"

// Teacher is the staff record for a teaching account.
type Teacher struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SubjectID *string   `json:"subject_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
