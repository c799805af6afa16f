package domain

import "time"

// Student links an account to an enrollment record.
type Student struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClassID     *string   `json:"class_id,omitempty"`
	AdmissionNo string    `json:"admission_no"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
