package domain

import "time"

// Parent is the guardian record for a parent account.
type Parent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParentStudentLink ties a parent to one of their children.
// The pair (ParentID, StudentID) is unique in storage.
type ParentStudentLink struct {
	ParentID  string    `json:"parent_id"`
	StudentID string    `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
}
