package domain

import "time"

// Class groups students under a grade level and an optional homeroom teacher.
type Class struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	GradeLevel        int       `json:"grade_level"`
	HomeroomTeacherID *string   `json:"homeroom_teacher_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
