package dto

import (
	"time"

	"github.com/spec-kit/school-service/internal/domain"
)

const attendanceDateLayout = "2006-01-02"

// AttendanceMarkRequest payload for marking attendance.
type AttendanceMarkRequest struct {
	StudentID string                  `json:"student_id"`
	ClassID   string                  `json:"class_id"`
	Date      string                  `json:"date"`
	Status    domain.AttendanceStatus `json:"status"`
}

// Validate checks the payload.
func (r AttendanceMarkRequest) Validate() []FieldViolation {
	var violations []FieldViolation
	violations = requireString(violations, "student_id", r.StudentID)
	violations = requireString(violations, "class_id", r.ClassID)
	if _, err := time.Parse(attendanceDateLayout, r.Date); err != nil {
		violations = append(violations, FieldViolation{Field: "date", Constraint: "must be YYYY-MM-DD"})
	}
	if !r.Status.Valid() {
		violations = append(violations, FieldViolation{Field: "status", Constraint: "must be one of PRESENT, ABSENT, LATE, EXCUSED"})
	}
	return violations
}

// ParsedDate returns the date field as a time value. Call Validate first.
func (r AttendanceMarkRequest) ParsedDate() time.Time {
	date, _ := time.Parse(attendanceDateLayout, r.Date)
	return date
}
