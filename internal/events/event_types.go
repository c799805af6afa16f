package events

import (
	"time"

	"github.com/spec-kit/school-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStudentEnrolled  EventType = "student_enrolled"
	EventGradeRecorded    EventType = "grade_recorded"
	EventAttendanceMarked EventType = "attendance_marked"
	EventMaterialUploaded EventType = "material_uploaded"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StudentEnrolledPayload payload.
type StudentEnrolledPayload struct {
	UserID      string  `json:"user_id"`
	ClassID     *string `json:"class_id,omitempty"`
	AdmissionNo string  `json:"admission_no"`
}

// GradeRecordedPayload payload.
type GradeRecordedPayload struct {
	StudentID string  `json:"student_id"`
	SubjectID string  `json:"subject_id"`
	Term      string  `json:"term"`
	Score     float64 `json:"score"`
}

// AttendanceMarkedPayload payload.
type AttendanceMarkedPayload struct {
	StudentID string                  `json:"student_id"`
	ClassID   string                  `json:"class_id"`
	Date      string                  `json:"date"`
	Status    domain.AttendanceStatus `json:"status"`
}

// MaterialUploadedPayload payload.
type MaterialUploadedPayload struct {
	SubjectID string  `json:"subject_id"`
	ClassID   *string `json:"class_id,omitempty"`
	Title     string  `json:"title"`
}
