package domain

import "time"

// AttendanceStatus enumerates the recordable attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether the status is one of the known values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord marks a student's presence in a class on a date.
// The triple (StudentID, ClassID, Date) is unique in storage.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"student_id"`
	ClassID    string           `json:"class_id"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	RecordedBy string           `json:"recorded_by"`
	CreatedAt  time.Time        `json:"created_at"`
}
