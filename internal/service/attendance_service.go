package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/repository"
)

// AttendanceService marks and serves attendance records.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	students   repository.StudentRepository
	classes    repository.ClassRepository
	dispatcher events.Dispatcher
}

// NewAttendanceService builds the service.
func NewAttendanceService(attendance repository.AttendanceRepository, students repository.StudentRepository,
	classes repository.ClassRepository, dispatcher events.Dispatcher) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		students:   students,
		classes:    classes,
		dispatcher: dispatcher,
	}
}

// Mark validates referenced entities and persists one attendance record.
// A second record for the same (student, class, date) violates the storage
// unique constraint and surfaces as a conflict.
func (s *AttendanceService) Mark(ctx context.Context, actor events.Actor, record *domain.AttendanceRecord) error {
	if _, err := s.students.GetByID(ctx, record.StudentID); err != nil {
		return err
	}
	if _, err := s.classes.GetByID(ctx, record.ClassID); err != nil {
		return err
	}

	record.RecordedBy = actor.UserID
	if err := s.attendance.Create(ctx, record); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAttendanceMarked,
		EntityID:  record.ID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.AttendanceMarkedPayload{
			StudentID: record.StudentID,
			ClassID:   record.ClassID,
			Date:      record.Date.Format("2006-01-02"),
			Status:    record.Status,
		},
	})
	return nil
}

// ListByClassDate returns the attendance of a class on a date.
func (s *AttendanceService) ListByClassDate(ctx context.Context, classID string, date time.Time) ([]domain.AttendanceRecord, error) {
	return s.attendance.ListByClassDate(ctx, classID, date)
}

// ListByStudent returns a student's attendance history.
func (s *AttendanceService) ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error) {
	return s.attendance.ListByStudent(ctx, studentID)
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.attendance.Delete(ctx, id)
}
