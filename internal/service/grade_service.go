package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/repository"
)

// GradeService records and serves grades.
type GradeService struct {
	grades     repository.GradeRepository
	students   repository.StudentRepository
	subjects   repository.SubjectRepository
	dispatcher events.Dispatcher
}

// NewGradeService builds the service.
func NewGradeService(grades repository.GradeRepository, students repository.StudentRepository,
	subjects repository.SubjectRepository, dispatcher events.Dispatcher) *GradeService {
	return &GradeService{
		grades:     grades,
		students:   students,
		subjects:   subjects,
		dispatcher: dispatcher,
	}
}

// Record validates referenced entities and persists a grade.
func (s *GradeService) Record(ctx context.Context, actor events.Actor, grade *domain.Grade) error {
	if _, err := s.students.GetByID(ctx, grade.StudentID); err != nil {
		return err
	}
	if _, err := s.subjects.GetByID(ctx, grade.SubjectID); err != nil {
		return err
	}

	grade.RecordedBy = actor.UserID
	if err := s.grades.Create(ctx, grade); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventGradeRecorded,
		EntityID:  grade.ID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.GradeRecordedPayload{
			StudentID: grade.StudentID,
			SubjectID: grade.SubjectID,
			Term:      grade.Term,
			Score:     grade.Score,
		},
	})
	return nil
}

// Get returns one grade.
func (s *GradeService) Get(ctx context.Context, id string) (*domain.Grade, error) {
	return s.grades.GetByID(ctx, id)
}

// ListByStudent returns all grades for a student.
func (s *GradeService) ListByStudent(ctx context.Context, studentID string) ([]domain.Grade, error) {
	return s.grades.ListByStudent(ctx, studentID)
}

// ListBySubject returns all grades for a subject and term.
func (s *GradeService) ListBySubject(ctx context.Context, subjectID, term string) ([]domain.Grade, error) {
	return s.grades.ListBySubject(ctx, subjectID, term)
}

// Update persists score and comment changes.
func (s *GradeService) Update(ctx context.Context, grade *domain.Grade) error {
	return s.grades.Update(ctx, grade)
}

// Delete removes a grade.
func (s *GradeService) Delete(ctx context.Context, id string) error {
	return s.grades.Delete(ctx, id)
}
