package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/repository"
)

// StudentService coordinates student enrollment and parent links.
type StudentService struct {
	users      repository.UserRepository
	students   repository.StudentRepository
	parents    repository.ParentRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewStudentService builds the service.
func NewStudentService(users repository.UserRepository, students repository.StudentRepository,
	parents repository.ParentRepository, dispatcher events.Dispatcher, bcryptCost int) *StudentService {
	return &StudentService{
		users:      users,
		students:   students,
		parents:    parents,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
	}
}

// EnrollInput carries the fields needed to enroll a new student.
type EnrollInput struct {
	Name        string
	Email       string
	Password    string
	AdmissionNo string
	ClassID     *string
}

// Enroll creates the student account and enrollment record.
func (s *StudentService) Enroll(ctx context.Context, actor events.Actor, input EnrollInput) (*domain.Student, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	student := &domain.Student{
		UserID:      user.ID,
		ClassID:     input.ClassID,
		AdmissionNo: input.AdmissionNo,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStudentEnrolled,
		EntityID:  student.ID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.StudentEnrolledPayload{
			UserID:      user.ID,
			ClassID:     student.ClassID,
			AdmissionNo: student.AdmissionNo,
		},
	})
	return student, nil
}

// Get returns one student.
func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.GetByID(ctx, id)
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// Update persists mutable student fields.
func (s *StudentService) Update(ctx context.Context, student *domain.Student) error {
	return s.students.Update(ctx, student)
}

// Delete removes the enrollment record.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}

// LinkParent ties a parent to a student. Duplicate links are rejected by the
// storage unique constraint and surface as a conflict.
func (s *StudentService) LinkParent(ctx context.Context, parentID, studentID string) (*domain.ParentStudentLink, error) {
	if _, err := s.parents.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	link := &domain.ParentStudentLink{ParentID: parentID, StudentID: studentID}
	if err := s.parents.LinkStudent(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// UnlinkParent removes a parent-student link.
func (s *StudentService) UnlinkParent(ctx context.Context, parentID, studentID string) error {
	return s.parents.UnlinkStudent(ctx, parentID, studentID)
}
