package service

import (
	"context"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/repository"
)

// DirectoryService manages teacher and parent records and the accounts
// behind them.
type DirectoryService struct {
	users      repository.UserRepository
	teachers   repository.TeacherRepository
	parents    repository.ParentRepository
	bcryptCost int
}

// NewDirectoryService builds the service.
func NewDirectoryService(users repository.UserRepository, teachers repository.TeacherRepository,
	parents repository.ParentRepository, bcryptCost int) *DirectoryService {
	return &DirectoryService{
		users:      users,
		teachers:   teachers,
		parents:    parents,
		bcryptCost: bcryptCost,
	}
}

// CreateTeacher creates the teaching account and staff record.
func (s *DirectoryService) CreateTeacher(ctx context.Context, name, email, password string, subjectID *string) (*domain.Teacher, error) {
	user, err := s.createAccount(ctx, name, email, password, domain.RoleTeacher)
	if err != nil {
		return nil, err
	}

	teacher := &domain.Teacher{UserID: user.ID, SubjectID: subjectID}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// GetTeacher returns one teacher.
func (s *DirectoryService) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

// ListTeachers returns all teachers.
func (s *DirectoryService) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.teachers.List(ctx)
}

// UpdateTeacher persists teacher changes.
func (s *DirectoryService) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return s.teachers.Update(ctx, teacher)
}

// DeleteTeacher removes the staff record.
func (s *DirectoryService) DeleteTeacher(ctx context.Context, id string) error {
	return s.teachers.Delete(ctx, id)
}

// CreateParent creates the guardian account and record.
func (s *DirectoryService) CreateParent(ctx context.Context, name, email, password, phone string) (*domain.Parent, error) {
	user, err := s.createAccount(ctx, name, email, password, domain.RoleParent)
	if err != nil {
		return nil, err
	}

	parent := &domain.Parent{UserID: user.ID, Phone: phone}
	if err := s.parents.Create(ctx, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

// GetParent returns one parent.
func (s *DirectoryService) GetParent(ctx context.Context, id string) (*domain.Parent, error) {
	return s.parents.GetByID(ctx, id)
}

// ListParents returns all parents.
func (s *DirectoryService) ListParents(ctx context.Context) ([]domain.Parent, error) {
	return s.parents.List(ctx)
}

// UpdateParent persists parent changes.
func (s *DirectoryService) UpdateParent(ctx context.Context, parent *domain.Parent) error {
	return s.parents.Update(ctx, parent)
}

// DeleteParent removes the guardian record.
func (s *DirectoryService) DeleteParent(ctx context.Context, id string) error {
	return s.parents.Delete(ctx, id)
}

// ParentStudentIDs returns the student ids linked to a parent.
func (s *DirectoryService) ParentStudentIDs(ctx context.Context, parentID string) ([]string, error) {
	if _, err := s.parents.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.parents.ListStudentIDs(ctx, parentID)
}

func (s *DirectoryService) createAccount(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
