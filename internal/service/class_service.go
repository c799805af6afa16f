package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/persistence"
	"github.com/spec-kit/school-service/internal/repository"
)

const rosterCacheTTL = 5 * time.Minute

// ClassService coordinates classes, subjects and class rosters.
type ClassService struct {
	classes  repository.ClassRepository
	subjects repository.SubjectRepository
	students repository.StudentRepository
	cache    *persistence.Redis
	logger   *zap.Logger
}

// NewClassService builds the service.
func NewClassService(classes repository.ClassRepository, subjects repository.SubjectRepository,
	students repository.StudentRepository, cache *persistence.Redis, logger *zap.Logger) *ClassService {
	return &ClassService{
		classes:  classes,
		subjects: subjects,
		students: students,
		cache:    cache,
		logger:   logger,
	}
}

// CreateClass persists a new class.
func (s *ClassService) CreateClass(ctx context.Context, class *domain.Class) error {
	return s.classes.Create(ctx, class)
}

// GetClass returns one class.
func (s *ClassService) GetClass(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.GetByID(ctx, id)
}

// ListClasses returns all classes.
func (s *ClassService) ListClasses(ctx context.Context) ([]domain.Class, error) {
	return s.classes.List(ctx)
}

// UpdateClass persists class changes.
func (s *ClassService) UpdateClass(ctx context.Context, class *domain.Class) error {
	if err := s.classes.Update(ctx, class); err != nil {
		return err
	}
	s.invalidateRoster(ctx, class.ID)
	return nil
}

// DeleteClass removes a class.
func (s *ClassService) DeleteClass(ctx context.Context, id string) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateRoster(ctx, id)
	return nil
}

// Roster lists the students of a class, served from the Redis cache when
// warm. Cache failures degrade to a direct database read.
func (s *ClassService) Roster(ctx context.Context, classID string) ([]repository.RosterEntry, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, err
	}

	key := rosterKey(classID)
	if s.cache != nil && s.cache.Client != nil {
		if raw, err := s.cache.Client.Get(ctx, key).Bytes(); err == nil {
			var entries []repository.RosterEntry
			if err := json.Unmarshal(raw, &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.students.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cache.Client != nil {
		if raw, err := json.Marshal(entries); err == nil {
			if err := s.cache.Client.Set(ctx, key, raw, rosterCacheTTL).Err(); err != nil {
				s.logger.Warn("roster cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// AssignStudent moves a student into a class and invalidates the cached
// rosters of both the old and new class.
func (s *ClassService) AssignStudent(ctx context.Context, studentID, classID string) error {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return err
	}
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if student.ClassID != nil {
		s.invalidateRoster(ctx, *student.ClassID)
	}
	student.ClassID = &classID
	if err := s.students.Update(ctx, student); err != nil {
		return err
	}
	s.invalidateRoster(ctx, classID)
	return nil
}

// CreateSubject persists a new subject; duplicate codes surface as conflicts.
func (s *ClassService) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	return s.subjects.Create(ctx, subject)
}

// GetSubject returns one subject.
func (s *ClassService) GetSubject(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

// ListSubjects returns all subjects.
func (s *ClassService) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	return s.subjects.List(ctx)
}

// UpdateSubject persists subject changes.
func (s *ClassService) UpdateSubject(ctx context.Context, subject *domain.Subject) error {
	return s.subjects.Update(ctx, subject)
}

// DeleteSubject removes a subject.
func (s *ClassService) DeleteSubject(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}

func (s *ClassService) invalidateRoster(ctx context.Context, classID string) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, rosterKey(classID)).Err(); err != nil {
		s.logger.Warn("roster cache invalidation failed", zap.String("class_id", classID), zap.Error(err))
	}
}

func rosterKey(classID string) string {
	return fmt.Sprintf("class:roster:%s", classID)
}
