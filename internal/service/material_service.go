package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/repository"
)

// MaterialService manages teaching material metadata.
type MaterialService struct {
	materials  repository.MaterialRepository
	subjects   repository.SubjectRepository
	dispatcher events.Dispatcher
}

// NewMaterialService builds the service.
func NewMaterialService(materials repository.MaterialRepository, subjects repository.SubjectRepository,
	dispatcher events.Dispatcher) *MaterialService {
	return &MaterialService{
		materials:  materials,
		subjects:   subjects,
		dispatcher: dispatcher,
	}
}

// Upload registers a material under a fresh storage key.
func (s *MaterialService) Upload(ctx context.Context, actor events.Actor, material *domain.Material) error {
	if _, err := s.subjects.GetByID(ctx, material.SubjectID); err != nil {
		return err
	}

	material.ObjectKey = uuid.NewString()
	material.UploadedBy = actor.UserID
	if err := s.materials.Create(ctx, material); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventMaterialUploaded,
		EntityID:  material.ID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.MaterialUploadedPayload{
			SubjectID: material.SubjectID,
			ClassID:   material.ClassID,
			Title:     material.Title,
		},
	})
	return nil
}

// Get returns one material.
func (s *MaterialService) Get(ctx context.Context, id string) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

// ListBySubject returns all materials of a subject.
func (s *MaterialService) ListBySubject(ctx context.Context, subjectID string) ([]domain.Material, error) {
	return s.materials.ListBySubject(ctx, subjectID)
}

// Update persists title, description and class scope changes.
func (s *MaterialService) Update(ctx context.Context, material *domain.Material) error {
	return s.materials.Update(ctx, material)
}

// Delete removes a material.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	return s.materials.Delete(ctx, id)
}
