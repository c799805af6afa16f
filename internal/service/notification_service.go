package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/config"
	"github.com/spec-kit/school-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStudentEnrolled, n.handleStudentEnrolled)
	n.dispatcher.Subscribe(events.EventGradeRecorded, n.handleGradeRecorded)
	n.dispatcher.Subscribe(events.EventAttendanceMarked, n.handleAttendanceMarked)
	n.dispatcher.Subscribe(events.EventMaterialUploaded, n.handleMaterialUploaded)
}

func (n *NotificationService) handleStudentEnrolled(ctx context.Context, event events.Event) error {
	n.logger.Info("StudentEnrolled", zap.String("student_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleGradeRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("GradeRecorded", zap.String("grade_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAttendanceMarked(ctx context.Context, event events.Event) error {
	n.logger.Info("AttendanceMarked", zap.String("record_id", event.EntityID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleMaterialUploaded(ctx context.Context, event events.Event) error {
	n.logger.Info("MaterialUploaded", zap.String("material_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
