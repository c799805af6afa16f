package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-service/internal/domain"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var first, second []Event
	dispatcher.Subscribe(EventGradeRecorded, func(_ context.Context, e Event) error {
		first = append(first, e)
		return nil
	})
	dispatcher.Subscribe(EventGradeRecorded, func(_ context.Context, e Event) error {
		second = append(second, e)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventGradeRecorded,
		EntityID:  "grade-1",
		Actor:     Actor{UserID: "u1", Role: domain.RoleTeacher},
		Timestamp: time.Now(),
		Payload:   GradeRecordedPayload{StudentID: "s1", SubjectID: "sub1", Term: "2026-T1", Score: 87.5},
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "evt-1", first[0].ID)
	assert.Equal(t, event.Payload, second[0].Payload)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventAttendanceMarked, func(context.Context, Event) error {
		return errors.New("mail server down")
	})
	delivered := false
	dispatcher.Subscribe(EventAttendanceMarked, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventAttendanceMarked})
	assert.NoError(t, err)
	assert.True(t, delivered)
}

func TestDispatcherIgnoresUnsubscribedType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventStudentEnrolled, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventMaterialUploaded}))
	assert.False(t, called)
}
