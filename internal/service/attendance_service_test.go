package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/repository"
)

type fakeAttendanceRepo struct {
	created   []*domain.AttendanceRecord
	createErr error
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record *domain.AttendanceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	record.ID = "att-1"
	f.created = append(f.created, record)
	return nil
}

func (f *fakeAttendanceRepo) Delete(context.Context, string) error { return nil }

func (f *fakeAttendanceRepo) GetByID(context.Context, string) (*domain.AttendanceRecord, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeAttendanceRepo) ListByClassDate(context.Context, string, time.Time) ([]domain.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByStudent(context.Context, string) ([]domain.AttendanceRecord, error) {
	return nil, nil
}

type fakeStudentRepo struct {
	students map[string]*domain.Student
}

func (f *fakeStudentRepo) Create(context.Context, *domain.Student) error { return nil }
func (f *fakeStudentRepo) Update(context.Context, *domain.Student) error { return nil }
func (f *fakeStudentRepo) Delete(context.Context, string) error          { return nil }

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (*domain.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return student, nil
}

func (f *fakeStudentRepo) GetByUserID(context.Context, string) (*domain.Student, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentRepo) List(context.Context) ([]domain.Student, error) { return nil, nil }

func (f *fakeStudentRepo) ListByClass(context.Context, string) ([]repository.RosterEntry, error) {
	return nil, nil
}

type fakeClassRepo struct {
	classes map[string]*domain.Class
}

func (f *fakeClassRepo) Create(context.Context, *domain.Class) error { return nil }
func (f *fakeClassRepo) Update(context.Context, *domain.Class) error { return nil }
func (f *fakeClassRepo) Delete(context.Context, string) error        { return nil }

func (f *fakeClassRepo) GetByID(_ context.Context, id string) (*domain.Class, error) {
	class, ok := f.classes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return class, nil
}

func (f *fakeClassRepo) List(context.Context) ([]domain.Class, error) { return nil, nil }

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newAttendanceFixture() (*AttendanceService, *fakeAttendanceRepo, *recordingDispatcher) {
	attendance := &fakeAttendanceRepo{}
	students := &fakeStudentRepo{students: map[string]*domain.Student{
		"s1": {ID: "s1", UserID: "u-s1", AdmissionNo: "ADM-001"},
	}}
	classes := &fakeClassRepo{classes: map[string]*domain.Class{
		"c1": {ID: "c1", Name: "7B", GradeLevel: 7},
	}}
	dispatcher := &recordingDispatcher{}
	return NewAttendanceService(attendance, students, classes, dispatcher), attendance, dispatcher
}

func TestAttendanceMarkPublishesEvent(t *testing.T) {
	svc, repo, dispatcher := newAttendanceFixture()

	record := &domain.AttendanceRecord{
		StudentID: "s1",
		ClassID:   "c1",
		Date:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.AttendanceLate,
	}
	actor := events.Actor{UserID: "teacher-1", Role: domain.RoleTeacher}
	require.NoError(t, svc.Mark(context.Background(), actor, record))

	require.Len(t, repo.created, 1)
	assert.Equal(t, "teacher-1", repo.created[0].RecordedBy)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventAttendanceMarked, event.Type)
	assert.Equal(t, "att-1", event.EntityID)
	assert.Equal(t, actor, event.Actor)

	payload, ok := event.Payload.(events.AttendanceMarkedPayload)
	require.True(t, ok)
	assert.Equal(t, "2026-01-15", payload.Date)
	assert.Equal(t, domain.AttendanceLate, payload.Status)
}

func TestAttendanceMarkUnknownStudent(t *testing.T) {
	svc, repo, dispatcher := newAttendanceFixture()

	record := &domain.AttendanceRecord{StudentID: "missing", ClassID: "c1", Status: domain.AttendancePresent}
	err := svc.Mark(context.Background(), events.Actor{UserID: "teacher-1"}, record)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Empty(t, repo.created)
	assert.Empty(t, dispatcher.published)
}

func TestAttendanceMarkUnknownClass(t *testing.T) {
	svc, _, dispatcher := newAttendanceFixture()

	record := &domain.AttendanceRecord{StudentID: "s1", ClassID: "missing", Status: domain.AttendancePresent}
	err := svc.Mark(context.Background(), events.Actor{UserID: "teacher-1"}, record)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Empty(t, dispatcher.published)
}

func TestAttendanceMarkDuplicateSurfacesConflict(t *testing.T) {
	svc, repo, dispatcher := newAttendanceFixture()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "attendance_records_student_id_class_id_date_key"}

	record := &domain.AttendanceRecord{
		StudentID: "s1",
		ClassID:   "c1",
		Date:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.AttendancePresent,
	}
	err := svc.Mark(context.Background(), events.Actor{UserID: "teacher-1"}, record)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.Empty(t, dispatcher.published)
}
