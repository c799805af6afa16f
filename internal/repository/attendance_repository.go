package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// AttendanceRepository defines persistence access for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.AttendanceRecord) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	ListByClassDate(ctx context.Context, classID string, date time.Time) ([]domain.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository returns a Postgres-backed implementation.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

// Create inserts an attendance record. The (student_id, class_id, date)
// triple carries a unique constraint; violations surface as pgconn errors.
func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	const query = `
        INSERT INTO attendance_records (student_id, class_id, date, status, recorded_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		record.StudentID,
		record.ClassID,
		record.Date,
		record.Status,
		record.RecordedBy,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM attendance_records WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	const query = `
        SELECT id, student_id, class_id, date, status, recorded_by, created_at
        FROM attendance_records WHERE id=$1`

	var record domain.AttendanceRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.StudentID,
		&record.ClassID,
		&record.Date,
		&record.Status,
		&record.RecordedBy,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) ListByClassDate(ctx context.Context, classID string, date time.Time) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT id, student_id, class_id, date, status, recorded_by, created_at
        FROM attendance_records WHERE class_id=$1 AND date=$2
        ORDER BY created_at`

	return r.list(ctx, query, classID, date)
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT id, student_id, class_id, date, status, recorded_by, created_at
        FROM attendance_records WHERE student_id=$1
        ORDER BY date DESC`

	return r.list(ctx, query, studentID)
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...any) ([]domain.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var record domain.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.ClassID,
			&record.Date,
			&record.Status,
			&record.RecordedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
