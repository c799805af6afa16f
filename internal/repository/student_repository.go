package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// RosterEntry is a student row joined with its account for class listings.
type RosterEntry struct {
	StudentID   string `json:"student_id"`
	AdmissionNo string `json:"admission_no"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// StudentRepository defines persistence access for students.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	ListByClass(ctx context.Context, classID string) ([]RosterEntry, error)
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository returns a Postgres-backed implementation.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	const query = `
        INSERT INTO students (user_id, class_id, admission_no)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		student.UserID,
		student.ClassID,
		student.AdmissionNo,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	const query = `
        UPDATE students SET class_id=$1, admission_no=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, student.ClassID, student.AdmissionNo, student.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM students WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	const query = `
        SELECT id, user_id, class_id, admission_no, created_at, updated_at
        FROM students WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *studentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Student, error) {
	const query = `
        SELECT id, user_id, class_id, admission_no, created_at, updated_at
        FROM students WHERE user_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *studentRepository) List(ctx context.Context) ([]domain.Student, error) {
	const query = `
        SELECT id, user_id, class_id, admission_no, created_at, updated_at
        FROM students ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var student domain.Student
		if err := rows.Scan(
			&student.ID,
			&student.UserID,
			&student.ClassID,
			&student.AdmissionNo,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (r *studentRepository) ListByClass(ctx context.Context, classID string) ([]RosterEntry, error) {
	const query = `
        SELECT s.id, s.admission_no, u.name, u.email
        FROM students s
        JOIN users u ON u.id = s.user_id
        WHERE s.class_id=$1
        ORDER BY u.name`

	rows, err := r.pool.Query(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RosterEntry
	for rows.Next() {
		var entry RosterEntry
		if err := rows.Scan(&entry.StudentID, &entry.AdmissionNo, &entry.Name, &entry.Email); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *studentRepository) scanOne(row pgx.Row) (*domain.Student, error) {
	var student domain.Student
	if err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.ClassID,
		&student.AdmissionNo,
		&student.CreatedAt,
		&student.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &student, nil
}
