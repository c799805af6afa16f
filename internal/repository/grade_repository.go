package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// GradeRepository defines persistence access for recorded grades.
type GradeRepository interface {
	Create(ctx context.Context, grade *domain.Grade) error
	Update(ctx context.Context, grade *domain.Grade) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Grade, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Grade, error)
	ListBySubject(ctx context.Context, subjectID, term string) ([]domain.Grade, error)
}

type gradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository returns a Postgres-backed implementation.
func NewGradeRepository(pool *pgxpool.Pool) GradeRepository {
	return &gradeRepository{pool: pool}
}

func (r *gradeRepository) Create(ctx context.Context, grade *domain.Grade) error {
	const query = `
        INSERT INTO grades (student_id, subject_id, term, score, comment, recorded_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		grade.StudentID,
		grade.SubjectID,
		grade.Term,
		grade.Score,
		grade.Comment,
		grade.RecordedBy,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
}

func (r *gradeRepository) Update(ctx context.Context, grade *domain.Grade) error {
	const query = `
        UPDATE grades SET score=$1, comment=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, grade.Score, grade.Comment, grade.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *gradeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM grades WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *gradeRepository) GetByID(ctx context.Context, id string) (*domain.Grade, error) {
	const query = `
        SELECT id, student_id, subject_id, term, score, comment, recorded_by, created_at, updated_at
        FROM grades WHERE id=$1`

	var grade domain.Grade
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.SubjectID,
		&grade.Term,
		&grade.Score,
		&grade.Comment,
		&grade.RecordedBy,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Grade, error) {
	const query = `
        SELECT id, student_id, subject_id, term, score, comment, recorded_by, created_at, updated_at
        FROM grades WHERE student_id=$1
        ORDER BY term, created_at`

	return r.list(ctx, query, studentID)
}

func (r *gradeRepository) ListBySubject(ctx context.Context, subjectID, term string) ([]domain.Grade, error) {
	const query = `
        SELECT id, student_id, subject_id, term, score, comment, recorded_by, created_at, updated_at
        FROM grades WHERE subject_id=$1 AND term=$2
        ORDER BY created_at`

	return r.list(ctx, query, subjectID, term)
}

func (r *gradeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Grade, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []domain.Grade
	for rows.Next() {
		var grade domain.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.SubjectID,
			&grade.Term,
			&grade.Score,
			&grade.Comment,
			&grade.RecordedBy,
			&grade.CreatedAt,
			&grade.UpdatedAt,
		); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}
	return grades, rows.Err()
}
