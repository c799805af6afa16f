package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// TeacherRepository defines persistence access for teaching staff.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *domain.Teacher) error
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Teacher, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Teacher, error)
	List(ctx context.Context) ([]domain.Teacher, error)
}

type teacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository returns a Postgres-backed implementation.
func NewTeacherRepository(pool *pgxpool.Pool) TeacherRepository {
	return &teacherRepository{pool: pool}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *domain.Teacher) error {
	const query = `
        INSERT INTO teachers (user_id, subject_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		teacher.UserID,
		teacher.SubjectID,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
}

func (r *teacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	const query = `
        UPDATE teachers SET subject_id=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, teacher.SubjectID, teacher.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM teachers WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	const query = `
        SELECT id, user_id, subject_id, created_at, updated_at
        FROM teachers WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *teacherRepository) GetByUserID(ctx context.Context, userID string) (*domain.Teacher, error) {
	const query = `
        SELECT id, user_id, subject_id, created_at, updated_at
        FROM teachers WHERE user_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *teacherRepository) List(ctx context.Context) ([]domain.Teacher, error) {
	const query = `
        SELECT id, user_id, subject_id, created_at, updated_at
        FROM teachers ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []domain.Teacher
	for rows.Next() {
		var teacher domain.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.UserID,
			&teacher.SubjectID,
			&teacher.CreatedAt,
			&teacher.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

func (r *teacherRepository) scanOne(row pgx.Row) (*domain.Teacher, error) {
	var teacher domain.Teacher
	if err := row.Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.SubjectID,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &teacher, nil
}
