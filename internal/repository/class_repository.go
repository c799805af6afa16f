package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// ClassRepository defines persistence access for classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	Update(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository returns a Postgres-backed implementation.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (name, grade_level, homeroom_teacher_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.Name,
		class.GradeLevel,
		class.HomeroomTeacherID,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) Update(ctx context.Context, class *domain.Class) error {
	const query = `
        UPDATE classes SET name=$1, grade_level=$2, homeroom_teacher_id=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		class.Name,
		class.GradeLevel,
		class.HomeroomTeacherID,
		class.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM classes WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	const query = `
        SELECT id, name, grade_level, homeroom_teacher_id, created_at, updated_at
        FROM classes WHERE id=$1`

	var class domain.Class
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.GradeLevel,
		&class.HomeroomTeacherID,
		&class.CreatedAt,
		&class.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	const query = `
        SELECT id, name, grade_level, homeroom_teacher_id, created_at, updated_at
        FROM classes ORDER BY grade_level, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.GradeLevel,
			&class.HomeroomTeacherID,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}
