package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// ParentRepository defines persistence access for guardians and their
// student links.
type ParentRepository interface {
	Create(ctx context.Context, parent *domain.Parent) error
	Update(ctx context.Context, parent *domain.Parent) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Parent, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Parent, error)
	List(ctx context.Context) ([]domain.Parent, error)
	LinkStudent(ctx context.Context, link *domain.ParentStudentLink) error
	UnlinkStudent(ctx context.Context, parentID, studentID string) error
	ListStudentIDs(ctx context.Context, parentID string) ([]string, error)
}

type parentRepository struct {
	pool *pgxpool.Pool
}

// NewParentRepository returns a Postgres-backed implementation.
func NewParentRepository(pool *pgxpool.Pool) ParentRepository {
	return &parentRepository{pool: pool}
}

func (r *parentRepository) Create(ctx context.Context, parent *domain.Parent) error {
	const query = `
        INSERT INTO parents (user_id, phone)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		parent.UserID,
		parent.Phone,
	).Scan(&parent.ID, &parent.CreatedAt, &parent.UpdatedAt)
}

func (r *parentRepository) Update(ctx context.Context, parent *domain.Parent) error {
	const query = `
        UPDATE parents SET phone=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, parent.Phone, parent.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *parentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM parents WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *parentRepository) GetByID(ctx context.Context, id string) (*domain.Parent, error) {
	const query = `
        SELECT id, user_id, phone, created_at, updated_at
        FROM parents WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *parentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Parent, error) {
	const query = `
        SELECT id, user_id, phone, created_at, updated_at
        FROM parents WHERE user_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *parentRepository) List(ctx context.Context) ([]domain.Parent, error) {
	const query = `
        SELECT id, user_id, phone, created_at, updated_at
        FROM parents ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []domain.Parent
	for rows.Next() {
		var parent domain.Parent
		if err := rows.Scan(
			&parent.ID,
			&parent.UserID,
			&parent.Phone,
			&parent.CreatedAt,
			&parent.UpdatedAt,
		); err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}
	return parents, rows.Err()
}

// LinkStudent inserts a parent-student link. The (parent_id, student_id)
// pair carries a unique constraint; violations surface as pgconn errors.
func (r *parentRepository) LinkStudent(ctx context.Context, link *domain.ParentStudentLink) error {
	const query = `
        INSERT INTO parent_students (parent_id, student_id)
        VALUES ($1, $2)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query, link.ParentID, link.StudentID).Scan(&link.CreatedAt)
}

func (r *parentRepository) UnlinkStudent(ctx context.Context, parentID, studentID string) error {
	const query = `DELETE FROM parent_students WHERE parent_id=$1 AND student_id=$2`

	cmd, err := r.pool.Exec(ctx, query, parentID, studentID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *parentRepository) ListStudentIDs(ctx context.Context, parentID string) ([]string, error) {
	const query = `SELECT student_id FROM parent_students WHERE parent_id=$1`

	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *parentRepository) scanOne(row pgx.Row) (*domain.Parent, error) {
	var parent domain.Parent
	if err := row.Scan(
		&parent.ID,
		&parent.UserID,
		&parent.Phone,
		&parent.CreatedAt,
		&parent.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &parent, nil
}
