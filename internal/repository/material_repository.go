package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-service/internal/domain"
)

// MaterialRepository defines persistence access for teaching materials.
type MaterialRepository interface {
	Create(ctx context.Context, material *domain.Material) error
	Update(ctx context.Context, material *domain.Material) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	ListBySubject(ctx context.Context, subjectID string) ([]domain.Material, error)
}

type materialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository returns a Postgres-backed implementation.
func NewMaterialRepository(pool *pgxpool.Pool) MaterialRepository {
	return &materialRepository{pool: pool}
}

func (r *materialRepository) Create(ctx context.Context, material *domain.Material) error {
	const query = `
        INSERT INTO materials (subject_id, class_id, title, description, object_key, uploaded_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		material.SubjectID,
		material.ClassID,
		material.Title,
		material.Description,
		material.ObjectKey,
		material.UploadedBy,
	).Scan(&material.ID, &material.CreatedAt, &material.UpdatedAt)
}

func (r *materialRepository) Update(ctx context.Context, material *domain.Material) error {
	const query = `
        UPDATE materials SET title=$1, description=$2, class_id=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		material.Title,
		material.Description,
		material.ClassID,
		material.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *materialRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM materials WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *materialRepository) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	const query = `
        SELECT id, subject_id, class_id, title, description, object_key, uploaded_by, created_at, updated_at
        FROM materials WHERE id=$1`

	var material domain.Material
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&material.ID,
		&material.SubjectID,
		&material.ClassID,
		&material.Title,
		&material.Description,
		&material.ObjectKey,
		&material.UploadedBy,
		&material.CreatedAt,
		&material.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) ListBySubject(ctx context.Context, subjectID string) ([]domain.Material, error) {
	const query = `
        SELECT id, subject_id, class_id, title, description, object_key, uploaded_by, created_at, updated_at
        FROM materials WHERE subject_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		var material domain.Material
		if err := rows.Scan(
			&material.ID,
			&material.SubjectID,
			&material.ClassID,
			&material.Title,
			&material.Description,
			&material.ObjectKey,
			&material.UploadedBy,
			&material.CreatedAt,
			&material.UpdatedAt,
		); err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	return materials, rows.Err()
}
