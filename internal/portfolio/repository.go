// Package portfolio manages S3-backed showcase images attached to vendor
// and venue profiles.
package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

// Repository handles portfolio image metadata persistence. The bytes live
// in S3; rows here carry the keys.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a portfolio repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts an image record.
func (r *Repository) Create(ctx context.Context, img *models.PortfolioImage) error {
	const q = `INSERT INTO portfolio_images (id, owner_kind, owner_id, s3_key, content_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	err := r.pool.QueryRow(ctx, q, img.ID, img.OwnerKind, img.OwnerID, img.S3Key, img.ContentType).Scan(&img.CreatedAt)
	return database.WrapError("create portfolio image", err)
}

// GetByID returns an image record.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioImage, error) {
	const q = `SELECT id, owner_kind, owner_id, s3_key, content_type, created_at
		FROM portfolio_images WHERE id = $1`
	var img models.PortfolioImage
	err := r.pool.QueryRow(ctx, q, id).Scan(&img.ID, &img.OwnerKind, &img.OwnerID, &img.S3Key, &img.ContentType, &img.CreatedAt)
	if err != nil {
		return nil, database.WrapError("get portfolio image", err)
	}
	return &img, nil
}

// ListByOwner returns the images attached to one vendor or venue profile,
// oldest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerKind string, ownerID uuid.UUID) ([]models.PortfolioImage, error) {
	const q = `SELECT id, owner_kind, owner_id, s3_key, content_type, created_at
		FROM portfolio_images WHERE owner_kind = $1 AND owner_id = $2
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, q, ownerKind, ownerID)
	if err != nil {
		return nil, database.WrapError("list portfolio images", err)
	}
	defer rows.Close()
	var list []models.PortfolioImage
	for rows.Next() {
		var img models.PortfolioImage
		if err := rows.Scan(&img.ID, &img.OwnerKind, &img.OwnerID, &img.S3Key, &img.ContentType, &img.CreatedAt); err != nil {
			return nil, database.WrapError("list portfolio images", err)
		}
		list = append(list, img)
	}
	return list, database.WrapError("list portfolio images", rows.Err())
}

// Delete removes an image record.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio_images WHERE id = $1`, id)
	if err != nil {
		return database.WrapError("delete portfolio image", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
