// Package cultural serves the read-only catalog of traditional performances
// and ceremonies. Entries are seeded by operators; there is no write API.
package cultural

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

// Repository reads the cultural activity catalog.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a cultural catalog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all catalog entries ordered by title. Filtering happens
// in-process through the directory filter.
func (r *Repository) List(ctx context.Context) ([]models.CulturalActivity, error) {
	const q = `SELECT id, title, description, category, region, created_at
		FROM cultural_activities ORDER BY title ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, database.WrapError("list cultural activities", err)
	}
	defer rows.Close()
	var list []models.CulturalActivity
	for rows.Next() {
		var a models.CulturalActivity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Region, &a.CreatedAt); err != nil {
			return nil, database.WrapError("list cultural activities", err)
		}
		list = append(list, a)
	}
	return list, database.WrapError("list cultural activities", rows.Err())
}
