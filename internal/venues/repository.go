package venues

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

const venueColumns = `id, owner_user_id, name, description, location, capacity,
	price_per_day, rating, review_count, amenities, approval_status, created_at, updated_at`

// Repository handles venue catalog persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a venue repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanVenue(row interface{ Scan(...any) error }, v *models.Venue) error {
	return row.Scan(&v.ID, &v.OwnerUserID, &v.Name, &v.Description, &v.Location,
		&v.Capacity, &v.PricePerDay, &v.Rating, &v.ReviewCount, &v.Amenities,
		&v.ApprovalStatus, &v.CreatedAt, &v.UpdatedAt)
}

// Create inserts a venue profile in pending approval state.
func (r *Repository) Create(ctx context.Context, v *models.Venue) error {
	const q = `INSERT INTO venues (owner_user_id, name, description, location, capacity, price_per_day, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + venueColumns
	row := r.pool.QueryRow(ctx, q, v.OwnerUserID, v.Name, v.Description, v.Location, v.Capacity, v.PricePerDay, v.Amenities)
	return database.WrapError("create venue", scanVenue(row, v))
}

// GetByID returns a venue by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	var v models.Venue
	if err := scanVenue(r.pool.QueryRow(ctx, q, id), &v); err != nil {
		return nil, database.WrapError("get venue", err)
	}
	return &v, nil
}

// GetByOwner returns the venue profile managed by the given user.
func (r *Repository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE owner_user_id = $1`
	var v models.Venue
	if err := scanVenue(r.pool.QueryRow(ctx, q, ownerID), &v); err != nil {
		return nil, database.WrapError("get venue by owner", err)
	}
	return &v, nil
}

// ListApproved returns approved venues, best rated first with unrated last.
func (r *Repository) ListApproved(ctx context.Context) ([]models.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues
		WHERE approval_status = 'approved' ORDER BY rating DESC NULLS LAST`
	return r.list(ctx, q)
}

// ListByStatus returns venues in a given approval state (admin view).
func (r *Repository) ListByStatus(ctx context.Context, status models.ApprovalStatus) ([]models.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues
		WHERE approval_status = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, string(status))
}

func (r *Repository) list(ctx context.Context, q string, args ...any) ([]models.Venue, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, database.WrapError("list venues", err)
	}
	defer rows.Close()
	var list []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, database.WrapError("list venues", err)
		}
		list = append(list, v)
	}
	return list, database.WrapError("list venues", rows.Err())
}

// SetApproval moves a venue to approved or rejected (admin decision).
func (r *Repository) SetApproval(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) error {
	const q = `UPDATE venues SET approval_status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.pool.Exec(ctx, q, string(status), id)
	if err != nil {
		return database.WrapError("set venue approval", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
