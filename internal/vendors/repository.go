package vendors

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

const vendorColumns = `id, owner_user_id, business_name, description, category, location,
	price_range, rating, review_count, approval_status, created_at, updated_at`

// Repository handles vendor catalog persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a vendor repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanVendor(row interface{ Scan(...any) error }, v *models.Vendor) error {
	return row.Scan(&v.ID, &v.OwnerUserID, &v.BusinessName, &v.Description, &v.Category,
		&v.Location, &v.PriceRange, &v.Rating, &v.ReviewCount, &v.ApprovalStatus,
		&v.CreatedAt, &v.UpdatedAt)
}

// Create inserts a vendor profile. New profiles start pending and stay
// invisible to couples until an admin approves them.
func (r *Repository) Create(ctx context.Context, v *models.Vendor) error {
	const q = `INSERT INTO vendors (owner_user_id, business_name, description, category, location, price_range)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + vendorColumns
	row := r.pool.QueryRow(ctx, q, v.OwnerUserID, v.BusinessName, v.Description, v.Category, v.Location, v.PriceRange)
	return database.WrapError("create vendor", scanVendor(row, v))
}

// GetByID returns a vendor by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	const q = `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	var v models.Vendor
	if err := scanVendor(r.pool.QueryRow(ctx, q, id), &v); err != nil {
		return nil, database.WrapError("get vendor", err)
	}
	return &v, nil
}

// GetByOwner returns the vendor profile owned by the given user.
func (r *Repository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Vendor, error) {
	const q = `SELECT ` + vendorColumns + ` FROM vendors WHERE owner_user_id = $1`
	var v models.Vendor
	if err := scanVendor(r.pool.QueryRow(ctx, q, ownerID), &v); err != nil {
		return nil, database.WrapError("get vendor by owner", err)
	}
	return &v, nil
}

// ListApproved returns approved vendors, best rated first with unrated last.
func (r *Repository) ListApproved(ctx context.Context) ([]models.Vendor, error) {
	const q = `SELECT ` + vendorColumns + ` FROM vendors
		WHERE approval_status = 'approved' ORDER BY rating DESC NULLS LAST`
	return r.list(ctx, q)
}

// ListByStatus returns vendors in a given approval state (admin view).
func (r *Repository) ListByStatus(ctx context.Context, status models.ApprovalStatus) ([]models.Vendor, error) {
	const q = `SELECT ` + vendorColumns + ` FROM vendors
		WHERE approval_status = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, string(status))
}

func (r *Repository) list(ctx context.Context, q string, args ...any) ([]models.Vendor, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, database.WrapError("list vendors", err)
	}
	defer rows.Close()
	var list []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := scanVendor(rows, &v); err != nil {
			return nil, database.WrapError("list vendors", err)
		}
		list = append(list, v)
	}
	return list, database.WrapError("list vendors", rows.Err())
}

// SetApproval moves a vendor to approved or rejected (admin decision).
func (r *Repository) SetApproval(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) error {
	const q = `UPDATE vendors SET approval_status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.pool.Exec(ctx, q, string(status), id)
	if err != nil {
		return database.WrapError("set vendor approval", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
