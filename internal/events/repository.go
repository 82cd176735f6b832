package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

const eventColumns = `id, couple_id, title, event_date, venue_location, budget, guest_count, status, created_at, updated_at`

// Repository handles event persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an event repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanEvent(row interface{ Scan(...any) error }, e *models.Event) error {
	return row.Scan(&e.ID, &e.CoupleID, &e.Title, &e.EventDate, &e.VenueLocation,
		&e.Budget, &e.GuestCount, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

// Create inserts a new event owned by its creator.
func (r *Repository) Create(ctx context.Context, e *models.Event) error {
	const q = `INSERT INTO events (couple_id, title, event_date, venue_location, budget, guest_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns
	row := r.pool.QueryRow(ctx, q, e.CoupleID, e.Title, e.EventDate, e.VenueLocation, e.Budget, e.GuestCount, e.Status)
	return database.WrapError("create event", scanEvent(row, e))
}

// GetByID returns an event by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var e models.Event
	if err := scanEvent(r.pool.QueryRow(ctx, q, id), &e); err != nil {
		return nil, database.WrapError("get event", err)
	}
	return &e, nil
}

// ListByOwner returns the owner's events ordered by event date ascending.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE couple_id = $1 ORDER BY event_date ASC`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, database.WrapError("list events", err)
	}
	defer rows.Close()
	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, database.WrapError("list events", err)
		}
		list = append(list, e)
	}
	return list, database.WrapError("list events", rows.Err())
}

// ListRecentByOwner returns the owner's most recent events by creation time.
func (r *Repository) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE couple_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, ownerID, limit)
	if err != nil {
		return nil, database.WrapError("list recent events", err)
	}
	defer rows.Close()
	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, database.WrapError("list recent events", err)
		}
		list = append(list, e)
	}
	return list, database.WrapError("list recent events", rows.Err())
}

// Update applies owner edits. The WHERE clause re-checks ownership so a
// stale or forged request cannot touch another principal's event.
func (r *Repository) Update(ctx context.Context, id, ownerID uuid.UUID, e *models.Event) error {
	const q = `UPDATE events SET title = $1, event_date = $2, venue_location = $3,
		budget = $4, guest_count = $5, status = $6, updated_at = NOW()
		WHERE id = $7 AND couple_id = $8
		RETURNING ` + eventColumns
	row := r.pool.QueryRow(ctx, q, e.Title, e.EventDate, e.VenueLocation, e.Budget, e.GuestCount, e.Status, id, ownerID)
	return database.WrapError("update event", scanEvent(row, e))
}
