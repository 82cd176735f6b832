package engagements

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/database"
)

const inquiryColumns = `id, vendor_id, event_id, inquirer_id, message, status, created_at, updated_at`
const bookingColumns = `id, venue_id, event_id, requester_id, request_date, guest_count, message, status, created_at, updated_at`

// InquiryRepository is the pgx-backed InquiryStore.
type InquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository creates an inquiry repository.
func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func scanInquiry(row interface{ Scan(...any) error }, inq *models.VendorInquiry) error {
	return row.Scan(&inq.ID, &inq.VendorID, &inq.EventID, &inq.InquirerID,
		&inq.Message, &inq.Status, &inq.CreatedAt, &inq.UpdatedAt)
}

// Create inserts a pending inquiry.
func (r *InquiryRepository) Create(ctx context.Context, inq *models.VendorInquiry) error {
	const q = `INSERT INTO vendor_inquiries (vendor_id, event_id, inquirer_id, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + inquiryColumns
	row := r.pool.QueryRow(ctx, q, inq.VendorID, inq.EventID, inq.InquirerID, inq.Message, string(inq.Status))
	return database.WrapError("insert inquiry", scanInquiry(row, inq))
}

// GetByID returns an inquiry by ID.
func (r *InquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.VendorInquiry, error) {
	const q = `SELECT ` + inquiryColumns + ` FROM vendor_inquiries WHERE id = $1`
	var inq models.VendorInquiry
	if err := scanInquiry(r.pool.QueryRow(ctx, q, id), &inq); err != nil {
		return nil, database.WrapError("get inquiry", err)
	}
	return &inq, nil
}

// ListByInquirer returns the principal's inquiries with vendor names, newest
// first.
func (r *InquiryRepository) ListByInquirer(ctx context.Context, inquirerID uuid.UUID) ([]models.InquiryWithVendor, error) {
	const q = `SELECT i.id, i.vendor_id, i.event_id, i.inquirer_id, i.message, i.status,
			i.created_at, i.updated_at, v.business_name
		FROM vendor_inquiries i JOIN vendors v ON v.id = i.vendor_id
		WHERE i.inquirer_id = $1 ORDER BY i.created_at DESC`
	rows, err := r.pool.Query(ctx, q, inquirerID)
	if err != nil {
		return nil, database.WrapError("list inquiries", err)
	}
	defer rows.Close()
	var list []models.InquiryWithVendor
	for rows.Next() {
		var iv models.InquiryWithVendor
		if err := rows.Scan(&iv.ID, &iv.VendorID, &iv.EventID, &iv.InquirerID, &iv.Message,
			&iv.Status, &iv.CreatedAt, &iv.UpdatedAt, &iv.VendorName); err != nil {
			return nil, database.WrapError("list inquiries", err)
		}
		list = append(list, iv)
	}
	return list, database.WrapError("list inquiries", rows.Err())
}

// ListRecentByInquirer returns the principal's most recent inquiries for the
// activity feed.
func (r *InquiryRepository) ListRecentByInquirer(ctx context.Context, inquirerID uuid.UUID, limit int) ([]models.InquiryWithVendor, error) {
	const q = `SELECT i.id, i.vendor_id, i.event_id, i.inquirer_id, i.message, i.status,
			i.created_at, i.updated_at, v.business_name
		FROM vendor_inquiries i JOIN vendors v ON v.id = i.vendor_id
		WHERE i.inquirer_id = $1 ORDER BY i.created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, inquirerID, limit)
	if err != nil {
		return nil, database.WrapError("list recent inquiries", err)
	}
	defer rows.Close()
	var list []models.InquiryWithVendor
	for rows.Next() {
		var iv models.InquiryWithVendor
		if err := rows.Scan(&iv.ID, &iv.VendorID, &iv.EventID, &iv.InquirerID, &iv.Message,
			&iv.Status, &iv.CreatedAt, &iv.UpdatedAt, &iv.VendorName); err != nil {
			return nil, database.WrapError("list recent inquiries", err)
		}
		list = append(list, iv)
	}
	return list, database.WrapError("list recent inquiries", rows.Err())
}

// ListByVendor returns the inquiries addressed to one vendor, pending first.
func (r *InquiryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.VendorInquiry, error) {
	const q = `SELECT ` + inquiryColumns + ` FROM vendor_inquiries
		WHERE vendor_id = $1
		ORDER BY (status = 'pending') DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, q, vendorID)
	if err != nil {
		return nil, database.WrapError("list vendor inbox", err)
	}
	defer rows.Close()
	var list []models.VendorInquiry
	for rows.Next() {
		var inq models.VendorInquiry
		if err := scanInquiry(rows, &inq); err != nil {
			return nil, database.WrapError("list vendor inbox", err)
		}
		list = append(list, inq)
	}
	return list, database.WrapError("list vendor inbox", rows.Err())
}

// SetStatusIfPending transitions the inquiry only while it is still pending.
// Returns false when a concurrent decision got there first.
func (r *InquiryRepository) SetStatusIfPending(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (bool, error) {
	const q = `UPDATE vendor_inquiries SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'`
	tag, err := r.pool.Exec(ctx, q, string(status), id)
	if err != nil {
		return false, database.WrapError("update inquiry status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// BookingRepository is the pgx-backed BookingStore.
type BookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func scanBooking(row interface{ Scan(...any) error }, b *models.BookingRequest) error {
	return row.Scan(&b.ID, &b.VenueID, &b.EventID, &b.RequesterID, &b.RequestDate,
		&b.GuestCount, &b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

// Create inserts a pending booking request.
func (r *BookingRepository) Create(ctx context.Context, b *models.BookingRequest) error {
	const q = `INSERT INTO booking_requests (venue_id, event_id, requester_id, request_date, guest_count, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns
	row := r.pool.QueryRow(ctx, q, b.VenueID, b.EventID, b.RequesterID, b.RequestDate, b.GuestCount, b.Message, string(b.Status))
	return database.WrapError("insert booking", scanBooking(row, b))
}

// GetByID returns a booking request by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	const q = `SELECT ` + bookingColumns + ` FROM booking_requests WHERE id = $1`
	var b models.BookingRequest
	if err := scanBooking(r.pool.QueryRow(ctx, q, id), &b); err != nil {
		return nil, database.WrapError("get booking", err)
	}
	return &b, nil
}

// ListByRequester returns the principal's booking requests with venue names,
// newest first.
func (r *BookingRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.BookingWithVenue, error) {
	return r.listWithVenue(ctx, requesterID, 0)
}

// ListRecentByRequester returns the principal's most recent booking requests
// for the activity feed.
func (r *BookingRepository) ListRecentByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.BookingWithVenue, error) {
	return r.listWithVenue(ctx, requesterID, limit)
}

func (r *BookingRepository) listWithVenue(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.BookingWithVenue, error) {
	q := `SELECT b.id, b.venue_id, b.event_id, b.requester_id, b.request_date, b.guest_count,
			b.message, b.status, b.created_at, b.updated_at, v.name
		FROM booking_requests b JOIN venues v ON v.id = b.venue_id
		WHERE b.requester_id = $1 ORDER BY b.created_at DESC`
	args := []any{requesterID}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, database.WrapError("list bookings", err)
	}
	defer rows.Close()
	var list []models.BookingWithVenue
	for rows.Next() {
		var bv models.BookingWithVenue
		if err := rows.Scan(&bv.ID, &bv.VenueID, &bv.EventID, &bv.RequesterID, &bv.RequestDate,
			&bv.GuestCount, &bv.Message, &bv.Status, &bv.CreatedAt, &bv.UpdatedAt, &bv.VenueName); err != nil {
			return nil, database.WrapError("list bookings", err)
		}
		list = append(list, bv)
	}
	return list, database.WrapError("list bookings", rows.Err())
}

// ListByVenue returns the booking requests addressed to one venue, pending
// first.
func (r *BookingRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]models.BookingRequest, error) {
	const q = `SELECT ` + bookingColumns + ` FROM booking_requests
		WHERE venue_id = $1
		ORDER BY (status = 'pending') DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, q, venueID)
	if err != nil {
		return nil, database.WrapError("list venue inbox", err)
	}
	defer rows.Close()
	var list []models.BookingRequest
	for rows.Next() {
		var b models.BookingRequest
		if err := scanBooking(rows, &b); err != nil {
			return nil, database.WrapError("list venue inbox", err)
		}
		list = append(list, b)
	}
	return list, database.WrapError("list venue inbox", rows.Err())
}

// SetStatusIfPending transitions the booking only while it is still pending.
func (r *BookingRepository) SetStatusIfPending(ctx context.Context, id uuid.UUID, status models.BookingStatus) (bool, error) {
	const q = `UPDATE booking_requests SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'`
	tag, err := r.pool.Exec(ctx, q, string(status), id)
	if err != nil {
		return false, database.WrapError("update booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}
