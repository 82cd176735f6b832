package engagements

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivaha-events/backend/internal/models"
)

type fakeEventStore struct {
	events map[uuid.UUID]*models.Event
}

func (f *fakeEventStore) GetByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	var list []models.Event
	for _, e := range f.events {
		if e.CoupleID == ownerID {
			list = append(list, *e)
		}
	}
	return list, nil
}

type fakeVendorStore struct {
	vendors map[uuid.UUID]*models.Vendor
}

func (f *fakeVendorStore) GetByID(_ context.Context, id uuid.UUID) (*models.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

type fakeVenueStore struct {
	venues map[uuid.UUID]*models.Venue
}

func (f *fakeVenueStore) GetByID(_ context.Context, id uuid.UUID) (*models.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

type fakeInquiryStore struct {
	inquiries map[uuid.UUID]*models.VendorInquiry
	createErr error
	creates   int
	updates   int
}

func (f *fakeInquiryStore) Create(_ context.Context, inq *models.VendorInquiry) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	inq.ID = uuid.New()
	inq.CreatedAt = time.Now()
	inq.UpdatedAt = inq.CreatedAt
	cp := *inq
	f.inquiries[inq.ID] = &cp
	return nil
}

func (f *fakeInquiryStore) GetByID(_ context.Context, id uuid.UUID) (*models.VendorInquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *inq
	return &cp, nil
}

func (f *fakeInquiryStore) ListByInquirer(_ context.Context, inquirerID uuid.UUID) ([]models.InquiryWithVendor, error) {
	var list []models.InquiryWithVendor
	for _, inq := range f.inquiries {
		if inq.InquirerID == inquirerID {
			list = append(list, models.InquiryWithVendor{VendorInquiry: *inq})
		}
	}
	return list, nil
}

func (f *fakeInquiryStore) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]models.VendorInquiry, error) {
	var list []models.VendorInquiry
	for _, inq := range f.inquiries {
		if inq.VendorID == vendorID {
			list = append(list, *inq)
		}
	}
	return list, nil
}

func (f *fakeInquiryStore) SetStatusIfPending(_ context.Context, id uuid.UUID, status models.InquiryStatus) (bool, error) {
	f.updates++
	inq, ok := f.inquiries[id]
	if !ok || inq.Status != models.InquiryStatusPending {
		return false, nil
	}
	inq.Status = status
	return true, nil
}

type fakeBookingStore struct {
	bookings map[uuid.UUID]*models.BookingRequest
	creates  int
}

func (f *fakeBookingStore) Create(_ context.Context, b *models.BookingRequest) error {
	f.creates++
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]models.BookingWithVenue, error) {
	var list []models.BookingWithVenue
	for _, b := range f.bookings {
		if b.RequesterID == requesterID {
			list = append(list, models.BookingWithVenue{BookingRequest: *b})
		}
	}
	return list, nil
}

func (f *fakeBookingStore) ListByVenue(_ context.Context, venueID uuid.UUID) ([]models.BookingRequest, error) {
	var list []models.BookingRequest
	for _, b := range f.bookings {
		if b.VenueID == venueID {
			list = append(list, *b)
		}
	}
	return list, nil
}

func (f *fakeBookingStore) SetStatusIfPending(_ context.Context, id uuid.UUID, status models.BookingStatus) (bool, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status != models.BookingStatusPending {
		return false, nil
	}
	b.Status = status
	return true, nil
}

type fixture struct {
	svc       *Service
	events    *fakeEventStore
	vendors   *fakeVendorStore
	venues    *fakeVenueStore
	inquiries *fakeInquiryStore
	bookings  *fakeBookingStore

	coupleID    uuid.UUID
	vendorOwner uuid.UUID
	venueOwner  uuid.UUID
	eventID     uuid.UUID
	vendorID    uuid.UUID
	venueID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		events:      &fakeEventStore{events: map[uuid.UUID]*models.Event{}},
		vendors:     &fakeVendorStore{vendors: map[uuid.UUID]*models.Vendor{}},
		venues:      &fakeVenueStore{venues: map[uuid.UUID]*models.Venue{}},
		inquiries:   &fakeInquiryStore{inquiries: map[uuid.UUID]*models.VendorInquiry{}},
		bookings:    &fakeBookingStore{bookings: map[uuid.UUID]*models.BookingRequest{}},
		coupleID:    uuid.New(),
		vendorOwner: uuid.New(),
		venueOwner:  uuid.New(),
		eventID:     uuid.New(),
		vendorID:    uuid.New(),
		venueID:     uuid.New(),
	}
	f.events.events[f.eventID] = &models.Event{
		ID:       f.eventID,
		CoupleID: f.coupleID,
		Title:    "Sangeet Night",
		Status:   models.EventStatusPlanning,
	}
	f.vendors.vendors[f.vendorID] = &models.Vendor{
		ID:             f.vendorID,
		OwnerUserID:    f.vendorOwner,
		BusinessName:   "Saffron Catering",
		Category:       "catering",
		ApprovalStatus: models.ApprovalApproved,
	}
	cap := 300
	f.venues.venues[f.venueID] = &models.Venue{
		ID:             f.venueID,
		OwnerUserID:    f.venueOwner,
		Name:           "Lotus Gardens",
		Location:       "Jaipur",
		Capacity:       &cap,
		ApprovalStatus: models.ApprovalApproved,
	}
	f.svc = NewService(f.events, f.vendors, f.venues, f.inquiries, f.bookings, nil)
	return f
}

func TestCreateInquiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inq, err := f.svc.CreateInquiry(ctx, f.coupleID, f.vendorID, f.eventID, "catering for 200 guests")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusPending, inq.Status)
	assert.Equal(t, f.coupleID, inq.InquirerID)
	assert.NotEqual(t, uuid.Nil, inq.ID)

	// Visible in the principal's listing afterwards.
	eng, err := f.svc.ListForPrincipal(ctx, f.coupleID)
	require.NoError(t, err)
	require.Len(t, eng.Inquiries, 1)
	assert.Equal(t, inq.ID, eng.Inquiries[0].ID)
}

func TestCreateInquiryValidationNeverReachesStore(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateInquiry(context.Background(), f.coupleID, f.vendorID, f.eventID, "   ")
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, f.inquiries.creates)
}

func TestCreateInquiryOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("foreign event", func(t *testing.T) {
		stranger := uuid.New()
		_, err := f.svc.CreateInquiry(ctx, stranger, f.vendorID, f.eventID, "hello")
		require.ErrorIs(t, err, models.ErrOwnershipViolation)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := f.svc.CreateInquiry(ctx, f.coupleID, f.vendorID, uuid.New(), "hello")
		require.ErrorIs(t, err, models.ErrOwnershipViolation)
	})

	assert.Zero(t, f.inquiries.creates)
}

func TestCreateInquiryTargetUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("missing vendor", func(t *testing.T) {
		_, err := f.svc.CreateInquiry(ctx, f.coupleID, uuid.New(), f.eventID, "hello")
		require.ErrorIs(t, err, models.ErrTargetUnavailable)
	})

	t.Run("unapproved vendor", func(t *testing.T) {
		pending := &models.Vendor{ID: uuid.New(), OwnerUserID: uuid.New(), BusinessName: "New Kid", Category: "decor", ApprovalStatus: models.ApprovalPending}
		f.vendors.vendors[pending.ID] = pending
		_, err := f.svc.CreateInquiry(ctx, f.coupleID, pending.ID, f.eventID, "hello")
		require.ErrorIs(t, err, models.ErrTargetUnavailable)
	})

	assert.Zero(t, f.inquiries.creates)
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	date := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)

	b, err := f.svc.CreateBooking(context.Background(), f.coupleID, f.venueID, f.eventID, date, 180, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, 180, b.GuestCount)
	assert.True(t, b.RequestDate.Equal(date))
}

func TestCreateBookingPreconditionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)

	// Validation fires before ownership: invalid guest count on a foreign
	// event reports the validation error.
	_, err := f.svc.CreateBooking(ctx, uuid.New(), f.venueID, f.eventID, date, 0, nil)
	require.ErrorIs(t, err, models.ErrValidation)

	// Ownership fires before target availability.
	_, err = f.svc.CreateBooking(ctx, uuid.New(), uuid.New(), f.eventID, date, 100, nil)
	require.ErrorIs(t, err, models.ErrOwnershipViolation)

	_, err = f.svc.CreateBooking(ctx, f.coupleID, uuid.New(), f.eventID, date, 100, nil)
	require.ErrorIs(t, err, models.ErrTargetUnavailable)

	assert.Zero(t, f.bookings.creates)
}

func TestDecideInquiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inq, err := f.svc.CreateInquiry(ctx, f.coupleID, f.vendorID, f.eventID, "catering please")
	require.NoError(t, err)

	t.Run("wrong vendor", func(t *testing.T) {
		_, err := f.svc.DecideInquiry(ctx, uuid.New(), inq.ID, "accepted")
		require.ErrorIs(t, err, models.ErrOwnershipViolation)
	})

	t.Run("bad decision", func(t *testing.T) {
		_, err := f.svc.DecideInquiry(ctx, f.vendorOwner, inq.ID, "pending")
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("accept", func(t *testing.T) {
		got, err := f.svc.DecideInquiry(ctx, f.vendorOwner, inq.ID, "accepted")
		require.NoError(t, err)
		assert.Equal(t, models.InquiryStatusAccepted, got.Status)
	})

	t.Run("decided inquiry is terminal", func(t *testing.T) {
		_, err := f.svc.DecideInquiry(ctx, f.vendorOwner, inq.ID, "declined")
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})
}

func TestDecideInquiryStaleState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inq, err := f.svc.CreateInquiry(ctx, f.coupleID, f.vendorID, f.eventID, "catering please")
	require.NoError(t, err)

	// Another decision lands between this caller's read and write.
	f.svc.inquiries = &racingInquiryStore{fakeInquiryStore: f.inquiries, snapshot: inq}

	_, err = f.svc.DecideInquiry(ctx, f.vendorOwner, inq.ID, "accepted")
	require.ErrorIs(t, err, models.ErrStaleStatus)
}

// racingInquiryStore serves a still-pending snapshot from GetByID while the
// underlying row has already been decided, mimicking a lost race.
type racingInquiryStore struct {
	*fakeInquiryStore
	snapshot *models.VendorInquiry
}

func (r *racingInquiryStore) GetByID(context.Context, uuid.UUID) (*models.VendorInquiry, error) {
	cp := *r.snapshot
	cp.Status = models.InquiryStatusPending
	return &cp, nil
}

func (r *racingInquiryStore) SetStatusIfPending(context.Context, uuid.UUID, models.InquiryStatus) (bool, error) {
	return false, nil
}

func TestDecideAndCancelBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)

	b1, err := f.svc.CreateBooking(ctx, f.coupleID, f.venueID, f.eventID, date, 180, nil)
	require.NoError(t, err)
	b2, err := f.svc.CreateBooking(ctx, f.coupleID, f.venueID, f.eventID, date, 200, nil)
	require.NoError(t, err)

	t.Run("manager approves", func(t *testing.T) {
		got, err := f.svc.DecideBooking(ctx, f.venueOwner, b1.ID, "approved")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusApproved, got.Status)
	})

	t.Run("manager cannot cancel", func(t *testing.T) {
		_, err := f.svc.DecideBooking(ctx, f.venueOwner, b2.ID, "cancelled")
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		_, err := f.svc.CancelBooking(ctx, uuid.New(), b2.ID)
		require.ErrorIs(t, err, models.ErrOwnershipViolation)
	})

	t.Run("requester cancels pending", func(t *testing.T) {
		got, err := f.svc.CancelBooking(ctx, f.coupleID, b2.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, got.Status)
	})

	t.Run("requester cannot cancel decided", func(t *testing.T) {
		_, err := f.svc.CancelBooking(ctx, f.coupleID, b1.ID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})
}

func TestListForPrincipalIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherCouple := uuid.New()
	otherEvent := uuid.New()
	f.events.events[otherEvent] = &models.Event{ID: otherEvent, CoupleID: otherCouple, Title: "Mehndi"}

	_, err := f.svc.CreateInquiry(ctx, f.coupleID, f.vendorID, f.eventID, "ours")
	require.NoError(t, err)
	_, err = f.svc.CreateInquiry(ctx, otherCouple, f.vendorID, otherEvent, "theirs")
	require.NoError(t, err)

	eng, err := f.svc.ListForPrincipal(ctx, f.coupleID)
	require.NoError(t, err)
	require.Len(t, eng.Inquiries, 1)
	assert.Equal(t, "ours", eng.Inquiries[0].Message)
	require.Len(t, eng.Events, 1)
	assert.Equal(t, f.eventID, eng.Events[0].ID)
}
