package engagements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivaha-events/backend/internal/models"
)

// EventStore is the slice of the events repository this service needs.
type EventStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error)
}

// VendorStore resolves inquiry targets.
type VendorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
}

// VenueStore resolves booking targets.
type VenueStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Venue, error)
}

// InquiryStore persists vendor inquiries.
type InquiryStore interface {
	Create(ctx context.Context, inq *models.VendorInquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.VendorInquiry, error)
	ListByInquirer(ctx context.Context, inquirerID uuid.UUID) ([]models.InquiryWithVendor, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.VendorInquiry, error)
	// SetStatusIfPending applies the transition only while the row is still
	// pending, returning false when a concurrent transition won.
	SetStatusIfPending(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (bool, error)
}

// BookingStore persists venue booking requests.
type BookingStore interface {
	Create(ctx context.Context, b *models.BookingRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.BookingWithVenue, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]models.BookingRequest, error)
	SetStatusIfPending(ctx context.Context, id uuid.UUID, status models.BookingStatus) (bool, error)
}

// PrincipalEngagements is the listForPrincipal result: everything a couple
// or planner has in flight.
type PrincipalEngagements struct {
	Events    []models.Event             `json:"events"`
	Inquiries []models.InquiryWithVendor `json:"inquiries"`
	Bookings  []models.BookingWithVenue  `json:"bookings"`
}

// Service enforces engagement preconditions and status transitions in front
// of the stores. Validation failures never reach the store; store failures
// always surface to the caller.
type Service struct {
	events    EventStore
	vendors   VendorStore
	venues    VenueStore
	inquiries InquiryStore
	bookings  BookingStore
	logger    *zap.Logger
}

// NewService creates an engagement service.
func NewService(events EventStore, vendors VendorStore, venues VenueStore, inquiries InquiryStore, bookings BookingStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{events: events, vendors: vendors, venues: venues, inquiries: inquiries, bookings: bookings, logger: logger}
}

// checkEventOwnership loads the event and verifies the actor owns it. A
// missing event and a foreign event fail the same way: the reference is
// forged or stale either way.
func (s *Service) checkEventOwnership(ctx context.Context, actor, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: event does not exist", models.ErrOwnershipViolation)
		}
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.CoupleID != actor {
		return nil, fmt.Errorf("%w: event belongs to another principal", models.ErrOwnershipViolation)
	}
	return event, nil
}

// CreateInquiry creates a pending vendor inquiry after the precondition
// chain: input validity, event ownership, target approval.
func (s *Service) CreateInquiry(ctx context.Context, actor, vendorID, eventID uuid.UUID, message string) (*models.VendorInquiry, error) {
	if err := ValidateInquiryInput(message); err != nil {
		return nil, err
	}
	if _, err := s.checkEventOwnership(ctx, actor, eventID); err != nil {
		return nil, err
	}

	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor does not exist", models.ErrTargetUnavailable)
		}
		return nil, fmt.Errorf("check vendor: %w", err)
	}
	if vendor.ApprovalStatus != models.ApprovalApproved {
		return nil, fmt.Errorf("%w: vendor is not approved", models.ErrTargetUnavailable)
	}

	inq := &models.VendorInquiry{
		VendorID:   vendorID,
		EventID:    eventID,
		InquirerID: actor,
		Message:    message,
		Status:     models.InquiryStatusPending,
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("inquiry created",
		zap.String("inquiry_id", inq.ID.String()),
		zap.String("vendor_id", vendorID.String()),
		zap.String("event_id", eventID.String()),
	)
	return inq, nil
}

// CreateBooking creates a pending venue booking request under the same
// precondition chain as CreateInquiry.
func (s *Service) CreateBooking(ctx context.Context, actor, venueID, eventID uuid.UUID, requestDate time.Time, guestCount int, message *string) (*models.BookingRequest, error) {
	if err := ValidateBookingInput(requestDate, guestCount); err != nil {
		return nil, err
	}
	if _, err := s.checkEventOwnership(ctx, actor, eventID); err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: venue does not exist", models.ErrTargetUnavailable)
		}
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if venue.ApprovalStatus != models.ApprovalApproved {
		return nil, fmt.Errorf("%w: venue is not approved", models.ErrTargetUnavailable)
	}

	b := &models.BookingRequest{
		VenueID:     venueID,
		EventID:     eventID,
		RequesterID: actor,
		RequestDate: requestDate,
		GuestCount:  guestCount,
		Message:     message,
		Status:      models.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking request created",
		zap.String("booking_id", b.ID.String()),
		zap.String("venue_id", venueID.String()),
		zap.String("event_id", eventID.String()),
	)
	return b, nil
}

// ListForPrincipal returns the principal's events, inquiries and bookings.
func (s *Service) ListForPrincipal(ctx context.Context, principalID uuid.UUID) (*PrincipalEngagements, error) {
	events, err := s.events.ListByOwner(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	inquiries, err := s.inquiries.ListByInquirer(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	bookings, err := s.bookings.ListByRequester(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return &PrincipalEngagements{Events: events, Inquiries: inquiries, Bookings: bookings}, nil
}

// DecideInquiry moves an inquiry out of pending on behalf of the vendor that
// owns it. A lost race against a concurrent decision surfaces as stale
// state, never as a silent overwrite.
func (s *Service) DecideInquiry(ctx context.Context, actor, inquiryID uuid.UUID, decision string) (*models.VendorInquiry, error) {
	status, err := InquiryDecision(decision)
	if err != nil {
		return nil, err
	}

	inq, err := s.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	vendor, err := s.vendors.GetByID(ctx, inq.VendorID)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if vendor.OwnerUserID != actor {
		return nil, fmt.Errorf("%w: inquiry belongs to another vendor", models.ErrOwnershipViolation)
	}
	if err := ValidateInquiryTransition(inq.Status, status); err != nil {
		return nil, err
	}

	updated, err := s.inquiries.SetStatusIfPending(ctx, inquiryID, status)
	if err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: inquiry already decided", models.ErrStaleStatus)
	}
	inq.Status = status

	s.logger.Info("inquiry decided",
		zap.String("inquiry_id", inquiryID.String()),
		zap.String("status", string(status)),
	)
	return inq, nil
}

// DecideBooking approves or rejects a booking on behalf of the venue's
// manager.
func (s *Service) DecideBooking(ctx context.Context, actor, bookingID uuid.UUID, decision string) (*models.BookingRequest, error) {
	status, err := BookingDecision(decision)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	venue, err := s.venues.GetByID(ctx, b.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if venue.OwnerUserID != actor {
		return nil, fmt.Errorf("%w: booking belongs to another venue", models.ErrOwnershipViolation)
	}
	if err := ValidateBookingTransition(b.Status, status); err != nil {
		return nil, err
	}

	updated, err := s.bookings.SetStatusIfPending(ctx, bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: booking already decided", models.ErrStaleStatus)
	}
	b.Status = status

	s.logger.Info("booking decided",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(status)),
	)
	return b, nil
}

// CancelBooking lets the original requester withdraw a still-pending booking
// request.
func (s *Service) CancelBooking(ctx context.Context, actor, bookingID uuid.UUID) (*models.BookingRequest, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.RequesterID != actor {
		return nil, fmt.Errorf("%w: booking belongs to another principal", models.ErrOwnershipViolation)
	}
	if err := ValidateBookingTransition(b.Status, models.BookingStatusCancelled); err != nil {
		return nil, err
	}

	updated, err := s.bookings.SetStatusIfPending(ctx, bookingID, models.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: booking already decided", models.ErrStaleStatus)
	}
	b.Status = models.BookingStatusCancelled

	s.logger.Info("booking cancelled", zap.String("booking_id", bookingID.String()))
	return b, nil
}

// VendorInbox lists inquiries addressed to the vendor owned by the actor.
func (s *Service) VendorInbox(ctx context.Context, vendorID uuid.UUID) ([]models.VendorInquiry, error) {
	return s.inquiries.ListByVendor(ctx, vendorID)
}

// VenueInbox lists booking requests addressed to the venue managed by the
// actor.
func (s *Service) VenueInbox(ctx context.Context, venueID uuid.UUID) ([]models.BookingRequest, error) {
	return s.bookings.ListByVenue(ctx, venueID)
}
