package models

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus is the status of a vendor inquiry.
type InquiryStatus string

const (
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusAccepted InquiryStatus = "accepted"
	InquiryStatusDeclined InquiryStatus = "declined"
)

// BookingStatus is the status of a venue booking request.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// VendorInquiry is a couple/planner message to a vendor about one event.
// Invariant: the referenced event is owned by the inquirer.
type VendorInquiry struct {
	ID         uuid.UUID     `json:"id"`
	VendorID   uuid.UUID     `json:"vendor_id"`
	EventID    uuid.UUID     `json:"event_id"`
	InquirerID uuid.UUID     `json:"inquirer_id"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingRequest is a couple/planner request to book a venue for a date.
// Same ownership invariant as VendorInquiry.
type BookingRequest struct {
	ID          uuid.UUID     `json:"id"`
	VenueID     uuid.UUID     `json:"venue_id"`
	EventID     uuid.UUID     `json:"event_id"`
	RequesterID uuid.UUID     `json:"requester_id"`
	RequestDate time.Time     `json:"request_date"`
	GuestCount  int           `json:"guest_count"`
	Message     *string       `json:"message,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// InquiryWithVendor joins an inquiry with its vendor's display name for
// feed and listing projections.
type InquiryWithVendor struct {
	VendorInquiry
	VendorName string `json:"vendor_name"`
}

// BookingWithVenue joins a booking request with its venue's display name.
type BookingWithVenue struct {
	BookingRequest
	VenueName string `json:"venue_name"`
}
