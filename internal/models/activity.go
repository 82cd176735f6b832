package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType identifies the source entity of an activity record.
type ActivityType string

const (
	ActivityEvent          ActivityType = "event"
	ActivityVendorInquiry  ActivityType = "vendor_inquiry"
	ActivityBookingRequest ActivityType = "booking_request"
)

// ActivityRecord is a read-only projection of a principal's recent events,
// inquiries and booking requests. It is derived for display and never
// written back.
type ActivityRecord struct {
	ID          uuid.UUID    `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      string       `json:"status,omitempty"`
}

// DashboardStats summarizes a principal's activity and budget.
type DashboardStats struct {
	EventsCount          int     `json:"events_count"`
	VendorInquiriesCount int     `json:"vendor_inquiries_count"`
	BookingRequestsCount int     `json:"booking_requests_count"`
	TotalBudget          float64 `json:"total_budget"`
}
