package models

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle status of a planned event.
type EventStatus string

const (
	EventStatusPlanning  EventStatus = "planning"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// ValidEventStatus reports whether s names a known event status.
func ValidEventStatus(s string) bool {
	switch EventStatus(s) {
	case EventStatusPlanning, EventStatusConfirmed, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// Event is a wedding or celebration planned by a couple or planner. Only the
// owner mutates an event; vendors and venues never touch it directly.
type Event struct {
	ID            uuid.UUID   `json:"id"`
	CoupleID      uuid.UUID   `json:"couple_id"`
	Title         string      `json:"title"`
	EventDate     time.Time   `json:"event_date"`
	VenueLocation *string     `json:"venue_location,omitempty"`
	Budget        *float64    `json:"budget,omitempty"`
	GuestCount    *int        `json:"guest_count,omitempty"`
	Status        EventStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
