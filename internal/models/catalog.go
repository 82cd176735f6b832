package models

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus gates catalog-entity visibility. Only approved entries are
// shown to couples and planners; the gate is distinct from engagement status.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ValidApprovalStatus reports whether s names a known approval status.
func ValidApprovalStatus(s string) bool {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Vendor is a service provider in the catalog (catering, photography, ...).
type Vendor struct {
	ID             uuid.UUID      `json:"id"`
	OwnerUserID    uuid.UUID      `json:"owner_user_id"`
	BusinessName   string         `json:"business_name"`
	Description    *string        `json:"description,omitempty"`
	Category       string         `json:"category"`
	Location       *string        `json:"location,omitempty"`
	PriceRange     *string        `json:"price_range,omitempty"` // "$", "$$", "$$$"
	Rating         *float64       `json:"rating,omitempty"`
	ReviewCount    *int           `json:"review_count,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Venue is a bookable location in the catalog.
type Venue struct {
	ID             uuid.UUID      `json:"id"`
	OwnerUserID    uuid.UUID      `json:"owner_user_id"`
	Name           string         `json:"name"`
	Description    *string        `json:"description,omitempty"`
	Location       string         `json:"location"`
	Capacity       *int           `json:"capacity,omitempty"`
	PricePerDay    *float64       `json:"price_per_day,omitempty"`
	Rating         *float64       `json:"rating,omitempty"`
	ReviewCount    *int           `json:"review_count,omitempty"`
	Amenities      []string       `json:"amenities,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// PortfolioImage is an S3-backed image attached to a vendor or venue profile.
type PortfolioImage struct {
	ID          uuid.UUID `json:"id"`
	OwnerKind   string    `json:"owner_kind"` // "vendor" or "venue"
	OwnerID     uuid.UUID `json:"owner_id"`
	S3Key       string    `json:"-"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// CulturalActivity is a read-only catalog entry of traditional performances
// and ceremonies couples can browse for their celebration.
type CulturalActivity struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Region      *string   `json:"region,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
