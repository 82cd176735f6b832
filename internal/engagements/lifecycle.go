// Package engagements implements vendor inquiries and venue booking
// requests: the creation preconditions, the status state machine, and the
// persistence façade they share.
package engagements

import (
	"fmt"
	"strings"
	"time"

	"github.com/vivaha-events/backend/internal/models"
)

// Inquiry state machine: pending -> {accepted, declined}; both terminal.
// Booking state machine: pending -> {approved, rejected, cancelled}; all
// three terminal. No transition is time-based; every one is an explicit
// actor command.

// InquiryDecision parses a caller-supplied inquiry decision. Anything
// outside {accepted, declined} is rejected before it can reach the store.
func InquiryDecision(status string) (models.InquiryStatus, error) {
	switch models.InquiryStatus(status) {
	case models.InquiryStatusAccepted, models.InquiryStatusDeclined:
		return models.InquiryStatus(status), nil
	case models.InquiryStatusPending:
		return "", fmt.Errorf("%w: inquiry cannot be moved back to pending", models.ErrValidation)
	default:
		return "", fmt.Errorf("%w: unknown inquiry status %q", models.ErrValidation, status)
	}
}

// BookingDecision parses a venue manager's booking decision. Cancellation is
// not a counterpart decision; it has its own requester-only path.
func BookingDecision(status string) (models.BookingStatus, error) {
	switch models.BookingStatus(status) {
	case models.BookingStatusApproved, models.BookingStatusRejected:
		return models.BookingStatus(status), nil
	case models.BookingStatusCancelled:
		return "", fmt.Errorf("%w: only the requester may cancel", models.ErrValidation)
	case models.BookingStatusPending:
		return "", fmt.Errorf("%w: booking cannot be moved back to pending", models.ErrValidation)
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", models.ErrValidation, status)
	}
}

// ValidateInquiryTransition checks a transition against the inquiry state
// machine. Only pending has outgoing edges.
func ValidateInquiryTransition(from, to models.InquiryStatus) error {
	if from != models.InquiryStatusPending {
		return fmt.Errorf("%w: inquiry is %s", models.ErrInvalidTransition, from)
	}
	if to != models.InquiryStatusAccepted && to != models.InquiryStatusDeclined {
		return fmt.Errorf("%w: inquiry cannot become %s", models.ErrInvalidTransition, to)
	}
	return nil
}

// ValidateBookingTransition checks a transition against the booking state
// machine.
func ValidateBookingTransition(from, to models.BookingStatus) error {
	if from != models.BookingStatusPending {
		return fmt.Errorf("%w: booking is %s", models.ErrInvalidTransition, from)
	}
	switch to {
	case models.BookingStatusApproved, models.BookingStatusRejected, models.BookingStatusCancelled:
		return nil
	}
	return fmt.Errorf("%w: booking cannot become %s", models.ErrInvalidTransition, to)
}

// ValidateInquiryInput checks the client-correctable inquiry fields. Errors
// here never reach the store.
func ValidateInquiryInput(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", models.ErrValidation)
	}
	return nil
}

// ValidateBookingInput checks the client-correctable booking fields.
func ValidateBookingInput(requestDate time.Time, guestCount int) error {
	if requestDate.IsZero() {
		return fmt.Errorf("%w: request date is required", models.ErrValidation)
	}
	if guestCount <= 0 {
		return fmt.Errorf("%w: guest count must be positive", models.ErrValidation)
	}
	return nil
}
