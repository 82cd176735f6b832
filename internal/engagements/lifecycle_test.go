package engagements

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivaha-events/backend/internal/models"
)

func TestInquiryDecision(t *testing.T) {
	tests := []struct {
		input   string
		want    models.InquiryStatus
		wantErr bool
	}{
		{"accepted", models.InquiryStatusAccepted, false},
		{"declined", models.InquiryStatusDeclined, false},
		{"pending", "", true},
		{"approved", "", true},
		{"", "", true},
		{"ACCEPTED", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := InquiryDecision(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingDecision(t *testing.T) {
	tests := []struct {
		input   string
		want    models.BookingStatus
		wantErr bool
	}{
		{"approved", models.BookingStatusApproved, false},
		{"rejected", models.BookingStatusRejected, false},
		{"pending", "", true},
		{"accepted", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := BookingDecision(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingDecisionCancelReservedForRequester(t *testing.T) {
	_, err := BookingDecision("cancelled")
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "requester")
}

func TestValidateInquiryTransition(t *testing.T) {
	assert.NoError(t, ValidateInquiryTransition(models.InquiryStatusPending, models.InquiryStatusAccepted))
	assert.NoError(t, ValidateInquiryTransition(models.InquiryStatusPending, models.InquiryStatusDeclined))

	// Accepted and declined are terminal.
	for _, from := range []models.InquiryStatus{models.InquiryStatusAccepted, models.InquiryStatusDeclined} {
		for _, to := range []models.InquiryStatus{models.InquiryStatusPending, models.InquiryStatusAccepted, models.InquiryStatusDeclined} {
			assert.ErrorIs(t, ValidateInquiryTransition(from, to), models.ErrInvalidTransition,
				"%s -> %s must be rejected", from, to)
		}
	}

	assert.ErrorIs(t, ValidateInquiryTransition(models.InquiryStatusPending, models.InquiryStatusPending), models.ErrInvalidTransition)
}

func TestValidateBookingTransition(t *testing.T) {
	for _, to := range []models.BookingStatus{models.BookingStatusApproved, models.BookingStatusRejected, models.BookingStatusCancelled} {
		assert.NoError(t, ValidateBookingTransition(models.BookingStatusPending, to))
	}

	terminal := []models.BookingStatus{models.BookingStatusApproved, models.BookingStatusRejected, models.BookingStatusCancelled}
	for _, from := range terminal {
		for _, to := range append(terminal, models.BookingStatusPending) {
			assert.ErrorIs(t, ValidateBookingTransition(from, to), models.ErrInvalidTransition,
				"%s -> %s must be rejected", from, to)
		}
	}
}

func TestValidateInquiryInput(t *testing.T) {
	assert.NoError(t, ValidateInquiryInput("we need catering for 200 guests"))
	assert.ErrorIs(t, ValidateInquiryInput(""), models.ErrValidation)
	assert.ErrorIs(t, ValidateInquiryInput("   \t\n"), models.ErrValidation)
	assert.NoError(t, ValidateInquiryInput(strings.Repeat("x", 2000)))
}

func TestValidateBookingInput(t *testing.T) {
	date := time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateBookingInput(date, 150))
	assert.ErrorIs(t, ValidateBookingInput(time.Time{}, 150), models.ErrValidation)
	assert.ErrorIs(t, ValidateBookingInput(date, 0), models.ErrValidation)
	assert.ErrorIs(t, ValidateBookingInput(date, -5), models.ErrValidation)
}
