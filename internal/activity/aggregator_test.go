package activity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivaha-events/backend/internal/models"
)

func at(minute int) time.Time {
	return time.Date(2026, 8, 1, 12, minute, 0, 0, time.UTC)
}

func event(minute int, title string) models.Event {
	return models.Event{ID: uuid.New(), Title: title, Status: models.EventStatusPlanning, CreatedAt: at(minute)}
}

func inquiry(minute int, vendor string) models.InquiryWithVendor {
	return models.InquiryWithVendor{
		VendorInquiry: models.VendorInquiry{ID: uuid.New(), Status: models.InquiryStatusPending, CreatedAt: at(minute)},
		VendorName:    vendor,
	}
}

func booking(minute int, venue string) models.BookingWithVenue {
	return models.BookingWithVenue{
		BookingRequest: models.BookingRequest{ID: uuid.New(), Status: models.BookingStatusPending, CreatedAt: at(minute)},
		VenueName:      venue,
	}
}

func TestBuildFeedMergesNewestFirst(t *testing.T) {
	feed := BuildFeed(
		[]models.Event{event(10, "Sangeet"), event(40, "Reception")},
		[]models.InquiryWithVendor{inquiry(25, "Saffron Catering")},
		[]models.BookingWithVenue{booking(30, "Lotus Gardens")},
		0,
	)

	require.Len(t, feed, 4)
	assert.Equal(t, "Reception", feed[0].Description)
	assert.Equal(t, models.ActivityBookingRequest, feed[1].Type)
	assert.Equal(t, models.ActivityVendorInquiry, feed[2].Type)
	assert.Equal(t, "Sangeet", feed[3].Description)
}

func TestBuildFeedTieBreakBySourceOrder(t *testing.T) {
	// All three share a timestamp: events win, then inquiries, then bookings.
	feed := BuildFeed(
		[]models.Event{event(5, "Haldi")},
		[]models.InquiryWithVendor{inquiry(5, "Mehndi Art Co")},
		[]models.BookingWithVenue{booking(5, "Rose Palace")},
		0,
	)

	require.Len(t, feed, 3)
	assert.Equal(t, models.ActivityEvent, feed[0].Type)
	assert.Equal(t, models.ActivityVendorInquiry, feed[1].Type)
	assert.Equal(t, models.ActivityBookingRequest, feed[2].Type)
}

func TestBuildFeedProjection(t *testing.T) {
	feed := BuildFeed(
		[]models.Event{event(1, "Sangeet")},
		[]models.InquiryWithVendor{inquiry(2, "Saffron Catering")},
		[]models.BookingWithVenue{booking(3, "Lotus Gardens")},
		0,
	)

	require.Len(t, feed, 3)
	assert.Equal(t, "Venue Booking Request", feed[0].Title)
	assert.Equal(t, "Booking requested at Lotus Gardens", feed[0].Description)
	assert.Equal(t, "pending", feed[0].Status)
	assert.Equal(t, "Vendor Inquiry", feed[1].Title)
	assert.Equal(t, "Inquiry sent to Saffron Catering", feed[1].Description)
	assert.Equal(t, "Event Created", feed[2].Title)
	assert.Equal(t, "planning", feed[2].Status)
}

func TestBuildFeedLimit(t *testing.T) {
	events := []models.Event{event(1, "a"), event(2, "b"), event(3, "c")}

	feed := BuildFeed(events, nil, nil, 2)
	require.Len(t, feed, 2)
	assert.Equal(t, "c", feed[0].Description)
	assert.Equal(t, "b", feed[1].Description)

	// Zero means unlimited.
	assert.Len(t, BuildFeed(events, nil, nil, 0), 3)
}

func TestBuildFeedEmpty(t *testing.T) {
	assert.Empty(t, BuildFeed(nil, nil, nil, 10))
}

func TestBuildStats(t *testing.T) {
	b1, b2 := 500.0, 1200.0
	events := []models.Event{
		{ID: uuid.New(), Budget: &b1},
		{ID: uuid.New(), Budget: nil},
		{ID: uuid.New(), Budget: &b2},
	}

	stats := BuildStats(events, 4, 2)
	assert.Equal(t, 3, stats.EventsCount)
	assert.Equal(t, 4, stats.VendorInquiriesCount)
	assert.Equal(t, 2, stats.BookingRequestsCount)
	assert.Equal(t, 1700.0, stats.TotalBudget)
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil, 0, 0)
	assert.Zero(t, stats.EventsCount)
	assert.Zero(t, stats.TotalBudget)
}
