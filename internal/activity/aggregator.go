// Package activity derives the dashboard feed and stats from a principal's
// events, inquiries and booking requests. Everything here is a read-only
// projection.
package activity

import (
	"fmt"
	"sort"

	"github.com/vivaha-events/backend/internal/models"
)

// Display titles for feed entries, keyed by source kind.
const (
	titleEvent   = "Event Created"
	titleInquiry = "Vendor Inquiry"
	titleBooking = "Venue Booking Request"
)

// BuildFeed merges the three sources into one feed, newest first. Records
// with equal timestamps keep source order: events, then inquiries, then
// bookings. The result is truncated to limit when limit is positive.
func BuildFeed(events []models.Event, inquiries []models.InquiryWithVendor, bookings []models.BookingWithVenue, limit int) []models.ActivityRecord {
	feed := make([]models.ActivityRecord, 0, len(events)+len(inquiries)+len(bookings))
	for _, e := range events {
		feed = append(feed, models.ActivityRecord{
			ID:          e.ID,
			Type:        models.ActivityEvent,
			Title:       titleEvent,
			Description: e.Title,
			Timestamp:   e.CreatedAt,
			Status:      string(e.Status),
		})
	}
	for _, inq := range inquiries {
		feed = append(feed, models.ActivityRecord{
			ID:          inq.ID,
			Type:        models.ActivityVendorInquiry,
			Title:       titleInquiry,
			Description: fmt.Sprintf("Inquiry sent to %s", inq.VendorName),
			Timestamp:   inq.CreatedAt,
			Status:      string(inq.Status),
		})
	}
	for _, b := range bookings {
		feed = append(feed, models.ActivityRecord{
			ID:          b.ID,
			Type:        models.ActivityBookingRequest,
			Title:       titleBooking,
			Description: fmt.Sprintf("Booking requested at %s", b.VenueName),
			Timestamp:   b.CreatedAt,
			Status:      string(b.Status),
		})
	}

	// Stable keeps the events/inquiries/bookings concatenation order for
	// equal timestamps.
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// BuildStats summarizes counts and total budget. Events without a budget
// contribute zero.
func BuildStats(events []models.Event, inquiryCount, bookingCount int) models.DashboardStats {
	stats := models.DashboardStats{
		EventsCount:          len(events),
		VendorInquiriesCount: inquiryCount,
		BookingRequestsCount: bookingCount,
	}
	for _, e := range events {
		if e.Budget != nil {
			stats.TotalBudget += *e.Budget
		}
	}
	return stats
}
