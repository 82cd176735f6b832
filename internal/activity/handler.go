package activity

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// The feed draws the most recent handful from each source before merging;
// the sources stay independent so one empty source never starves the feed.
const recentPerSource = 3

const defaultFeedLimit = 10

// EventSource is the slice of the events repository the dashboard reads.
type EventSource interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error)
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Event, error)
}

// InquirySource feeds inquiry records into the dashboard.
type InquirySource interface {
	ListByInquirer(ctx context.Context, inquirerID uuid.UUID) ([]models.InquiryWithVendor, error)
	ListRecentByInquirer(ctx context.Context, inquirerID uuid.UUID, limit int) ([]models.InquiryWithVendor, error)
}

// BookingSource feeds booking records into the dashboard.
type BookingSource interface {
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.BookingWithVenue, error)
	ListRecentByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.BookingWithVenue, error)
}

// Handler serves the principal dashboard: activity feed and stats.
type Handler struct {
	events    EventSource
	inquiries InquirySource
	bookings  BookingSource
}

// NewHandler creates a dashboard handler.
func NewHandler(events EventSource, inquiries InquirySource, bookings BookingSource) *Handler {
	return &Handler{events: events, inquiries: inquiries, bookings: bookings}
}

// Feed handles GET /dashboard/activity?limit=.
func (h *Handler) Feed(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	limit := defaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	events, err := h.events.ListRecentByOwner(ctx, actor, recentPerSource)
	if err != nil {
		response.FromError(c, err)
		return
	}
	inquiries, err := h.inquiries.ListRecentByInquirer(ctx, actor, recentPerSource)
	if err != nil {
		response.FromError(c, err)
		return
	}
	bookings, err := h.bookings.ListRecentByRequester(ctx, actor, recentPerSource)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, BuildFeed(events, inquiries, bookings, limit))
}

// Stats handles GET /dashboard/stats.
func (h *Handler) Stats(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	ctx := c.Request.Context()

	events, err := h.events.ListByOwner(ctx, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	inquiries, err := h.inquiries.ListByInquirer(ctx, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	bookings, err := h.bookings.ListByRequester(ctx, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, BuildStats(events, len(inquiries), len(bookings)))
}
