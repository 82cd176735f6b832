package engagements

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// VendorProfileResolver maps an authenticated vendor user to their vendor
// profile for inbox access.
type VendorProfileResolver interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Vendor, error)
}

// VenueProfileResolver maps an authenticated venue manager to their venue.
type VenueProfileResolver interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Venue, error)
}

// CreateInquiryRequest is the body for POST /vendors/:id/inquiries.
type CreateInquiryRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateBookingRequest is the body for POST /venues/:id/bookings.
type CreateBookingRequest struct {
	EventID     string  `json:"event_id" binding:"required"`
	RequestDate string  `json:"request_date" binding:"required"`
	GuestCount  int     `json:"guest_count" binding:"required"`
	Message     *string `json:"message"`
}

// DecisionRequest is the body for PATCH /inquiries/:id and
// PATCH /bookings/:id.
type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Handler handles engagement HTTP endpoints.
type Handler struct {
	svc            *Service
	vendorProfiles VendorProfileResolver
	venueProfiles  VenueProfileResolver
}

// NewHandler creates an engagement handler.
func NewHandler(svc *Service, vendorProfiles VendorProfileResolver, venueProfiles VenueProfileResolver) *Handler {
	return &Handler{svc: svc, vendorProfiles: vendorProfiles, venueProfiles: venueProfiles}
}

// CreateInquiry handles POST /vendors/:id/inquiries.
func (h *Handler) CreateInquiry(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vendor id")
		return
	}
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	inq, err := h.svc.CreateInquiry(c.Request.Context(), actor, vendorID, eventID, req.Message)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, inq)
}

// CreateBooking handles POST /venues/:id/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid venue id")
		return
	}
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	requestDate, err := time.Parse(time.RFC3339, req.RequestDate)
	if err != nil {
		response.BadRequest(c, "request_date must be RFC3339")
		return
	}
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	b, err := h.svc.CreateBooking(c.Request.Context(), actor, venueID, eventID, requestDate, req.GuestCount, req.Message)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, b)
}

// List handles GET /engagements: the principal's events, inquiries and
// bookings in one payload.
func (h *Handler) List(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	eng, err := h.svc.ListForPrincipal(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, eng)
}

// DecideInquiry handles PATCH /inquiries/:id.
func (h *Handler) DecideInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid inquiry id")
		return
	}
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	inq, err := h.svc.DecideInquiry(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, inq)
}

// DecideBooking handles PATCH /bookings/:id.
func (h *Handler) DecideBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	b, err := h.svc.DecideBooking(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, b)
}

// CancelBooking handles POST /bookings/:id/cancel.
func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	b, err := h.svc.CancelBooking(c.Request.Context(), actor, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, b)
}

// VendorInbox handles GET /vendor-dashboard/inquiries. The inbox is scoped
// to the vendor profile owned by the caller.
func (h *Handler) VendorInbox(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	vendor, err := h.vendorProfiles.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	list, err := h.svc.VendorInbox(c.Request.Context(), vendor.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, list)
}

// VenueInbox handles GET /venue-manager/bookings.
func (h *Handler) VenueInbox(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	venue, err := h.venueProfiles.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	list, err := h.svc.VenueInbox(c.Request.Context(), venue.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, list)
}
