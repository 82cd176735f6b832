package events

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// CreateRequest is the body for POST /events.
type CreateRequest struct {
	Title         string   `json:"title" binding:"required"`
	EventDate     string   `json:"event_date" binding:"required"` // RFC3339
	VenueLocation *string  `json:"venue_location"`
	Budget        *float64 `json:"budget"`
	GuestCount    *int     `json:"guest_count"`
}

// UpdateRequest is the body for PATCH /events/:id. Absent fields are left
// unchanged.
type UpdateRequest struct {
	Title         *string  `json:"title"`
	EventDate     *string  `json:"event_date"`
	VenueLocation *string  `json:"venue_location"`
	Budget        *float64 `json:"budget"`
	GuestCount    *int     `json:"guest_count"`
	Status        *string  `json:"status"`
}

// Handler handles event HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates an event handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /events.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		response.BadRequest(c, "invalid event_date")
		return
	}
	if req.GuestCount != nil && *req.GuestCount <= 0 {
		response.BadRequest(c, "guest_count must be positive")
		return
	}

	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	e := &models.Event{
		CoupleID:      ownerID,
		Title:         req.Title,
		EventDate:     eventDate,
		VenueLocation: req.VenueLocation,
		Budget:        req.Budget,
		GuestCount:    req.GuestCount,
		Status:        models.EventStatusPlanning,
	}
	if err := h.repo.Create(c.Request.Context(), e); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, e)
}

// List handles GET /events. Returns the caller's events, event date ascending.
func (h *Handler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	list, err := h.repo.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /events/:id. Owner-only.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	e, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	if e.CoupleID != ownerID {
		response.Forbidden(c, "not the event owner")
		return
	}
	response.OK(c, e)
}

// Update handles PATCH /events/:id. Owner-only; status must stay within the
// event lifecycle set.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	e, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if e.CoupleID != ownerID {
		response.Forbidden(c, "not the event owner")
		return
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.EventDate != nil {
		d, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			response.BadRequest(c, "invalid event_date")
			return
		}
		e.EventDate = d
	}
	if req.VenueLocation != nil {
		e.VenueLocation = req.VenueLocation
	}
	if req.Budget != nil {
		e.Budget = req.Budget
	}
	if req.GuestCount != nil {
		if *req.GuestCount <= 0 {
			response.BadRequest(c, "guest_count must be positive")
			return
		}
		e.GuestCount = req.GuestCount
	}
	if req.Status != nil {
		if !models.ValidEventStatus(*req.Status) {
			response.BadRequest(c, "invalid status")
			return
		}
		e.Status = models.EventStatus(*req.Status)
	}

	if err := h.repo.Update(c.Request.Context(), id, ownerID, e); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Row existed a moment ago; ownership re-check filtered it out.
			response.Forbidden(c, "not the event owner")
			return
		}
		response.FromError(c, err)
		return
	}
	response.OK(c, e)
}
