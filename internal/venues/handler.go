package venues

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/directory"
	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// CreateProfileRequest is the body for POST /venue-manager/venues.
type CreateProfileRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Capacity    *int     `json:"capacity"`
	PricePerDay *float64 `json:"price_per_day"`
	Amenities   []string `json:"amenities"`
}

// ApprovalRequest is the body for PATCH /admin/venues/:id/approval.
type ApprovalRequest struct {
	Status string `json:"status" binding:"required"`
}

// Handler handles venue catalog HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a venue handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func venueView(v models.Venue) directory.Item {
	it := directory.Item{
		Name:     v.Name,
		Location: v.Location,
		Capacity: v.Capacity,
	}
	if v.Description != nil {
		it.Description = *v.Description
	}
	return it
}

// List handles GET /venues. Approved venues only, rating descending,
// search and capacity filters applied in-process.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.ListApproved(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	filtered := directory.Filter(list, venueView, directory.Criteria{
		Search:        c.Query("search"),
		CapacityRange: c.Query("capacity"),
	})
	response.OK(c, filtered)
}

// CreateProfile handles POST /venue-manager/venues.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		response.BadRequest(c, "capacity must be positive")
		return
	}
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	v := &models.Venue{
		OwnerUserID: ownerID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Amenities:   req.Amenities,
	}
	if err := h.repo.Create(c.Request.Context(), v); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, v)
}

// MyProfile handles GET /venue-manager/venues/mine.
func (h *Handler) MyProfile(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	v, err := h.repo.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, v)
}

// ListForAdmin handles GET /admin/venues?status=. Defaults to pending.
func (h *Handler) ListForAdmin(c *gin.Context) {
	status := c.DefaultQuery("status", string(models.ApprovalPending))
	if !models.ValidApprovalStatus(status) {
		response.BadRequest(c, "invalid status")
		return
	}
	list, err := h.repo.ListByStatus(c.Request.Context(), models.ApprovalStatus(status))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, list)
}

// SetApproval handles PATCH /admin/venues/:id/approval.
func (h *Handler) SetApproval(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid venue id")
		return
	}
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Status != string(models.ApprovalApproved) && req.Status != string(models.ApprovalRejected) {
		response.BadRequest(c, "status must be approved or rejected")
		return
	}
	if err := h.repo.SetApproval(c.Request.Context(), id, models.ApprovalStatus(req.Status)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "approval_status": req.Status})
}
