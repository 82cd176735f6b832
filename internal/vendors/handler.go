package vendors

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/directory"
	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// CreateProfileRequest is the body for POST /vendor-dashboard/profile.
type CreateProfileRequest struct {
	BusinessName string  `json:"business_name" binding:"required"`
	Description  *string `json:"description"`
	Category     string  `json:"category" binding:"required"`
	Location     *string `json:"location"`
	PriceRange   *string `json:"price_range"`
}

// ApprovalRequest is the body for PATCH /admin/vendors/:id/approval.
type ApprovalRequest struct {
	Status string `json:"status" binding:"required"` // approved or rejected
}

// Handler handles vendor catalog HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a vendor handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func vendorView(v models.Vendor) directory.Item {
	it := directory.Item{
		Name:     v.BusinessName,
		Category: v.Category,
	}
	if v.Description != nil {
		it.Description = *v.Description
	}
	if v.Location != nil {
		it.Location = *v.Location
	}
	if v.PriceRange != nil {
		it.PriceRange = *v.PriceRange
	}
	return it
}

// List handles GET /vendors. Approved vendors only, rating descending,
// filtered in-process by the directory criteria from query params.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.ListApproved(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	filtered := directory.Filter(list, vendorView, directory.Criteria{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("price_range"),
	})
	response.OK(c, filtered)
}

// CreateProfile handles POST /vendor-dashboard/profile. One profile per
// vendor user; the row starts pending.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	v := &models.Vendor{
		OwnerUserID:  ownerID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		PriceRange:   req.PriceRange,
	}
	if err := h.repo.Create(c.Request.Context(), v); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, v)
}

// MyProfile handles GET /vendor-dashboard/profile.
func (h *Handler) MyProfile(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	v, err := h.repo.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, v)
}

// ListForAdmin handles GET /admin/vendors?status=. Defaults to pending.
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

// SetApproval handles PATCH /admin/vendors/:id/approval.
func (h *Handler) SetApproval(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vendor id")
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
