package portfolio

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
	"github.com/vivaha-events/backend/pkg/storage"
)

// Owner kinds for portfolio images.
const (
	KindVendor = "vendor"
	KindVenue  = "venue"
)

// VendorProfileResolver maps a vendor user to their profile.
type VendorProfileResolver interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Vendor, error)
}

// VenueProfileResolver maps a venue manager to their venue.
type VenueProfileResolver interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Venue, error)
}

// ImageView is the listing projection: metadata plus a pre-signed URL.
type ImageView struct {
	models.PortfolioImage
	URL string `json:"url"`
}

// Handler serves portfolio image endpoints.
type Handler struct {
	repo    *Repository
	s3      *storage.S3
	vendors VendorProfileResolver
	venues  VenueProfileResolver
}

// NewHandler creates a portfolio handler. s3 may be nil when object storage
// is not configured; the endpoints then answer 503 instead of disappearing.
func NewHandler(repo *Repository, s3 *storage.S3, vendors VendorProfileResolver, venues VenueProfileResolver) *Handler {
	return &Handler{repo: repo, s3: s3, vendors: vendors, venues: venues}
}

func (h *Handler) storageReady(c *gin.Context) bool {
	if h.s3 == nil {
		response.ServiceUnavailable(c, "portfolio storage not configured")
		return false
	}
	return true
}

// UploadVendorImage handles POST /vendor-dashboard/portfolio (multipart
// field "image").
func (h *Handler) UploadVendorImage(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	vendor, err := h.vendors.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.upload(c, KindVendor, vendor.ID)
}

// UploadVenueImage handles POST /venue-manager/portfolio.
func (h *Handler) UploadVenueImage(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	venue, err := h.venues.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.upload(c, KindVenue, venue.ID)
}

func (h *Handler) upload(c *gin.Context, ownerKind string, ownerID uuid.UUID) {
	if !h.storageReady(c) {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > storage.MaxImageSize {
		response.BadRequest(c, "image exceeds the 5MB limit")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.ValidateImageType(contentType, fileHeader.Filename) {
		response.BadRequest(c, "unsupported image type; use jpeg, png or webp")
		return
	}
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded image")
		return
	}
	defer file.Close()

	img := &models.PortfolioImage{
		ID:          uuid.New(),
		OwnerKind:   ownerKind,
		OwnerID:     ownerID,
		ContentType: contentType,
	}
	img.S3Key = storage.PortfolioKey(ownerKind, ownerID.String(), img.ID.String(), fileHeader.Filename)

	if err := h.s3.Upload(c.Request.Context(), img.S3Key, contentType, file, fileHeader.Size); err != nil {
		response.FromError(c, models.ErrStoreUnavailable)
		return
	}
	if err := h.repo.Create(c.Request.Context(), img); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, img)
}

// ListVendorImages handles GET /vendors/:id/portfolio.
func (h *Handler) ListVendorImages(c *gin.Context) {
	h.list(c, KindVendor)
}

// ListVenueImages handles GET /venues/:id/portfolio.
func (h *Handler) ListVenueImages(c *gin.Context) {
	h.list(c, KindVenue)
}

func (h *Handler) list(c *gin.Context, ownerKind string) {
	if !h.storageReady(c) {
		return
	}
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}
	images, err := h.repo.ListByOwner(c.Request.Context(), ownerKind, ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	views := make([]ImageView, 0, len(images))
	for _, img := range images {
		url, err := h.s3.PresignedDownloadURL(c.Request.Context(), img.S3Key)
		if err != nil {
			response.FromError(c, models.ErrStoreUnavailable)
			return
		}
		views = append(views, ImageView{PortfolioImage: img, URL: url})
	}
	response.OK(c, views)
}

// DeleteVendorImage handles DELETE /vendor-dashboard/portfolio/:id.
func (h *Handler) DeleteVendorImage(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	vendor, err := h.vendors.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.delete(c, KindVendor, vendor.ID)
}

// DeleteVenueImage handles DELETE /venue-manager/portfolio/:id.
func (h *Handler) DeleteVenueImage(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	venue, err := h.venues.GetByOwner(c.Request.Context(), actor)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.delete(c, KindVenue, venue.ID)
}

func (h *Handler) delete(c *gin.Context, ownerKind string, ownerID uuid.UUID) {
	if !h.storageReady(c) {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid image id")
		return
	}
	img, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if img.OwnerKind != ownerKind || img.OwnerID != ownerID {
		response.FromError(c, models.ErrOwnershipViolation)
		return
	}
	if err := h.s3.Delete(c.Request.Context(), img.S3Key); err != nil {
		response.FromError(c, models.ErrStoreUnavailable)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}
