package cultural

import (
	"github.com/gin-gonic/gin"

	"github.com/vivaha-events/backend/internal/directory"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// Handler serves the cultural catalog endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a cultural catalog handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func activityView(a models.CulturalActivity) directory.Item {
	it := directory.Item{
		Name:     a.Title,
		Category: a.Category,
	}
	if a.Description != nil {
		it.Description = *a.Description
	}
	if a.Region != nil {
		it.Location = *a.Region
	}
	return it
}

// List handles GET /cultural?search=&category=.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	filtered := directory.Filter(list, activityView, directory.Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	response.OK(c, filtered)
}
