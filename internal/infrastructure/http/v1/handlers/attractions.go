package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/attractions"
)

// AttractionsHandler extends the generic CRUD handler with attraction queries.
type AttractionsHandler struct {
	*EntityHandler[*attractions.Attraction]
	repo attractions.Repository
}

// NewAttractionsHandler creates a new attractions handler.
func NewAttractionsHandler(base *BaseHandler, repo attractions.Repository) *AttractionsHandler {
	return &AttractionsHandler{
		EntityHandler: NewEntityHandler(base, repo, "attractions",
			func() *attractions.Attraction { return &attractions.Attraction{} }),
		repo: repo,
	}
}

// GetActive handles GET /attractions/active
func (h *AttractionsHandler) GetActive(c *gin.Context) {
	items, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetPopularity handles GET /attractions/popularity?start=...&end=...
// Both bounds are optional.
func (h *AttractionsHandler) GetPopularity(c *gin.Context) {
	start, ok := h.ParseOptionalDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := h.ParseOptionalDateQuery(c, "end")
	if !ok {
		return
	}

	ranking, err := h.repo.Popularity(c.Request.Context(), start, end)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": ranking})
}

// Register mounts attraction routes on the given group.
func (h *AttractionsHandler) Register(g *gin.RouterGroup) {
	g.GET("/active", h.GetActive)
	g.GET("/popularity", h.GetPopularity)
	h.RegisterCRUD(g)
}
