package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/offerings"
)

// OfferingsHandler extends the generic CRUD handler with offering operations.
type OfferingsHandler struct {
	*EntityHandler[*offerings.Offering]
	repo offerings.Repository
}

// NewOfferingsHandler creates a new offerings handler.
func NewOfferingsHandler(base *BaseHandler, repo offerings.Repository) *OfferingsHandler {
	return &OfferingsHandler{
		EntityHandler: NewEntityHandler(base, repo, "offerings",
			func() *offerings.Offering { return &offerings.Offering{} }),
		repo: repo,
	}
}

// GetActive handles GET /offerings/active
func (h *OfferingsHandler) GetActive(c *gin.Context) {
	items, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetUsage handles GET /offerings/usage
func (h *OfferingsHandler) GetUsage(c *gin.Context) {
	usage, err := h.repo.UsageStats(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": usage})
}

// IncrementUsage handles POST /offerings/:id/use
func (h *OfferingsHandler) IncrementUsage(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	found, err := h.repo.IncrementUsage(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.Error(c, apperror.NewNotFound("offerings", id))
		return
	}
	h.NoContent(c)
}

// Register mounts offering routes on the given group.
func (h *OfferingsHandler) Register(g *gin.RouterGroup) {
	g.GET("/active", h.GetActive)
	g.GET("/usage", h.GetUsage)
	g.POST("/:id/use", h.IncrementUsage)
	h.RegisterCRUD(g)
}
