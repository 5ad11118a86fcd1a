package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/attractions"
	"parkly/internal/domain/employees"
	"parkly/internal/domain/zones"
)

// ZonesHandler extends the generic CRUD handler with zone queries.
type ZonesHandler struct {
	*EntityHandler[*zones.Zone]
	repo        zones.Repository
	attractions attractions.Repository
	employees   employees.Repository
}

// NewZonesHandler creates a new zones handler.
func NewZonesHandler(
	base *BaseHandler,
	repo zones.Repository,
	attractionRepo attractions.Repository,
	employeeRepo employees.Repository,
) *ZonesHandler {
	return &ZonesHandler{
		EntityHandler: NewEntityHandler(base, repo, "zones",
			func() *zones.Zone { return &zones.Zone{} }),
		repo:        repo,
		attractions: attractionRepo,
		employees:   employeeRepo,
	}
}

// GetActive handles GET /zones/active
func (h *ZonesHandler) GetActive(c *gin.Context) {
	items, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetPopularity handles GET /zones/popularity?start=...&end=...
// Both bounds are optional.
func (h *ZonesHandler) GetPopularity(c *gin.Context) {
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

// GetAttractions handles GET /zones/:id/attractions
func (h *ZonesHandler) GetAttractions(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	items, err := h.attractions.GetByZone(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetEmployees handles GET /zones/:id/employees
func (h *ZonesHandler) GetEmployees(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	items, err := h.employees.GetByZone(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// Register mounts zone routes on the given group.
func (h *ZonesHandler) Register(g *gin.RouterGroup) {
	g.GET("/active", h.GetActive)
	g.GET("/popularity", h.GetPopularity)
	g.GET("/:id/attractions", h.GetAttractions)
	g.GET("/:id/employees", h.GetEmployees)
	h.RegisterCRUD(g)
}
