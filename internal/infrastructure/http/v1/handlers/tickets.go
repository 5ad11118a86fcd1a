package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/tickets"
)

// TicketsHandler extends the generic CRUD handler with ticket operations.
type TicketsHandler struct {
	*EntityHandler[*tickets.Ticket]
	repo tickets.Repository
}

// NewTicketsHandler creates a new tickets handler.
func NewTicketsHandler(base *BaseHandler, repo tickets.Repository) *TicketsHandler {
	return &TicketsHandler{
		EntityHandler: NewEntityHandler(base, repo, "tickets",
			func() *tickets.Ticket { return &tickets.Ticket{} }),
		repo: repo,
	}
}

// GetByCode handles GET /tickets/by-code/:code
func (h *TicketsHandler) GetByCode(c *gin.Context) {
	ticket, err := h.repo.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ticket)
}

// Expiring handles GET /tickets/expiring?before=YYYY-MM-DD
func (h *TicketsHandler) Expiring(c *gin.Context) {
	before, ok := h.ParseDateQuery(c, "before")
	if !ok {
		return
	}

	items, err := h.repo.ExpiringBefore(c.Request.Context(), before)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// MarkUsed handles POST /tickets/:id/use
func (h *TicketsHandler) MarkUsed(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	used, err := h.repo.MarkUsed(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !used {
		h.Error(c, apperror.NewConflict("ticket is not confirmed or does not exist"))
		return
	}
	h.NoContent(c)
}

// Register mounts ticket routes on the given group.
func (h *TicketsHandler) Register(g *gin.RouterGroup) {
	g.GET("/by-code/:code", h.GetByCode)
	g.GET("/expiring", h.Expiring)
	g.POST("/:id/use", h.MarkUsed)
	h.RegisterCRUD(g)
}
