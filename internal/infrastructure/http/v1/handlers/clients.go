package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/clients"
)

// ClientsHandler extends the generic CRUD handler with client queries.
type ClientsHandler struct {
	*EntityHandler[*clients.Client]
	repo clients.Repository
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(base *BaseHandler, repo clients.Repository) *ClientsHandler {
	return &ClientsHandler{
		EntityHandler: NewEntityHandler(base, repo, "clients",
			func() *clients.Client { return &clients.Client{} }),
		repo: repo,
	}
}

// GetActive handles GET /clients/active
func (h *ClientsHandler) GetActive(c *gin.Context) {
	items, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetByEmail handles GET /clients/by-email?email=...
func (h *ClientsHandler) GetByEmail(c *gin.Context) {
	client, err := h.repo.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, client)
}

// Register mounts client routes on the given group.
func (h *ClientsHandler) Register(g *gin.RouterGroup) {
	g.GET("/active", h.GetActive)
	g.GET("/by-email", h.GetByEmail)
	h.RegisterCRUD(g)
}
