package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/orders"
	"parkly/internal/domain/payments"
	"parkly/internal/domain/tickets"
)

// OrdersHandler extends the generic CRUD handler with order operations.
type OrdersHandler struct {
	*EntityHandler[*orders.Order]
	repo     orders.Repository
	service  *orders.Service
	tickets  tickets.Repository
	payments payments.Repository
}

// NewOrdersHandler creates a new orders handler.
func NewOrdersHandler(
	base *BaseHandler,
	repo orders.Repository,
	service *orders.Service,
	ticketRepo tickets.Repository,
	paymentRepo payments.Repository,
) *OrdersHandler {
	return &OrdersHandler{
		EntityHandler: NewEntityHandler(base, repo, "orders",
			func() *orders.Order { return &orders.Order{} }),
		repo:     repo,
		service:  service,
		tickets:  ticketRepo,
		payments: paymentRepo,
	}
}

// Place handles POST /orders/place: the order and its tickets are
// created atomically.
func (h *OrdersHandler) Place(c *gin.Context) {
	var req struct {
		ClientID int64               `json:"clientId" binding:"required"`
		Tickets  []orders.TicketLine `json:"tickets" binding:"required"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	order, created, err := h.service.Place(c.Request.Context(), req.ClientID, req.Tickets)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, gin.H{"order": order, "tickets": created})
}

// GetByClient handles GET /orders/by-client/:id
func (h *OrdersHandler) GetByClient(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	items, err := h.repo.GetByClient(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetTickets handles GET /orders/:id/tickets
func (h *OrdersHandler) GetTickets(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	items, err := h.tickets.GetByOrder(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetPayments handles GET /orders/:id/payments
func (h *OrdersHandler) GetPayments(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	items, err := h.payments.GetByOrder(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// UpdateStatus handles PATCH /orders/:id/status
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req struct {
		Status orders.Status `json:"status" binding:"required"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	found, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.Error(c, apperror.NewNotFound("orders", id))
		return
	}
	h.NoContent(c)
}

// Register mounts order routes on the given group.
func (h *OrdersHandler) Register(g *gin.RouterGroup) {
	g.POST("/place", h.Place)
	g.GET("/by-client/:id", h.GetByClient)
	g.GET("/:id/tickets", h.GetTickets)
	g.GET("/:id/payments", h.GetPayments)
	g.PATCH("/:id/status", h.UpdateStatus)
	h.RegisterCRUD(g)
}
