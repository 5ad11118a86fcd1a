package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/reports"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetSales handles GET /reports/sales?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportsHandler) GetSales(c *gin.Context) {
	ctx := c.Request.Context()

	start, ok := h.ParseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := h.ParseDateQuery(c, "end")
	if !ok {
		return
	}

	report, err := h.service.GetSalesReport(ctx, start, end)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// GetUsers handles GET /reports/users
func (h *ReportsHandler) GetUsers(c *gin.Context) {
	report, err := h.service.GetUserReport(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// GetAttendance handles GET /reports/attendance?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportsHandler) GetAttendance(c *gin.Context) {
	ctx := c.Request.Context()

	start, ok := h.ParseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := h.ParseDateQuery(c, "end")
	if !ok {
		return
	}

	report, err := h.service.GetAttendanceReport(ctx, start, end)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}
