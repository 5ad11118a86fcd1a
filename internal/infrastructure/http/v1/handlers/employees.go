package handlers

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/employees"
)

// EmployeesHandler extends the generic CRUD handler with employee queries.
type EmployeesHandler struct {
	*EntityHandler[*employees.Employee]
	repo employees.Repository
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(base *BaseHandler, repo employees.Repository) *EmployeesHandler {
	return &EmployeesHandler{
		EntityHandler: NewEntityHandler(base, repo, "employees",
			func() *employees.Employee { return &employees.Employee{} }),
		repo: repo,
	}
}

// GetActive handles GET /employees/active
func (h *EmployeesHandler) GetActive(c *gin.Context) {
	items, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// GetHeadcount handles GET /employees/headcount
func (h *EmployeesHandler) GetHeadcount(c *gin.Context) {
	counts, err := h.repo.CountByPosition(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": counts})
}

// Register mounts employee routes on the given group.
func (h *EmployeesHandler) Register(g *gin.RouterGroup) {
	g.GET("/active", h.GetActive)
	g.GET("/headcount", h.GetHeadcount)
	h.RegisterCRUD(g)
}
