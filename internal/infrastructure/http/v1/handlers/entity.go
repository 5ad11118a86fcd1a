package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/domain"
)

// EntityHandler provides generic CRUD handlers over a repository.
// Entities carry their own JSON tags, so no DTO mapping layer is needed.
type EntityHandler[T interface {
	entity.Identifiable
	entity.Validatable
}] struct {
	*BaseHandler
	repo       domain.Repository[T]
	entityName string
	newFn      func() T
}

// NewEntityHandler creates a generic CRUD handler for one entity type.
func NewEntityHandler[T interface {
	entity.Identifiable
	entity.Validatable
}](base *BaseHandler, repo domain.Repository[T], entityName string, newFn func() T) *EntityHandler[T] {
	return &EntityHandler[T]{
		BaseHandler: base,
		repo:        repo,
		entityName:  entityName,
		newFn:       newFn,
	}
}

// List handles GET /{entity} - full or paginated listing.
// With page/size query parameters the paged path is used.
func (h *EntityHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("page") != "" || c.Query("size") != "" {
		page := h.ParseIntQuery(c, "page", 1)
		size := h.ParseIntQuery(c, "size", 50)

		items, err := h.repo.GetPaged(ctx, page, size)
		if err != nil {
			h.Error(c, err)
			return
		}
		total, err := h.repo.Count(ctx)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, gin.H{
			"items": items,
			"total": total,
			"page":  page,
			"size":  size,
		})
		return
	}

	items, err := h.repo.GetAll(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// Get handles GET /{entity}/:id.
func (h *EntityHandler[T]) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	e, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, e)
}

// Create handles POST /{entity}.
func (h *EntityHandler[T]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	e := h.newFn()
	if !h.BindJSON(c, e) {
		return
	}
	if err := h.validate(ctx, e); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.repo.Create(ctx, e); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, e)
}

// Update handles PUT /{entity}/:id.
func (h *EntityHandler[T]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	e := h.newFn()
	if !h.BindJSON(c, e) {
		return
	}
	e.SetID(id)
	if err := h.validate(ctx, e); err != nil {
		h.Error(c, err)
		return
	}

	found, err := h.repo.Update(ctx, e)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.Error(c, apperror.NewNotFound(h.entityName, id))
		return
	}
	h.OK(c, e)
}

// Delete handles DELETE /{entity}/:id.
func (h *EntityHandler[T]) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.Error(c, apperror.NewNotFound(h.entityName, id))
		return
	}
	h.NoContent(c)
}

func (h *EntityHandler[T]) validate(ctx context.Context, e T) error {
	return e.Validate(ctx)
}

// RegisterCRUD mounts the standard routes on the given group.
func (h *EntityHandler[T]) RegisterCRUD(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
