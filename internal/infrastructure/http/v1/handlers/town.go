package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/id"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalogs/town"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// TownService is the town business interface the handler depends on.
type TownService interface {
	Create(ctx context.Context, t *town.Town) error
	GetByID(ctx context.Context, townID id.ID) (*town.Town, error)
	Update(ctx context.Context, t *town.Town) error
	Delete(ctx context.Context, townID id.ID) error
	List(ctx context.Context, filter domain.ListFilter) ([]*town.Town, error)
}

// TownHandler handles town endpoints.
type TownHandler struct {
	*BaseHandler
	service TownService
}

// NewTownHandler creates a new town handler.
func NewTownHandler(base *BaseHandler, service TownService) *TownHandler {
	return &TownHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers town routes.
func (h *TownHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List handles GET /towns.
func (h *TownHandler) List(c *gin.Context) {
	filter := domain.ListFilter{Search: c.Query("search")}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "towns retrieved successfully", dto.FromTowns(items))
}

// Get handles GET /towns/:id.
func (h *TownHandler) Get(c *gin.Context) {
	townID, ok := h.RequireID(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), townID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "town retrieved successfully", dto.FromTown(t))
}

// Create handles POST /towns.
func (h *TownHandler) Create(c *gin.Context) {
	var req dto.CreateTownRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t := req.ToTown()
	if err := h.service.Create(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "town created successfully", dto.FromTown(t))
}

// Update handles PATCH /towns/:id.
func (h *TownHandler) Update(c *gin.Context) {
	townID, ok := h.RequireID(c)
	if !ok {
		return
	}

	var req dto.UpdateTownRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), townID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.Apply(t)
	if err := h.service.Update(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "town updated successfully", dto.FromTown(t))
}

// Delete handles DELETE /towns/:id. Towns are removed physically; there
// is no cascade handling for buyers referencing the town.
func (h *TownHandler) Delete(c *gin.Context) {
	townID, ok := h.RequireID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), townID); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "town deleted successfully", nil)
}
