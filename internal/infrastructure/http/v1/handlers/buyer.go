package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalogs/buyer"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// BuyerService is the buyer business interface the handler depends on.
type BuyerService interface {
	Create(ctx context.Context, b *buyer.Buyer) error
	GetByID(ctx context.Context, buyerID id.ID) (*buyer.Buyer, error)
	Update(ctx context.Context, b *buyer.Buyer) error
	Delete(ctx context.Context, buyerID id.ID) error
	List(ctx context.Context, filter domain.ListFilter) ([]*buyer.Buyer, error)
}

// BuyerHandler handles buyer endpoints.
type BuyerHandler struct {
	*BaseHandler
	service BuyerService
}

// NewBuyerHandler creates a new buyer handler.
func NewBuyerHandler(base *BaseHandler, service BuyerService) *BuyerHandler {
	return &BuyerHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers buyer routes.
func (h *BuyerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List handles GET /buyers. Each buyer comes back with its town
// populated inline.
func (h *BuyerHandler) List(c *gin.Context) {
	filter := domain.ListFilter{Search: c.Query("search")}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "buyers retrieved successfully", dto.FromBuyers(items))
}

// Get handles GET /buyers/:id.
func (h *BuyerHandler) Get(c *gin.Context) {
	buyerID, ok := h.RequireID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), buyerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "buyer retrieved successfully", dto.FromBuyer(b))
}

// Create handles POST /buyers.
func (h *BuyerHandler) Create(c *gin.Context) {
	var req dto.CreateBuyerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := req.ToBuyer()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()).WithDetail("field", "townId"))
		return
	}

	if err := h.service.Create(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "buyer created successfully", dto.FromBuyer(b))
}

// Update handles PATCH /buyers/:id.
func (h *BuyerHandler) Update(c *gin.Context) {
	buyerID, ok := h.RequireID(c)
	if !ok {
		return
	}

	var req dto.UpdateBuyerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), buyerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.Apply(b); err != nil {
		h.Error(c, apperror.NewValidation(err.Error()).WithDetail("field", "townId"))
		return
	}

	if err := h.service.Update(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "buyer updated successfully", dto.FromBuyer(b))
}

// Delete handles DELETE /buyers/:id.
func (h *BuyerHandler) Delete(c *gin.Context) {
	buyerID, ok := h.RequireID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), buyerID); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "buyer deleted successfully", nil)
}
