package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/sales"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// SaleService is the sales business interface the handler depends on.
type SaleService interface {
	List(ctx context.Context, shopID string, page, limit int) (sales.Page, error)
	GetByID(ctx context.Context, saleID id.ID, shopID string) (*sales.Sale, error)
	Create(ctx context.Context, sale *sales.Sale) error
	Update(ctx context.Context, sale *sales.Sale) error
	Delete(ctx context.Context, saleID id.ID, shopID string) error
	Search(ctx context.Context, shopID string, filter sales.SearchFilter) ([]*sales.Sale, error)
}

// SaleHandler handles sale endpoints.
type SaleHandler struct {
	*BaseHandler
	service SaleService
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service SaleService) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers sale routes. The search route must come
// before the id route so "search" is not captured as an identifier.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List handles GET /sales with pagination.
func (h *SaleHandler) List(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}

	page := h.ParseIntQuery(c, "page", sales.DefaultPage)
	limit := h.ParseIntQuery(c, "limit", sales.DefaultLimit)

	result, err := h.service.List(c.Request.Context(), shopID, page, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OKWithMeta(c, "sales retrieved successfully", dto.FromSales(result.Sales), dto.ListMetadata{
		Total:       result.Total,
		Pages:       result.Pages,
		CurrentPage: result.CurrentPage,
		Limit:       result.Limit,
	})
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}
	saleID, ok := h.RequireID(c)
	if !ok {
		return
	}

	sale, err := h.service.GetByID(c.Request.Context(), saleID, shopID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "sale retrieved successfully", dto.FromSale(sale))
}

// Create handles POST /sales.
func (h *SaleHandler) Create(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale := req.ToSale(shopID)
	if err := h.service.Create(c.Request.Context(), sale); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "sale created successfully", dto.FromSale(sale))
}

// Update handles PATCH /sales/:id with a partial payload.
func (h *SaleHandler) Update(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}
	saleID, ok := h.RequireID(c)
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale, err := h.service.GetByID(c.Request.Context(), saleID, shopID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.Apply(sale)
	if err := h.service.Update(c.Request.Context(), sale); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "sale updated successfully", dto.FromSale(sale))
}

// Delete handles DELETE /sales/:id. This endpoint answers 404 for any
// failure past input validation, and its body is a bare message.
// Existing clients depend on both.
func (h *SaleHandler) Delete(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}
	saleID, ok := h.RequireID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), saleID, shopID); err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "sale deleted successfully"})
}

// Search handles GET /sales/search. The result is a bare array with no
// envelope; existing clients depend on that shape.
func (h *SaleHandler) Search(c *gin.Context) {
	shopID, ok := h.RequireShop(c)
	if !ok {
		return
	}

	var req dto.SearchSalesRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	items, err := h.service.Search(c.Request.Context(), shopID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSales(items))
}
