// Package handlers provides HTTP handlers for API v1.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/apperror"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler (single
// source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// RequireShop extracts the shop scope from the request context.
// A missing scope answers 400 with no service call.
func (h *BaseHandler) RequireShop(c *gin.Context) (string, bool) {
	shopID := appctx.GetShopID(c.Request.Context())
	if shopID == "" {
		h.Error(c, apperror.NewValidation("shop scope is required"))
		return "", false
	}
	return shopID, true
}

// RequireID parses the path identifier. A missing or malformed id
// answers 400 with no service call.
func (h *BaseHandler) RequireID(c *gin.Context) (id.ID, bool) {
	raw := c.Param("id")
	if raw == "" {
		h.Error(c, apperror.NewValidation("id is required"))
		return id.Nil(), false
	}
	parsed, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", raw))
		return id.Nil(), false
	}
	return parsed, true
}

// OK sends a 200 envelope.
func (h *BaseHandler) OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message, Data: data})
}

// OKWithMeta sends a 200 envelope with metadata.
func (h *BaseHandler) OKWithMeta(c *gin.Context, message string, data, metadata any) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message, Data: data, Metadata: metadata})
}

// Created sends a 201 envelope.
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.Envelope{Success: true, Message: message, Data: data})
}
