package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/auth"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// AuthService is the authentication interface the handler depends on.
type AuthService interface {
	Login(ctx context.Context, shopID, secret string) (*auth.Token, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers auth routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/token", h.Token)
}

// Token handles POST /auth/token: verifies the shop secret and issues a
// scoped access token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.ShopID, req.Secret)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "token issued", dto.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}
