package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/apperror"
	appctx "salesdesk/internal/core/context"
)

// TokenValidator validates an access token and returns the shop scope
// it carries.
type TokenValidator interface {
	ValidateToken(token string) (*appctx.ShopContext, error)
}

// Auth middleware validates the Bearer token and puts the shop scope in
// the request context. Handlers still re-check the scope themselves.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		shop, err := validator.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		ctx := appctx.WithShop(c.Request.Context(), shop)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
