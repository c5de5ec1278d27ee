// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// ShopContext contains the authenticated shop information.
// Every sale operation is scoped by the shop carried here.
type ShopContext struct {
	ShopID string
	Name   string
}

type shopContextKey struct{}

// WithShop adds ShopContext to context.
func WithShop(ctx context.Context, shop *ShopContext) context.Context {
	return context.WithValue(ctx, shopContextKey{}, shop)
}

// GetShop returns ShopContext from context, or nil if none.
func GetShop(ctx context.Context) *ShopContext {
	if v, ok := ctx.Value(shopContextKey{}).(*ShopContext); ok {
		return v
	}
	return nil
}

// GetShopID returns the shop id from context or empty string.
// Callers must treat an empty result as "no shop scope" and answer the
// request themselves; this helper never writes a response.
func GetShopID(ctx context.Context) string {
	if s := GetShop(ctx); s != nil {
		return s.ShopID
	}
	return ""
}
