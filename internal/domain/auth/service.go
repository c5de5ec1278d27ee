package auth

import (
	"context"
	"time"

	"salesdesk/internal/core/apperror"
)

// Token is an issued access token with its expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Service authenticates shops and issues tokens.
type Service struct {
	shops ShopRepository
	jwt   *JWTService
}

// NewService creates a new auth service.
func NewService(shops ShopRepository, jwt *JWTService) *Service {
	return &Service{shops: shops, jwt: jwt}
}

// Login verifies the shop secret and returns a scoped token.
// An unknown shop and a wrong secret are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, shopID, secret string) (*Token, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !shop.CheckSecret(secret) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(shop.ID, shop.Name)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &Token{AccessToken: token, ExpiresAt: expiresAt}, nil
}
