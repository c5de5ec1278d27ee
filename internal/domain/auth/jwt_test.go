package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken("shop-1", "Demo Shop")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	shop, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shop-1", shop.ShopID)
	assert.Equal(t, "Demo Shop", shop.Name)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken("shop-1", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken("shop-1", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

type fakeShopRepo struct {
	shops map[string]*Shop
}

func (r *fakeShopRepo) GetByID(ctx context.Context, shopID string) (*Shop, error) {
	s, ok := r.shops[shopID]
	if !ok {
		return nil, apperror.NewNotFound("shop", shopID)
	}
	return s, nil
}

func TestLogin(t *testing.T) {
	hash, err := HashSecret("letmein")
	require.NoError(t, err)

	repo := &fakeShopRepo{shops: map[string]*Shop{
		"shop-1": {ID: "shop-1", Name: "Demo", SecretHash: hash},
	}}
	svc := NewService(repo, NewJWTService(DefaultJWTConfig("test-secret")))

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "shop-1", "letmein")
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "shop-1", "wrong")
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	})

	t.Run("unknown shop looks the same as wrong secret", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nope", "letmein")
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "invalid credentials", appErr.Message)
	})
}
