package dto

import "time"

// TokenRequest for shop authentication.
type TokenRequest struct {
	ShopID string `json:"shopId" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
