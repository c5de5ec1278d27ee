// Package auth provides shop authentication: secret verification and
// JWT issuance. The token carries the shop scope every sale operation
// is restricted to.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Shop is an API client of the backend. The secret is stored as a
// bcrypt hash, never in clear.
type Shop struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	SecretHash string `db:"secret_hash" json:"-"`
}

// ShopRepository defines the interface for Shop persistence.
type ShopRepository interface {
	// GetByID retrieves a shop by its identifier
	GetByID(ctx context.Context, shopID string) (*Shop, error)
}

// HashSecret hashes a shop secret for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckSecret compares a candidate secret against the stored hash.
func (s *Shop) CheckSecret(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.SecretHash), []byte(secret)) == nil
}
