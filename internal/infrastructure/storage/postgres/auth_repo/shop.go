// Package auth_repo provides the PostgreSQL implementation of the shop
// repository.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/domain/auth"
	"salesdesk/internal/infrastructure/storage/postgres"
)

// Ensure interface compliance
var _ auth.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implements auth.ShopRepository.
type ShopRepo struct {
	txm *postgres.TxManager
}

// NewShopRepo creates a new shop repository.
func NewShopRepo(txm *postgres.TxManager) *ShopRepo {
	return &ShopRepo{txm: txm}
}

// GetByID retrieves a shop by its identifier.
func (r *ShopRepo) GetByID(ctx context.Context, shopID string) (*auth.Shop, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT id, name, secret_hash FROM shops WHERE id = $1`

	var shop auth.Shop
	err := q.QueryRow(ctx, query, shopID).Scan(&shop.ID, &shop.Name, &shop.SecretHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("shop", shopID)
	}
	if err != nil {
		return nil, fmt.Errorf("query shop: %w", err)
	}

	return &shop, nil
}

// Upsert inserts or updates a shop. Used by the seed tool.
func (r *ShopRepo) Upsert(ctx context.Context, shop *auth.Shop) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO shops (id, name, secret_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = $2, secret_hash = $3
	`

	if _, err := q.Exec(ctx, query, shop.ID, shop.Name, shop.SecretHash); err != nil {
		return fmt.Errorf("upsert shop: %w", err)
	}

	return nil
}
