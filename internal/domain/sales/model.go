// Package sales provides the Sale record and its business operations.
// Every operation is scoped by the shop that owns the sale.
package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
)

// Sale represents a single sale made by a shop.
// Sales are never hard-deleted; Removed marks them as deleted.
type Sale struct {
	entity.Audited

	// ShopID is the owning shop. Always set from the request scope,
	// never from the request body.
	ShopID string `db:"shop_id" json:"shop"`

	// BuyerID is an opaque buyer reference supplied by the client
	BuyerID *string `db:"buyer_id" json:"buyer,omitempty"`

	// InvoiceNumber is the shop's own invoice reference
	InvoiceNumber string `db:"invoice_number" json:"invoiceNumber,omitempty"`

	// Product details
	ProductName string `db:"product_name" json:"productName,omitempty"`
	Quantity    int    `db:"quantity" json:"quantity,omitempty"`

	// SaleDate is the business date of the sale
	SaleDate time.Time `db:"sale_date" json:"saleDate"`

	// Amount is the monetary total
	Amount decimal.Decimal `db:"amount" json:"amount"`

	// Removed marks a soft-deleted sale
	Removed bool `db:"removed" json:"removed"`
}

// NewSale creates a new Sale owned by the given shop.
func NewSale(shopID string) *Sale {
	return &Sale{
		Audited:  entity.NewAudited(),
		ShopID:   shopID,
		SaleDate: time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if s.ShopID == "" {
		return apperror.NewValidation("shop scope is required").
			WithDetail("field", "shop")
	}

	if s.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}

	if s.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantity")
	}

	return nil
}

// MarkRemoved flags the sale as soft-deleted.
func (s *Sale) MarkRemoved() {
	s.Removed = true
	s.Touch()
}
