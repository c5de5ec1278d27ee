package sales

import (
	"context"
	"time"

	"salesdesk/internal/core/id"
)

// SearchFilter carries the raw search criteria for sales.
// Name filters are case-insensitive substring matches; the date range is
// inclusive on both ends.
type SearchFilter struct {
	BuyerName     string
	TownName      string
	ProductName   string
	InvoiceNumber string
	StartDate     *time.Time
	EndDate       *time.Time
}

// Repository defines the interface for Sale persistence.
// Every method is scoped by shop: a sale belonging to another shop is
// indistinguishable from a missing one.
type Repository interface {
	// Create inserts a new sale
	Create(ctx context.Context, sale *Sale) error

	// GetByID retrieves a non-removed sale by ID within the shop scope
	GetByID(ctx context.Context, saleID id.ID, shopID string) (*Sale, error)

	// Update replaces an existing sale by ID within the shop scope
	Update(ctx context.Context, sale *Sale) error

	// MarkRemoved soft-deletes a sale by ID within the shop scope
	MarkRemoved(ctx context.Context, saleID id.ID, shopID string) error

	// List retrieves a page of non-removed sales and the total count
	List(ctx context.Context, shopID string, limit, offset int) ([]*Sale, int64, error)

	// Search retrieves non-removed sales matching the filter
	Search(ctx context.Context, shopID string, filter SearchFilter) ([]*Sale, error)
}
