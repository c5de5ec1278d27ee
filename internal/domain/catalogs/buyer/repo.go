package buyer

import (
	"salesdesk/internal/domain"
)

// Repository defines the interface for Buyer persistence.
// GetByID and List return buyers with their Town populated inline.
type Repository interface {
	domain.CatalogRepository[*Buyer]
}
