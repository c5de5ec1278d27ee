package town

import (
	"salesdesk/internal/domain"
)

// Repository defines the interface for Town persistence.
type Repository interface {
	domain.CatalogRepository[*Town]
}
