package town

import (
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain"
)

// Service provides business logic for the Town catalog.
// Towns have no entity-specific rules beyond the generic CRUD flow.
type Service struct {
	*domain.CatalogService[*Town]
}

// NewService creates a new Town service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Town]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "town",
	})
	return &Service{CatalogService: base}
}
