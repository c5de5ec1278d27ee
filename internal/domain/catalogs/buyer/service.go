package buyer

import (
	"context"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalogs/town"
)

// Service provides business logic for the Buyer catalog.
// Uses composition with domain.CatalogService for common CRUD operations;
// town-reference resolution is registered as a write hook.
type Service struct {
	*domain.CatalogService[*Buyer]
	repo  Repository
	towns town.Repository
}

// NewService creates a new Buyer service.
func NewService(repo Repository, towns town.Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Buyer]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "buyer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		towns:          towns,
	}

	base.Hooks().OnBeforeCreate(svc.resolveTown)
	base.Hooks().OnBeforeUpdate(svc.resolveTown)

	return svc
}

// resolveTown checks that the buyer's town reference points to an existing
// town and populates it on the record. The lookup and the subsequent write
// are two store operations; the catalog service wraps both sides of the
// write in a transaction, but the lookup itself runs before it.
func (s *Service) resolveTown(ctx context.Context, b *Buyer) error {
	if b.TownID == nil {
		return nil
	}

	t, err := s.towns.GetByID(ctx, *b.TownID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("invalid town reference").
				WithDetail("field", "townId").
				WithDetail("value", b.TownID.String())
		}
		return err
	}

	b.SetTown(t)
	return nil
}
