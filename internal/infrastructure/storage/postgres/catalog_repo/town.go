package catalog_repo

import (
	"salesdesk/internal/domain/catalogs/town"
	"salesdesk/internal/infrastructure/storage/postgres"
)

const townTable = "towns"

// TownRepo implements town.Repository.
type TownRepo struct {
	*BaseCatalogRepo[*town.Town]
}

// NewTownRepo creates a new town repository.
func NewTownRepo(txm *postgres.TxManager) *TownRepo {
	return &TownRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*town.Town](
			townTable,
			postgres.ExtractDBColumns[town.Town](),
			func() *town.Town { return &town.Town{} },
			txm,
		),
	}
}
