package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalogs/buyer"
	"salesdesk/internal/domain/catalogs/town"
	"salesdesk/internal/infrastructure/storage/postgres"
)

const buyerTable = "buyers"

// BuyerRepo implements buyer.Repository. Reads join the towns table so
// the buyer comes back with its town populated in one query.
type BuyerRepo struct {
	*BaseCatalogRepo[*buyer.Buyer]
	txm *postgres.TxManager
}

// NewBuyerRepo creates a new buyer repository.
func NewBuyerRepo(txm *postgres.TxManager) *BuyerRepo {
	return &BuyerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*buyer.Buyer](
			buyerTable,
			postgres.ExtractDBColumns[buyer.Buyer](),
			func() *buyer.Buyer { return &buyer.Buyer{} },
			txm,
		),
		txm: txm,
	}
}

// buyerRow is the scan target for the buyer-town join.
type buyerRow struct {
	ID       id.ID   `db:"id"`
	Name     string  `db:"name"`
	TownID   *id.ID  `db:"town_id"`
	Phone    *string `db:"phone"`
	Email    *string `db:"email"`
	Address  *string `db:"address"`
	TownName *string `db:"town_name"`
}

func (row *buyerRow) toBuyer() *buyer.Buyer {
	b := &buyer.Buyer{
		Base:    entity.Base{ID: row.ID},
		Name:    row.Name,
		TownID:  row.TownID,
		Phone:   row.Phone,
		Email:   row.Email,
		Address: row.Address,
	}
	if row.TownID != nil && row.TownName != nil {
		b.Town = &town.Town{
			Base: entity.Base{ID: *row.TownID},
			Name: *row.TownName,
		}
	}
	return b
}

func (r *BuyerRepo) joinedSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(
			"b.id", "b.name", "b.town_id", "b.phone", "b.email", "b.address",
			"t.name AS town_name",
		).
		From(buyerTable + " b").
		LeftJoin(townTable + " t ON t.id = b.town_id")
}

// GetByID retrieves a buyer with its town populated.
func (r *BuyerRepo) GetByID(ctx context.Context, buyerID id.ID) (*buyer.Buyer, error) {
	q := r.joinedSelect().
		Where(squirrel.Eq{"b.id": buyerID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row buyerRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(buyerTable, buyerID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return row.toBuyer(), nil
}

// List retrieves buyers with their towns populated, ordered by name.
func (r *BuyerRepo) List(ctx context.Context, filter domain.ListFilter) ([]*buyer.Buyer, error) {
	q := r.joinedSelect().OrderBy("b.name ASC")

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"b.name": "%" + filter.Search + "%"})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []*buyerRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}

	buyers := make([]*buyer.Buyer, 0, len(rows))
	for _, row := range rows {
		buyers = append(buyers, row.toBuyer())
	}

	return buyers, nil
}
