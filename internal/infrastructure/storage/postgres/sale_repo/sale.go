// Package sale_repo provides the PostgreSQL implementation of the sales
// repository. All queries are scoped by shop; removed sales are invisible
// to every read path.
package sale_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/sales"
	"salesdesk/internal/infrastructure/storage/postgres"
)

const saleTable = "sales"

// Compile-time check that SaleRepo implements sales.Repository.
var _ sales.Repository = (*SaleRepo)(nil)

// SaleRepo implements sales.Repository.
type SaleRepo struct {
	selectCols []string
	txm        *postgres.TxManager
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		selectCols: postgres.ExtractDBColumns[sales.Sale](),
		txm:        txm,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *SaleRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *SaleRepo) prefixedCols() []string {
	cols := make([]string, len(r.selectCols))
	for i, col := range r.selectCols {
		cols[i] = "s." + col
	}
	return cols
}

// baseSelect selects live sales in the shop scope.
func (r *SaleRepo) baseSelect(shopID string) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.prefixedCols()...).
		From(saleTable + " s").
		Where(squirrel.Eq{"s.shop_id": shopID}).
		Where(squirrel.Eq{"s.removed": false})
}

// Create inserts a new sale using its "db" tags.
func (r *SaleRepo) Create(ctx context.Context, sale *sales.Sale) error {
	data := postgres.StructToMap(sale)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in sale")
	}

	q := r.Builder().
		Insert(saleTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	return nil
}

// GetByID retrieves a non-removed sale within the shop scope.
func (r *SaleRepo) GetByID(ctx context.Context, saleID id.ID, shopID string) (*sales.Sale, error) {
	q := r.baseSelect(shopID).
		Where(squirrel.Eq{"s.id": saleID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	sale := &sales.Sale{}
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, sale, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	return sale, nil
}

// Update replaces an existing sale by ID within the shop scope.
// The removed flag is written as-is, so MarkRemoved through Update is
// not possible by accident: the service fetches before it updates.
func (r *SaleRepo) Update(ctx context.Context, sale *sales.Sale) error {
	data := postgres.StructToMap(sale)

	filteredData := make(map[string]any, len(data))
	for col, val := range data {
		if col == "id" || col == "shop_id" || col == "created_at" {
			continue
		}
		filteredData[col] = val
	}

	q := r.Builder().
		Update(saleTable).
		SetMap(filteredData).
		Where(squirrel.Eq{"id": sale.ID}).
		Where(squirrel.Eq{"shop_id": sale.ShopID}).
		Where(squirrel.Eq{"removed": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("sale", sale.ID.String())
	}

	return nil
}

// MarkRemoved soft-deletes a sale. The row stays; removed flips to true.
func (r *SaleRepo) MarkRemoved(ctx context.Context, saleID id.ID, shopID string) error {
	q := r.Builder().
		Update(saleTable).
		Set("removed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": saleID}).
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.Eq{"removed": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build mark removed: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("mark sale removed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("sale", saleID.String())
	}

	return nil
}

// List retrieves a page of non-removed sales, newest first, plus the
// total count of the shop's live sales.
func (r *SaleRepo) List(ctx context.Context, shopID string, limit, offset int) ([]*sales.Sale, int64, error) {
	querier := r.txm.GetQuerier(ctx)

	countQ := r.Builder().
		Select("COUNT(*)").
		From(saleTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.Eq{"removed": false})

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	q := r.baseSelect(shopID).
		OrderBy("s.sale_date DESC", "s.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	items := []*sales.Sale{}
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}

	return items, total, nil
}

// buildSearch builds the search query. Buyer and town filters join the
// catalog tables; the buyer reference is an opaque string, so the join
// casts the buyer id to text.
func (r *SaleRepo) buildSearch(shopID string, filter sales.SearchFilter) squirrel.SelectBuilder {
	q := r.baseSelect(shopID).
		OrderBy("s.sale_date DESC", "s.created_at DESC")

	needsBuyerJoin := filter.BuyerName != "" || filter.TownName != ""
	if needsBuyerJoin {
		q = q.LeftJoin("buyers b ON b.id::text = s.buyer_id")
	}
	if filter.TownName != "" {
		q = q.LeftJoin("towns t ON t.id = b.town_id")
	}

	if filter.BuyerName != "" {
		q = q.Where(squirrel.ILike{"b.name": "%" + filter.BuyerName + "%"})
	}
	if filter.TownName != "" {
		q = q.Where(squirrel.ILike{"t.name": "%" + filter.TownName + "%"})
	}
	if filter.ProductName != "" {
		q = q.Where(squirrel.ILike{"s.product_name": "%" + filter.ProductName + "%"})
	}
	if filter.InvoiceNumber != "" {
		q = q.Where(squirrel.ILike{"s.invoice_number": "%" + filter.InvoiceNumber + "%"})
	}
	if filter.StartDate != nil {
		q = q.Where(squirrel.GtOrEq{"s.sale_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		q = q.Where(squirrel.LtOrEq{"s.sale_date": *filter.EndDate})
	}

	return q
}

// Search retrieves non-removed sales matching the filter.
func (r *SaleRepo) Search(ctx context.Context, shopID string, filter sales.SearchFilter) ([]*sales.Sale, error) {
	sql, args, err := r.buildSearch(shopID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	items := []*sales.Sale{}
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}

	return items, nil
}
