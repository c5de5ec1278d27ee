package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
)

// passTxManager runs the function directly, no transaction.
type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	sales map[id.ID]*Sale

	lastLimit  int
	lastOffset int

	markRemovedCalls int
	createCalls      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sales: make(map[id.ID]*Sale)}
}

func (r *fakeRepo) Create(ctx context.Context, sale *Sale) error {
	r.createCalls++
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, saleID id.ID, shopID string) (*Sale, error) {
	s, ok := r.sales[saleID]
	if !ok || s.ShopID != shopID || s.Removed {
		return nil, apperror.NewNotFound("sale", saleID.String())
	}
	return s, nil
}

func (r *fakeRepo) Update(ctx context.Context, sale *Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return apperror.NewNotFound("sale", sale.ID.String())
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeRepo) MarkRemoved(ctx context.Context, saleID id.ID, shopID string) error {
	r.markRemovedCalls++
	s, ok := r.sales[saleID]
	if !ok || s.ShopID != shopID || s.Removed {
		return apperror.NewNotFound("sale", saleID.String())
	}
	s.Removed = true
	return nil
}

func (r *fakeRepo) List(ctx context.Context, shopID string, limit, offset int) ([]*Sale, int64, error) {
	r.lastLimit = limit
	r.lastOffset = offset

	var items []*Sale
	for _, s := range r.sales {
		if s.ShopID == shopID && !s.Removed {
			items = append(items, s)
		}
	}
	total := int64(len(items))
	if offset >= len(items) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], total, nil
}

func (r *fakeRepo) Search(ctx context.Context, shopID string, filter SearchFilter) ([]*Sale, error) {
	var items []*Sale
	for _, s := range r.sales {
		if s.ShopID == shopID && !s.Removed {
			items = append(items, s)
		}
	}
	return items, nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, passTxManager{}, nil)
}

func seedSales(repo *fakeRepo, shopID string, n int) {
	for i := 0; i < n; i++ {
		s := NewSale(shopID)
		repo.sales[s.ID] = s
	}
}

func TestListDefaultsPagination(t *testing.T) {
	repo := newFakeRepo()
	seedSales(repo, "shop-1", 3)
	svc := newTestService(repo)

	page, err := svc.List(context.Background(), "shop-1", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, page.CurrentPage)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, DefaultLimit, repo.lastLimit)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Pages)
}

func TestListPagesMath(t *testing.T) {
	repo := newFakeRepo()
	seedSales(repo, "shop-1", 25)
	svc := newTestService(repo)

	page, err := svc.List(context.Background(), "shop-1", 2, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 10, repo.lastOffset)
	assert.Len(t, page.Sales, 10)
}

func TestListNegativeValuesFallBack(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	page, err := svc.List(context.Background(), "shop-1", -3, -1)
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, page.CurrentPage)
	assert.Equal(t, DefaultLimit, page.Limit)
}

func TestCreateRejectsMissingShopScope(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("")
	err := svc.Create(context.Background(), sale)

	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateRejectsNegativeAmount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("shop-1")
	sale.Amount = decimal.NewFromInt(-5)
	err := svc.Create(context.Background(), sale)

	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 0, repo.createCalls)
}

func TestDeleteMarksRemoved(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("shop-1")
	repo.sales[sale.ID] = sale

	err := svc.Delete(context.Background(), sale.ID, "shop-1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.markRemovedCalls)
	assert.True(t, repo.sales[sale.ID].Removed, "record must stay in storage with removed set")
}

func TestDeleteMissingSaleIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), id.New(), "shop-1")

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteOtherShopIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("shop-1")
	repo.sales[sale.ID] = sale

	err := svc.Delete(context.Background(), sale.ID, "shop-2")

	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, sale.Removed)
}

func TestGetByIDRemovedSaleIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("shop-1")
	sale.Removed = true
	repo.sales[sale.ID] = sale

	_, err := svc.GetByID(context.Background(), sale.ID, "shop-1")
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateTouchesTimestamp(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	sale := NewSale("shop-1")
	repo.sales[sale.ID] = sale
	created := sale.UpdatedAt

	require.NoError(t, svc.Update(context.Background(), sale))
	assert.False(t, sale.UpdatedAt.Before(created))
}
