package buyer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalogs/town"
)

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTownRepo struct {
	towns map[id.ID]*town.Town
}

func (r *fakeTownRepo) Create(ctx context.Context, t *town.Town) error {
	r.towns[t.ID] = t
	return nil
}

func (r *fakeTownRepo) GetByID(ctx context.Context, townID id.ID) (*town.Town, error) {
	t, ok := r.towns[townID]
	if !ok {
		return nil, apperror.NewNotFound("town", townID.String())
	}
	return t, nil
}

func (r *fakeTownRepo) Update(ctx context.Context, t *town.Town) error { return nil }
func (r *fakeTownRepo) Delete(ctx context.Context, townID id.ID) error { return nil }
func (r *fakeTownRepo) List(ctx context.Context, f domain.ListFilter) ([]*town.Town, error) {
	return nil, nil
}

type fakeBuyerRepo struct {
	buyers      map[id.ID]*Buyer
	createCalls int
}

func (r *fakeBuyerRepo) Create(ctx context.Context, b *Buyer) error {
	r.createCalls++
	r.buyers[b.ID] = b
	return nil
}

func (r *fakeBuyerRepo) GetByID(ctx context.Context, buyerID id.ID) (*Buyer, error) {
	b, ok := r.buyers[buyerID]
	if !ok {
		return nil, apperror.NewNotFound("buyers", buyerID.String())
	}
	return b, nil
}

func (r *fakeBuyerRepo) Update(ctx context.Context, b *Buyer) error {
	r.buyers[b.ID] = b
	return nil
}

func (r *fakeBuyerRepo) Delete(ctx context.Context, buyerID id.ID) error {
	delete(r.buyers, buyerID)
	return nil
}

func (r *fakeBuyerRepo) List(ctx context.Context, f domain.ListFilter) ([]*Buyer, error) {
	var out []*Buyer
	for _, b := range r.buyers {
		out = append(out, b)
	}
	return out, nil
}

func newTestService() (*Service, *fakeBuyerRepo, *fakeTownRepo) {
	buyers := &fakeBuyerRepo{buyers: make(map[id.ID]*Buyer)}
	towns := &fakeTownRepo{towns: make(map[id.ID]*town.Town)}
	return NewService(buyers, towns, passTxManager{}), buyers, towns
}

func TestCreateResolvesTownReference(t *testing.T) {
	svc, buyers, towns := newTestService()

	tn := town.NewTown("Springfield")
	towns.towns[tn.ID] = tn

	b := NewBuyer("Jane")
	townID := tn.ID
	b.TownID = &townID

	require.NoError(t, svc.Create(context.Background(), b))

	assert.Equal(t, 1, buyers.createCalls)
	require.NotNil(t, b.Town)
	assert.Equal(t, "Springfield", b.Town.Name)
}

func TestCreateInvalidTownReferenceRejected(t *testing.T) {
	svc, buyers, _ := newTestService()

	b := NewBuyer("Jane")
	missing := id.New()
	b.TownID = &missing

	err := svc.Create(context.Background(), b)

	assert.True(t, apperror.IsValidation(err), "unresolvable town must be a validation error, got %v", err)
	assert.Equal(t, 0, buyers.createCalls, "buyer must not be persisted")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "townId", appErr.Details["field"])
}

func TestCreateWithoutTownIsFine(t *testing.T) {
	svc, buyers, _ := newTestService()

	b := NewBuyer("Jane")
	require.NoError(t, svc.Create(context.Background(), b))

	assert.Equal(t, 1, buyers.createCalls)
	assert.Nil(t, b.Town)
}

func TestCreateEmptyNameRejected(t *testing.T) {
	svc, buyers, _ := newTestService()

	err := svc.Create(context.Background(), NewBuyer("  "))

	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 0, buyers.createCalls)
}

func TestValidateEmail(t *testing.T) {
	b := NewBuyer("Jane")

	bad := "not-an-email"
	b.Email = &bad
	assert.Error(t, b.Validate(context.Background()))

	good := "jane@example.com"
	b.Email = &good
	assert.NoError(t, b.Validate(context.Background()))
}

func TestUpdateResolvesTownReference(t *testing.T) {
	svc, buyers, towns := newTestService()

	b := NewBuyer("Jane")
	buyers.buyers[b.ID] = b

	missing := id.New()
	b.TownID = &missing
	err := svc.Update(context.Background(), b)
	assert.True(t, apperror.IsValidation(err))

	tn := town.NewTown("Riverton")
	towns.towns[tn.ID] = tn
	b.TownID = &tn.ID
	require.NoError(t, svc.Update(context.Background(), b))
	assert.Equal(t, "Riverton", b.Town.Name)
}
