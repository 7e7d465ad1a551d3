package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

type fakeShopRepo struct {
	shops  map[uint]domain.Shop
	nextID uint

	failFindAll bool
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		shops:  make(map[uint]domain.Shop),
		nextID: 1,
	}
}

func (r *fakeShopRepo) Create(_ context.Context, shop domain.Shop) (domain.Shop, error) {
	shop.ID = r.nextID
	r.nextID++
	r.shops[shop.ID] = shop

	return shop, nil
}

func (r *fakeShopRepo) FindByID(_ context.Context, id uint) (domain.Shop, error) {
	shop, ok := r.shops[id]
	if !ok {
		return domain.Shop{}, ErrShopNotFound
	}

	return shop, nil
}

func (r *fakeShopRepo) FindAll(_ context.Context) ([]domain.Shop, error) {
	if r.failFindAll {
		return nil, errors.New("connection refused")
	}

	all := make([]domain.Shop, 0, len(r.shops))
	for id := uint(1); id < r.nextID; id++ {
		if shop, ok := r.shops[id]; ok {
			all = append(all, shop)
		}
	}

	return all, nil
}

func (r *fakeShopRepo) Update(_ context.Context, shop domain.Shop) (domain.Shop, error) {
	r.shops[shop.ID] = shop

	return shop, nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id uint) error {
	delete(r.shops, id)

	return nil
}

func TestShopService_AddShop(t *testing.T) {
	repo := newFakeShopRepo()
	activity := &fakeActivityRecorder{}
	svc := NewShopService(repo, activity)

	shop, err := svc.AddShop(context.Background(), ShopInput{
		Name:        "City Mart",
		Location:    "Downtown",
		ManagerName: "Ali Raza",
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, uint(1), shop.ID)
	assert.Equal(t, domain.ShopStatusActive, shop.Status)

	require.Len(t, activity.records, 1)
	assert.Equal(t, domain.ActivityShopAdded, activity.records[0].ActivityType)
	assert.Equal(t, "Added shop City Mart", activity.records[0].Description)
}

func TestShopService_AddShop_NameRequired(t *testing.T) {
	svc := NewShopService(newFakeShopRepo(), &fakeActivityRecorder{})

	_, err := svc.AddShop(context.Background(), ShopInput{Name: "  "}, 0)
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Shop name is required", fieldErr.Message)
}

func TestShopService_AddShop_InvalidStatus(t *testing.T) {
	svc := NewShopService(newFakeShopRepo(), &fakeActivityRecorder{})

	_, err := svc.AddShop(context.Background(), ShopInput{
		Name:   "City Mart",
		Status: "Closed",
	}, 0)
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Status must be Active or Inactive", fieldErr.Message)
}

func TestShopService_UpdateShop(t *testing.T) {
	repo := newFakeShopRepo()
	svc := NewShopService(repo, &fakeActivityRecorder{})

	created, err := svc.AddShop(context.Background(), ShopInput{Name: "City Mart"}, 0)
	require.NoError(t, err)

	updated, err := svc.UpdateShop(context.Background(), created.ID, ShopInput{
		Name:   "City Mart",
		Status: "Inactive",
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, domain.ShopStatusInactive, updated.Status)
}

func TestShopService_UpdateShop_NotFound(t *testing.T) {
	svc := NewShopService(newFakeShopRepo(), &fakeActivityRecorder{})

	_, err := svc.UpdateShop(context.Background(), 42, ShopInput{Name: "Ghost"}, 0)
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestShopService_DeleteShop(t *testing.T) {
	repo := newFakeShopRepo()
	activity := &fakeActivityRecorder{}
	svc := NewShopService(repo, activity)

	created, err := svc.AddShop(context.Background(), ShopInput{Name: "City Mart"}, 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShop(context.Background(), created.ID, 0))
	assert.Empty(t, svc.ListShops(context.Background()))

	require.Len(t, activity.records, 2)
	assert.Equal(t, domain.ActivityShopDeleted, activity.records[1].ActivityType)
}

func TestShopService_ListShops_DegradesOnFailure(t *testing.T) {
	repo := newFakeShopRepo()
	repo.failFindAll = true
	svc := NewShopService(repo, &fakeActivityRecorder{})

	shops := svc.ListShops(context.Background())
	assert.NotNil(t, shops)
	assert.Empty(t, shops)
}
