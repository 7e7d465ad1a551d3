package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

type fakeItemRepo struct {
	items  map[uint]domain.Item
	nextID uint

	failFindAll bool
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:  make(map[uint]domain.Item),
		nextID: 1,
	}
}

func (r *fakeItemRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uint) (domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}

	return item, nil
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]domain.Item, error) {
	if r.failFindAll {
		return nil, errors.New("connection refused")
	}

	all := make([]domain.Item, 0, len(r.items))
	for id := uint(1); id < r.nextID; id++ {
		if item, ok := r.items[id]; ok {
			all = append(all, item)
		}
	}

	return all, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	r.items[item.ID] = item

	return item, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uint) error {
	delete(r.items, id)

	return nil
}

type fakeActivityRecorder struct {
	records []domain.ActivityRecord
	fail    bool
}

func (r *fakeActivityRecorder) Record(_ context.Context, record domain.ActivityRecord) (domain.ActivityRecord, error) {
	if r.fail {
		return domain.ActivityRecord{}, errors.New("insert failed")
	}

	r.records = append(r.records, record)

	return record, nil
}

func validInput() ItemInput {
	return ItemInput{
		Name:     "Laptop",
		Category: "Electronics",
		SKU:      "EL-100",
		Quantity: "50",
		Price:    "1200.00",
		Supplier: "TechHub",
	}
}

func TestInventoryService_AddItem(t *testing.T) {
	repo := newFakeItemRepo()
	activity := &fakeActivityRecorder{}
	svc := NewInventoryService(repo, activity)

	item, err := svc.AddItem(context.Background(), validInput(), 7)
	require.NoError(t, err)

	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, "Laptop", item.Name)
	assert.Equal(t, 50, item.Quantity)
	assert.True(t, decimal.RequireFromString("1200.00").Equal(item.UnitPrice))

	require.Len(t, activity.records, 1)
	record := activity.records[0]
	assert.Equal(t, domain.ActivityItemAdded, record.ActivityType)
	assert.Equal(t, "Added item Laptop", record.Description)
	require.NotNil(t, record.QuantityChanged)
	assert.Equal(t, 50, *record.QuantityChanged)
	require.NotNil(t, record.UserID)
	assert.Equal(t, uint(7), *record.UserID)
}

func TestInventoryService_AddItem_Defaults(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewInventoryService(repo, &fakeActivityRecorder{})

	item, err := svc.AddItem(context.Background(), ItemInput{
		Name:     "Pencil",
		Quantity: "100",
		Price:    "5",
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCategory, item.Category)
	assert.Equal(t, domain.DefaultLocation, item.Location)
	assert.Equal(t, domain.DefaultReorderLevel, item.ReorderLevel)
}

func TestInventoryService_AddItem_ValidationErrors(t *testing.T) {
	svc := NewInventoryService(newFakeItemRepo(), &fakeActivityRecorder{})

	tests := []struct {
		name    string
		mutate  func(*ItemInput)
		wantMsg string
	}{
		{"blank name", func(in *ItemInput) { in.Name = "   " }, "Item name is required"},
		{"non-numeric quantity", func(in *ItemInput) { in.Quantity = "abc" }, "Quantity must be a number"},
		{"negative quantity", func(in *ItemInput) { in.Quantity = "-5" }, "Quantity cannot be negative"},
		{"non-numeric price", func(in *ItemInput) { in.Price = "abc" }, "Price must be a number"},
		{"negative price", func(in *ItemInput) { in.Price = "-1" }, "Price cannot be negative"},
		{"bad reorder level", func(in *ItemInput) { in.ReorderLevel = "xyz" }, "Reorder level must be a number"},
		{"nan quantity", func(in *ItemInput) { in.Quantity = "NaN" }, "Quantity must be a number"},
		{"infinite quantity", func(in *ItemInput) { in.Quantity = "Inf" }, "Quantity must be a number"},
		{"overflowing quantity", func(in *ItemInput) { in.Quantity = "1e300" }, "Quantity must be a number"},
		{"infinite price", func(in *ItemInput) { in.Price = "Inf" }, "Price must be a number"},
		{"overflowing reorder level", func(in *ItemInput) { in.ReorderLevel = "1e300" }, "Reorder level must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.AddItem(context.Background(), input, 0)
			require.Error(t, err)

			var fieldErr *validation.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantMsg, fieldErr.Message)
		})
	}
}

func TestInventoryService_AddItem_NonFiniteInputsRejectedAsValues(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewInventoryService(repo, &fakeActivityRecorder{})
	ctx := context.Background()

	// Failures must come back as errors, never as a panic or a stored row.
	assert.NotPanics(t, func() {
		input := validInput()
		input.Price = "Inf"
		_, err := svc.AddItem(ctx, input, 0)
		assert.Error(t, err)
	})

	input := validInput()
	input.Quantity = "NaN"
	_, err := svc.AddItem(ctx, input, 0)
	require.Error(t, err)

	assert.Empty(t, repo.items)
}

func TestInventoryService_UpdateItem(t *testing.T) {
	repo := newFakeItemRepo()
	activity := &fakeActivityRecorder{}
	svc := NewInventoryService(repo, activity)

	created, err := svc.AddItem(context.Background(), validInput(), 0)
	require.NoError(t, err)

	input := validInput()
	input.Quantity = "30"
	updated, err := svc.UpdateItem(context.Background(), created.ID, input, 0)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 30, updated.Quantity)

	require.Len(t, activity.records, 2)
	record := activity.records[1]
	assert.Equal(t, domain.ActivityItemUpdated, record.ActivityType)
	require.NotNil(t, record.QuantityChanged)
	assert.Equal(t, -20, *record.QuantityChanged)
}

func TestInventoryService_UpdateItem_NotFound(t *testing.T) {
	svc := NewInventoryService(newFakeItemRepo(), &fakeActivityRecorder{})

	_, err := svc.UpdateItem(context.Background(), 99, validInput(), 0)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestInventoryService_DeleteItem(t *testing.T) {
	repo := newFakeItemRepo()
	activity := &fakeActivityRecorder{}
	svc := NewInventoryService(repo, activity)

	created, err := svc.AddItem(context.Background(), validInput(), 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), created.ID, 0))
	assert.Empty(t, svc.ListItems(context.Background()))

	require.Len(t, activity.records, 2)
	assert.Equal(t, domain.ActivityItemDeleted, activity.records[1].ActivityType)
	assert.Equal(t, "Deleted item #1", activity.records[1].Description)
}

func TestInventoryService_MutationsSurviveActivityFailure(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewInventoryService(repo, &fakeActivityRecorder{fail: true})

	item, err := svc.AddItem(context.Background(), validInput(), 0)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	require.NoError(t, svc.DeleteItem(context.Background(), item.ID, 0))
}

func TestInventoryService_ListItems_DegradesOnFailure(t *testing.T) {
	repo := newFakeItemRepo()
	repo.failFindAll = true
	svc := NewInventoryService(repo, &fakeActivityRecorder{})

	items := svc.ListItems(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestInventoryService_SearchItems(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewInventoryService(repo, &fakeActivityRecorder{})

	_, err := svc.AddItem(context.Background(), validInput(), 0)
	require.NoError(t, err)

	input := validInput()
	input.Name = "Rice"
	input.Category = "Groceries"
	input.SKU = "GR-001"
	_, err = svc.AddItem(context.Background(), input, 0)
	require.NoError(t, err)

	got := svc.SearchItems(context.Background(), "groceries")
	require.Len(t, got, 1)
	assert.Equal(t, "Rice", got[0].Name)

	assert.Len(t, svc.SearchItems(context.Background(), ""), 2)
}
