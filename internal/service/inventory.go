package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

var (
	ErrItemNotFound  = repository.ErrItemNotFound
	ErrItemSKUExists = repository.ErrItemSKUExists
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id uint) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, record domain.ActivityRecord) (domain.ActivityRecord, error)
}

// ItemInput carries raw field values as entered by the caller.
// Numeric fields stay strings until validation parses them.
type ItemInput struct {
	Name         string
	Category     string
	SKU          string
	Quantity     string
	ReorderLevel string
	Price        string
	Location     string
	Supplier     string
}

type InventoryService struct {
	repo     ItemRepository
	activity ActivityRecorder
}

func NewInventoryService(repo ItemRepository, activity ActivityRecorder) *InventoryService {
	return &InventoryService{
		repo:     repo,
		activity: activity,
	}
}

func (s *InventoryService) AddItem(ctx context.Context, input ItemInput, actorID uint) (domain.Item, error) {
	item, err := buildItem(input)
	if err != nil {
		return domain.Item{}, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, ErrItemSKUExists) {
			return domain.Item{}, ErrItemSKUExists
		}

		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType:    domain.ActivityItemAdded,
		Description:     fmt.Sprintf("Added item %s", created.Name),
		ItemID:          &created.ID,
		QuantityChanged: &created.Quantity,
		UserID:          actorRef(actorID),
	})

	return created, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uint, input ItemInput, actorID uint) (domain.Item, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return domain.Item{}, ErrItemNotFound
		}

		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	item, err := buildItem(input)
	if err != nil {
		return domain.Item{}, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, ErrItemSKUExists) {
			return domain.Item{}, ErrItemSKUExists
		}

		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	delta := updated.Quantity - existing.Quantity
	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType:    domain.ActivityItemUpdated,
		Description:     fmt.Sprintf("Updated item %s", updated.Name),
		ItemID:          &updated.ID,
		QuantityChanged: &delta,
		UserID:          actorRef(actorID),
	})

	return updated, nil
}

// DeleteItem removes an item unconditionally. The outcome is success or
// failure only; a missing id is not distinguished.
func (s *InventoryService) DeleteItem(ctx context.Context, id uint, actorID uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType: domain.ActivityItemDeleted,
		Description:  fmt.Sprintf("Deleted item #%d", id),
		ItemID:       &id,
		UserID:       actorRef(actorID),
	})

	return nil
}

// ListItems returns the full catalog, name ascending. A gateway failure
// degrades to an empty catalog instead of propagating.
func (s *InventoryService) ListItems(ctx context.Context) []domain.Item {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Warn("listing items failed, returning empty catalog", zap.Error(err))
		return []domain.Item{}
	}

	return items
}

// SearchItems filters the catalog with the item predicate.
// Status classification of results uses each item's stored reorder level.
func (s *InventoryService) SearchItems(ctx context.Context, query string) []domain.Item {
	return FilterItems(s.ListItems(ctx), query)
}

func (s *InventoryService) recordActivity(ctx context.Context, record domain.ActivityRecord) {
	if _, err := s.activity.Record(ctx, record); err != nil {
		zap.L().Warn("recording activity failed",
			zap.String("activity_type", record.ActivityType),
			zap.Error(err))
	}
}

func buildItem(input ItemInput) (domain.Item, error) {
	if err := validation.Item(input.Name, input.Quantity, input.Price); err != nil {
		return domain.Item{}, err
	}

	quantity, err := validation.Integer(input.Quantity, "Quantity")
	if err != nil {
		return domain.Item{}, err
	}

	reorderLevel := domain.DefaultReorderLevel
	if strings.TrimSpace(input.ReorderLevel) != "" {
		reorderLevel, err = validation.Integer(input.ReorderLevel, "Reorder level")
		if err != nil {
			return domain.Item{}, err
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		// Already validated as numeric; covers forms ParseFloat accepts
		// but the decimal parser does not.
		parsed, _ := validation.Numeric(input.Price, "Price")
		price = decimal.NewFromFloat(parsed)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = domain.DefaultLocation
	}

	return domain.Item{
		Name:         strings.TrimSpace(input.Name),
		Category:     category,
		SKU:          strings.TrimSpace(input.SKU),
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
		UnitPrice:    price,
		Location:     location,
		Supplier:     strings.TrimSpace(input.Supplier),
	}, nil
}

func actorRef(actorID uint) *uint {
	if actorID == 0 {
		return nil
	}

	return &actorID
}
