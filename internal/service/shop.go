package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

var ErrShopNotFound = repository.ErrShopNotFound

type ShopRepository interface {
	Create(ctx context.Context, shop domain.Shop) (domain.Shop, error)
	FindByID(ctx context.Context, id uint) (domain.Shop, error)
	FindAll(ctx context.Context) ([]domain.Shop, error)
	Update(ctx context.Context, shop domain.Shop) (domain.Shop, error)
	Delete(ctx context.Context, id uint) error
}

type ShopInput struct {
	Name        string
	Location    string
	ManagerName string
	Phone       string
	Email       string
	Status      string
}

type ShopService struct {
	repo     ShopRepository
	activity ActivityRecorder
}

func NewShopService(repo ShopRepository, activity ActivityRecorder) *ShopService {
	return &ShopService{
		repo:     repo,
		activity: activity,
	}
}

func (s *ShopService) AddShop(ctx context.Context, input ShopInput, actorID uint) (domain.Shop, error) {
	shop, err := buildShop(input)
	if err != nil {
		return domain.Shop{}, err
	}

	created, err := s.repo.Create(ctx, shop)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType: domain.ActivityShopAdded,
		Description:  fmt.Sprintf("Added shop %s", created.Name),
		UserID:       actorRef(actorID),
	})

	return created, nil
}

func (s *ShopService) UpdateShop(ctx context.Context, id uint, input ShopInput, actorID uint) (domain.Shop, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			return domain.Shop{}, ErrShopNotFound
		}

		return domain.Shop{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	shop, err := buildShop(input)
	if err != nil {
		return domain.Shop{}, err
	}
	shop.ID = existing.ID
	shop.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, shop)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType: domain.ActivityShopUpdated,
		Description:  fmt.Sprintf("Updated shop %s", updated.Name),
		UserID:       actorRef(actorID),
	})

	return updated, nil
}

func (s *ShopService) DeleteShop(ctx context.Context, id uint, actorID uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.recordActivity(ctx, domain.ActivityRecord{
		ActivityType: domain.ActivityShopDeleted,
		Description:  fmt.Sprintf("Deleted shop #%d", id),
		UserID:       actorRef(actorID),
	})

	return nil
}

// ListShops returns every shop, name ascending, degrading to an empty list
// on gateway failure.
func (s *ShopService) ListShops(ctx context.Context) []domain.Shop {
	shops, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Warn("listing shops failed, returning empty list", zap.Error(err))
		return []domain.Shop{}
	}

	return shops
}

func (s *ShopService) SearchShops(ctx context.Context, query string) []domain.Shop {
	return FilterShops(s.ListShops(ctx), query)
}

func (s *ShopService) recordActivity(ctx context.Context, record domain.ActivityRecord) {
	if _, err := s.activity.Record(ctx, record); err != nil {
		zap.L().Warn("recording activity failed",
			zap.String("activity_type", record.ActivityType),
			zap.Error(err))
	}
}

func buildShop(input ShopInput) (domain.Shop, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Shop{}, &validation.FieldError{Field: "Shop name", Message: "Shop name is required"}
	}

	status := domain.ShopStatus(strings.TrimSpace(input.Status))
	switch status {
	case "":
		status = domain.ShopStatusActive
	case domain.ShopStatusActive, domain.ShopStatusInactive:
	default:
		return domain.Shop{}, &validation.FieldError{Field: "Status", Message: "Status must be Active or Inactive"}
	}

	return domain.Shop{
		Name:        name,
		Location:    strings.TrimSpace(input.Location),
		ManagerName: strings.TrimSpace(input.ManagerName),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		Status:      status,
	}, nil
}
