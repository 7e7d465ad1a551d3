package repository

import (
	"context"
	"fmt"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository/dao"
)

var ErrShopNotFound = dao.ErrShopNotFound

type ShopDAO interface {
	Insert(ctx context.Context, shop dao.Shop) (dao.Shop, error)
	FindByID(ctx context.Context, id uint) (dao.Shop, error)
	FindAll(ctx context.Context) ([]dao.Shop, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, shop dao.Shop) (dao.Shop, error)
	Delete(ctx context.Context, id uint) error
}

type ShopRepository struct {
	dao ShopDAO
}

func NewShopRepository(dao ShopDAO) *ShopRepository {
	return &ShopRepository{
		dao: dao,
	}
}

func (r *ShopRepository) Create(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(shop))
	if err != nil {
		return domain.Shop{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id uint) (domain.Shop, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ShopRepository) FindAll(ctx context.Context) ([]domain.Shop, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	shops := make([]domain.Shop, 0, len(found))
	for _, s := range found {
		shops = append(shops, r.daoToDomain(s))
	}

	return shops, nil
}

func (r *ShopRepository) Count(ctx context.Context) (int, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return int(count), nil
}

func (r *ShopRepository) Update(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(shop))
	if err != nil {
		return domain.Shop{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ShopRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ShopRepository) daoToDomain(s dao.Shop) domain.Shop {
	return domain.Shop{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		ManagerName: s.ManagerName,
		Phone:       s.Phone,
		Email:       s.Email,
		Status:      domain.ShopStatus(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

func (r *ShopRepository) domainToDAO(s domain.Shop) dao.Shop {
	return dao.Shop{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		ManagerName: s.ManagerName,
		Phone:       s.Phone,
		Email:       s.Email,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}
