package repository

import (
	"context"
	"fmt"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository/dao"
)

var (
	ErrItemNotFound  = dao.ErrItemNotFound
	ErrItemSKUExists = dao.ErrItemSKUExists
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, it := range found {
		items = append(items, r.daoToDomain(it))
	}

	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	var sku string
	if i.SKU != nil {
		sku = *i.SKU
	}

	return domain.Item{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		SKU:          sku,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		UnitPrice:    i.UnitPrice,
		Location:     i.Location,
		Supplier:     i.Supplier,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (r *ItemRepository) domainToDAO(i domain.Item) dao.Item {
	var sku *string
	if i.SKU != "" {
		sku = &i.SKU
	}

	return dao.Item{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		SKU:          sku,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		UnitPrice:    i.UnitPrice,
		Location:     i.Location,
		Supplier:     i.Supplier,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
