package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrShopNotFound = errors.New("shop not found")

type Shop struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Location    string
	ManagerName string
	Phone       string
	Email       string
	Status      string `gorm:"not null;default:'Active'"`

	CreatedAt time.Time `gorm:"not null"`
}

type ShopDAO struct {
	db *gorm.DB
}

func NewShopDAO(db *gorm.DB) *ShopDAO {
	return &ShopDAO{
		db: db,
	}
}

func (d *ShopDAO) Insert(ctx context.Context, shop Shop) (Shop, error) {
	result := d.db.WithContext(ctx).Create(&shop)
	if result.Error != nil {
		return Shop{}, result.Error
	}

	return shop, nil
}

func (d *ShopDAO) FindByID(ctx context.Context, id uint) (Shop, error) {
	var shop Shop

	result := d.db.WithContext(ctx).First(&shop, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Shop{}, ErrShopNotFound
		}

		return Shop{}, result.Error
	}

	return shop, nil
}

// FindAll returns every shop ordered by name ascending.
func (d *ShopDAO) FindAll(ctx context.Context) ([]Shop, error) {
	var shops []Shop

	result := d.db.WithContext(ctx).Order("name").Find(&shops)
	if result.Error != nil {
		return nil, result.Error
	}

	return shops, nil
}

func (d *ShopDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Shop{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ShopDAO) Update(ctx context.Context, shop Shop) (Shop, error) {
	result := d.db.WithContext(ctx).Save(&shop)
	if result.Error != nil {
		return Shop{}, result.Error
	}

	return shop, nil
}

func (d *ShopDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Shop{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
