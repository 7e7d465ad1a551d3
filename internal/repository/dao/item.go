package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrItemSKUExists = errors.New("sku already exists")
)

type Item struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Category string

	// SKU is nil when blank so the unique index only applies to real values.
	SKU *string `gorm:"unique"`

	Quantity     int             `gorm:"not null;default:0"`
	ReorderLevel int             `gorm:"not null;default:10"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Location     string
	Supplier     string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		if isSKUViolation(result.Error) {
			return Item{}, ErrItemSKUExists
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

// FindAll returns the full catalog ordered by name ascending.
func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Order("name").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Save(&item)
	if result.Error != nil {
		if isSKUViolation(result.Error) {
			return Item{}, ErrItemSKUExists
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func isSKUViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "sku")
}
