package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	ID uint `gorm:"primaryKey"`

	ActivityType    string `gorm:"not null"`
	Description     string `gorm:"size:500"`
	ItemID          *uint
	QuantityChanged *int
	UserID          *uint

	CreatedAt time.Time `gorm:"not null"`
}

func (Activity) TableName() string {
	return "activity_log"
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

// FindRecent returns the latest entries, newest first.
func (d *ActivityDAO) FindRecent(ctx context.Context, limit int) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}
