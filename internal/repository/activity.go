package repository

import (
	"context"
	"fmt"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository/dao"
)

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindRecent(ctx context.Context, limit int) ([]dao.Activity, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Record(ctx context.Context, record domain.ActivityRecord) (domain.ActivityRecord, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{
		ActivityType:    record.ActivityType,
		Description:     record.Description,
		ItemID:          record.ItemID,
		QuantityChanged: record.QuantityChanged,
		UserID:          record.UserID,
	})
	if err != nil {
		return domain.ActivityRecord{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	found, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(found))
	for _, a := range found {
		records = append(records, r.daoToDomain(a))
	}

	return records, nil
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:              a.ID,
		ActivityType:    a.ActivityType,
		Description:     a.Description,
		ItemID:          a.ItemID,
		QuantityChanged: a.QuantityChanged,
		UserID:          a.UserID,
		CreatedAt:       a.CreatedAt,
	}
}
