package forecastrecord

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, record *ForecastRecord) error
	ListByAccount(ctx context.Context, accountID uint, limit int) ([]ForecastRecord, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) Create(ctx context.Context, record *ForecastRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByAccount returns the newest records first.
func (r *ForecastSQLRepository) ListByAccount(ctx context.Context, accountID uint, limit int) ([]ForecastRecord, error) {
	var records []ForecastRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
