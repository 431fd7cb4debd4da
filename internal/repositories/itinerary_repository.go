package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

type IItineraryRepository interface {
	Save(ctx context.Context, record *db_models.ItineraryRecord) error
	GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*db_models.ItineraryRecord, error)
	ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]db_models.ItineraryRecord, error)
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) IItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Save(ctx context.Context, record *db_models.ItineraryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error) {
	var record db_models.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ItineraryRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*db_models.ItineraryRecord, error) {
	var record db_models.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "fingerprint = ?", fingerprint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ItineraryRepository) ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]db_models.ItineraryRecord, error) {
	var records []db_models.ItineraryRecord
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", "%"+destination+"%").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
