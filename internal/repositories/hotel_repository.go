package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

type IHotelRepository interface {
	FindByCity(ctx context.Context, city string, limit int) ([]db_models.Hotel, error)
}

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) IHotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) FindByCity(ctx context.Context, city string, limit int) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
