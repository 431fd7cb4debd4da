package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripweaver/internal/models/db_models"
)

type IVenueRepository interface {
	FindByDestination(ctx context.Context, destination string, limit int) ([]db_models.Venue, error)
	SearchByEmbedding(ctx context.Context, destination string, embedding pgvector.Vector, limit int) ([]db_models.Venue, error)
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) IVenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) FindByDestination(ctx context.Context, destination string, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", "%"+destination+"%").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByEmbedding orders the destination's venues by cosine distance to the
// interest embedding, so the best matches for the traveler come first.
func (r *VenueRepository) SearchByEmbedding(ctx context.Context, destination string, embedding pgvector.Vector, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", "%"+destination+"%").
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{embedding}}}).
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
