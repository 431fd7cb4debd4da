package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// Venue is a row of the curated venue dataset, the second backend in the
// venue provider chain. The embedding column supports interest-similarity
// search when the primary places API is unavailable.
type Venue struct {
	BaseModel
	Name          string `gorm:"index"`
	Destination   string `gorm:"index"`
	Category      string
	Description   string
	EstimatedCost float64
	Latitude      float64
	Longitude     float64
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
}

// Hotel is a row of the curated hotel dataset, the second backend in the
// hotel provider chain.
type Hotel struct {
	BaseModel
	Name          string
	City          string `gorm:"index"`
	Address       string
	PricePerNight float64
	Rating        float64
}
