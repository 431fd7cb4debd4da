package db_models

import (
	"github.com/lib/pq"
)

// ItineraryRecord persists a finished itinerary. The full document is stored
// as JSON; the columns next to it exist for listing and lookup only.
type ItineraryRecord struct {
	BaseModel
	Fingerprint   string `gorm:"uniqueIndex;size:512"`
	Destination   string
	StartDate     int64
	EndDate       int64
	TravelerCount int
	GeneratedBy   string
	Interests     pq.StringArray `gorm:"type:text[]"`
	Document      []byte         `gorm:"type:jsonb"`
}
