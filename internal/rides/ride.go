package rides

import (
	"time"
)

// Ride is a completed outdoor or trainer ride, as ingested by the ride
// history collaborator. This service only reads rides: for TSS time series
// and for seeding progression levels from power data.
type Ride struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	StartedAt       time.Time `json:"startedAt"`
	AvgWatts        float64   `json:"avgWatts"`
	NormalizedPower float64   `json:"normalizedPower"`
	DurationSeconds int       `json:"durationSeconds"`
	TSS             float64   `json:"tss"`
}
