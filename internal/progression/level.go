package progression

import (
	"errors"
	"time"

	"github.com/velolab/paceline/internal/zones"
)

const (
	// MinLevel and MaxLevel bound every progression level; all writes clamp
	// into this range.
	MinLevel = 1.0
	MaxLevel = 10.0

	// DefaultLevel is assigned when a (user, zone) pair is read for the
	// first time and has never been seeded.
	DefaultLevel = 3.0
)

var ErrUnknownZone = errors.New("unknown training zone")

// ProgressionLevel is the current 1.0-10.0 fitness score of a user in one
// training zone. Exactly one row exists per (user, zone) once read; rows are
// never deleted and change only through the store.
type ProgressionLevel struct {
	UserID            string     `json:"userId"`
	Zone              zones.Zone `json:"zone"`
	Level             float64    `json:"level"`
	WorkoutsCompleted int        `json:"workoutsCompleted"`
	LastChange        float64    `json:"lastChange"`
	LastChangeAt      *time.Time `json:"lastChangeAt,omitempty"`
}

// HistoryEntry is one append-only audit record of a progression level
// change. Written in the same transaction as the level mutation, so the
// current state can always be explained (and rebuilt) from history.
type HistoryEntry struct {
	ID               int64      `json:"id"`
	UserID           string     `json:"userId"`
	Zone             zones.Zone `json:"zone"`
	OldLevel         float64    `json:"oldLevel"`
	NewLevel         float64    `json:"newLevel"`
	Delta            float64    `json:"delta"`
	Reason           string     `json:"reason"`
	RelatedRideID    *int64     `json:"relatedRideId,omitempty"`
	RelatedWorkoutID *int64     `json:"relatedWorkoutId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// UpdateRefs carries the optional ride/workout references a level change
// originated from, for the audit trail.
type UpdateRefs struct {
	RideID    *int64
	WorkoutID *int64
}
