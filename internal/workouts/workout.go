package workouts

import (
	"errors"
	"time"

	"github.com/velolab/paceline/internal/zones"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// Workout is a planned (or completed) structured workout on the athlete's
// calendar. The adaptation engine reads these and, through the applier,
// writes back Level, WasAdapted and AdaptationReason.
type Workout struct {
	ID               int64      `json:"id"`
	UserID           string     `json:"userId"`
	Date             time.Time  `json:"date"`
	Zone             zones.Zone `json:"zone"`
	Level            float64    `json:"level"`
	IsRestDay        bool       `json:"isRestDay"`
	CompletionPct    *float64   `json:"completionPct,omitempty"`
	RPE              *int       `json:"rpe,omitempty"`
	WasAdapted       bool       `json:"wasAdapted"`
	AdaptationReason *string    `json:"adaptationReason,omitempty"`
}

// RecentMetrics summarizes how the athlete handled the recent schedule:
// average completion percentage, average reported RPE, and how many workouts
// were completed vs missed. HasData is false when nothing was scheduled.
type RecentMetrics struct {
	CompletionRate float64 `json:"completionRate"`
	AvgRPE         float64 `json:"avgRpe"`
	Completed      int     `json:"completed"`
	Missed         int     `json:"missed"`
	HasData        bool    `json:"hasData"`
}
