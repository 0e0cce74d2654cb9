package adaptation

import (
	"time"

	"github.com/velolab/paceline/internal/zones"
)

// Type says what an adaptation decision wants to do with the workout.
type Type string

const (
	TypeIncrease   Type = "increase"
	TypeDecrease   Type = "decrease"
	TypeSubstitute Type = "substitute"
	TypeSkip       Type = "skip"
	TypeReschedule Type = "reschedule"
	TypeNoChange   Type = "no_change"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeIncrease, TypeDecrease, TypeSubstitute, TypeSkip, TypeReschedule, TypeNoChange:
		return true
	default:
		return false
	}
}

// Decision is the advisory outcome of one engine evaluation. It carries no
// identity and mutates nothing; persisting and applying it is the service's
// job.
type Decision struct {
	ShouldAdapt bool     `json:"shouldAdapt"`
	Type        Type     `json:"type"`
	NewLevel    *float64 `json:"newLevel,omitempty"`
	Delta       float64  `json:"delta"`
	Reason      string   `json:"reason"`
	Confidence  float64  `json:"confidence"`
}

// Acceptance is the lifecycle state of a persisted decision.
type Acceptance string

const (
	AcceptancePending  Acceptance = "pending"
	AcceptanceAccepted Acceptance = "accepted"
	AcceptanceRejected Acceptance = "rejected"
)

// MetricsSnapshot pins the inputs a decision was made from, so the audit
// trail can explain it later even after the inputs moved on.
type MetricsSnapshot struct {
	TSB                  float64 `json:"tsb"`
	CompletionRate       float64 `json:"completionRate"`
	AvgRPE               float64 `json:"avgRpe"`
	ZoneProgressionLevel float64 `json:"zoneProgressionLevel"`
}

// DecisionRecord is one persisted adaptation decision with its snapshot and
// acceptance lifecycle.
type DecisionRecord struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	WorkoutID    int64           `json:"workoutId"`
	Zone         zones.Zone      `json:"zone"`
	OldLevel     float64         `json:"oldLevel"`
	Decision     Decision        `json:"decision"`
	Metrics      MetricsSnapshot `json:"metrics"`
	Acceptance   Acceptance      `json:"acceptance"`
	UserFeedback *string         `json:"userFeedback,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	AcceptedAt   *time.Time      `json:"acceptedAt,omitempty"`
	RejectedAt   *time.Time      `json:"rejectedAt,omitempty"`
}
