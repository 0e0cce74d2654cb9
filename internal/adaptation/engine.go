package adaptation

import (
	"fmt"

	"github.com/velolab/paceline/internal/trainingload"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/internal/zones"
	"github.com/velolab/paceline/pkg"
)

// below this confidence a matched rule is discarded and nothing is adapted
const confidenceGate = 0.6

// how much further below the fatigued threshold TSB has to sit before a
// high-intensity workout is skipped outright instead of softened
const skipMargin = 10.0

// EvaluateInput carries everything the engine looks at, pre-fetched by the
// caller. The engine itself does no I/O.
type EvaluateInput struct {
	Workout       *workouts.Workout
	DaysUntil     int
	Settings      Settings
	Load          trainingload.Snapshot
	RecentMetrics workouts.RecentMetrics
	Progression   float64
}

// Evaluate runs the ordered rule tree over one upcoming workout. First match
// wins; the matched rule's delta and confidence are then scaled by the
// user's sensitivity and gated. Pure and deterministic: identical inputs
// always produce an identical decision.
func Evaluate(in EvaluateInput) Decision {
	if !in.Settings.AdaptiveEnabled {
		return noChange("adaptive training disabled")
	}
	if in.DaysUntil < in.Settings.MinDaysBeforeWorkout {
		return noChange(fmt.Sprintf("workout is %d day(s) away, too close to adapt", in.DaysUntil))
	}
	if in.Workout.WasAdapted {
		return noChange("workout already adapted")
	}
	if in.Load.Insufficient || !in.RecentMetrics.HasData {
		return noChange("insufficient_data")
	}

	decision := matchRule(in)
	if decision.Type == TypeNoChange {
		return decision
	}

	// sensitivity scales the nudge and the conviction behind it; absolute
	// level targets stay put, only their confidence scales
	scale := in.Settings.Sensitivity.scaleFactor()
	if decision.NewLevel == nil {
		decision.Delta *= scale
	}
	decision.Confidence = pkg.Clamp(decision.Confidence*scale, 0, 1)

	if decision.Confidence < confidenceGate {
		return noChange(fmt.Sprintf("confidence %.2f below threshold", decision.Confidence))
	}

	return decision
}

func matchRule(in EvaluateInput) Decision {
	var (
		tsb            = in.Load.TSB
		zone           = in.Workout.Zone
		workoutLevel   = in.Workout.Level
		progression    = in.Progression
		completionRate = in.RecentMetrics.CompletionRate
		avgRPE         = in.RecentMetrics.AvgRPE
		levelDiff      = workoutLevel - progression
	)

	// 1: deeply fatigued athletes get no high-intensity work
	if tsb < in.Settings.TSBFatiguedThreshold && zone.IsHighIntensity() {
		if tsb < in.Settings.TSBFatiguedThreshold-skipMargin {
			return Decision{
				ShouldAdapt: true,
				Type:        TypeSkip,
				Reason:      fmt.Sprintf("TSB very low (%.1f). Skipping high-intensity workout.", tsb),
				Confidence:  0.9,
			}
		}
		return Decision{
			ShouldAdapt: true,
			Type:        TypeDecrease,
			Delta:       -1.0,
			Reason:      fmt.Sprintf("TSB low (%.1f). Reducing intensity.", tsb),
			Confidence:  0.8,
		}
	}

	// 2: fresh athletes can push the easy days a bit
	if tsb > in.Settings.TSBFreshThreshold && zone.IsEasy() {
		return Decision{
			ShouldAdapt: true,
			Type:        TypeIncrease,
			Delta:       0.5,
			Reason:      fmt.Sprintf("TSB high (%.1f). Room to push an easy workout.", tsb),
			Confidence:  0.7,
		}
	}

	// 3: struggling to complete workouts at or above the current level
	if completionRate < 60 && workoutLevel > progression-0.5 {
		return Decision{
			ShouldAdapt: true,
			Type:        TypeDecrease,
			Delta:       -0.5,
			Reason:      fmt.Sprintf("Completion rate low (%.0f%%). Reducing intensity.", completionRate),
			Confidence:  0.75,
		}
	}

	// 4: workout sits far above the athlete's level, pull it down near it
	if levelDiff > 2.0 {
		newLevel := progression + 0.5
		return Decision{
			ShouldAdapt: true,
			Type:        TypeDecrease,
			NewLevel:    &newLevel,
			Reason: fmt.Sprintf("Workout level %.1f far above progression %.1f. Retargeting to %.1f.",
				workoutLevel, progression, newLevel),
			Confidence: 0.85,
		}
	}

	// 5: workout sits far below, pull it up (recovery days stay untouched)
	if levelDiff < -2.0 && zone != zones.ZoneRecovery {
		newLevel := progression - 0.5
		return Decision{
			ShouldAdapt: true,
			Type:        TypeIncrease,
			NewLevel:    &newLevel,
			Reason: fmt.Sprintf("Workout level %.1f far below progression %.1f. Retargeting to %.1f.",
				workoutLevel, progression, newLevel),
			Confidence: 0.85,
		}
	}

	// 6: everything has been feeling brutally hard lately
	if avgRPE >= 9.0 {
		return Decision{
			ShouldAdapt: true,
			Type:        TypeDecrease,
			Delta:       -0.5,
			Reason:      fmt.Sprintf("Average RPE high (%.1f). Reducing intensity.", avgRPE),
			Confidence:  0.7,
		}
	}

	// 7: everything has been easy and getting done
	if avgRPE <= 6.0 && completionRate >= 95 {
		return Decision{
			ShouldAdapt: true,
			Type:        TypeIncrease,
			Delta:       0.3,
			Reason: fmt.Sprintf("Average RPE low (%.1f) with %.0f%% completion. Increasing intensity.",
				avgRPE, completionRate),
			Confidence: 0.8,
		}
	}

	return noChange("metrics within normal ranges")
}

func noChange(reason string) Decision {
	return Decision{
		ShouldAdapt: false,
		Type:        TypeNoChange,
		Reason:      reason,
		Confidence:  0,
	}
}
