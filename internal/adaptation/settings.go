package adaptation

import "fmt"

// Sensitivity scales how eagerly the engine adapts workouts.
type Sensitivity string

const (
	SensitivityConservative Sensitivity = "conservative"
	SensitivityModerate     Sensitivity = "moderate"
	SensitivityAggressive   Sensitivity = "aggressive"
)

func (s Sensitivity) String() string {
	return string(s)
}

func (s Sensitivity) IsValid() bool {
	switch s {
	case SensitivityConservative, SensitivityModerate, SensitivityAggressive:
		return true
	default:
		return false
	}
}

// scaleFactor is applied to deltas and confidences of matched rules.
func (s Sensitivity) scaleFactor() float64 {
	switch s {
	case SensitivityConservative:
		return 0.7
	case SensitivityAggressive:
		return 1.3
	default:
		return 1.0
	}
}

const (
	defaultTSBFatiguedThreshold = -30.0
	defaultTSBFreshThreshold    = 5.0
	defaultMinDaysBeforeWorkout = 1
)

// Settings is the per-user adaptation configuration. Users without a stored
// row get DefaultSettings.
type Settings struct {
	UserID               string      `json:"userId"`
	AdaptiveEnabled      bool        `json:"adaptiveEnabled"`
	AutoApply            bool        `json:"autoApply"`
	Sensitivity          Sensitivity `json:"sensitivity"`
	TSBFatiguedThreshold float64     `json:"tsbFatiguedThreshold"`
	TSBFreshThreshold    float64     `json:"tsbFreshThreshold"`
	MinDaysBeforeWorkout int         `json:"minDaysBeforeWorkout"`
	NotifyOnAdaptation   bool        `json:"notifyOnAdaptation"`
}

func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:               userID,
		AdaptiveEnabled:      true,
		AutoApply:            false,
		Sensitivity:          SensitivityModerate,
		TSBFatiguedThreshold: defaultTSBFatiguedThreshold,
		TSBFreshThreshold:    defaultTSBFreshThreshold,
		MinDaysBeforeWorkout: defaultMinDaysBeforeWorkout,
		NotifyOnAdaptation:   true,
	}
}

func (s Settings) Validate() error {
	if !s.Sensitivity.IsValid() {
		return fmt.Errorf("invalid sensitivity: %q", s.Sensitivity)
	}
	if s.TSBFatiguedThreshold >= s.TSBFreshThreshold {
		return fmt.Errorf(
			"fatigued threshold (%.1f) must sit below fresh threshold (%.1f)",
			s.TSBFatiguedThreshold, s.TSBFreshThreshold,
		)
	}
	if s.MinDaysBeforeWorkout < 0 {
		return fmt.Errorf("min days before workout must not be negative: %d", s.MinDaysBeforeWorkout)
	}
	return nil
}
