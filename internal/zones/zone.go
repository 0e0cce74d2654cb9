package zones

// Zone is one of the 7 canonical training intensity bands, keyed to %FTP.
//
// Band cut points (intensity factor = power / FTP):
//   - recovery:   IF < 0.55
//   - endurance:  IF < 0.75
//   - tempo:      IF < 0.88
//   - sweet_spot: IF < 0.94
//   - threshold:  IF < 1.05
//   - vo2max:     IF < 1.50
//   - anaerobic:  the rest
type Zone string

const (
	ZoneNone      Zone = ""
	ZoneRecovery  Zone = "recovery"
	ZoneEndurance Zone = "endurance"
	ZoneTempo     Zone = "tempo"
	ZoneSweetSpot Zone = "sweet_spot"
	ZoneThreshold Zone = "threshold"
	ZoneVO2Max    Zone = "vo2max"
	ZoneAnaerobic Zone = "anaerobic"
)

// All lists the canonical zones from easiest to hardest.
var All = []Zone{
	ZoneRecovery,
	ZoneEndurance,
	ZoneTempo,
	ZoneSweetSpot,
	ZoneThreshold,
	ZoneVO2Max,
	ZoneAnaerobic,
}

func (z Zone) String() string {
	return string(z)
}

func (z Zone) IsValid() bool {
	switch z {
	case ZoneRecovery,
		ZoneEndurance,
		ZoneTempo,
		ZoneSweetSpot,
		ZoneThreshold,
		ZoneVO2Max,
		ZoneAnaerobic:
		return true
	default:
		return false
	}
}

// IsHighIntensity reports whether workouts in this zone count as
// high-intensity for fatigue protection purposes.
func (z Zone) IsHighIntensity() bool {
	switch z {
	case ZoneThreshold, ZoneVO2Max, ZoneAnaerobic:
		return true
	default:
		return false
	}
}

// IsEasy reports whether the zone is an easy/aerobic one.
func (z Zone) IsEasy() bool {
	return z == ZoneRecovery || z == ZoneEndurance
}
