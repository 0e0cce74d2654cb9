package zones

import (
	"math"
)

// Classify maps a ride's power data to a training zone. Normalized power is
// preferred over average power when available. Rides without usable power
// data (or without a known FTP) come back as ZoneNone.
func Classify(avgWatts, normalizedPower, ftp float64, durationSeconds int) Zone {
	power := avgWatts
	if normalizedPower > 0 {
		power = normalizedPower
	}
	if power <= 0 || ftp <= 0 {
		return ZoneNone
	}

	intensityFactor := power / ftp
	switch {
	case intensityFactor < 0.55:
		return ZoneRecovery
	case intensityFactor < 0.75:
		return ZoneEndurance
	case intensityFactor < 0.88:
		return ZoneTempo
	case intensityFactor < 0.94:
		return ZoneSweetSpot
	case intensityFactor < 1.05:
		return ZoneThreshold
	case intensityFactor < 1.50:
		return ZoneVO2Max
	default:
		return ZoneAnaerobic
	}
}

// EstimateRPE derives a 1-10 perceived exertion estimate for a ride that has
// no explicit athlete feedback. Base is IF*10, bumped up for very long rides
// and big training loads. Without power data the estimate defaults to 5.
func EstimateRPE(avgWatts, normalizedPower, ftp float64, durationSeconds int, tss float64) int {
	power := avgWatts
	if normalizedPower > 0 {
		power = normalizedPower
	}
	if power <= 0 || ftp <= 0 {
		return 5
	}

	rpe := (power / ftp) * 10

	durationHours := float64(durationSeconds) / 3600
	for _, threshold := range []float64{3, 4, 5} {
		if durationHours > threshold {
			rpe += 0.5
		}
	}

	if tss > 150 {
		rpe += 0.5
	}

	rounded := int(math.Round(rpe))
	if rounded < 1 {
		rounded = 1
	}
	if rounded > 10 {
		rounded = 10
	}
	return rounded
}

// SeedLevelForAvgRPE maps the average estimated RPE an athlete produced in a
// zone to an initial progression level for that zone. Lower perceived effort
// means the athlete handles the zone comfortably and can start higher.
func SeedLevelForAvgRPE(avgRPE float64) float64 {
	switch {
	case avgRPE <= 5:
		return 7.0
	case avgRPE <= 6:
		return 6.0
	case avgRPE <= 7:
		return 5.0
	case avgRPE <= 8:
		return 4.0
	case avgRPE <= 9:
		return 3.0
	default:
		return 2.0
	}
}
