package trainingload

import (
	"math"
	"time"

	"github.com/velolab/paceline/pkg"
)

const (
	ctlHorizonDays = 42
	atlHorizonDays = 7
)

// Sample is one day's worth of training stress.
type Sample struct {
	Date time.Time `json:"date"`
	TSS  float64   `json:"tss"`
}

// Snapshot holds the chronic/acute load balance of an athlete at a point in
// time. When there is no ride history to compute it from, Insufficient is
// set and the numeric fields mean nothing.
type Snapshot struct {
	CTL          float64   `json:"ctl"`
	ATL          float64   `json:"atl"`
	TSB          float64   `json:"tsb"`
	AsOf         time.Time `json:"asOf"`
	Insufficient bool      `json:"insufficient,omitempty"`
}

// Calculate computes CTL (42-day horizon), ATL (7-day horizon) and
// TSB = CTL - ATL from the given TSS samples, as seen from asOf. Each sample
// is weighted by e^(-ageDays/horizon), so recent rides dominate. Pure and
// deterministic; samples dated after asOf are ignored.
func Calculate(samples []Sample, asOf time.Time) Snapshot {
	ctl, ctlOK := weightedLoad(samples, asOf, ctlHorizonDays)
	atl, atlOK := weightedLoad(samples, asOf, atlHorizonDays)
	if !ctlOK || !atlOK {
		return Snapshot{AsOf: pkg.DateOnly(asOf), Insufficient: true}
	}

	return Snapshot{
		CTL:  ctl,
		ATL:  atl,
		TSB:  ctl - atl,
		AsOf: pkg.DateOnly(asOf),
	}
}

func weightedLoad(samples []Sample, asOf time.Time, horizonDays float64) (float64, bool) {
	var weightedSum, weightTotal float64
	for _, s := range samples {
		ageDays := pkg.CalendarDaysBetween(s.Date, asOf)
		if ageDays < 0 {
			continue
		}
		weight := math.Exp(-float64(ageDays) / horizonDays)
		weightedSum += s.TSS * weight
		weightTotal += weight
	}

	if weightTotal == 0 {
		return 0, false
	}
	return weightedSum / weightTotal, true
}
