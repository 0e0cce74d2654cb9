package progression

// CalculateLevelAdjustment turns a workout outcome (completion percentage
// and reported RPE) into a progression level delta. Pure and deterministic.
//
// The base table rewards near-full completions scaled by how hard they felt,
// and penalizes bailed workouts scaled by how hard they were:
//
//	>=90% done: rpe<=7 -> +0.3, rpe<=9 -> +0.2, rpe 10 -> +0.1
//	70-89%:     rpe<=8 -> +0.1, else 0
//	50-69%:     rpe>=9 -> -0.3, else -0.1
//	<50%:       -0.5
//
// Dampening: when the workout sat far above the athlete's current level
// (diff > 2.0) a penalty is halved, since failing it says little; when it
// sat far below (diff < -2.0) a reward is halved, since completing it
// proves little.
func CalculateLevelAdjustment(completionPct float64, rpe int, workoutLevel, currentLevel float64) float64 {
	var delta float64
	switch {
	case completionPct >= 90:
		switch {
		case rpe <= 7:
			delta = 0.3
		case rpe <= 9:
			delta = 0.2
		default:
			delta = 0.1
		}
	case completionPct >= 70:
		if rpe <= 8 {
			delta = 0.1
		} else {
			delta = 0.0
		}
	case completionPct >= 50:
		if rpe >= 9 {
			delta = -0.3
		} else {
			delta = -0.1
		}
	default:
		delta = -0.5
	}

	diff := workoutLevel - currentLevel
	if diff > 2.0 && delta < 0 {
		delta /= 2
	}
	if diff < -2.0 && delta > 0 {
		delta /= 2
	}

	return delta
}
