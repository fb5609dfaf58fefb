package report

import "math"

// Working-day policy constants.
const (
	FullDayHours   = 10.5
	FullDayMinutes = FullDayHours * 60 // 630
	GraceMinutes   = 30
	HalfDayMinutes = FullDayMinutes / 2 // 315
)

// PayableMinutes computes one day's payable minutes from the bucket's
// check-in/check-out pair.
//
// Standard days: a shortfall of up to GraceMinutes against the full-day
// target is forgiven and rounded up to the full target; a larger
// shortfall is charged in full (payable = actual).
//
// Sundays expect only a half day but have no grace window: meeting the
// half-day threshold credits the full day outright, missing it pays the
// actual minutes. The asymmetry against the standard-day rule is
// confirmed business policy, not an accident.
func PayableMinutes(b DayBucket) float64 {
	if !b.HasCheckIn || !b.HasCheckOut || b.CheckOut < b.CheckIn {
		return 0
	}

	actual := round2(b.CheckOut.Minutes() - b.CheckIn.Minutes())

	if b.Sunday {
		if actual >= HalfDayMinutes {
			return FullDayMinutes
		}
		return actual
	}

	if actual >= FullDayMinutes {
		return actual
	}
	if FullDayMinutes-actual <= GraceMinutes {
		return FullDayMinutes
	}
	return actual
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
