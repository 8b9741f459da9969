package velocity

import "math"

// Plan applies an aggregate throughput to a stated amount of upcoming leave
// and produces a commitment recommendation. The second return is false when
// the expected leave drops availability below one team-day, the same floor
// Normalize applies to history; validating a forward plan and validating a
// past sprint use one boundary.
//
// Recommended and FullCapacity are floored, never rounded: the figure must be
// one the team can confidently hit, so the fractional remainder is always
// given up rather than promised.
func Plan(throughput float64, periodDays, developers int, expectedLeave float64) (PlanningResult, bool) {
	days := availableDays(periodDays, expectedLeave, developers)
	if days < MinAvailableDays {
		return PlanningResult{}, false
	}

	recommended := int(math.Floor(throughput * days))
	fullCapacity := int(math.Floor(throughput * float64(periodDays)))

	return PlanningResult{
		Recommended:   recommended,
		FullCapacity:  fullCapacity,
		Delta:         recommended - fullCapacity,
		CapacityRatio: days / float64(periodDays) * 100,
		AvailableDays: days,
	}, true
}
