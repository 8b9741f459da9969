package velocity

// availableDays converts person-days of leave into team-equivalent days of
// availability for a period.
func availableDays(periodDays int, leaveUnits float64, developers int) float64 {
	return float64(periodDays) - leaveUnits/float64(developers)
}

// Normalize converts one sprint record into a throughput-per-day figure.
// The second return is false when the sprint's leave leaves fewer than one
// team-day of availability; such sprints are excluded from averaging rather
// than reported as errors. A sprint that delivered nothing normalizes to 0
// and remains usable: a zero-output period is real signal and must drag the
// average down.
func Normalize(rec Record) (float64, bool) {
	days := availableDays(rec.PeriodDays, rec.LeaveUnits, rec.Developers)
	if days < MinAvailableDays {
		return 0, false
	}
	return rec.Completed / days, true
}

// ConvertBaseline converts a manually declared points-per-period estimate
// into points per day, directly comparable to a Normalize output. A baseline
// of 0 is valid and converts to 0.
func ConvertBaseline(baseline float64, periodDays int) float64 {
	return baseline / float64(periodDays)
}
