package velocity

// SelectDataPoints applies the rolling-window and baseline-blending policy.
// history holds normalized throughput values for usable sprints only, newest
// first; baseline is the converted points-per-day estimate, nil when the team
// has declared none.
//
// At most the WindowSize most recent history values are taken. The baseline
// joins as one additional data point only while the history contribution is
// strictly below the window size; at WindowSize or more usable sprints,
// history alone is sufficient signal and the baseline drops out regardless of
// its value. This dilutes a declared estimate gradually (one sprint gives a
// 50/50 blend, four gives the baseline one-fifth weight) instead of a hard
// cutover at the fifth sprint.
func SelectDataPoints(history []float64, baseline *float64) Selection {
	taken := len(history)
	if taken > WindowSize {
		taken = WindowSize
	}

	points := make([]float64, 0, taken+1)
	points = append(points, history[:taken]...)

	sel := Selection{DataPoints: points}
	if baseline != nil && taken < WindowSize {
		sel.DataPoints = append(sel.DataPoints, *baseline)
		sel.IncludesBaseline = true
	}
	return sel
}
