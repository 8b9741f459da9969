package velocity

// Aggregate computes the arithmetic mean of the selected data points. The
// second return is false for an empty list: no history and no baseline means
// there is nothing to recommend, which is a distinct terminal state and not a
// zero.
func Aggregate(points []float64) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, p := range points {
		sum += p
	}
	return sum / float64(len(points)), true
}
