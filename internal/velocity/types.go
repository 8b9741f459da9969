package velocity

// WindowSize is the number of most recent usable sprints that participate in
// the rolling average.
const WindowSize = 5

// MinAvailableDays is the floor below which a period carries too little
// availability to normalize against. Dividing by fractions of a day would let
// a single leave-heavy sprint dominate the average.
const MinAvailableDays = 1.0

// Record is one completed sprint as the engine sees it. PeriodDays and
// Developers are snapshots taken when the sprint was logged, never the team's
// current configuration.
type Record struct {
	Completed  float64 `json:"completed"`
	LeaveUnits float64 `json:"leaveUnits"`
	PeriodDays int     `json:"periodDays"`
	Developers int     `json:"developers"`
}

// Selection is the outcome of the rolling-window and baseline-blending policy.
type Selection struct {
	DataPoints       []float64 `json:"dataPoints"`
	IncludesBaseline bool      `json:"includesBaseline"`
}

// PlanningResult is the forward planner's recommendation for one upcoming
// sprint. All figures are derived on demand and never persisted.
type PlanningResult struct {
	// Recommended is the commitment the team can confidently hit, floored.
	Recommended int `json:"recommended"`
	// FullCapacity is the zero-leave commitment for the same period, floored.
	FullCapacity int `json:"fullCapacity"`
	// Delta is Recommended minus FullCapacity. Never positive.
	Delta int `json:"delta"`
	// CapacityRatio is available days as a percentage of the full period.
	// Left unrounded; display formatting decides precision.
	CapacityRatio float64 `json:"capacityRatio"`
	// AvailableDays is the period length minus leave in team-equivalent days.
	AvailableDays float64 `json:"availableDays"`
}
