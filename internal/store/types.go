package store

import "time"

// Team is a group whose sprint commitments are being planned. Developers
// counts capacity-contributing members, which may be smaller than total
// headcount.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Developers int    `json:"developers"`
	PeriodDays int    `json:"periodDays"`
	// Baseline is a manually declared expected output per full sprint, in
	// points. nil means the team has not declared one; 0 is a legitimate
	// declared value.
	Baseline  *float64  `json:"baseline,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sprint is one completed sprint's outcome. PeriodDays and Developers are
// snapshots of the team's configuration at log time; later team edits must
// not rewrite how history normalizes, so these fields are immutable.
type Sprint struct {
	ID     int    `json:"id"`
	TeamID string `json:"teamId"`
	Label  string `json:"label,omitempty"`
	// Completed is the delivered output in points.
	Completed float64 `json:"completed"`
	// LeaveUnits is person-days of planned absence summed across the team,
	// in half-day granularity or finer.
	LeaveUnits  float64   `json:"leaveUnits"`
	PeriodDays  int       `json:"periodDays"`
	Developers  int       `json:"developers"`
	CompletedAt time.Time `json:"completedAt"`
}

// TeamUpdate carries a partial team edit. Nil fields are left unchanged.
// ClearBaseline removes a declared baseline; it wins over Baseline if both
// are set.
type TeamUpdate struct {
	Name          *string
	Developers    *int
	PeriodDays    *int
	Baseline      *float64
	ClearBaseline bool
}

// SprintUpdate carries a corrective edit to a logged sprint. Only the outcome
// fields may change; the configuration snapshots cannot.
type SprintUpdate struct {
	Label      *string
	Completed  *float64
	LeaveUnits *float64
}
