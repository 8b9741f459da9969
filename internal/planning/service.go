// Package planning glues the sprint store to the velocity engine: it fetches
// a team and its history, runs the normalize/select/aggregate pipeline and,
// on request, the forward planner. All figures are derived fresh per call;
// nothing computed here is ever persisted.
package planning

import (
	"fmt"
	"math"

	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
	"github.com/michael-petrov-cpoms/velociraptor/internal/velocity"
)

// Service answers velocity and planning questions for stored teams.
type Service struct {
	store *store.Store
}

// NewService creates a planning service backed by the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// SprintPoint is one historical sprint annotated with its normalization
// outcome, for display alongside the aggregate.
type SprintPoint struct {
	SprintID   int     `json:"sprintId"`
	Label      string  `json:"label,omitempty"`
	Completed  float64 `json:"completed"`
	LeaveUnits float64 `json:"leaveUnits"`
	PerDay     float64 `json:"perDay"`
	Usable     bool    `json:"usable"`
	InWindow   bool    `json:"inWindow"`
}

// VelocityReport is the rolling-average throughput for a team.
type VelocityReport struct {
	TeamID           string        `json:"teamId"`
	TeamName         string        `json:"teamName"`
	HasData          bool          `json:"hasData"`
	Throughput       float64       `json:"throughput"`
	DataPointCount   int           `json:"dataPointCount"`
	IncludesBaseline bool          `json:"includesBaseline"`
	Baseline         *float64      `json:"baseline,omitempty"`
	Sprints          []SprintPoint `json:"sprints"`
}

// PlanReport is a commitment recommendation for an upcoming sprint.
type PlanReport struct {
	Velocity      VelocityReport           `json:"velocity"`
	ExpectedLeave float64                  `json:"expectedLeave"`
	PeriodDays    int                      `json:"periodDays"`
	HasData       bool                     `json:"hasData"`
	Plan          *velocity.PlanningResult `json:"plan,omitempty"`
}

// Velocity computes the rolling average throughput for a team. HasData is
// false when the team has neither usable history nor a declared baseline.
func (s *Service) Velocity(teamID string) (VelocityReport, error) {
	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return VelocityReport{}, err
	}
	sprints, err := s.store.Sprints(teamID)
	if err != nil {
		return VelocityReport{}, err
	}

	report := VelocityReport{
		TeamID:   team.ID,
		TeamName: team.Name,
		Baseline: team.Baseline,
	}

	// Sprints arrive newest first; normalization preserves that order.
	var history []float64
	for _, sp := range sprints {
		point := SprintPoint{
			SprintID:   sp.ID,
			Label:      sp.Label,
			Completed:  sp.Completed,
			LeaveUnits: sp.LeaveUnits,
		}
		if perDay, ok := velocity.Normalize(velocity.Record{
			Completed:  sp.Completed,
			LeaveUnits: sp.LeaveUnits,
			PeriodDays: sp.PeriodDays,
			Developers: sp.Developers,
		}); ok {
			point.PerDay = perDay
			point.Usable = true
			point.InWindow = len(history) < velocity.WindowSize
			history = append(history, perDay)
		}
		report.Sprints = append(report.Sprints, point)
	}

	var baseline *float64
	if team.Baseline != nil {
		converted := velocity.ConvertBaseline(*team.Baseline, team.PeriodDays)
		baseline = &converted
	}

	sel := velocity.SelectDataPoints(history, baseline)
	report.DataPointCount = len(sel.DataPoints)
	report.IncludesBaseline = sel.IncludesBaseline
	report.Throughput, report.HasData = velocity.Aggregate(sel.DataPoints)
	return report, nil
}

// PlanSprint produces a commitment recommendation for the team's next sprint
// given the expected person-days of leave. HasData is false when there is no
// throughput to plan with or the leave drops availability below the engine's
// floor; both surface as the same no-data result, not as errors.
func (s *Service) PlanSprint(teamID string, expectedLeave float64) (PlanReport, error) {
	if expectedLeave < 0 || math.IsNaN(expectedLeave) || math.IsInf(expectedLeave, 0) {
		return PlanReport{}, fmt.Errorf("%w: expected leave must be a finite non-negative number, got %v", store.ErrValidation, expectedLeave)
	}

	vel, err := s.Velocity(teamID)
	if err != nil {
		return PlanReport{}, err
	}

	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return PlanReport{}, err
	}

	report := PlanReport{Velocity: vel, ExpectedLeave: expectedLeave, PeriodDays: team.PeriodDays}
	if !vel.HasData {
		return report, nil
	}

	if res, ok := velocity.Plan(vel.Throughput, team.PeriodDays, team.Developers, expectedLeave); ok {
		report.Plan = &res
		report.HasData = true
	}
	return report, nil
}
