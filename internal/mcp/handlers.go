package mcp

import (
	"errors"
	"fmt"
	"time"

	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
	"github.com/michael-petrov-cpoms/velociraptor/internal/visuals"
)

var errUnknownTool = errors.New("unknown tool")

func (s *Server) dispatch(name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case "list_teams":
		return s.handleListTeams()
	case "create_team":
		return s.handleCreateTeam(args)
	case "update_team":
		return s.handleUpdateTeam(args)
	case "delete_team":
		return s.handleDeleteTeam(args)
	case "log_sprint":
		return s.handleLogSprint(args)
	case "update_sprint":
		return s.handleUpdateSprint(args)
	case "delete_sprint":
		return s.handleDeleteSprint(args)
	case "list_sprints":
		return s.handleListSprints(args)
	case "get_velocity":
		return s.handleGetVelocity(args)
	case "plan_sprint":
		return s.handlePlanSprint(args)
	default:
		return nil, errUnknownTool
	}
}

func (s *Server) handleListTeams() (interface{}, error) {
	return map[string]interface{}{"teams": s.store.Teams()}, nil
}

func (s *Server) handleCreateTeam(args map[string]interface{}) (interface{}, error) {
	name, err := argString(args, "name")
	if err != nil {
		return nil, err
	}
	developers, err := argInt(args, "developers")
	if err != nil {
		return nil, err
	}
	periodDays, err := argInt(args, "period_days")
	if err != nil {
		return nil, err
	}
	baseline := optFloat(args, "baseline")

	return s.store.CreateTeam(name, developers, periodDays, baseline)
}

func (s *Server) handleUpdateTeam(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}

	upd := store.TeamUpdate{
		Name:       optString(args, "name"),
		Developers: optInt(args, "developers"),
		PeriodDays: optInt(args, "period_days"),
		Baseline:   optFloat(args, "baseline"),
	}
	if clear, ok := args["clear_baseline"].(bool); ok {
		upd.ClearBaseline = clear
	}

	return s.store.UpdateTeam(teamID, upd)
}

func (s *Server) handleDeleteTeam(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteTeam(teamID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": teamID}, nil
}

func (s *Server) handleLogSprint(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	completed, err := argFloat(args, "completed")
	if err != nil {
		return nil, err
	}
	leaveUnits, err := argFloat(args, "leave_units")
	if err != nil {
		return nil, err
	}

	var label string
	if l := optString(args, "label"); l != nil {
		label = *l
	}

	var completedAt time.Time
	if raw := optString(args, "completed_at"); raw != nil {
		completedAt, err = time.Parse(time.RFC3339, *raw)
		if err != nil {
			return nil, fmt.Errorf("invalid completed_at, want RFC3339: %w", err)
		}
	}

	return s.store.LogSprint(teamID, label, completed, leaveUnits, completedAt)
}

func (s *Server) handleUpdateSprint(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	sprintID, err := argInt(args, "sprint_id")
	if err != nil {
		return nil, err
	}

	upd := store.SprintUpdate{
		Label:      optString(args, "label"),
		Completed:  optFloat(args, "completed"),
		LeaveUnits: optFloat(args, "leave_units"),
	}
	return s.store.UpdateSprint(teamID, sprintID, upd)
}

func (s *Server) handleDeleteSprint(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	sprintID, err := argInt(args, "sprint_id")
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteSprint(teamID, sprintID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": fmt.Sprintf("%s/%d", teamID, sprintID)}, nil
}

func (s *Server) handleListSprints(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	sprints, err := s.store.Sprints(teamID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"sprints": sprints}, nil
}

func (s *Server) handleGetVelocity(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	report, err := s.planning.Velocity(teamID)
	if err != nil {
		return nil, err
	}
	if s.charts {
		if chart := visuals.GenerateVelocityChart(report); chart != "" {
			return map[string]interface{}{"report": report, "chart": chart}, nil
		}
	}
	return report, nil
}

func (s *Server) handlePlanSprint(args map[string]interface{}) (interface{}, error) {
	teamID, err := argString(args, "team_id")
	if err != nil {
		return nil, err
	}
	expectedLeave, err := argFloat(args, "expected_leave")
	if err != nil {
		return nil, err
	}
	report, err := s.planning.PlanSprint(teamID, expectedLeave)
	if err != nil {
		return nil, err
	}
	if s.charts {
		if chart := visuals.GenerateCapacityChart(report); chart != "" {
			return map[string]interface{}{"report": report, "chart": chart}, nil
		}
	}
	return report, nil
}

// Argument extraction. JSON numbers arrive as float64.

func argString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	return v, nil
}

func argFloat(args map[string]interface{}, key string) (float64, error) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, fmt.Errorf("missing required argument: %s", key)
	}
	return v, nil
}

func argInt(args map[string]interface{}, key string) (int, error) {
	v, err := argFloat(args, key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func optString(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optFloat(args map[string]interface{}, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}

func optInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(float64); ok {
		i := int(v)
		return &i
	}
	return nil
}
