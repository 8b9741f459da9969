package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-petrov-cpoms/velociraptor/internal/planning"
	"github.com/michael-petrov-cpoms/velociraptor/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.New(t.TempDir())
	require.NoError(t, st.Load())
	return NewServer(st, false)
}

func TestGetVelocityWithChartsEnabled(t *testing.T) {
	st := store.New(t.TempDir())
	require.NoError(t, st.Load())
	s := NewServer(st, true)

	_, err := s.dispatch("create_team", map[string]interface{}{
		"name":        "Alpha",
		"developers":  float64(4),
		"period_days": float64(14),
	})
	require.NoError(t, err)
	_, err = s.dispatch("log_sprint", map[string]interface{}{
		"team_id":     "alpha",
		"completed":   float64(28),
		"leave_units": float64(0),
	})
	require.NoError(t, err)

	res, err := s.dispatch("get_velocity", map[string]interface{}{"team_id": "alpha"})
	require.NoError(t, err)
	wrapped, ok := res.(map[string]interface{})
	require.True(t, ok, "charts-enabled response should carry report plus chart")
	assert.Contains(t, wrapped["chart"].(string), "xychart-beta")
}

func TestDispatchUnknownTool(t *testing.T) {
	s := newTestServer(t)
	_, err := s.dispatch("frobnicate", nil)
	assert.ErrorIs(t, err, errUnknownTool)
}

func TestTeamLifecycle(t *testing.T) {
	s := newTestServer(t)

	created, err := s.dispatch("create_team", map[string]interface{}{
		"name":        "Platform Crew",
		"developers":  float64(4),
		"period_days": float64(14),
		"baseline":    float64(28),
	})
	require.NoError(t, err)
	team := created.(store.Team)
	assert.Equal(t, "platform-crew", team.ID)
	require.NotNil(t, team.Baseline)
	assert.Equal(t, 28.0, *team.Baseline)

	listed, err := s.dispatch("list_teams", nil)
	require.NoError(t, err)
	teams := listed.(map[string]interface{})["teams"].([]store.Team)
	require.Len(t, teams, 1)

	updated, err := s.dispatch("update_team", map[string]interface{}{
		"team_id":        "platform-crew",
		"developers":     float64(6),
		"clear_baseline": true,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.(store.Team).Developers)
	assert.Nil(t, updated.(store.Team).Baseline)

	_, err = s.dispatch("delete_team", map[string]interface{}{"team_id": "platform-crew"})
	require.NoError(t, err)

	_, err = s.dispatch("list_sprints", map[string]interface{}{"team_id": "platform-crew"})
	assert.ErrorIs(t, err, store.ErrTeamNotFound)
}

func TestSprintLifecycleAndPlanning(t *testing.T) {
	s := newTestServer(t)

	_, err := s.dispatch("create_team", map[string]interface{}{
		"name":        "Alpha",
		"developers":  float64(4),
		"period_days": float64(14),
	})
	require.NoError(t, err)

	logged, err := s.dispatch("log_sprint", map[string]interface{}{
		"team_id":      "alpha",
		"label":        "Sprint 1",
		"completed":    float64(28),
		"leave_units":  float64(0),
		"completed_at": "2026-05-01T00:00:00Z",
	})
	require.NoError(t, err)
	sprint := logged.(store.Sprint)
	assert.Equal(t, 14, sprint.PeriodDays)

	velRes, err := s.dispatch("get_velocity", map[string]interface{}{"team_id": "alpha"})
	require.NoError(t, err)
	vel := velRes.(planning.VelocityReport)
	assert.True(t, vel.HasData)
	assert.Equal(t, 2.0, vel.Throughput)

	planRes, err := s.dispatch("plan_sprint", map[string]interface{}{
		"team_id":        "alpha",
		"expected_leave": float64(8),
	})
	require.NoError(t, err)
	plan := planRes.(planning.PlanReport)
	require.True(t, plan.HasData)
	assert.Equal(t, 24, plan.Plan.Recommended)
	assert.Equal(t, -4, plan.Plan.Delta)

	_, err = s.dispatch("update_sprint", map[string]interface{}{
		"team_id":   "alpha",
		"sprint_id": float64(sprint.ID),
		"completed": float64(14),
	})
	require.NoError(t, err)

	velRes, err = s.dispatch("get_velocity", map[string]interface{}{"team_id": "alpha"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, velRes.(planning.VelocityReport).Throughput)

	_, err = s.dispatch("delete_sprint", map[string]interface{}{
		"team_id":   "alpha",
		"sprint_id": float64(sprint.ID),
	})
	require.NoError(t, err)

	velRes, err = s.dispatch("get_velocity", map[string]interface{}{"team_id": "alpha"})
	require.NoError(t, err)
	assert.False(t, velRes.(planning.VelocityReport).HasData)
}

func TestPlanSprintNoDataIsResultNotError(t *testing.T) {
	s := newTestServer(t)

	_, err := s.dispatch("create_team", map[string]interface{}{
		"name":        "Alpha",
		"developers":  float64(4),
		"period_days": float64(14),
	})
	require.NoError(t, err)

	res, err := s.dispatch("plan_sprint", map[string]interface{}{
		"team_id":        "alpha",
		"expected_leave": float64(0),
	})
	require.NoError(t, err)
	assert.False(t, res.(planning.PlanReport).HasData)
}

func TestDispatchMissingArguments(t *testing.T) {
	s := newTestServer(t)

	_, err := s.dispatch("create_team", map[string]interface{}{"name": "Alpha"})
	assert.Error(t, err)

	_, err = s.dispatch("get_velocity", map[string]interface{}{})
	assert.Error(t, err)

	_, err = s.dispatch("log_sprint", map[string]interface{}{
		"team_id":      "alpha",
		"completed":    float64(10),
		"leave_units":  float64(0),
		"completed_at": "yesterday",
	})
	assert.Error(t, err)
}
