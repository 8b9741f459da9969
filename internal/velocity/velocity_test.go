package velocity

import "testing"

// Pipeline scenarios: normalize → select → aggregate → plan, the way the
// planning service composes the stages.

func TestPipelineBaselineBootstrapsNewTeam(t *testing.T) {
	// No history yet, team declared 28 points per 14-day sprint.
	baseline := ConvertBaseline(28, 14)
	if baseline != 2.0 {
		t.Fatalf("ConvertBaseline() = %v, want 2.0", baseline)
	}

	sel := SelectDataPoints(nil, &baseline)
	if !sel.IncludesBaseline || len(sel.DataPoints) != 1 {
		t.Fatalf("selection = %+v, want single baseline point", sel)
	}

	agg, ok := Aggregate(sel.DataPoints)
	if !ok || agg != 2.0 {
		t.Fatalf("Aggregate() = %v, %v, want 2.0, true", agg, ok)
	}
}

func TestPipelineSingleSprintBlendsFiftyFifty(t *testing.T) {
	records := []Record{
		{Completed: 28, LeaveUnits: 0, PeriodDays: 14, Developers: 4}, // 2.0/day
	}

	var history []float64
	for _, rec := range records {
		if v, ok := Normalize(rec); ok {
			history = append(history, v)
		}
	}

	baseline := 2.5
	sel := SelectDataPoints(history, &baseline)
	agg, ok := Aggregate(sel.DataPoints)
	if !ok {
		t.Fatal("Aggregate() returned no data")
	}
	if agg != 2.25 {
		t.Errorf("aggregate = %v, want 2.25", agg)
	}
	if len(sel.DataPoints) != 2 || !sel.IncludesBaseline {
		t.Errorf("selection = %+v, want 2 points including baseline", sel)
	}
}

func TestPipelineFullWindowIgnoresExtremeBaseline(t *testing.T) {
	var history []float64
	for i := 0; i < 5; i++ {
		v, ok := Normalize(Record{Completed: 28, LeaveUnits: 0, PeriodDays: 14, Developers: 4})
		if !ok {
			t.Fatal("Normalize() unexpectedly unusable")
		}
		history = append(history, v)
	}

	baseline := 100.0
	sel := SelectDataPoints(history, &baseline)
	if sel.IncludesBaseline {
		t.Error("baseline included despite full history window")
	}
	if len(sel.DataPoints) != 5 {
		t.Fatalf("len(DataPoints) = %d, want 5", len(sel.DataPoints))
	}

	agg, ok := Aggregate(sel.DataPoints)
	if !ok || agg != 2.0 {
		t.Errorf("aggregate = %v, want exactly 2.0", agg)
	}
}

func TestPipelineUnusableSprintsAreSilentlyExcluded(t *testing.T) {
	records := []Record{
		{Completed: 28, LeaveUnits: 0, PeriodDays: 14, Developers: 4},  // 2.0/day
		{Completed: 5, LeaveUnits: 55, PeriodDays: 14, Developers: 4},  // unusable
		{Completed: 30, LeaveUnits: 16, PeriodDays: 14, Developers: 4}, // 3.0/day
	}

	var history []float64
	for _, rec := range records {
		if v, ok := Normalize(rec); ok {
			history = append(history, v)
		}
	}

	agg, ok := Aggregate(SelectDataPoints(history, nil).DataPoints)
	if !ok {
		t.Fatal("Aggregate() returned no data")
	}
	if agg != 2.5 {
		t.Errorf("aggregate = %v, want 2.5 from the two usable sprints", agg)
	}

	res, ok := Plan(agg, 14, 4, 8)
	if !ok {
		t.Fatal("Plan() returned no data")
	}
	if res.Recommended != 30 || res.FullCapacity != 35 {
		t.Errorf("plan = %+v, want recommended 30, full capacity 35", res)
	}
}

func TestPipelineNoHistoryNoBaselineYieldsNoData(t *testing.T) {
	sel := SelectDataPoints(nil, nil)
	if len(sel.DataPoints) != 0 {
		t.Fatalf("selection = %+v, want empty", sel)
	}
	if _, ok := Aggregate(sel.DataPoints); ok {
		t.Error("Aggregate() produced data from nothing")
	}
}
