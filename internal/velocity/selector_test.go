package velocity

import "testing"

func ptr(v float64) *float64 { return &v }

func TestSelectDataPoints(t *testing.T) {
	tests := []struct {
		name             string
		history          []float64
		baseline         *float64
		expectedPoints   []float64
		includesBaseline bool
	}{
		{"EmptyNoBaseline", nil, nil, []float64{}, false},
		{"EmptyWithBaseline", nil, ptr(2.0), []float64{2.0}, true},
		{"OneHistoryPlusBaseline", []float64{2.0}, ptr(2.5), []float64{2.0, 2.5}, true},
		{"FourHistoryPlusBaseline", []float64{2, 2, 2, 2}, ptr(3), []float64{2, 2, 2, 2, 3}, true},
		{"FiveHistoryDropsBaseline", []float64{2, 2, 2, 2, 2}, ptr(100), []float64{2, 2, 2, 2, 2}, false},
		{"WindowClampsToFiveNewest", []float64{1, 2, 3, 4, 5, 6, 7}, nil, []float64{1, 2, 3, 4, 5}, false},
		{"WindowClampWithBaselineStillFive", []float64{1, 2, 3, 4, 5, 6}, ptr(9), []float64{1, 2, 3, 4, 5}, false},
		{"ThreeHistoryNoBaseline", []float64{1.5, 2.5, 3.5}, nil, []float64{1.5, 2.5, 3.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectDataPoints(tt.history, tt.baseline)

			if sel.IncludesBaseline != tt.includesBaseline {
				t.Errorf("IncludesBaseline = %v, want %v", sel.IncludesBaseline, tt.includesBaseline)
			}
			if len(sel.DataPoints) != len(tt.expectedPoints) {
				t.Fatalf("len(DataPoints) = %d, want %d", len(sel.DataPoints), len(tt.expectedPoints))
			}
			for i, p := range tt.expectedPoints {
				if sel.DataPoints[i] != p {
					t.Errorf("DataPoints[%d] = %v, want %v", i, sel.DataPoints[i], p)
				}
			}
		})
	}
}

func TestSelectDataPointsNeverExceedsWindowPlusBaseline(t *testing.T) {
	// Six points total is only possible with exactly four history values and
	// a baseline; with the window full, five is the ceiling.
	sel := SelectDataPoints([]float64{2, 2, 2, 2}, ptr(2))
	if len(sel.DataPoints) != 5 {
		t.Errorf("four history + baseline: len = %d, want 5", len(sel.DataPoints))
	}

	sel = SelectDataPoints([]float64{2, 2, 2, 2, 2, 2, 2, 2}, ptr(2))
	if len(sel.DataPoints) != WindowSize {
		t.Errorf("full window + baseline: len = %d, want %d", len(sel.DataPoints), WindowSize)
	}
}

func TestSelectDataPointsDoesNotMutateHistory(t *testing.T) {
	history := []float64{1, 2, 3, 4}
	sel := SelectDataPoints(history, ptr(9))

	sel.DataPoints[0] = 99
	if history[0] != 1 {
		t.Error("SelectDataPoints aliased the caller's history slice")
	}
}
