package velocity

import (
	"math"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name          string
		throughput    float64
		periodDays    int
		developers    int
		expectedLeave float64
		hasData       bool
		expected      PlanningResult
	}{
		{
			name:       "NoLeaveMatchesFullCapacity",
			throughput: 2.0, periodDays: 14, developers: 4, expectedLeave: 0,
			hasData: true,
			expected: PlanningResult{
				Recommended: 28, FullCapacity: 28, Delta: 0,
				CapacityRatio: 100, AvailableDays: 14,
			},
		},
		{
			name:       "EightPersonDaysLeave",
			throughput: 2.0, periodDays: 14, developers: 4, expectedLeave: 8,
			hasData: true,
			expected: PlanningResult{
				Recommended: 24, FullCapacity: 28, Delta: -4,
				CapacityRatio: 12.0 / 14.0 * 100, AvailableDays: 12,
			},
		},
		{
			name:       "FloorNeverRoundsUp",
			throughput: 2.3, periodDays: 14, developers: 4, expectedLeave: 0,
			hasData: true,
			expected: PlanningResult{
				Recommended: 32, FullCapacity: 32, Delta: 0,
				CapacityRatio: 100, AvailableDays: 14,
			},
		},
		{
			name:       "LeaveBelowOneDayFloor",
			throughput: 2.0, periodDays: 14, developers: 4, expectedLeave: 53,
			hasData: false,
		},
		{
			name:       "LeaveConsumesWholePeriod",
			throughput: 2.0, periodDays: 10, developers: 2, expectedLeave: 20,
			hasData: false,
		},
		{
			name:       "ExactlyOneDayLeftIsValid",
			throughput: 3.0, periodDays: 14, developers: 4, expectedLeave: 52,
			hasData: true,
			expected: PlanningResult{
				Recommended: 3, FullCapacity: 42, Delta: -39,
				CapacityRatio: 1.0 / 14.0 * 100, AvailableDays: 1,
			},
		},
		{
			name:       "ZeroThroughput",
			throughput: 0, periodDays: 14, developers: 4, expectedLeave: 4,
			hasData: true,
			expected: PlanningResult{
				Recommended: 0, FullCapacity: 0, Delta: 0,
				CapacityRatio: 13.0 / 14.0 * 100, AvailableDays: 13,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Plan(tt.throughput, tt.periodDays, tt.developers, tt.expectedLeave)
			if ok != tt.hasData {
				t.Fatalf("Plan() hasData = %v, want %v", ok, tt.hasData)
			}
			if !ok {
				return
			}
			if got != tt.expected {
				t.Errorf("Plan() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPlanRecommendationNeverExceedsFullCapacity(t *testing.T) {
	for leave := 0.0; leave <= 40; leave += 0.5 {
		res, ok := Plan(2.7, 14, 4, leave)
		if !ok {
			continue
		}
		if res.Recommended > res.FullCapacity {
			t.Fatalf("leave %v: recommended %d exceeds full capacity %d", leave, res.Recommended, res.FullCapacity)
		}
		if leave > 0 && res.Delta > 0 {
			t.Fatalf("leave %v: positive delta %d", leave, res.Delta)
		}
	}
}

func TestPlanCapacityRatioIsNotFloored(t *testing.T) {
	res, ok := Plan(2.0, 14, 4, 8)
	if !ok {
		t.Fatal("Plan() unexpectedly returned no data")
	}
	if math.Abs(res.CapacityRatio-85.714285714) > 1e-6 {
		t.Errorf("CapacityRatio = %v, want ~85.714", res.CapacityRatio)
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	first, ok1 := Plan(2.2, 10, 3, 4.5)
	second, ok2 := Plan(2.2, 10, 3, 4.5)
	if ok1 != ok2 || first != second {
		t.Errorf("repeated Plan() calls diverged: %+v vs %+v", first, second)
	}
}
