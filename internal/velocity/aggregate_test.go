package velocity

import "testing"

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		points   []float64
		expected float64
		hasData  bool
	}{
		{"Empty", []float64{}, 0, false},
		{"Nil", nil, 0, false},
		{"Single", []float64{2.5}, 2.5, true},
		{"Three", []float64{1, 2, 3}, 2.0, true},
		{"ZeroDragsAverageDown", []float64{2, 2, 0}, 4.0 / 3.0, true},
		{"AllZero", []float64{0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Aggregate(tt.points)
			if ok != tt.hasData {
				t.Fatalf("Aggregate() hasData = %v, want %v", ok, tt.hasData)
			}
			if got != tt.expected {
				t.Errorf("Aggregate() = %v, want %v", got, tt.expected)
			}
		})
	}
}
