package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, -2); got != -2 {
		t.Errorf("Min(3, -2) = %v, expected -2", got)
	}
	if got := Max(3, -2); got != 3 {
		t.Errorf("Max(3, -2) = %v, expected 3", got)
	}
	if got := Max(0, -9200); got != 0 {
		t.Errorf("Max(0, -9200) = %v, expected 0", got)
	}
}

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		annual   float64
		expected float64
	}{
		{0, 0},
		{12, 0.01},
		{6, 0.005},
		{6.5, 0.065 / 12},
	}

	for _, tt := range tests {
		if got := MonthlyRate(tt.annual); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("MonthlyRate(%v) = %v, expected %v", tt.annual, got, tt.expected)
		}
	}
}
