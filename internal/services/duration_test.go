package services

import "testing"

func TestParseDurationHours(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"2 hours", 2},
		{"1 hour", 1},
		{"2h", 2},
		{"1.5 hrs", 1.5},
		{"90 minutes", 1.5},
		{"45 min", 0.75},
		{"2 hours 30 minutes", 2.5},
		{"45", 0.75},  // bare number >= 30 reads as minutes
		{"3", 3},      // bare number < 30 reads as hours
		{"full day", 8},
		{"Half Day", 4},
		{"morning visit", 3},
		{"afternoon", 3},
		{"evening show", 2},
		{"", 2},
		{"varies", 2},
		{"10 minutes", 0.5}, // clamped to the half-hour floor
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseDurationHours(tt.text); got != tt.want {
				t.Errorf("ParseDurationHours(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
