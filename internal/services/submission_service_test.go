package services

import (
	"reflect"
	"testing"
)

func TestParseNights(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5", 5},
		{"5 nights", 5},
		{"7 days", 7},
		{"  12  ", 12},
		{"", 0},
		{"a week", 0},
	}
	for _, tt := range tests {
		if got := parseNights(tt.text); got != tt.want {
			t.Errorf("parseNights(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestNormalizeEmirates(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lowercase and dedupe", []string{"Dubai", "dubai", " Sharjah "}, []string{"dubai", "sharjah"}},
		{"all collapses", []string{"dubai", "ALL", "sharjah"}, []string{"all"}},
		{"drops empties", []string{"", "  ", "ajman"}, []string{"ajman"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeEmirates(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeEmirates(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmirateFilter(t *testing.T) {
	if got := emirateFilter([]string{"dubai", "all"}); got != nil {
		t.Errorf("all sentinel should clear the filter, got %v", got)
	}
	if got := emirateFilter([]string{"Dubai", "Sharjah"}); !reflect.DeepEqual(got, []string{"dubai", "sharjah"}) {
		t.Errorf("emirateFilter = %v", got)
	}
}
