package utils

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRepairToArrayFencedJSON(t *testing.T) {
	raw := "```json\n[{\"id\":\"p1\"}]\n```"

	items, err := RepairToArray(raw)
	if err != nil {
		t.Fatalf("RepairToArray returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	var obj map[string]string
	if err := json.Unmarshal(items[0], &obj); err != nil {
		t.Fatalf("item did not decode: %v", err)
	}
	if obj["id"] != "p1" {
		t.Errorf("id = %q, want p1", obj["id"])
	}
}

// Valid JSON must come through untouched even when string values contain the
// same "word:" and ", word" patterns the repair regexes target; the repairs
// only run after a strict parse has failed.
func TestRepairToArrayPreservesColonsInStrings(t *testing.T) {
	raw := "```json\n" +
		`[{"id":"p1","tip":"Tip: book online, arrive early","description":"Open daily, tickets: 170 AED"}]` +
		"\n```"

	items, err := RepairToArray(raw)
	if err != nil {
		t.Fatalf("RepairToArray returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	var obj map[string]string
	if err := json.Unmarshal(items[0], &obj); err != nil {
		t.Fatalf("item did not decode: %v", err)
	}
	if obj["tip"] != "Tip: book online, arrive early" {
		t.Errorf("tip corrupted: %q", obj["tip"])
	}
	if obj["description"] != "Open daily, tickets: 170 AED" {
		t.Errorf("description corrupted: %q", obj["description"])
	}
}

func TestRepairToArrayWithProse(t *testing.T) {
	raw := "Here are your itineraries!\n\n[{\"id\": \"a\"}, {\"id\": \"b\"}]\n\nEnjoy your trip."

	items, err := RepairToArray(raw)
	if err != nil {
		t.Fatalf("RepairToArray returned error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestRepairToArrayTrailingCommasAndBareKeys(t *testing.T) {
	raw := `[{id: "p1", title: "Trip", "days": [{day: 1,},],},]`

	items, err := RepairToArray(raw)
	if err != nil {
		t.Fatalf("RepairToArray returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	var pkg struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Days  []struct {
			Day int `json:"day"`
		} `json:"days"`
	}
	if err := json.Unmarshal(items[0], &pkg); err != nil {
		t.Fatalf("item did not decode: %v", err)
	}
	if pkg.ID != "p1" || pkg.Title != "Trip" || len(pkg.Days) != 1 {
		t.Errorf("unexpected decode result: %+v", pkg)
	}
}

func TestRepairToArrayWrapperObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"known key", `{"packages": [{"id": "p1"}, {"id": "p2"}]}`, 2},
		{"unknown key", `{"trip_plans": [{"id": "p1"}]}`, 1},
		{"known key wins over sorted", `{"aaa": [{"id": "x"}], "packages": [{"id": "p1"}, {"id": "p2"}, {"id": "p3"}]}`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := RepairToArray(tt.raw)
			if err != nil {
				t.Fatalf("RepairToArray returned error: %v", err)
			}
			if len(items) != tt.want {
				t.Errorf("got %d items, want %d", len(items), tt.want)
			}
		})
	}
}

func TestRepairToArrayNonASCIIRetry(t *testing.T) {
	// A zero-width space breaks the first parse; the aggressive pass strips it.
	raw := "[{\"id\": \"p1\"}​]"

	items, err := RepairToArray(raw)
	if err != nil {
		t.Fatalf("RepairToArray returned error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
}

func TestRepairToArrayIrrecoverable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated mid object", `[{"id": "p1", "title": "Unfin`},
		{"no json at all", "I'm sorry, I cannot plan this trip."},
		{"object without arrays", `{"message": "no results"}`},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RepairToArray(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrUnparsableCompletion) {
				t.Errorf("error = %v, want ErrUnparsableCompletion", err)
			}
		})
	}
}
