package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Raw shapes decoded from the repaired completion. The model is asked for a
// fixed schema but rarely honors it exactly, so every field is tolerant:
// numbers may arrive as strings, attractions may be bare names or objects,
// and long-trip packages carry weeks instead of days.

type rawPackage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	TotalCost   flexFloat `json:"total_cost"`
	Days        []rawDay  `json:"days"`
	Weeks       []rawWeek `json:"weeks"`
}

type rawDay struct {
	Day         flexInt         `json:"day"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Attractions []rawAttraction `json:"attractions"`
	Hotel       string          `json:"hotel"`
	Transport   string          `json:"transport"`
}

type rawWeek struct {
	Week        flexInt         `json:"week"`
	DaySpan     string          `json:"days"`
	Theme       string          `json:"theme"`
	Description string          `json:"description"`
	Highlights  []rawAttraction `json:"highlights"`
	Hotel       string          `json:"hotel"`
	Transport   string          `json:"transport"`
	Budget      flexFloat       `json:"budget"`
}

// rawAttraction accepts either a bare string name or an object.
type rawAttraction struct {
	Name     string
	Price    float64
	Duration string
	Slot     string
	Tip      string
}

func (a *rawAttraction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.Name = name
		return nil
	}

	var obj struct {
		Name     string    `json:"name"`
		Title    string    `json:"title"`
		Price    flexFloat `json:"price"`
		Duration string    `json:"duration"`
		Slot     string    `json:"slot"`
		Time     string    `json:"time"`
		Tip      string    `json:"tip"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	if a.Name == "" {
		a.Name = obj.Title
	}
	a.Price = float64(obj.Price)
	a.Duration = obj.Duration
	a.Slot = obj.Slot
	if a.Slot == "" {
		a.Slot = obj.Time
	}
	a.Tip = obj.Tip
	return nil
}

// flexFloat decodes numbers that may be quoted or carry currency noise
// ("AED 1,200"). Anything unparseable decodes to zero.
type flexFloat float64

var numericRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = 0
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	if m := numericRe.FindString(s); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			*f = flexFloat(v)
			return nil
		}
	}
	*f = 0
	return nil
}

type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = flexInt(int(f))
	return nil
}

// parseDaySpan reads a week's declared span ("8-14", "days 8 to 14") into an
// inclusive range. A span that cannot be read returns ok=false and the caller
// falls back to positional 7-day blocks.
func parseDaySpan(span string) (start, end int, ok bool) {
	nums := numericRe.FindAllString(span, 2)
	if len(nums) == 2 {
		a, err1 := strconv.Atoi(nums[0])
		b, err2 := strconv.Atoi(nums[1])
		if err1 == nil && err2 == nil && a >= 1 && b >= a {
			return a, b, true
		}
	}
	if len(nums) == 1 {
		if a, err := strconv.Atoi(nums[0]); err == nil && a >= 1 {
			return a, a, true
		}
	}
	return 0, 0, false
}
