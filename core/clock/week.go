package clock

import (
	"fmt"
	"strings"
)

var weekDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DefaultStartingDay is used when the configured starting day is unusable.
const DefaultStartingDay = "Friday"

// WeekConfig holds the week-day list rotated so that index 0 is the first day
// of the convention. It is immutable; every parse and render call receives it
// explicitly rather than consulting shared state.
type WeekConfig struct {
	days []string
}

// NewWeekConfig builds a WeekConfig starting at the named week day.
// The name must match a full week-day name, case-insensitively.
func NewWeekConfig(startingDay string) (WeekConfig, error) {
	name := strings.TrimSpace(startingDay)
	start := -1
	for i, d := range weekDays {
		if strings.EqualFold(d, name) {
			start = i
			break
		}
	}
	if start < 0 {
		return WeekConfig{}, fmt.Errorf("can't interpret starting day %q", startingDay)
	}
	// Two weeks' worth of names so that day indexes past the rotation point
	// still resolve.
	days := make([]string, 0, 2*len(weekDays))
	for i := 0; i < 2*len(weekDays); i++ {
		days = append(days, weekDays[(start+i)%len(weekDays)])
	}
	return WeekConfig{days: days}, nil
}

// DefaultWeek returns the week rotated to the default starting day.
func DefaultWeek() WeekConfig {
	w, _ := NewWeekConfig(DefaultStartingDay)
	return w
}

// DayName returns the name of convention day i. Out-of-range indexes yield "".
func (w WeekConfig) DayName(i int) string {
	if i < 0 || i >= len(w.days) {
		return ""
	}
	return w.days[i]
}

// DayIndex resolves a possibly-abbreviated day name to a convention day index
// using a case-insensitive prefix match. The first match in convention order
// wins.
func (w WeekConfig) DayIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i, d := range w.days {
		if strings.HasPrefix(strings.ToLower(d), name) {
			return i, true
		}
	}
	return 0, false
}
