package model

import "github.com/progtools/conplan/core/clock"

// ScheduleElement joins one person to one item. Dummy elements keep a person
// present in schedule-keyed collections even when they have no real items, so
// reports can still address unscheduled-but-expected people.
type ScheduleElement struct {
	PersonName string
	Time       clock.NumericTime
	Length     float64 // hours
	Room       string
	ItemName   string
	IsMod      bool
	IsDummy    bool
}

// DisplayName returns the item name with any registry suffix removed.
func (e ScheduleElement) DisplayName() string {
	return DisplayNameOf(e.ItemName)
}

// ModFlag renders the moderator marker for report output.
func (e ScheduleElement) ModFlag() string {
	if e.IsMod {
		return " (moderator)"
	}
	return ""
}

// End returns the time the element finishes.
func (e ScheduleElement) End() clock.NumericTime {
	return e.Time.Add(e.Length)
}
