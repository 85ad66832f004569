package clock

import (
	"fmt"
	"math"
)

// hourMinute splits a NumericTime into 12-hour-clock components.
func hourMinute(t NumericTime) (hour, minute int, isPM bool) {
	rem := t.Hours()
	isPM = rem > 12
	if isPM {
		rem -= 12
	}
	hour = int(math.Floor(rem))
	minute = int(math.Floor(60*(rem-float64(hour)) + Epsilon))
	return hour, minute, isPM
}

// TimeString renders the time-of-day on a 12-hour clock: ":00" is omitted,
// minutes are zero-padded, and hour 12 reads "Noon" or "Midnight".
func TimeString(t NumericTime) string {
	h, m, isPM := hourMinute(t)
	if h == 12 {
		if isPM {
			return "Midnight"
		}
		return "Noon"
	}
	if h == 0 {
		h = 12 // times between midnight and 1 am display as 12:MM
	}
	var s string
	if m == 0 {
		s = fmt.Sprintf("%d", h)
	} else {
		s = fmt.Sprintf("%d:%02d", h, m)
	}
	if isPM {
		return s + " pm"
	}
	return s + " am"
}

// DayString returns the week-day name of t.
func (w WeekConfig) DayString(t NumericTime) string {
	return w.DayName(t.Day())
}

// DayTimeString renders the full "Friday 2:30 pm" form.
func (w WeekConfig) DayTimeString(t NumericTime) string {
	return w.DayString(t) + " " + TimeString(t)
}

// NominalDayString returns the day used for grouping in reports. The day
// boundary is 4 am, so late-night items land on the preceding day.
func (w WeekConfig) NominalDayString(t NumericTime) string {
	return w.DayString(t.Sub(4))
}
