package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The time grammar is an ordered list of (pattern, extractor) rules. The
// first pattern that matches the trimmed input wins, so "Fri 8" is consumed
// by the day-hour rule before the day-hour.fraction rule can see it.
type timeRule struct {
	re      *regexp.Regexp
	extract func(w WeekConfig, m []string) (NumericTime, error)
}

var timeRules = []timeRule{
	{
		// <day> <hour> <suffix>, e.g. "Friday 2 pm", "sat 11pm"
		re: regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+)\s*([A-Za-z]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			return w.assemble(m[1], m[2], "", m[3])
		},
	},
	{
		// <day> <hour>:<minute> <suffix>, e.g. "Friday 2:30 pm"
		re: regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+):([0-9]+)\s*([A-Za-z]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			return w.assemble(m[1], m[2], m[3], m[4])
		},
	},
	{
		// <day> <suffix>, e.g. "Friday noon", "Sat Midnight"
		re: regexp.MustCompile(`^([A-Za-z]+)\s+([A-Za-z]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			return w.assemble(m[1], "", "", m[2])
		},
	},
	{
		// <day> <hour>, 24-hour clock, e.g. "Friday 14"
		re: regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			return w.assemble(m[1], m[2], "", "")
		},
	},
	{
		// <day> <hour>:<minute>, e.g. "Friday 14:30"
		re: regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+):([0-9]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			return w.assemble(m[1], m[2], m[3], "")
		},
	},
	{
		// <day> <hour>.<fraction>, e.g. "Friday 14.5"
		re: regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+)\.([0-9]+)$`),
		extract: func(w WeekConfig, m []string) (NumericTime, error) {
			h, err := strconv.ParseFloat(m[2]+"."+m[3], 64)
			if err != nil {
				return NumericTime{}, err
			}
			d, ok := w.DayIndex(m[1])
			if !ok {
				return NumericTime{}, fmt.Errorf("unknown day %q", m[1])
			}
			return New(d, h), nil
		},
	},
}

// Parse interprets a free-text day+time string such as "Friday 2:30 pm",
// "sat noon" or "Sun 14.5" against the configured week.
func (w WeekConfig) Parse(s string) (NumericTime, error) {
	trimmed := strings.TrimSpace(s)
	for _, rule := range timeRules {
		if m := rule.re.FindStringSubmatch(trimmed); m != nil {
			return rule.extract(w, m)
		}
	}
	return NumericTime{}, fmt.Errorf("can't interpret time %q", s)
}

// assemble resolves the matched day/hour/minute/suffix fragments into a time.
func (w WeekConfig) assemble(day, hour, minute, suffix string) (NumericTime, error) {
	d, ok := w.DayIndex(day)
	if !ok {
		return NumericTime{}, fmt.Errorf("unknown day %q", day)
	}
	h := 0.0
	if hour != "" {
		n, err := strconv.Atoi(hour)
		if err != nil {
			return NumericTime{}, err
		}
		h = float64(n)
	}
	if minute != "" {
		n, err := strconv.Atoi(minute)
		if err != nil {
			return NumericTime{}, err
		}
		h += float64(n) / 60
	}
	switch strings.ToLower(suffix) {
	case "":
	case "am":
		// "12:30 am" is 30 minutes past midnight.
		if h >= 12 && h < 13 {
			h -= 12
		}
	case "pm":
		if h < 12 {
			h += 12
		}
	case "noon":
		h = 12
	case "midnight":
		// End-of-day midnight: sorts after all of the day's events.
		h = 24
	default:
		return NumericTime{}, fmt.Errorf("unknown time suffix %q", suffix)
	}
	return New(d, h), nil
}
