// Package avoid parses a person's free-text availability-constraint column
// ("arrive Sat 3pm, leave Sun noon, sat dinner") into unavailable intervals.
package avoid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/diag"
)

// Avoidment is one unavailable interval for one person.
type Avoidment struct {
	Start       clock.NumericTime
	End         clock.NumericTime
	Description string
}

// DefaultConventionDays is assumed when the configuration gives no day count.
const DefaultConventionDays = 3

// Parser interprets avoid clauses against a convention's week layout.
type Parser struct {
	week clock.WeekConfig
	days int
}

// NewParser builds a Parser for a convention spanning the given number of
// days starting at week's day 0.
func NewParser(week clock.WeekConfig, days int) Parser {
	if days <= 0 {
		days = DefaultConventionDays
	}
	return Parser{week: week, days: days}
}

var spanPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)-([0-9]+(?:\.[0-9]+)?)$`)

// Parse interprets a comma-separated list of independent clauses. Bad
// clauses are reported to diags and dropped; Parse never fails, it returns
// whatever valid intervals it could construct.
func (p Parser) Parse(text string, diags *diag.Collector) []Avoidment {
	var out []Avoidment
	for _, clause := range strings.Split(text, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		parsed, ok := p.parseClause(clause)
		if !ok {
			diags.Parsef("avoid clause", "can't interpret %q", clause)
			continue
		}
		out = append(out, parsed...)
	}
	return out
}

func (p Parser) parseClause(clause string) ([]Avoidment, bool) {
	fields := strings.Fields(clause)
	if len(fields) < 2 {
		return nil, false
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "arrive":
		return p.parseArrive(clause, args)
	case "leave", "depart":
		return p.parseLeave(clause, args)
	case "daily", "every", "all":
		lo, hi, ok := p.parseSpan(args)
		if !ok {
			return nil, false
		}
		var out []Avoidment
		for d := 0; d < p.days; d++ {
			out = append(out, Avoidment{
				Start:       clock.New(d, lo),
				End:         clock.New(d, hi),
				Description: clause,
			})
		}
		return out, true
	}

	// <dayname> <spec>
	day, ok := p.week.DayIndex(command)
	if !ok || day >= p.days {
		return nil, false
	}
	lo, hi, ok := p.parseSpan(args)
	if !ok {
		return nil, false
	}
	return []Avoidment{{
		Start:       clock.New(day, lo),
		End:         clock.New(day, hi),
		Description: clause,
	}}, true
}

// parseArrive blocks everything before the arrival time. Arriving on a later
// convention day also blocks all the days before it.
func (p Parser) parseArrive(clause string, args []string) ([]Avoidment, bool) {
	day, t, ok := p.dayAndTime(args, 0)
	if !ok {
		return nil, false
	}
	var out []Avoidment
	for d := 0; d < day; d++ {
		out = append(out, p.fullDay(d, clause))
	}
	out = append(out, Avoidment{
		Start:       clock.New(day, 0),
		End:         t,
		Description: clause,
	})
	return out, true
}

// parseLeave blocks everything after the departure time, including any
// convention days that follow it.
func (p Parser) parseLeave(clause string, args []string) ([]Avoidment, bool) {
	day, t, ok := p.dayAndTime(args, p.days-1)
	if !ok {
		return nil, false
	}
	out := []Avoidment{{
		Start:       t,
		End:         clock.New(day, 24),
		Description: clause,
	}}
	for d := day + 1; d < p.days; d++ {
		out = append(out, p.fullDay(d, clause))
	}
	return out, true
}

// dayAndTime resolves "[day] time" argument lists against the default day.
func (p Parser) dayAndTime(args []string, defaultDay int) (int, clock.NumericTime, bool) {
	day := defaultDay
	timeTok := strings.Join(args, " ")
	if len(args) >= 2 {
		if d, ok := p.week.DayIndex(args[0]); ok {
			day = d
			timeTok = strings.Join(args[1:], " ")
		}
	}
	t, err := p.week.Parse(p.week.DayName(day) + " " + timeTok)
	if err != nil {
		return 0, clock.NumericTime{}, false
	}
	return day, t, true
}

func (p Parser) fullDay(day int, clause string) Avoidment {
	return Avoidment{
		Start:       clock.New(day, 0),
		End:         clock.New(day, 24),
		Description: clause,
	}
}

// parseSpan resolves a sub-interval spec: a numeric "hh-hh" range or one of
// the named spans. "all day" deliberately stops just short of the day's
// boundaries so adjacent days' items never coincide with it.
func (p Parser) parseSpan(args []string) (lo, hi float64, ok bool) {
	spec := strings.ToLower(strings.Join(args, " "))
	switch spec {
	case "dinner":
		return 18, 20, true
	case "evening":
		return 20, 24, true
	case "all day":
		return 0.02, 23.98, true
	}
	m := spanPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(m[1], 64)
	hi, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}
