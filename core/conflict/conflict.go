// Package conflict reports scheduling defects: people booked against
// themselves, items colliding with availability constraints, and
// suspiciously similar participant names.
package conflict

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/progtools/conplan/core/avoid"
	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/schedule"
)

// SimilarNameThreshold is the minimum similarity ratio worth reporting.
const SimilarNameThreshold = 0.75

// SelfConflict is one person double-booked across two items.
type SelfConflict struct {
	PersonName string
	Time       clock.NumericTime
	FirstItem  string
	FirstRoom  string
	SecondItem string
	SecondRoom string
}

// AvailabilityConflict is an item scheduled inside a person's unavailable
// interval.
type AvailabilityConflict struct {
	PersonName string
	ItemName   string
	Room       string
	Time       clock.NumericTime
	Avoidance  string
}

// SimilarName is a pair of names alike enough to suspect a typo.
type SimilarName struct {
	First  string
	Second string
	Ratio  float64
}

// Report carries the three finding lists, ready for a rendering layer.
type Report struct {
	SelfConflicts         []SelfConflict
	AvailabilityConflicts []AvailabilityConflict
	SimilarNames          []SimilarName
}

// Overlaps reports whether two intervals, given as start time plus length in
// hours, share more than a zero-width touch. Intervals are half-open: one
// ending exactly where the other begins never conflicts. A bogus time
// matches nothing.
func Overlaps(t1 clock.NumericTime, l1 float64, t2 clock.NumericTime, l2 float64) bool {
	if t1.IsBogus() || t2.IsBogus() {
		return false
	}
	if t2.Numeric() < t1.Numeric() {
		t1, t2 = t2, t1
		l1 = l2
	}
	return t1.Numeric()+l1 > t2.Numeric()+clock.Epsilon
}

// Detect runs all three scans over the parsed schedule.
func Detect(res *schedule.Result, people map[string]*model.Person, parser avoid.Parser, diags *diag.Collector) *Report {
	return &Report{
		SelfConflicts:         SelfConflicts(res),
		AvailabilityConflicts: AvailabilityConflicts(res, people, parser, diags),
		SimilarNames:          SimilarNames(allNames(res, people)),
	}
}

// SelfConflicts finds people scheduled to be in two places at once. The
// elements are sorted by time, so with positive lengths only adjacent pairs
// can overlap.
func SelfConflicts(res *schedule.Result) []SelfConflict {
	var out []SelfConflict
	for _, person := range sortedKeys(res.Schedules) {
		elems := realElements(res.Schedules[person])
		if len(elems) < 2 {
			continue
		}
		sort.Slice(elems, func(a, b int) bool { return elems[a].Time.Before(elems[b].Time) })
		for i := 1; i < len(elems); i++ {
			prev, cur := elems[i-1], elems[i]
			if Overlaps(prev.Time, prev.Length, cur.Time, cur.Length) {
				out = append(out, SelfConflict{
					PersonName: person,
					Time:       prev.Time,
					FirstItem:  prev.ItemName,
					FirstRoom:  prev.Room,
					SecondItem: cur.ItemName,
					SecondRoom: cur.Room,
				})
			}
		}
	}
	return out
}

// AvailabilityConflicts checks every real schedule element against the
// person's parsed avoid intervals.
func AvailabilityConflicts(res *schedule.Result, people map[string]*model.Person, parser avoid.Parser, diags *diag.Collector) []AvailabilityConflict {
	var out []AvailabilityConflict
	for _, name := range sortedKeys(res.Schedules) {
		person, known := people[name]
		if !known {
			// A scheduled name with no person record is a reportable
			// state elsewhere, not an error here.
			continue
		}
		text := person.AvoidText()
		if text == "" {
			continue
		}
		avoidments := parser.Parse(text, diags)
		for _, elem := range realElements(res.Schedules[name]) {
			for _, av := range avoidments {
				if Overlaps(elem.Time, elem.Length, av.Start, av.End.Since(av.Start)) {
					out = append(out, AvailabilityConflict{
						PersonName: name,
						ItemName:   elem.ItemName,
						Room:       elem.Room,
						Time:       elem.Time,
						Avoidance:  av.Description,
					})
				}
			}
		}
	}
	return out
}

// SimilarNames compares every unordered pair of names with a
// Ratcliff/Obershelp sequence match and reports pairs above the threshold,
// most similar first.
func SimilarNames(names []string) []SimilarName {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	var out []SimilarName
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			ratio := difflib.NewMatcher(chars(sorted[i]), chars(sorted[j])).Ratio()
			if ratio > SimilarNameThreshold {
				out = append(out, SimilarName{First: sorted[i], Second: sorted[j], Ratio: ratio})
			}
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Ratio > out[b].Ratio })
	return out
}

func realElements(elems []model.ScheduleElement) []model.ScheduleElement {
	out := make([]model.ScheduleElement, 0, len(elems))
	for _, e := range elems {
		if !e.IsDummy {
			out = append(out, e)
		}
	}
	return out
}

func allNames(res *schedule.Result, people map[string]*model.Person) []string {
	set := map[string]bool{}
	for name := range res.Schedules {
		set[name] = true
	}
	for name := range people {
		set[name] = true
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names
}

func sortedKeys(m map[string][]model.ScheduleElement) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
