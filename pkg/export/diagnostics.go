package export

import (
	"io"
	"sort"
)

// The diagnostic reports each note when nothing was found, so a clean run is
// distinguishable from a report that never ran.
const noneFound = "    None found\n"

// WriteUnknownPeople lists names that appear in the schedule but not in the
// people table. These are often spelling differences or initials.
func WriteUnknownPeople(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("People who are scheduled but lack a people-table entry:\n")
	pr.printf("(Note that these may be due to spelling differences, use of initials, etc.)\n")
	var unknown []string
	for name := range p.Res.Schedules {
		if _, ok := p.People[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		pr.printf("   %s\n", name)
	}
	if len(unknown) == 0 {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteSelfConflicts reports people scheduled to be in two places at once.
func WriteSelfConflicts(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("People who are scheduled to be in two places at the same time\n")
	for _, c := range p.Report.SelfConflicts {
		pr.printf("%s: %s: %s and also %s\n",
			c.PersonName, p.Res.Week.DayTimeString(c.Time), c.FirstRoom, c.SecondRoom)
	}
	if len(p.Report.SelfConflicts) == 0 {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteAvailabilityConflicts reports items colliding with a person's avoid
// constraints.
func WriteAvailabilityConflicts(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("People scheduled against their availability constraints\n")
	for _, c := range p.Report.AvailabilityConflicts {
		pr.printf("%s: %s: %s [%s] conflicts with %q\n",
			c.PersonName, p.Res.Week.DayTimeString(c.Time), c.ItemName, c.Room, c.Avoidance)
	}
	if len(p.Report.AvailabilityConflicts) == 0 {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteSimilarNames reports name pairs alike enough to suspect a typo.
func WriteSimilarNames(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Names that are disturbingly similar:\n")
	for _, s := range p.Report.SimilarNames {
		pr.printf("   %s  &  %s\n", s.First, s.Second)
	}
	if len(p.Report.SimilarNames) == 0 {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteMissingPrecis lists precis rows whose item name matched nothing.
func WriteMissingPrecis(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Precis without corresponding items:\n")
	for _, name := range p.MissingPrecis {
		pr.printf("   %s\n", name)
	}
	if len(p.MissingPrecis) == 0 {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteLowAttendanceItems flags items with a suspiciously small number of
// people. Readings and similar one-person formats are exempt.
func WriteLowAttendanceItems(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Items with fewer than 3 people on them\n\n")
	found := false
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		if len(item.People) >= 3 || exemptPattern.MatchString(item.Name) {
			continue
		}
		pr.printf("%s %s: %d\n", p.Res.Week.DayTimeString(item.Time), item.Name, len(item.People))
		found = true
	}
	if !found {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteItemsMissingModerator flags items with no moderator.
func WriteItemsMissingModerator(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Items with no moderator\n\n")
	found := false
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		if item.ModName != "" || exemptPattern.MatchString(item.Name) {
			continue
		}
		pr.printf("%s %s\n", p.Res.Week.DayTimeString(item.Time), item.Name)
		found = true
	}
	if !found {
		pr.printf(noneFound)
	}
	return pr.err
}

// WriteItemsMissingPrecis flags items the precis tab never described.
func WriteItemsMissingPrecis(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	pr.printf("Items with no precis\n\n")
	found := false
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		if item.Precis != "" || exemptPattern.MatchString(item.Name) {
			continue
		}
		pr.printf("%s %s\n", p.Res.Week.DayTimeString(item.Time), item.Name)
		found = true
	}
	if !found {
		pr.printf(noneFound)
	}
	return pr.err
}
