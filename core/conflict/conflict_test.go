package conflict

import (
	"testing"

	"github.com/progtools/conplan/core/avoid"
	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/schedule"
)

func TestOverlapsBoundaries(t *testing.T) {
	at := func(h float64) clock.NumericTime { return clock.New(0, h) }
	cases := []struct {
		t1 float64
		l1 float64
		t2 float64
		l2 float64
		want bool
	}{
		{10.0, 1.0, 11.0, 1.0, false}, // zero-width touch
		{10.0, 1.0, 10.5, 1.0, true},
		{10.0, 2.0, 11.0, 0.5, true}, // containment
		{10.0, 1.0, 12.0, 1.0, false},
		{23.0, 2.0, 24.5, 1.0, true}, // across midnight
	}
	for _, c := range cases {
		got := Overlaps(at(c.t1), c.l1, at(c.t2), c.l2)
		if got != c.want {
			t.Errorf("Overlaps((%v,%v),(%v,%v)) = %v, want %v", c.t1, c.l1, c.t2, c.l2, got, c.want)
		}
		// The predicate must be symmetric.
		if sym := Overlaps(at(c.t2), c.l2, at(c.t1), c.l1); sym != got {
			t.Errorf("Overlaps not symmetric for (%v,%v),(%v,%v)", c.t1, c.l1, c.t2, c.l2)
		}
	}
}

func TestOverlapsBogus(t *testing.T) {
	if Overlaps(clock.Bogus(), 1, clock.New(0, 0), 24) {
		t.Errorf("bogus time must never overlap")
	}
	if Overlaps(clock.New(0, 10), 1, clock.Bogus(), 1) {
		t.Errorf("bogus time must never overlap")
	}
}

func gridResult(t *testing.T, grid [][]string) *schedule.Result {
	t.Helper()
	return schedule.ParseGrid(clock.DefaultWeek(), grid, diag.NewCollector(nil))
}

func TestSelfConflicts(t *testing.T) {
	res := gridResult(t, [][]string{
		{"", "RoomX", "RoomY"},
		{"Fri 2 pm", "Panel A", ""},
		{"", "Alice", ""},
		{"Fri 2:30 pm", "", "Panel B"},
		{"", "", "Alice"},
		{"Fri 4 pm", "Panel C", ""},
		{"", "Alice", ""},
	})
	got := SelfConflicts(res)
	if len(got) != 1 {
		t.Fatalf("conflicts = %+v, want exactly one", got)
	}
	c := got[0]
	if c.PersonName != "Alice" || c.FirstRoom != "RoomX" || c.SecondRoom != "RoomY" {
		t.Errorf("conflict = %+v", c)
	}
	if c.FirstItem != "Panel A" || c.SecondItem != "Panel B" {
		t.Errorf("conflict items = %+v", c)
	}
}

func TestSelfConflictsIgnoreDummies(t *testing.T) {
	res := gridResult(t, [][]string{
		{"", "RoomX"},
		{"Fri 2 pm", "Panel A"},
		{"", "Alice"},
	})
	res.AddDummyElements(map[string]*model.Person{
		"Zelda": {Fullname: "Zelda", Parms: model.NewParmDict()},
	})
	if got := SelfConflicts(res); len(got) != 0 {
		t.Errorf("conflicts = %+v", got)
	}
}

func TestAvailabilityConflicts(t *testing.T) {
	res := gridResult(t, [][]string{
		{"", "RoomX"},
		{"Sat 10 am", "Morning Panel"},
		{"", "Alice"},
		{"Sat 4 pm", "Afternoon Panel"},
		{"", "Alice"},
	})
	people := map[string]*model.Person{
		"Alice": personWithAvoid("Alice", "arrive Sat 3pm"),
	}
	parser := avoid.NewParser(clock.DefaultWeek(), 3)
	diags := diag.NewCollector(nil)
	got := AvailabilityConflicts(res, people, parser, diags)
	if len(got) != 1 {
		t.Fatalf("conflicts = %+v", got)
	}
	if got[0].ItemName != "Morning Panel" || got[0].Avoidance != "arrive Sat 3pm" {
		t.Errorf("conflict = %+v", got[0])
	}
}

func TestAvailabilityConflictsUnknownPerson(t *testing.T) {
	res := gridResult(t, [][]string{
		{"", "RoomX"},
		{"Fri 2 pm", "Panel"},
		{"", "Mystery Guest"},
	})
	parser := avoid.NewParser(clock.DefaultWeek(), 3)
	got := AvailabilityConflicts(res, map[string]*model.Person{}, parser, diag.NewCollector(nil))
	if len(got) != 0 {
		t.Errorf("unknown person should not conflict: %+v", got)
	}
}

func TestSimilarNames(t *testing.T) {
	got := SimilarNames([]string{"John Smith", "Jon Smith", "Ursula Vernon"})
	if len(got) != 1 {
		t.Fatalf("similar = %+v", got)
	}
	if got[0].First != "John Smith" || got[0].Second != "Jon Smith" {
		t.Errorf("pair = %+v", got[0])
	}
	if got[0].Ratio <= SimilarNameThreshold {
		t.Errorf("ratio = %v", got[0].Ratio)
	}
}

func TestSimilarNamesSortedByRatio(t *testing.T) {
	got := SimilarNames([]string{"Anna Kare", "Anna Karen", "Anna Karenina"})
	if len(got) < 2 {
		t.Fatalf("similar = %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Ratio > got[i-1].Ratio {
			t.Errorf("not sorted descending: %+v", got)
		}
	}
}

func TestDetect(t *testing.T) {
	res := gridResult(t, [][]string{
		{"", "RoomX", "RoomY"},
		{"Fri 2 pm", "Panel A", "Panel B"},
		{"", "Alice", "Alice"},
	})
	people := map[string]*model.Person{
		"Alice": personWithAvoid("Alice", "fri dinner"),
	}
	parser := avoid.NewParser(clock.DefaultWeek(), 3)
	rep := Detect(res, people, parser, diag.NewCollector(nil))
	if len(rep.SelfConflicts) != 1 {
		t.Errorf("self = %+v", rep.SelfConflicts)
	}
	if len(rep.AvailabilityConflicts) != 0 {
		t.Errorf("availability = %+v", rep.AvailabilityConflicts)
	}
}

func personWithAvoid(name, avoidText string) *model.Person {
	parms := model.NewParmDict()
	parms.Set("Avoid", avoidText)
	return &model.Person{Fullname: name, Parms: parms}
}
