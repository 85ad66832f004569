package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/progtools/conplan/core/avoid"
	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/conflict"
	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/schedule"
)

func testProgram(t *testing.T) *Program {
	t.Helper()
	week := clock.DefaultWeek()
	diags := diag.NewCollector(nil)
	res := schedule.ParseGrid(week, [][]string{
		{"", "RoomX", "RoomY"},
		{"Fri 2 pm", "Panel A", "Panel B"},
		{"", "Alice, Bob (m)", "Alice"},
		{"Sat 1 am", "Late Night Filk", ""},
		{"", "Carol", ""},
	}, diags)
	people := map[string]*model.Person{
		"Alice": newPerson("Alice", "y", ""),
		"Bob":   newPerson("Bob", "y", ""),
		"Dan":   newPerson("Dan", "y", ""),
	}
	res.AddDummyElements(people)
	missing := schedule.JoinPrecis(res.Items, [][]string{
		{"Panel A", "All about A."},
		{"Ghost Item", "No such item."},
	})
	parser := avoid.NewParser(week, 3)
	rep := conflict.Detect(res, people, parser, diags)
	return &Program{Res: res, People: people, Report: rep, MissingPrecis: missing}
}

func newPerson(name, response, avoidText string) *model.Person {
	parms := model.NewParmDict()
	parms.Set("Response", response)
	parms.Set("Avoid", avoidText)
	return &model.Person{Fullname: name, Parms: parms}
}

func render(t *testing.T, fn func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestWritePeopleByTime(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WritePeopleByTime(b, p) })
	if !strings.Contains(out, "Bob\n    Friday 2 pm: Panel A [RoomX] (moderator)\n") {
		t.Errorf("output missing Bob's moderated item:\n%s", out)
	}
	if !strings.Contains(out, "Carol") {
		t.Errorf("output missing Carol:\n%s", out)
	}
}

func TestWriteItemsByTime(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteItemsByTime(b, p) })
	if !strings.Contains(out, "Friday 2 pm, RoomX: Panel A   Alice, Bob (M)\n") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "     All about A.\n") {
		t.Errorf("precis missing:\n%s", out)
	}
}

func TestWriteSelfConflicts(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteSelfConflicts(b, p) })
	if !strings.Contains(out, "Alice: Friday 2 pm: RoomX and also RoomY\n") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteUnknownPeople(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteUnknownPeople(b, p) })
	if !strings.Contains(out, "   Carol\n") {
		t.Errorf("Carol is scheduled but not in the people table:\n%s", out)
	}
}

func TestWritePeopleItemCounts(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WritePeopleItemCounts(b, p) })
	if !strings.Contains(out, "Alice: 2\n") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "Dan: coming, but not scheduled\n") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteMissingPrecis(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteMissingPrecis(b, p) })
	if !strings.Contains(out, "   Ghost Item\n") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteScheduleCSV(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteScheduleCSV(b, p) })
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "day,time,room,item") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, "Friday,2 pm,RoomX,Panel A,1,\"Alice, Bob (M)\",Bob,All about A.") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteDayHTML(t *testing.T) {
	p := testProgram(t)
	days := p.NominalDays()
	if len(days) != 1 || days[0] != "Friday" {
		t.Fatalf("nominal days = %v (1 am Saturday groups with Friday)", days)
	}
	out := render(t, func(b *bytes.Buffer) error {
		return WriteDayHTML(b, p, "Friday", "<html>", "</html>")
	})
	if !strings.HasPrefix(out, "<html><h2>Friday</h2>") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, `<span class="item">Panel A</span>`) {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "Late Night Filk") {
		t.Errorf("late-night item missing from Friday page:\n%s", out)
	}
}

func TestWriteICS(t *testing.T) {
	p := testProgram(t)
	firstDay := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	out := render(t, func(b *bytes.Buffer) error { return WriteICS(b, p, firstDay) })
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "BEGIN:VEVENT") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Panel A") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "LOCATION:RoomX") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "DTSTART:20260904T140000Z") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteItemDiagnostics(t *testing.T) {
	p := testProgram(t)
	out := render(t, func(b *bytes.Buffer) error { return WriteItemsMissingModerator(b, p) })
	if !strings.Contains(out, "Panel B") || strings.Contains(out, "Panel A\n") {
		t.Errorf("output:\n%s", out)
	}
	out = render(t, func(b *bytes.Buffer) error { return WriteLowAttendanceItems(b, p) })
	if !strings.Contains(out, "Panel A") {
		t.Errorf("two people is below the threshold:\n%s", out)
	}
}
