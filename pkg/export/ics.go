package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/model"
)

func timeOnly(item *model.Item) string {
	return clock.TimeString(item.Time)
}

// WriteICS renders the program as an iCalendar feed, one VEVENT per item.
// firstDay is the real calendar date of convention day 0.
func WriteICS(w io.Writer, p *Program, firstDay time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	now := time.Now()
	for n, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		start := firstDay.Add(time.Duration(item.Time.Numeric() * float64(time.Hour)))
		ev := cal.AddEvent(fmt.Sprintf("item-%d@conplan", n))
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Duration(item.Length * float64(time.Hour))))
		ev.SetSummary(item.DisplayName())
		ev.SetLocation(item.Room)
		desc := item.Precis
		if len(item.People) > 0 {
			if desc != "" {
				desc += "\n"
			}
			desc += "Participants: " + item.DisplayPeople()
		}
		if desc != "" {
			ev.SetDescription(desc)
		}
	}
	return cal.SerializeTo(w)
}
