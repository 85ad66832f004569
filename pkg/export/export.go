// Package export renders the analyzed program into report files: plain text,
// per-day HTML pages, CSV and iCalendar.
package export

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/conflict"
	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/schedule"
)

// Program bundles everything the renderers need.
type Program struct {
	Res           *schedule.Result
	People        map[string]*model.Person
	Report        *conflict.Report
	MissingPrecis []string
}

// exemptPattern matches item names that legitimately run with few people and
// no moderator: readings, kaffeeklatsches, autographings.
var exemptPattern = regexp.MustCompile(`Reading|KK|Kaffe|Autograph`)

// printer wraps an io.Writer so report code can print line after line and
// check for an error once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, fmt.Sprintf(format, args...))
}

// participantsByLastName returns the scheduled names sorted by the last
// token of the name, which is usually the surname.
func (p *Program) participantsByLastName() []string {
	names := make([]string, 0, len(p.Res.Schedules))
	for name := range p.Res.Schedules {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return lastToken(names[a]) < lastToken(names[b]) ||
			(lastToken(names[a]) == lastToken(names[b]) && names[a] < names[b])
	})
	return names
}

func lastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}

// itemsAt returns the items in the given slot, in registration order.
func (p *Program) itemsAt(t clock.NumericTime, room string) []*model.Item {
	var out []*model.Item
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		if item.Time.Equal(t) && item.Room == room {
			out = append(out, item)
		}
	}
	return out
}

// sortedElements returns the person's real schedule elements in time order.
func (p *Program) sortedElements(name string) []model.ScheduleElement {
	var out []model.ScheduleElement
	for _, elem := range p.Res.Schedules[name] {
		if !elem.IsDummy {
			out = append(out, elem)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Time.Before(out[b].Time) })
	return out
}

func sortedPersonNames(people map[string]*model.Person) []string {
	names := make([]string, 0, len(people))
	for name := range people {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return lastToken(names[a]) < lastToken(names[b]) ||
			(lastToken(names[a]) == lastToken(names[b]) && names[a] < names[b])
	})
	return names
}

// roomNames returns the non-empty room names in column order.
func (p *Program) roomNames() []string {
	var out []string
	for _, room := range p.Res.Rooms {
		if room != "" {
			out = append(out, room)
		}
	}
	return out
}
