package export

import (
	"html"
	"io"

	"github.com/progtools/conplan/core/clock"
)

// NominalDays returns the distinct nominal day names of the schedule in
// chronological order. The day boundary sits at 4 am, so late-night items
// group with the preceding day.
func (p *Program) NominalDays() []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range p.Res.Times {
		day := p.Res.Week.NominalDayString(t)
		if !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out
}

// WriteDayHTML renders one nominal day's schedule as an HTML fragment,
// wrapped in the optional header and footer fragments.
func WriteDayHTML(w io.Writer, p *Program, day, header, footer string) error {
	pr := &printer{w: w}
	pr.printf("%s", header)
	pr.printf("<h2>%s</h2>\n", html.EscapeString(day))
	pr.printf("<table border=\"0\" cellspacing=\"0\" cellpadding=\"2\">\n")
	for _, t := range p.Res.Times {
		if p.Res.Week.NominalDayString(t) != day {
			continue
		}
		pr.printf("<tr><td colspan=\"3\"><p class=\"time\">%s</p></td></tr>\n",
			html.EscapeString(clock.TimeString(t)))
		for _, room := range p.roomNames() {
			for _, item := range p.itemsAt(t, room) {
				pr.printf("<tr><td width=\"40\">&nbsp;</td><td colspan=\"2\">")
				pr.printf("<p><span class=\"room\">%s: </span><span class=\"item\">%s</span></p>",
					html.EscapeString(room), html.EscapeString(item.DisplayName()))
				pr.printf("</td></tr>\n")
				if len(item.People) > 0 {
					pr.printf("<tr><td width=\"40\">&nbsp;</td><td width=\"40\">&nbsp;</td><td width=\"600\">")
					pr.printf("<p><span class=\"people\">%s</span></p>", html.EscapeString(item.DisplayPeople()))
					pr.printf("</td></tr>\n")
				}
				if item.Precis != "" {
					pr.printf("<tr><td width=\"40\">&nbsp;</td><td width=\"40\">&nbsp;</td><td width=\"600\">")
					pr.printf("<p><span class=\"precis\">%s</span></p>", html.EscapeString(item.Precis))
					pr.printf("</td></tr>\n")
				}
			}
		}
	}
	pr.printf("</table>\n")
	pr.printf("%s", footer)
	return pr.err
}
