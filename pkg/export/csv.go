package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteScheduleCSV writes the full program as a flat CSV table, one row per
// item.
func WriteScheduleCSV(w io.Writer, p *Program) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "time", "room", "item", "length_hours", "people", "moderator", "precis"}); err != nil {
		return err
	}
	for _, name := range p.Res.Items.Names() {
		item, _ := p.Res.Items.Lookup(name)
		rec := []string{
			p.Res.Week.DayString(item.Time),
			timeOnly(item),
			item.Room,
			item.DisplayName(),
			strconv.FormatFloat(item.Length, 'f', -1, 64),
			item.DisplayPeople(),
			item.ModName,
			item.Precis,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
