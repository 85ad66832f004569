package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
)

// splitPattern recognizes the split-item notation in a people cell:
// "Alice, [0.5] Bob" puts Alice on the hour and Bob half an hour later.
var splitPattern = regexp.MustCompile(`(.*)\[([0-9.]+)\](.*)`)

// modPattern is the case-insensitive moderator marker on a person name.
var modPattern = regexp.MustCompile(`(?i)\(m\)`)

// splitSuffix disambiguates the second sub-item of a split slot.
const splitSuffix = " {#2}"

// Result is the parsed schedule model handed to the conflict detector and
// the renderers.
type Result struct {
	Week      clock.WeekConfig
	Items     *Registry
	Schedules map[string][]model.ScheduleElement
	Times     []clock.NumericTime
	Rooms     []string
}

// ParseGrid consumes the two-row (time row / people row) grid layout. Row 0
// holds room names in columns >= 1; blank rows and #-comment rows have
// already been removed by the loader. Malformed rows are reported to diags
// and skipped.
func ParseGrid(week clock.WeekConfig, grid [][]string, diags *diag.Collector) *Result {
	res := &Result{
		Week:      week,
		Items:     NewRegistry(week),
		Schedules: map[string][]model.ScheduleElement{},
	}
	if len(grid) == 0 {
		diags.Structuralf("schedule", "grid is empty")
		return res
	}

	header := grid[0]
	roomIndexes := []int{}
	for col := 1; col < len(header); col++ {
		name := strings.TrimSpace(header[col])
		res.Rooms = append(res.Rooms, name)
		if name != "" {
			roomIndexes = append(roomIndexes, col)
		}
	}
	if len(roomIndexes) == 0 {
		diags.Structuralf("schedule", "room names row is blank")
		return res
	}

	// One forward pass with a single row of lookahead: a row with text in
	// column 0 is a time row; if the next row's column 0 is empty it is the
	// paired people row.
	for i := 1; i < len(grid); i++ {
		row := grid[i]
		if cellAt(row, 0) == "" {
			diags.Structuralf(rowContext(i), "people row without a preceding time row: %s", strings.Join(row, " "))
			continue
		}
		var peopleRow []string
		if i+1 < len(grid) && cellAt(grid[i+1], 0) == "" {
			peopleRow = grid[i+1]
			i++
		}
		res.parseSlot(i, row, peopleRow, header, roomIndexes, diags)
	}

	sort.Slice(res.Times, func(a, b int) bool { return res.Times[a].Before(res.Times[b]) })
	return res
}

// parseSlot handles one time row and its optional people row.
func (res *Result) parseSlot(rowIdx int, timeRow, peopleRow, header []string, roomIndexes []int, diags *diag.Collector) {
	t, err := res.Week.Parse(timeRow[0])
	if err != nil {
		diags.Parsef(rowContext(rowIdx), "%v", err)
		return
	}
	res.recordTime(t)

	for _, col := range roomIndexes {
		cell := cellAt(timeRow, col)
		if cell == "" {
			continue
		}
		room := strings.TrimSpace(header[col])
		name, parms, _ := model.ExtractAnnotations(cell)

		peopleCell := cellAt(peopleRow, col)
		m := splitPattern.FindStringSubmatch(peopleCell)
		if m == nil {
			res.addItem(t, model.DefaultItemLength, room, name, parms, peopleCell)
			continue
		}

		frac, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			diags.Parsef(rowContext(rowIdx), "bad split marker in %q: %v", peopleCell, err)
			continue
		}
		first := strings.TrimSuffix(strings.TrimSpace(m[1]), ",")
		second := strings.TrimSpace(m[3])
		rest := model.DefaultItemLength - frac
		if rest <= 0 {
			rest = model.DefaultItemLength
		}
		res.addItem(t, frac, room, name, parms, first)
		res.recordTime(t.Add(frac))
		res.addItem(t.Add(frac), rest, room, name+splitSuffix, parms, second)
	}
}

// addItem registers one item and appends a schedule element for each listed
// person. peopleText is a comma-separated name list; empty tokens are
// dropped and a case-insensitive "(m)" marker names the moderator.
func (res *Result) addItem(t clock.NumericTime, length float64, room, name string, parms *model.ParmDict, peopleText string) {
	var people []string
	modName := ""
	for _, token := range strings.Split(peopleText, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if modPattern.MatchString(token) {
			token = strings.TrimSpace(modPattern.ReplaceAllString(token, ""))
			modName = token
		}
		people = append(people, token)
	}

	item := &model.Item{
		Time:    t,
		Length:  length,
		Room:    room,
		People:  people,
		ModName: modName,
		Parms:   parms,
	}
	finalName := res.Items.Register(name, item)

	for _, person := range people {
		res.Schedules[person] = append(res.Schedules[person], model.ScheduleElement{
			PersonName: person,
			Time:       t,
			Length:     length,
			Room:       room,
			ItemName:   finalName,
			IsMod:      person == modName,
		})
	}
}

func (res *Result) recordTime(t clock.NumericTime) {
	for _, known := range res.Times {
		if known.Equal(t) {
			return
		}
	}
	res.Times = append(res.Times, t)
}

// AddDummyElements inserts a placeholder schedule element for every known
// person who has no real items, keeping them addressable by schedule-keyed
// reports.
func (res *Result) AddDummyElements(people map[string]*model.Person) {
	for name := range people {
		if len(res.Schedules[name]) == 0 {
			res.Schedules[name] = append(res.Schedules[name], model.ScheduleElement{
				PersonName: name,
				IsDummy:    true,
			})
		}
	}
}

// cellAt returns the trimmed cell, tolerating short rows: trailing empty
// cells are truncated by spreadsheet loaders.
func cellAt(row []string, col int) string {
	if row == nil || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func rowContext(i int) string {
	// Spreadsheet row numbering is 1-based.
	return "schedule row " + strconv.Itoa(i+1)
}
