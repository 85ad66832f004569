package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
)

// ParsePeopleTable builds the person table from the people tab's header row
// and data rows. Every column is stored in the person's ParmDict; the full
// name is assembled from the fname and lname columns.
//
// A duplicate column header is fatal: the column-to-parameter mapping would
// be ambiguous and every subsequent row corrupt. Rows with no derivable name
// are reported to diags and skipped.
func ParsePeopleTable(header []string, rows [][]string, diags *diag.Collector) (map[string]*model.Person, error) {
	seen := map[string]bool{}
	for _, h := range header {
		folded := strings.ToLower(strings.TrimSpace(h))
		if folded == "" {
			continue
		}
		if seen[folded] {
			return nil, fmt.Errorf("duplicate column header %q in people table", strings.TrimSpace(h))
		}
		seen[folded] = true
	}
	if !seen["fname"] && !seen["lname"] {
		diags.Structuralf("people", "header has neither an fname nor an lname column: %s", strings.Join(header, " "))
	}

	people := map[string]*model.Person{}
	for i, row := range rows {
		parms := model.NewParmDict()
		for col, h := range header {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			parms.Set(h, cellAt(row, col))
		}

		fname := parms.Get("fname")
		lname := parms.Get("lname")
		fullname := strings.TrimSpace(fname + " " + lname)
		if fullname == "" {
			// +2: 1-based numbering plus the header row.
			diags.Structuralf("people row "+strconv.Itoa(i+2), "name missing: %s", strings.Join(row, " "))
			continue
		}
		people[fullname] = &model.Person{Fullname: fullname, Parms: parms}
	}
	return people, nil
}
