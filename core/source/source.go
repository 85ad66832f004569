// Package source defines the contract between the analysis core and the
// loaders that materialize spreadsheet data for it.
package source

import (
	"context"
	"strings"

	"github.com/progtools/conplan/core/model"
)

// Tabs is the fully-materialized input: every tab arrives as trimmed cell
// rows with blank rows and #-comment rows already removed.
type Tabs struct {
	// Schedule holds the two-row grid; row 0 is the room header.
	Schedule [][]string
	// People holds the people table, header row first.
	People [][]string
	// Precis holds (item name, precis) pairs, header row first.
	Precis [][]string
	// Controls carries run parameters such as "Starting day".
	Controls *model.ParmDict
}

// Loader produces Tabs from wherever the spreadsheet lives.
type Loader interface {
	Load(ctx context.Context) (*Tabs, error)
}

// CleanRows trims every cell, then drops rows that are blank or whose joined
// content starts with "#".
func CleanRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		trimmed := make([]string, len(row))
		joined := ""
		for i, cell := range row {
			trimmed[i] = strings.TrimSpace(cell)
			joined += trimmed[i]
		}
		if joined == "" || strings.HasPrefix(joined, "#") {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// ParseControls turns key/value rows into a ParmDict. Column 0 is the key,
// column 1 the value; rows without both are ignored.
func ParseControls(rows [][]string) *model.ParmDict {
	parms := model.NewParmDict()
	for _, row := range rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		parms.Set(row[0], row[1])
	}
	return parms
}
