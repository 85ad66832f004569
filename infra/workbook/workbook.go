// Package workbook loads the spreadsheet tabs from local CSV files, one file
// per tab.
package workbook

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/source"
)

// Loader reads CSV tab files from a directory.
type Loader struct {
	dir      string
	schedule string
	people   string
	precis   string
	controls string
}

// New returns a Loader for the named files under dir. The precis and
// controls files are optional at load time; schedule and people are not.
func New(dir, schedule, people, precis, controls string) *Loader {
	return &Loader{dir: dir, schedule: schedule, people: people, precis: precis, controls: controls}
}

// Load implements source.Loader.
func (l *Loader) Load(_ context.Context) (*source.Tabs, error) {
	sched, err := l.readTab(l.schedule)
	if err != nil {
		return nil, fmt.Errorf("schedule tab: %w", err)
	}
	people, err := l.readTab(l.people)
	if err != nil {
		return nil, fmt.Errorf("people tab: %w", err)
	}
	tabs := &source.Tabs{
		Schedule: sched,
		People:   people,
		Controls: model.NewParmDict(),
	}
	if l.precis != "" {
		precis, err := l.readTab(l.precis)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("precis tab: %w", err)
		}
		tabs.Precis = precis
	}
	if l.controls != "" {
		controls, err := l.readTab(l.controls)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("controls tab: %w", err)
		}
		tabs.Controls = source.ParseControls(controls)
	}
	return tabs, nil
}

func (l *Loader) readTab(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // human-maintained rows are ragged
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return source.CleanRows(rows), nil
}
