// Package sheets loads the spreadsheet tabs from the Google Sheets API using
// a service-account credentials file.
package sheets

import (
	"context"
	"fmt"

	gsheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/source"
)

// Loader fetches value ranges from one spreadsheet.
type Loader struct {
	spreadsheetID string
	scheduleRange string
	peopleRange   string
	precisRange   string
	controlsRange string
	svc           *gsheets.Service
}

// New builds a Loader for the given spreadsheet. credentialsFile points at a
// service-account JSON key.
func New(ctx context.Context, spreadsheetID, credentialsFile, scheduleRange, peopleRange, precisRange, controlsRange string) (*Loader, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Loader{
		spreadsheetID: spreadsheetID,
		scheduleRange: scheduleRange,
		peopleRange:   peopleRange,
		precisRange:   precisRange,
		controlsRange: controlsRange,
		svc:           svc,
	}, nil
}

// Load implements source.Loader.
func (l *Loader) Load(ctx context.Context) (*source.Tabs, error) {
	sched, err := l.fetch(ctx, l.scheduleRange)
	if err != nil {
		return nil, fmt.Errorf("schedule tab: %w", err)
	}
	if len(sched) == 0 {
		return nil, fmt.Errorf("schedule tab %q is empty; is the spreadsheet ID right?", l.scheduleRange)
	}
	people, err := l.fetch(ctx, l.peopleRange)
	if err != nil {
		return nil, fmt.Errorf("people tab: %w", err)
	}
	tabs := &source.Tabs{
		Schedule: sched,
		People:   people,
		Controls: model.NewParmDict(),
	}
	if l.precisRange != "" {
		precis, err := l.fetch(ctx, l.precisRange)
		if err != nil {
			return nil, fmt.Errorf("precis tab: %w", err)
		}
		tabs.Precis = precis
	}
	if l.controlsRange != "" {
		controls, err := l.fetch(ctx, l.controlsRange)
		if err != nil {
			return nil, fmt.Errorf("controls tab: %w", err)
		}
		tabs.Controls = source.ParseControls(controls)
	}
	return tabs, nil
}

func (l *Loader) fetch(ctx context.Context, valueRange string) ([][]string, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, valueRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return source.CleanRows(toStrings(resp.Values)), nil
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}
	return rows
}
