// Package app wires the loaders, the analysis core and the report renderers
// into one batch run.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/progtools/conplan/config"
	"github.com/progtools/conplan/core/avoid"
	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/conflict"
	"github.com/progtools/conplan/core/diag"
	"github.com/progtools/conplan/core/model"
	"github.com/progtools/conplan/core/schedule"
	"github.com/progtools/conplan/core/source"
	"github.com/progtools/conplan/infra/logger"
	"github.com/progtools/conplan/infra/sheets"
	"github.com/progtools/conplan/infra/workbook"
	"github.com/progtools/conplan/pkg/export"
)

// Service runs the load, analyze, report pipeline.
type Service struct {
	cfg    *config.Config
	loader source.Loader
	log    logger.Logger
	runID  string
}

// Analysis is the fully-parsed, validated schedule model.
type Analysis struct {
	Week          clock.WeekConfig
	Res           *schedule.Result
	People        map[string]*model.Person
	MissingPrecis []string
	Report        *conflict.Report
	Diags         *diag.Collector
}

// New creates a Service from the configuration.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	var loader source.Loader
	switch cfg.Source.Mode {
	case "files":
		f := cfg.Source.Files
		loader = workbook.New(f.Dir, f.Schedule, f.People, f.Precis, f.Controls)
	case "sheets":
		s := cfg.Source.Sheets
		l, err := sheets.New(ctx, s.SpreadsheetID, s.CredentialsFile,
			s.ScheduleRange, s.PeopleRange, s.PrecisRange, s.ControlsRange)
		if err != nil {
			return nil, fmt.Errorf("sheets loader: %w", err)
		}
		loader = l
	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
	return &Service{cfg: cfg, loader: loader, log: logg, runID: uuid.NewString()}, nil
}

// NewWithLoader creates a Service with an injected loader.
func NewWithLoader(cfg *config.Config, loader source.Loader, log logger.Logger) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{cfg: cfg, loader: loader, log: log, runID: uuid.NewString()}
}

// RunID identifies this analysis run in logs and the summary file.
func (s *Service) RunID() string { return s.runID }

// Analyze loads the tabs and runs every parsing and validation pass. The
// only fatal conditions are loader failures and a corrupt people-table
// header; everything else degrades into collected diagnostics.
func (s *Service) Analyze(ctx context.Context) (*Analysis, error) {
	tabs, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	return s.analyzeTabs(tabs)
}

func (s *Service) analyzeTabs(tabs *source.Tabs) (*Analysis, error) {
	week := s.weekConfig(tabs.Controls)
	diags := diag.NewCollector(s.log)

	res := schedule.ParseGrid(week, tabs.Schedule, diags)
	s.log.Infof("parsed %d items across %d time slots", res.Items.Len(), len(res.Times))

	people := map[string]*model.Person{}
	if len(tabs.People) > 0 {
		parsed, err := schedule.ParsePeopleTable(tabs.People[0], tabs.People[1:], diags)
		if err != nil {
			return nil, err
		}
		people = parsed
		res.AddDummyElements(people)
		s.log.Infof("people table holds %d entries", len(people))
	} else {
		diags.Structuralf("people", "people tab is empty")
	}

	var missing []string
	if len(tabs.Precis) > 1 {
		missing = schedule.JoinPrecis(res.Items, tabs.Precis[1:])
	}

	parser := avoid.NewParser(week, s.cfg.Convention.Days)
	report := conflict.Detect(res, people, parser, diags)
	return &Analysis{
		Week:          week,
		Res:           res,
		People:        people,
		MissingPrecis: missing,
		Report:        report,
		Diags:         diags,
	}, nil
}

// weekConfig resolves the starting day, preferring the Controls tab over the
// config file. An unusable value warns and falls back to the default.
func (s *Service) weekConfig(controls *model.ParmDict) clock.WeekConfig {
	name := controls.GetDefault("starting day", s.cfg.Convention.StartingDay)
	week, err := clock.NewWeekConfig(name)
	if err != nil {
		s.log.Warnf("%v; using %q", err, clock.DefaultStartingDay)
		return clock.DefaultWeek()
	}
	return week
}

// Run performs the whole batch: analyze, then write the report suite.
func (s *Service) Run(ctx context.Context) error {
	s.log.Infof("run %s started", s.runID)
	a, err := s.Analyze(ctx)
	if err != nil {
		return err
	}
	prog := &export.Program{
		Res:           a.Res,
		People:        a.People,
		Report:        a.Report,
		MissingPrecis: a.MissingPrecis,
	}
	if err := s.writeReports(a, prog); err != nil {
		return err
	}
	s.log.Infof("run %s done: %d diagnostics, %d self-conflicts, %d availability conflicts, %d similar names",
		s.runID, a.Diags.Count(), len(a.Report.SelfConflicts),
		len(a.Report.AvailabilityConflicts), len(a.Report.SimilarNames))
	return nil
}
