package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progtools/conplan/config"
	"github.com/progtools/conplan/core/source"
	"github.com/progtools/conplan/infra/logger"
)

type stubLoader struct {
	tabs *source.Tabs
	err  error
}

func (l stubLoader) Load(context.Context) (*source.Tabs, error) {
	return l.tabs, l.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Source.SetDefaults()
	cfg.Convention.SetDefaults()
	cfg.Reports.SetDefaults()
	cfg.Reports.Dir = filepath.Join(t.TempDir(), "reports")
	return cfg
}

func testTabs() *source.Tabs {
	return &source.Tabs{
		Schedule: [][]string{
			{"", "RoomX", "RoomY"},
			{"Friday 2 pm", "Panel A"},
			{"", "Alice, Bob (m)"},
			{"Friday 4 pm", "", "Panel B"},
			{"", "", "Alice"},
		},
		People: [][]string{
			{"fname", "lname", "email", "response"},
			{"Alice", "", "alice@example.com", "yes"},
			{"Bob", "", "bob@example.com", "yes"},
			{"Dan", "", "dan@example.com", "yes"},
		},
		Precis: [][]string{
			{"item", "precis"},
			{"Panel A", "All about A."},
		},
		Controls: source.ParseControls([][]string{{"Starting day", "Friday"}}),
	}
}

func TestAnalyze(t *testing.T) {
	cfg := testConfig(t)
	svc := NewWithLoader(cfg, stubLoader{tabs: testTabs()}, logger.NopLogger{})

	a, err := svc.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Friday", a.Week.DayName(0))
	assert.Equal(t, 2, a.Res.Items.Len())
	assert.Len(t, a.People, 3)

	// Dan has no items and gets a dummy element.
	require.Len(t, a.Res.Schedules["Dan"], 1)
	assert.True(t, a.Res.Schedules["Dan"][0].IsDummy)

	// Panel B never got a precis row.
	assert.Equal(t, []string{"Panel B"}, a.MissingPrecis)
	assert.Empty(t, a.Diags.All())
}

func TestAnalyzeControlsStartingDay(t *testing.T) {
	tabs := testTabs()
	tabs.Controls = source.ParseControls([][]string{{"Starting day", "Saturday"}})
	tabs.Schedule[1][0] = "Saturday 2 pm"
	tabs.Schedule[3][0] = "Saturday 4 pm"

	svc := NewWithLoader(testConfig(t), stubLoader{tabs: tabs}, logger.NopLogger{})
	a, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Saturday", a.Week.DayName(0))
}

func TestAnalyzeBadStartingDayFallsBack(t *testing.T) {
	tabs := testTabs()
	tabs.Controls.Set("Starting day", "Blursday")

	svc := NewWithLoader(testConfig(t), stubLoader{tabs: tabs}, logger.NopLogger{})
	a, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Friday", a.Week.DayName(0))
}

func TestAnalyzeDuplicatePeopleHeaderIsFatal(t *testing.T) {
	tabs := testTabs()
	tabs.People[0] = []string{"fname", "lname", "email", "email"}

	svc := NewWithLoader(testConfig(t), stubLoader{tabs: tabs}, logger.NopLogger{})
	_, err := svc.Analyze(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column header")
}

func TestAnalyzeEmptyPeopleTab(t *testing.T) {
	tabs := testTabs()
	tabs.People = nil

	svc := NewWithLoader(testConfig(t), stubLoader{tabs: tabs}, logger.NopLogger{})
	a, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	assert.Empty(t, a.People)
	require.Len(t, a.Diags.All(), 1)
}

func TestRunWritesReports(t *testing.T) {
	cfg := testConfig(t)
	cfg.Reports.CSV = true
	svc := NewWithLoader(cfg, stubLoader{tabs: testTabs()}, logger.NopLogger{})

	require.NoError(t, svc.Run(context.Background()))

	for _, name := range []string{
		"People with items by time.txt",
		"Items with people by time.txt",
		"Program participant schedules.txt",
		"Pocket program.txt",
		"Diag - People scheduled against themselves.txt",
		"Diagnostics.txt",
		"Schedule.csv",
	} {
		_, err := os.Stat(filepath.Join(cfg.Reports.Dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunClearsStaleReports(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Reports.Dir, 0o755))
	stale := filepath.Join(cfg.Reports.Dir, "Old report.txt")
	require.NoError(t, os.WriteFile(stale, []byte("left over"), 0o644))

	svc := NewWithLoader(cfg, stubLoader{tabs: testTabs()}, logger.NopLogger{})
	require.NoError(t, svc.Run(context.Background()))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestNewRejectsUnknownMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Source.Mode = "carrier-pigeon"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}
