package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
source:
  mode: files
  files:
    dir: testdata
convention:
  starting_day: Thursday
  days: 4
reports:
  dir: out
  html: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "files", cfg.Source.Mode)
	assert.Equal(t, "testdata", cfg.Source.Files.Dir)
	assert.Equal(t, "schedule.csv", cfg.Source.Files.Schedule) // default
	assert.Equal(t, "Thursday", cfg.Convention.StartingDay)
	assert.Equal(t, 4, cfg.Convention.Days)
	assert.Equal(t, "out", cfg.Reports.Dir)
	assert.True(t, cfg.Reports.HTML)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "cfg.json", `{"source":{"mode":"files"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Friday", cfg.Convention.StartingDay)
	assert.Equal(t, 3, cfg.Convention.Days)
	assert.Equal(t, "reports", cfg.Reports.Dir)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", "source:\n  mode: files\n")
	t.Setenv("CONPLAN_CONVENTION__DAYS", "2")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Convention.Days)
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	cases := map[string]string{
		"bad mode":          "source:\n  mode: carrier-pigeon\n",
		"sheets without id": "source:\n  mode: sheets\n",
		"ics without date":  "source:\n  mode: files\nreports:\n  ics: true\n",
		"bad day count":     "source:\n  mode: files\nconvention:\n  days: 99\n",
	}
	for name, content := range cases {
		path := writeConfig(t, "cfg.yaml", content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load("nope.toml"); err == nil {
		t.Errorf("unsupported extension: expected error")
	}
}
