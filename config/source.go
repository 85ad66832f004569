package config

import "fmt"

// SourceConfig selects where the spreadsheet tabs come from.
type SourceConfig struct {
	// Mode is "files" (local CSV workbook) or "sheets" (Google Sheets API).
	Mode   string       `json:"mode"`
	Files  FilesConfig  `json:"files"`
	Sheets SheetsConfig `json:"sheets"`
}

// FilesConfig names the per-tab CSV files.
type FilesConfig struct {
	Dir      string `json:"dir"`
	Schedule string `json:"schedule"`
	People   string `json:"people"`
	Precis   string `json:"precis"`
	Controls string `json:"controls"`
}

// SheetsConfig identifies the spreadsheet and its tab ranges.
type SheetsConfig struct {
	SpreadsheetID   string `json:"spreadsheet_id"`
	CredentialsFile string `json:"credentials_file"`
	ScheduleRange   string `json:"schedule_range"`
	PeopleRange     string `json:"people_range"`
	PrecisRange     string `json:"precis_range"`
	ControlsRange   string `json:"controls_range"`
}

// SetDefaults applies sane defaults.
func (c *SourceConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = "files"
	}
	if c.Files.Dir == "" {
		c.Files.Dir = "."
	}
	if c.Files.Schedule == "" {
		c.Files.Schedule = "schedule.csv"
	}
	if c.Files.People == "" {
		c.Files.People = "people.csv"
	}
	if c.Files.Precis == "" {
		c.Files.Precis = "precis.csv"
	}
	if c.Files.Controls == "" {
		c.Files.Controls = "controls.csv"
	}
	if c.Sheets.ScheduleRange == "" {
		c.Sheets.ScheduleRange = "Schedule!A1:Z1999"
	}
	if c.Sheets.PeopleRange == "" {
		c.Sheets.PeopleRange = "People!A1:Z999"
	}
	if c.Sheets.PrecisRange == "" {
		c.Sheets.PrecisRange = "Precis!A1:Z999"
	}
	if c.Sheets.ControlsRange == "" {
		c.Sheets.ControlsRange = "Controls!A1:Z999"
	}
}

// Validate checks mandatory fields.
func (c SourceConfig) Validate() error {
	switch c.Mode {
	case "files":
		return nil
	case "sheets":
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("source.sheets.spreadsheet_id is required in sheets mode")
		}
		if c.Sheets.CredentialsFile == "" {
			return fmt.Errorf("source.sheets.credentials_file is required in sheets mode")
		}
		return nil
	}
	return fmt.Errorf("unknown source mode %q", c.Mode)
}
