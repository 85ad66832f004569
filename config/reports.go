package config

import (
	"fmt"
	"time"
)

// ReportsConfig controls what Run writes and where.
type ReportsConfig struct {
	// Dir is the output directory; it is created when missing.
	Dir string `json:"dir"`
	// HTML enables the per-day web pages.
	HTML bool `json:"html"`
	// HeaderFile and FooterFile are optional fragments wrapped around each
	// HTML page.
	HeaderFile string `json:"header_file"`
	FooterFile string `json:"footer_file"`
	// CSV enables the flat schedule export.
	CSV bool `json:"csv"`
	// ICS enables the iCalendar export. FirstDayDate anchors convention
	// day 0 on the real calendar, formatted 2006-01-02.
	ICS          bool   `json:"ics"`
	FirstDayDate string `json:"first_day_date"`
}

// SetDefaults applies sane defaults.
func (c *ReportsConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "reports"
	}
}

// Validate checks mandatory fields.
func (c ReportsConfig) Validate() error {
	if c.ICS {
		if c.FirstDayDate == "" {
			return fmt.Errorf("reports.first_day_date is required when reports.ics is enabled")
		}
		if _, err := time.Parse("2006-01-02", c.FirstDayDate); err != nil {
			return fmt.Errorf("reports.first_day_date: %w", err)
		}
	}
	return nil
}

// FirstDay returns the parsed calendar date of convention day 0.
func (c ReportsConfig) FirstDay() time.Time {
	t, _ := time.Parse("2006-01-02", c.FirstDayDate)
	return t
}
