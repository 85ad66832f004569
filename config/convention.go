package config

import "fmt"

// ConventionConfig describes the event's calendar layout.
type ConventionConfig struct {
	// StartingDay names the first convention day; a value from the
	// spreadsheet's Controls tab takes precedence over this one.
	StartingDay string `json:"starting_day"`
	// Days is the number of convention days.
	Days int `json:"days"`
}

// SetDefaults applies sane defaults.
func (c *ConventionConfig) SetDefaults() {
	if c.StartingDay == "" {
		c.StartingDay = "Friday"
	}
	if c.Days == 0 {
		c.Days = 3
	}
}

// Validate checks mandatory fields.
func (c ConventionConfig) Validate() error {
	if c.Days < 1 || c.Days > 14 {
		return fmt.Errorf("convention.days must be between 1 and 14, got %d", c.Days)
	}
	return nil
}
