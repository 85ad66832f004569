// Package diag collects the non-fatal diagnostics produced while parsing
// human-maintained program data. Callers can assert on the collected records
// instead of scraping log output.
package diag

import (
	"fmt"

	"github.com/progtools/conplan/core/logger"
)

// Kind classifies a recoverable defect in the input.
type Kind int

const (
	// Parse marks input that failed one of the documented grammars: a bad
	// time string, split marker or avoid clause.
	Parse Kind = iota
	// Structural marks rows that violate the expected layout, such as a
	// people row with no preceding time row.
	Structural
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse"
	case Structural:
		return "structural"
	}
	return "unknown"
}

// Diagnostic is one recorded defect. Context identifies where in the input it
// was seen (a row, cell or clause).
type Diagnostic struct {
	Kind    Kind
	Context string
	Message string
}

func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Kind, d.Context, d.Message)
}

// Collector accumulates diagnostics. A nil logger is allowed; records are
// then only collected, not logged.
type Collector struct {
	log   logger.Logger
	diags []Diagnostic
}

// NewCollector returns an empty Collector that mirrors records to log.
func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

// Parsef records a Parse diagnostic.
func (c *Collector) Parsef(context, format string, args ...any) {
	c.add(Diagnostic{Kind: Parse, Context: context, Message: fmt.Sprintf(format, args...)})
}

// Structuralf records a Structural diagnostic.
func (c *Collector) Structuralf(context, format string, args ...any) {
	c.add(Diagnostic{Kind: Structural, Context: context, Message: fmt.Sprintf(format, args...)})
}

func (c *Collector) add(d Diagnostic) {
	c.diags = append(c.diags, d)
	if c.log != nil {
		c.log.Warnf("%s", d)
	}
}

// All returns the recorded diagnostics in order.
func (c *Collector) All() []Diagnostic { return c.diags }

// Count returns the number of recorded diagnostics.
func (c *Collector) Count() int { return len(c.diags) }
