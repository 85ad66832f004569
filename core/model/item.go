// Package model defines the typed records the parsers produce: program
// items, participants and per-person schedule entries.
package model

import (
	"strings"

	"github.com/progtools/conplan/core/clock"
)

// DefaultItemLength is the assumed length in hours when the grid gives none.
const DefaultItemLength = 1.0

// Item is one scheduled program activity. Name is the globally unique
// registry key; DisplayName strips the registry disambiguation suffix.
// People holds participant names, which are lookup keys into the person
// table, never owning references.
type Item struct {
	Name    string
	Time    clock.NumericTime
	Length  float64 // hours
	Room    string
	People  []string
	ModName string // name of the moderator, or ""
	Precis  string // filled in by the precis join pass
	Parms   *ParmDict
}

// DisplayName returns the human-facing name of the item.
func (i *Item) DisplayName() string {
	return DisplayNameOf(i.Name)
}

// DisplayPeople renders the participant list, flagging the moderator.
func (i *Item) DisplayPeople() string {
	var b strings.Builder
	for n, person := range i.People {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(person)
		if person == i.ModName {
			b.WriteString(" (M)")
		}
	}
	return b.String()
}

// End returns the time the item finishes.
func (i *Item) End() clock.NumericTime {
	return i.Time.Add(i.Length)
}
