package model

import "strings"

// Person is one entry from the people table. Fullname is its unique key.
// Parms carries every column of the source row; the accessors below are
// read-only views over well-known columns. A Person is never mutated after
// creation.
type Person struct {
	Fullname string
	Parms    *ParmDict
}

// Email returns the person's email address, if any.
func (p *Person) Email() string {
	return p.Parms.Get("email")
}

// Response returns the raw response column value (yes/no/maybe).
func (p *Person) Response() string {
	return p.Parms.Get("response")
}

// RespondedYes reports whether the person confirmed attendance.
func (p *Person) RespondedYes() bool {
	return strings.EqualFold(strings.TrimSpace(p.Parms.Get("response")), "y")
}

// AvoidText returns the raw free-text availability-constraint column. The
// avoid package parses it into intervals.
func (p *Person) AvoidText() string {
	return p.Parms.Get("avoid")
}
