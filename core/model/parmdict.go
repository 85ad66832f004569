package model

import "strings"

// ParmDict is an ordered string map with case-insensitive keys. It models the
// arbitrary named columns of a spreadsheet row: lookups fold case, while
// Keys preserves the original spelling and insertion order.
type ParmDict struct {
	keys   []string
	values map[string]string
}

// NewParmDict returns an empty ParmDict.
func NewParmDict() *ParmDict {
	return &ParmDict{values: map[string]string{}}
}

// Set stores the value under key, replacing any existing entry that matches
// case-insensitively.
func (p *ParmDict) Set(key, value string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	folded := strings.ToLower(key)
	if _, ok := p.values[folded]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[folded] = value
}

// Get returns the value for key, or "" when absent.
func (p *ParmDict) Get(key string) string {
	return p.GetDefault(key, "")
}

// GetDefault returns the value for key, or def when absent.
func (p *ParmDict) GetDefault(key, def string) string {
	if p == nil || p.values == nil {
		return def
	}
	if v, ok := p.values[strings.ToLower(key)]; ok {
		return v
	}
	return def
}

// Exists reports whether key is present.
func (p *ParmDict) Exists(key string) bool {
	if p == nil || p.values == nil {
		return false
	}
	_, ok := p.values[strings.ToLower(key)]
	return ok
}

// Keys returns the keys in insertion order with their original spelling.
func (p *ParmDict) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of entries.
func (p *ParmDict) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}
