// Package schedule turns the raw spreadsheet tabs into typed program data:
// the item registry, the per-person schedule map and the person table.
package schedule

import (
	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/model"
)

// Registry holds program items keyed by a globally unique name. A colliding
// candidate name is decorated with the item's room and rendered time, which
// are unique per item in practice.
type Registry struct {
	week  clock.WeekConfig
	items map[string]*model.Item
	order []string
}

// NewRegistry returns an empty Registry rendering times with week.
func NewRegistry(week clock.WeekConfig) *Registry {
	return &Registry{week: week, items: map[string]*model.Item{}}
}

// Register inserts item under candidate, or under a room/time-decorated key
// when candidate is taken. The final key is stored into item.Name and
// returned.
func (r *Registry) Register(candidate string, item *model.Item) string {
	name := candidate
	if _, taken := r.items[name]; taken {
		name = candidate + " {" + item.Room + " " + r.week.DayTimeString(item.Time) + "}"
	}
	item.Name = name
	r.items[name] = item
	r.order = append(r.order, name)
	return name
}

// Lookup returns the item registered under the exact final key.
func (r *Registry) Lookup(name string) (*model.Item, bool) {
	it, ok := r.items[name]
	return it, ok
}

// ByKey returns the full unique-key to item map.
func (r *Registry) ByKey() map[string]*model.Item { return r.items }

// Names returns the final keys in registration order.
func (r *Registry) Names() []string { return r.order }

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.order) }
