// Package assessment holds the in-session checklist state: per category,
// which items are checked plus the free-text detail. Entries are keyed by
// taxonomy category id.
package assessment

import (
	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
)

// State is the working assessment for one session. The zero value is not
// usable; construct with New.
type State struct {
	entries map[string]types.AssessmentEntry
}

func New() *State {
	return &State{entries: make(map[string]types.AssessmentEntry)}
}

// SetChecked replaces the checked item list for a category. A copy is
// stored so callers can reuse their slice.
func (s *State) SetChecked(categoryID string, items []string) {
	e := s.entries[categoryID]
	e.CheckedItems = append([]string(nil), items...)
	s.entries[categoryID] = e
}

// Toggle flips a single item within a category, preserving the order the
// remaining items were checked in. Returns the new checked state.
func (s *State) Toggle(categoryID, item string) bool {
	e := s.entries[categoryID]
	for i, have := range e.CheckedItems {
		if have == item {
			e.CheckedItems = append(e.CheckedItems[:i], e.CheckedItems[i+1:]...)
			s.entries[categoryID] = e
			return false
		}
	}
	e.CheckedItems = append(e.CheckedItems, item)
	s.entries[categoryID] = e
	return true
}

// SetDetail sets the free-text detail for a category.
func (s *State) SetDetail(categoryID, text string) {
	e := s.entries[categoryID]
	e.DetailText = text
	s.entries[categoryID] = e
}

// Get returns the entry for a category. Missing categories come back as
// an empty entry, never an error.
func (s *State) Get(categoryID string) types.AssessmentEntry {
	return s.entries[categoryID]
}

// CheckedSet flattens every checked item across all categories into a
// set, for integrated-generation lookups.
func (s *State) CheckedSet() map[string]bool {
	set := make(map[string]bool)
	for _, e := range s.entries {
		for _, item := range e.CheckedItems {
			set[item] = true
		}
	}
	return set
}

// CategoriesWithData returns the taxonomy categories that have at least
// one checked item, in taxonomy order.
func (s *State) CategoriesWithData() []taxonomy.Category {
	var out []taxonomy.Category
	for _, cat := range taxonomy.Categories {
		if len(s.entries[cat.ID].CheckedItems) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// CountCategoriesWithData reports how many categories have a checked item.
func (s *State) CountCategoriesWithData() int {
	return len(s.CategoriesWithData())
}

// Snapshot copies the state into a plain map for persistence. Categories
// with neither checks nor detail text are omitted.
func (s *State) Snapshot() map[string]types.AssessmentEntry {
	out := make(map[string]types.AssessmentEntry, len(s.entries))
	for id, e := range s.entries {
		if !e.HasData() {
			continue
		}
		cp := e
		cp.CheckedItems = append([]string(nil), e.CheckedItems...)
		out[id] = cp
	}
	return out
}

// Restore replaces the state with a previously taken snapshot. A nil
// snapshot clears the state.
func (s *State) Restore(snap map[string]types.AssessmentEntry) {
	s.entries = make(map[string]types.AssessmentEntry, len(snap))
	for id, e := range snap {
		cp := e
		cp.CheckedItems = append([]string(nil), e.CheckedItems...)
		s.entries[id] = cp
	}
}
