package catalog

import (
	"fmt"
	"strings"

	"github.com/five82/dexterm/internal/pokeapi"
)

// State is the single view state shared by the query engine and the render
// pipeline. Cache and Pager are written only by page fetches; the filter is
// written only by user interaction.
type State struct {
	Cache *Cache
	Pager *Pager

	filter Filter
}

// NewState wires a fresh cache and pager.
func NewState(fetcher pokeapi.Fetcher, opts PagerOptions) *State {
	cache := &Cache{}
	return &State{
		Cache:  cache,
		Pager:  NewPager(fetcher, cache, opts),
		filter: DefaultFilter(),
	}
}

// Filter returns the current filter.
func (s *State) Filter() Filter {
	return s.filter
}

// SetCategory selects a category or AllCategories. It reports whether the
// selection changed.
func (s *State) SetCategory(category string) (bool, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = AllCategories
	}
	if category != AllCategories && !IsCategory(category) {
		return false, fmt.Errorf("unknown category %q", category)
	}
	if s.filter.Category == category {
		return false, nil
	}
	s.filter.Category = category
	return true, nil
}

// SetSearch replaces the free-text term. It reports whether the effective
// term changed.
func (s *State) SetSearch(text string) bool {
	before := s.filter.Term()
	s.filter.Search = text
	return before != s.filter.Term()
}

// Visible derives the visible set from the whole cache.
func (s *State) Visible() []Entity {
	return Query(s.Cache.All(), s.filter)
}

// VisibleOf narrows a freshly appended batch to the current filter so the
// grid only grows by cards the user would see after a full redraw.
func (s *State) VisibleOf(batch []Entity) []Entity {
	return Query(batch, s.filter)
}
