package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Filter is the user-controlled selection applied to the cache.
type Filter struct {
	Category string // AllCategories or one tag from Categories
	Search   string // raw input; see Term
}

// DefaultFilter is the session start state.
func DefaultFilter() Filter {
	return Filter{Category: AllCategories}
}

// Term returns the search text as matched: NFKC-normalized, trimmed and
// lower-cased. An empty term disables the text filter.
func (f Filter) Term() string {
	return normalizeText(f.Search)
}

// Active reports whether the filter narrows the cache at all.
func (f Filter) Active() bool {
	return !f.allCategories() || f.Term() != ""
}

// Matches reports whether e passes both the category and the text filter.
func (f Filter) Matches(e Entity) bool {
	return f.matchesTerm(e, f.Term())
}

func (f Filter) matchesTerm(e Entity, term string) bool {
	if !f.allCategories() && !e.HasType(f.Category) {
		return false
	}
	if term == "" {
		return true
	}
	return strings.Contains(normalizeText(e.Name), term) ||
		strings.Contains(strconv.Itoa(e.ID), term)
}

func (f Filter) allCategories() bool {
	return f.Category == "" || f.Category == AllCategories
}

// Query derives the visible subset of entities for f, preserving input order.
// It never mutates entities and returns a fresh slice.
func Query(entities []Entity, f Filter) []Entity {
	term := f.Term()
	visible := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if f.matchesTerm(e, term) {
			visible = append(visible, e)
		}
	}
	return visible
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
