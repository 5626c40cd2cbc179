package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCache() []Entity {
	return []Entity{
		entity(1, "bulbasaur", "grass", "poison"),
		entity(4, "charmander", "fire"),
		entity(5, "charmeleon", "fire"),
		entity(6, "charizard", "fire", "flying"),
		entity(7, "squirtle", "water"),
		entity(9, "blastoise", "water"),
		entity(25, "pikachu", "electric"),
		entity(54, "psyduck", "water"),
		entity(125, "electabuzz", "electric"),
	}
}

func TestQuery_CategoryAndSearchAreANDed(t *testing.T) {
	f := Filter{Category: "fire", Search: "char"}
	got := Query(sampleCache(), f)
	if diff := cmp.Diff([]int{4, 5, 6}, ids(got)); diff != "" {
		t.Fatalf("fire+char mismatch (-want +got):\n%s", diff)
	}
	for _, e := range got {
		assert.True(t, e.HasType("fire"))
	}
}

func TestQuery_EmptySearchRestoresCategoryInCacheOrder(t *testing.T) {
	cache := sampleCache()
	narrowed := Query(cache, Filter{Category: "water", Search: "squirt"})
	require.Equal(t, []int{7}, ids(narrowed))

	restored := Query(cache, Filter{Category: "water", Search: "   "})
	if diff := cmp.Diff([]int{7, 9, 54}, ids(restored)); diff != "" {
		t.Fatalf("water restore mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_SearchMatchesNameOrID(t *testing.T) {
	cases := []struct {
		name   string
		search string
		want   []int
	}{
		{"case insensitive name", "  PIKA ", []int{25}},
		{"id substring", "25", []int{25, 125}},
		{"single digit id matches many", "5", []int{5, 25, 54, 125}},
		{"name or id", "1", []int{1, 125}},
		{"no match", "mewtwo", []int{}},
		{"fullwidth digits normalize", "２５", []int{25, 125}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Query(sampleCache(), Filter{Category: AllCategories, Search: tc.search})
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Fatalf("Query(%q) mismatch (-want +got):\n%s", tc.search, diff)
			}
		})
	}
}

func TestQuery_CategoryIsExactMatch(t *testing.T) {
	got := Query(sampleCache(), Filter{Category: "Fire"})
	assert.Empty(t, got, "category match is case-sensitive against the vocabulary")

	got = Query(sampleCache(), Filter{Category: "flying"})
	assert.Equal(t, []int{6}, ids(got))
}

func TestQuery_IsIdempotentSubsetAndPure(t *testing.T) {
	cache := sampleCache()
	before := cmp.Diff(sampleCache(), cache)
	require.Empty(t, before)

	filters := []Filter{
		DefaultFilter(),
		{Category: "water"},
		{Category: AllCategories, Search: "a"},
		{Category: "electric", Search: "25"},
		{Category: "dragon"},
	}
	for _, f := range filters {
		first := Query(cache, f)
		second := Query(cache, f)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Query not idempotent for %+v:\n%s", f, diff)
		}
		for _, e := range first {
			assert.Contains(t, ids(cache), e.ID)
			assert.True(t, f.Matches(e))
		}
		// Every excluded entity fails the predicate.
		assert.Equal(t, len(first), countMatches(cache, f))
	}
	if diff := cmp.Diff(sampleCache(), cache); diff != "" {
		t.Fatalf("Query mutated its input:\n%s", diff)
	}
}

func countMatches(cache []Entity, f Filter) int {
	n := 0
	for _, e := range cache {
		if f.Matches(e) {
			n++
		}
	}
	return n
}

func TestFilter_Active(t *testing.T) {
	assert.False(t, DefaultFilter().Active())
	assert.False(t, Filter{Search: "  "}.Active())
	assert.True(t, Filter{Category: "ice"}.Active())
	assert.True(t, Filter{Category: AllCategories, Search: "x"}.Active())
}

func TestState_FilterTransitions(t *testing.T) {
	s := NewState(newFakeFetcher(), PagerOptions{})
	s.Cache.Append(sampleCache())

	changed, err := s.SetCategory("fire")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.SetSearch("char"))
	assert.Equal(t, []int{4, 5, 6}, ids(s.Visible()))

	assert.False(t, s.SetSearch(" CHAR "), "same effective term is not a change")

	changed, err = s.SetCategory("water")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.SetSearch(""))
	assert.Equal(t, []int{7, 9, 54}, ids(s.Visible()))

	_, err = s.SetCategory("shadow")
	assert.Error(t, err)
	assert.Equal(t, "water", s.Filter().Category)

	changed, err = s.SetCategory("")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, AllCategories, s.Filter().Category)

	batch := []Entity{entity(150, "mewtwo", "psychic"), entity(151, "mew", "psychic")}
	s.SetSearch("mewt")
	assert.Equal(t, []int{150}, ids(s.VisibleOf(batch)))
}
