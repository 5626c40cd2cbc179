package catalog

import (
	"slices"

	"github.com/five82/dexterm/internal/pokeapi"
)

// AllCategories is the filter selector that matches every entity.
const AllCategories = "all"

// Categories is the fixed type vocabulary in filter-bar order.
var Categories = []string{
	"normal", "fire", "water", "grass", "electric", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// IsCategory reports whether tag belongs to the fixed vocabulary.
func IsCategory(tag string) bool {
	return slices.Contains(Categories, tag)
}

// Stat is one named base stat.
type Stat struct {
	Name  string
	Value int
}

// Entity is one fetched catalog item. Values are never mutated after
// FromPokemon builds them; slices are cloned on the way in.
type Entity struct {
	ID         int
	Name       string
	Types      []string
	Stats      []Stat
	Abilities  []string
	Artwork    string
	Sprite     string
	Height     int // decimetres
	Weight     int // hectograms
	SpeciesRef string
}

// HasType reports whether the entity carries tag (exact match).
func (e Entity) HasType(tag string) bool {
	return slices.Contains(e.Types, tag)
}

// FromPokemon converts an API detail record into an Entity.
func FromPokemon(p pokeapi.Pokemon) Entity {
	slots := slices.Clone(p.Types)
	slices.SortStableFunc(slots, func(a, b pokeapi.TypeSlot) int { return a.Slot - b.Slot })
	types := make([]string, 0, len(slots))
	for _, slot := range slots {
		types = append(types, slot.Type.Name)
	}
	stats := make([]Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}
	return Entity{
		ID:         p.ID,
		Name:       p.Name,
		Types:      types,
		Stats:      stats,
		Abilities:  abilities,
		Artwork:    pokeapi.Deref(p.Sprites.Other.OfficialArtwork.FrontDefault),
		Sprite:     pokeapi.Deref(p.Sprites.FrontDefault),
		Height:     p.Height,
		Weight:     p.Weight,
		SpeciesRef: p.Species.URL,
	}
}
