package catalog

import (
	"testing"

	"github.com/five82/dexterm/internal/pokeapi"
)

func TestCache_AppendKeepsArrivalOrderAndSkipsDuplicates(t *testing.T) {
	var c Cache

	added := c.Append([]Entity{entity(1, "bulbasaur"), entity(2, "ivysaur")})
	if len(added) != 2 {
		t.Fatalf("added = %d, want 2", len(added))
	}
	added = c.Append([]Entity{entity(2, "ivysaur"), entity(3, "venusaur")})
	if len(added) != 1 || added[0].ID != 3 {
		t.Fatalf("added = %v, want only id 3", ids(added))
	}
	if got := ids(c.All()); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("All = %v, want [1 2 3]", got)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if c.Append(nil) != nil {
		t.Fatalf("Append(nil) should add nothing")
	}
}

func TestCache_AllReturnsCopy(t *testing.T) {
	var c Cache
	c.Append([]Entity{entity(1, "bulbasaur")})

	all := c.All()
	all[0].Name = "mutated"
	if got, _ := c.Lookup(1); got.Name != "bulbasaur" {
		t.Fatalf("cache entity name = %q, want bulbasaur", got.Name)
	}
	if _, ok := c.Lookup(99); ok {
		t.Fatalf("Lookup(99) found an entity, want none")
	}
}

func TestFromPokemon_OrdersTypesBySlotAndFlattensRefs(t *testing.T) {
	art := "art.png"
	p := pokeapi.Pokemon{
		ID:   6,
		Name: "charizard",
		Types: []pokeapi.TypeSlot{
			{Slot: 2, Type: pokeapi.NamedResource{Name: "flying"}},
			{Slot: 1, Type: pokeapi.NamedResource{Name: "fire"}},
		},
		Stats:     []pokeapi.StatEntry{{BaseStat: 78, Stat: pokeapi.NamedResource{Name: "hp"}}},
		Abilities: []pokeapi.AbilitySlot{{Ability: pokeapi.NamedResource{Name: "solar-power"}}},
		Sprites:   pokeapi.Sprites{Other: pokeapi.OtherSprites{OfficialArtwork: pokeapi.Artwork{FrontDefault: &art}}},
		Species:   pokeapi.NamedResource{URL: "species/6/"},
	}
	e := FromPokemon(p)
	if len(e.Types) != 2 || e.Types[0] != "fire" || e.Types[1] != "flying" {
		t.Fatalf("Types = %v, want [fire flying]", e.Types)
	}
	if e.Artwork != "art.png" || e.Sprite != "" {
		t.Fatalf("images = %q/%q, want art.png and empty sprite", e.Artwork, e.Sprite)
	}
	if e.Stats[0] != (Stat{Name: "hp", Value: 78}) {
		t.Fatalf("Stats = %v, want hp 78", e.Stats)
	}
	if e.SpeciesRef != "species/6/" || e.Abilities[0] != "solar-power" {
		t.Fatalf("entity = %+v, want species ref and ability", e)
	}
	if p.Types[0].Type.Name != "flying" {
		t.Fatalf("FromPokemon reordered its input")
	}
}

func TestIsCategory(t *testing.T) {
	if len(Categories) != 18 {
		t.Fatalf("Categories = %d, want 18", len(Categories))
	}
	if !IsCategory("fairy") || IsCategory("all") || IsCategory("Fire") {
		t.Fatalf("IsCategory vocabulary check failed")
	}
}
