package pokeapi

import (
	"net/url"
	"strconv"
	"strings"
)

// NamedResource is the {name, url} pair the API uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page mirrors the list endpoint payload.
type Page struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// HasNext reports whether the list endpoint advertised another page.
func (p Page) HasNext() bool {
	return p.Next != nil && strings.TrimSpace(*p.Next) != ""
}

// Pokemon mirrors the subset of /pokemon/{id} that dexterm renders.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"` // decimetres
	Weight    int           `json:"weight"` // hectograms
	Types     []TypeSlot    `json:"types"`
	Stats     []StatEntry   `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
	Sprites   Sprites       `json:"sprites"`
	Species   NamedResource `json:"species"`
}

// TypeSlot is one entry of a Pokémon's ordered type list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry carries one base stat.
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot is one ability entry.
type AbilitySlot struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Ability  NamedResource `json:"ability"`
}

// Sprites holds the image references. Any of them may be null upstream.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites groups the alternate artwork sets.
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single artwork variant.
type Artwork struct {
	FrontDefault *string `json:"front_default"`
}

// Species mirrors the subset of /pokemon-species/{id} used for descriptions.
type Species struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// FlavorTextEntry is one localized description.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// IDFromRef extracts the trailing numeric id from a resource URL such as
// https://pokeapi.co/api/v2/pokemon/25/. It returns 0 when none is present.
func IDFromRef(ref string) int {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return 0
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
