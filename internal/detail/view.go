package detail

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/dexterm/internal/catalog"
)

const (
	// StatCeiling is the practical maximum of a base stat; bars are scaled to it.
	StatCeiling = 255

	// PlaceholderImage is shown when an entity has neither artwork nor sprite.
	PlaceholderImage = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/0.png"

	// FallbackDescription replaces a missing or unfetchable species description.
	FallbackDescription = "A mysterious Pokémon."
)

// StatBar is one rendered base stat.
type StatBar struct {
	Name    string
	Value   int
	Percent float64
}

// View is everything the detail panel shows for one entity. It is composed
// synchronously from cached data; only Description arrives later.
type View struct {
	EntityID    int
	Number      string
	Name        string
	Types       []string
	Image       string
	Height      string
	Weight      string
	Abilities   []string
	Stats       []StatBar
	Description string
	Pending     bool // description not resolved yet
}

// Compose builds the synchronous part of the detail view.
func Compose(e catalog.Entity) View {
	stats := make([]StatBar, 0, len(e.Stats))
	for _, s := range e.Stats {
		stats = append(stats, StatBar{
			Name:    Humanize(s.Name),
			Value:   s.Value,
			Percent: StatPercent(s.Value),
		})
	}
	abilities := make([]string, 0, len(e.Abilities))
	for _, a := range e.Abilities {
		abilities = append(abilities, Humanize(a))
	}
	return View{
		EntityID:  e.ID,
		Number:    Number(e.ID),
		Name:      DisplayName(e.Name),
		Types:     append([]string(nil), e.Types...),
		Image:     ImageFor(e),
		Height:    fmt.Sprintf("%.1f m", float64(e.Height)/10),
		Weight:    fmt.Sprintf("%.1f kg", float64(e.Weight)/10),
		Abilities: abilities,
		Stats:     stats,
		Pending:   true,
	}
}

// WithDescription returns v with its description resolved.
func (v View) WithDescription(text string) View {
	v.Description = text
	v.Pending = false
	return v
}

// StatPercent scales value against StatCeiling, clamped to [0, 100].
func StatPercent(value int) float64 {
	pct := float64(value) / StatCeiling * 100
	return math.Max(0, math.Min(pct, 100))
}

// Number formats an id as the zero-padded catalog label.
func Number(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// ImageFor picks artwork, then the default sprite, then the placeholder.
func ImageFor(e catalog.Entity) string {
	for _, candidate := range []string{e.Artwork, e.Sprite} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return PlaceholderImage
}

// DisplayName title-cases an API name for display ("mr-mime" → "Mr-Mime").
// Casers carry state, so each call gets its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

// Humanize replaces only the first hyphen of an API slug with a space
// ("special-attack" → "special attack").
func Humanize(slug string) string {
	return strings.Replace(slug, "-", " ", 1)
}
