package ui

import (
	"path"
	"time"

	"github.com/five82/dexterm/internal/catalog"
	"github.com/five82/dexterm/internal/detail"
)

// Badge is one category pill on a card.
type Badge struct {
	Tag   string
	Color string
}

// Card is the rendered summary of one entity.
type Card struct {
	EntityID int
	Number   string
	Name     string
	Badges   []Badge
	Image    string

	DrawnAt time.Time
	Delay   time.Duration
}

// NewCard composes the card for e.
func NewCard(e catalog.Entity) Card {
	badges := make([]Badge, 0, len(e.Types))
	for _, tag := range e.Types {
		badges = append(badges, Badge{Tag: tag, Color: TypeColor(tag)})
	}
	return Card{
		EntityID: e.ID,
		Number:   detail.Number(e.ID),
		Name:     detail.DisplayName(e.Name),
		Badges:   badges,
		Image:    detail.ImageFor(e),
	}
}

// Visible reports whether the card's reveal delay has elapsed at now.
func (c Card) Visible(now time.Time) bool {
	return !now.Before(c.DrawnAt.Add(c.Delay))
}

// ImageLabel is the short form of the image reference shown on the card.
func (c Card) ImageLabel() string {
	if c.Image == detail.PlaceholderImage {
		return "no image"
	}
	return path.Base(c.Image)
}

// Grid is the ordered list of drawn cards. It is either showing cards or an
// inline error, never both. An entity is drawn at most once.
type Grid struct {
	cards []Card
	drawn map[int]struct{}
	err   string
}

// Append draws entities after the existing cards, skipping any already drawn.
// Card i of the appended batch is revealed i*StaggerStep after now.
func (g *Grid) Append(entities []catalog.Entity, now time.Time) {
	g.err = ""
	if g.drawn == nil {
		g.drawn = make(map[int]struct{}, len(entities))
	}
	i := 0
	for _, e := range entities {
		if _, ok := g.drawn[e.ID]; ok {
			continue
		}
		card := NewCard(e)
		card.DrawnAt = now
		card.Delay = time.Duration(i) * StaggerStep
		g.cards = append(g.cards, card)
		g.drawn[e.ID] = struct{}{}
		i++
	}
}

// Replace clears the grid and draws entities with a fresh stagger.
func (g *Grid) Replace(entities []catalog.Entity, now time.Time) {
	g.clear()
	g.Append(entities, now)
}

// ShowError clears the cards and shows msg instead.
func (g *Grid) ShowError(msg string) {
	g.clear()
	g.err = msg
}

// Has reports whether the entity with id is drawn.
func (g *Grid) Has(id int) bool {
	_, ok := g.drawn[id]
	return ok
}

func (g *Grid) clear() {
	g.cards = nil
	g.drawn = nil
}

// Err returns the inline error, if any.
func (g *Grid) Err() string {
	return g.err
}

// Cards returns the drawn cards in order.
func (g *Grid) Cards() []Card {
	return g.cards
}

// Len returns the number of drawn cards.
func (g *Grid) Len() int {
	return len(g.cards)
}

// Revealed counts the cards visible at now.
func (g *Grid) Revealed(now time.Time) int {
	n := 0
	for _, c := range g.cards {
		if c.Visible(now) {
			n++
		}
	}
	return n
}

// Animating reports whether any card is still waiting to be revealed.
func (g *Grid) Animating(now time.Time) bool {
	return g.Revealed(now) < len(g.cards)
}
