package ui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/dexterm/internal/catalog"
	"github.com/five82/dexterm/internal/detail"
)

var t0 = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func testEntity(id int, name string, types ...string) catalog.Entity {
	return catalog.Entity{ID: id, Name: name, Types: types}
}

func cardIDs(cards []Card) []int {
	out := make([]int, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.EntityID)
	}
	return out
}

func TestGridAppend_StaggersEachBatchFromZero(t *testing.T) {
	var g Grid
	g.Append([]catalog.Entity{testEntity(1, "a"), testEntity(2, "b"), testEntity(3, "c")}, t0)
	later := t0.Add(time.Second)
	g.Append([]catalog.Entity{testEntity(4, "d"), testEntity(5, "e")}, later)

	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, cardIDs(g.Cards())); diff != "" {
		t.Fatalf("card order mismatch (-want +got):\n%s", diff)
	}
	wantDelays := []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond, 0, 50 * time.Millisecond}
	for i, c := range g.Cards() {
		if c.Delay != wantDelays[i] {
			t.Fatalf("card %d Delay = %v, want %v", i, c.Delay, wantDelays[i])
		}
	}
	if got := g.Cards()[3].DrawnAt; !got.Equal(later) {
		t.Fatalf("second batch DrawnAt = %v, want %v", got, later)
	}
}

func TestGridAppend_SkipsDrawnEntities(t *testing.T) {
	var g Grid
	g.Append([]catalog.Entity{testEntity(1, "a"), testEntity(2, "b")}, t0)
	g.Append([]catalog.Entity{testEntity(2, "b"), testEntity(3, "c"), testEntity(1, "a"), testEntity(4, "d")}, t0)

	if diff := cmp.Diff([]int{1, 2, 3, 4}, cardIDs(g.Cards())); diff != "" {
		t.Fatalf("cards mismatch (-want +got):\n%s", diff)
	}
	// Skipped entities do not take a stagger slot.
	if got := g.Cards()[3].Delay; got != StaggerStep {
		t.Fatalf("Delay of card 4 = %v, want %v", got, StaggerStep)
	}

	g.Replace([]catalog.Entity{testEntity(2, "b")}, t0)
	if g.Has(1) || !g.Has(2) {
		t.Fatalf("Has after Replace: 1=%v 2=%v, want false true", g.Has(1), g.Has(2))
	}
	g.ShowError(ErrorText)
	if g.Has(2) {
		t.Fatalf("Has(2) after ShowError = true, want false")
	}
}

func TestGridReplace_ClearsBeforeDrawing(t *testing.T) {
	var g Grid
	g.Append([]catalog.Entity{testEntity(1, "a"), testEntity(2, "b")}, t0)
	g.Replace([]catalog.Entity{testEntity(7, "g")}, t0)

	if diff := cmp.Diff([]int{7}, cardIDs(g.Cards())); diff != "" {
		t.Fatalf("cards after Replace mismatch (-want +got):\n%s", diff)
	}
	g.Replace(nil, t0)
	if g.Len() != 0 {
		t.Fatalf("Len after empty Replace = %d, want 0", g.Len())
	}
}

func TestGridShowError_ReplacesCardsUntilNextDraw(t *testing.T) {
	var g Grid
	g.Append([]catalog.Entity{testEntity(1, "a")}, t0)
	g.ShowError(ErrorText)

	if g.Len() != 0 {
		t.Fatalf("Len after ShowError = %d, want 0", g.Len())
	}
	if g.Err() != ErrorText {
		t.Fatalf("Err = %q, want %q", g.Err(), ErrorText)
	}

	g.Append([]catalog.Entity{testEntity(2, "b")}, t0)
	if g.Err() != "" {
		t.Fatalf("Err after Append = %q, want empty", g.Err())
	}
}

func TestGridReveal(t *testing.T) {
	var g Grid
	g.Append([]catalog.Entity{testEntity(1, "a"), testEntity(2, "b"), testEntity(3, "c")}, t0)

	cases := []struct {
		at        time.Duration
		revealed  int
		animating bool
	}{
		{0, 1, true},
		{49 * time.Millisecond, 1, true},
		{50 * time.Millisecond, 2, true},
		{100 * time.Millisecond, 3, false},
	}
	for _, tc := range cases {
		now := t0.Add(tc.at)
		if got := g.Revealed(now); got != tc.revealed {
			t.Fatalf("Revealed(+%v) = %d, want %d", tc.at, got, tc.revealed)
		}
		if got := g.Animating(now); got != tc.animating {
			t.Fatalf("Animating(+%v) = %v, want %v", tc.at, got, tc.animating)
		}
	}
}

func TestNewCard(t *testing.T) {
	e := catalog.Entity{
		ID:      25,
		Name:    "pikachu",
		Types:   []string{"electric", "shadow"},
		Artwork: "https://img.example/art/25.png",
		Sprite:  "https://img.example/sprite/25.png",
	}
	c := NewCard(e)

	if c.Number != "#025" {
		t.Fatalf("Number = %q, want %q", c.Number, "#025")
	}
	if c.Name != "Pikachu" {
		t.Fatalf("Name = %q, want %q", c.Name, "Pikachu")
	}
	want := []Badge{
		{Tag: "electric", Color: typeColors["electric"]},
		{Tag: "shadow", Color: typeColors["normal"]},
	}
	if diff := cmp.Diff(want, c.Badges); diff != "" {
		t.Fatalf("badges mismatch (-want +got):\n%s", diff)
	}
	if c.Image != e.Artwork {
		t.Fatalf("Image = %q, want artwork %q", c.Image, e.Artwork)
	}
	if c.ImageLabel() != "25.png" {
		t.Fatalf("ImageLabel = %q, want %q", c.ImageLabel(), "25.png")
	}

	bare := NewCard(catalog.Entity{ID: 1, Name: "missingno"})
	if bare.Image != detail.PlaceholderImage {
		t.Fatalf("Image = %q, want placeholder", bare.Image)
	}
	if bare.ImageLabel() != "no image" {
		t.Fatalf("ImageLabel = %q, want %q", bare.ImageLabel(), "no image")
	}
}

func TestTypeColorCoversEveryCategory(t *testing.T) {
	for _, tag := range catalog.Categories {
		if _, ok := typeColors[tag]; !ok {
			t.Fatalf("typeColors missing %q", tag)
		}
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		if got, want := NextTheme(name), names[(i+1)%len(names)]; got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
	if got := GetTheme("unknown").Name; got != names[0] {
		t.Fatalf("GetTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestFilterChipsWrapAndCoverEveryTag(t *testing.T) {
	chips := filterChips(40)
	if len(chips) != len(catalog.Categories)+1 {
		t.Fatalf("chips = %d, want %d", len(chips), len(catalog.Categories)+1)
	}
	for _, c := range chips {
		if c.x+c.w > 40 {
			t.Fatalf("chip %q ends at %d, beyond width 40", c.tag, c.x+c.w)
		}
	}
	if filterRows(40) < 2 {
		t.Fatalf("filterRows(40) = %d, want wrapping onto several rows", filterRows(40))
	}
}
