package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexterm/internal/catalog"
)

// Theme defines the chrome colors for the UI. Type badge colors are fixed
// across themes (see TypeColor).
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// typeColors maps each category tag to its badge color.
var typeColors = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

// TypeColor returns the badge color for tag; unknown tags use the "normal" color.
func TypeColor(tag string) string {
	if c, ok := typeColors[tag]; ok {
		return c
	}
	return typeColors["normal"]
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		background: t.Background,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	background string
}

// BadgeStyle returns the pill style for a category tag.
func (s Styles) BadgeStyle(tag string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(TypeColor(tag))).
		Bold(true).
		Padding(0, 1)
}

// ChipStyle returns the filter bar style for a category; active chips are
// filled with the category color ("all" uses the accent color).
func (t Theme) ChipStyle(tag string, active bool) lipgloss.Style {
	color := t.Accent
	if tag != catalog.AllCategories {
		color = TypeColor(tag)
	}
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return style.
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true)
	}
	return style.Foreground(lipgloss.Color(color))
}

// Theme definitions

var themes = map[string]Theme{
	"Kanto": kantoTheme(),
	"Johto": johtoTheme(),
	"Hoenn": hoennTheme(),
}

var themeOrder = []string{"Kanto", "Johto", "Hoenn"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return kantoTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func kantoTheme() Theme {
	// Dark slate with the classic dex red accent.
	return Theme{
		Name: "Kanto",

		Background: "#0f172a",
		Surface:    "#1e293b",
		SurfaceAlt: "#1e293b",
		FocusBg:    "#283548",

		SelectionBg:   "#dc2626",
		SelectionText: "#f8fafc",

		Border:      "#334155",
		BorderFocus: "#f87171",

		Text:    "#f1f5f9",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#ef4444",
		Success: "#22c55e",
		Warning: "#facc15",
		Danger:  "#f43f5e",
	}
}

func johtoTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Johto",

		Background: "#16161D",
		Surface:    "#1F1F28",
		SurfaceAlt: "#2A2A37",
		FocusBg:    "#2A2A37",

		SelectionBg:   "#2D4F67",
		SelectionText: "#DCD7BA",

		Border:      "#54546D",
		BorderFocus: "#E6C384",

		Text:    "#DCD7BA",
		Muted:   "#C8C093",
		Faint:   "#727169",
		Accent:  "#E6C384",
		Success: "#98BB6C",
		Warning: "#FFA066",
		Danger:  "#E46876",
	}
}

func hoennTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Hoenn",

		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",
		FocusBg:    "#29394f",

		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",

		Border:      "#39506d",
		BorderFocus: "#63cdcf",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#63cdcf",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
	}
}
