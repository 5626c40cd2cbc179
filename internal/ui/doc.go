// Package ui is dexterm's Bubble Tea interface.
//
// # Layout
//
//	header      dexterm · N shown · M cached                 theme
//	search      / Search by name or number
//	filter bar  all fire water grass ... (wraps to the terminal width)
//	grid        cards, CardWidth x CardHeight, as many columns as fit
//	footer      [ Load more ]  type: fire · search: "char"
//	            key hints
//
// # Render Pipeline
//
// Grid holds the cards currently drawn. A successful page Appends the new
// entities that pass the current filter; a filter or search change Replaces
// the grid from the whole visible set. Card i of a batch is revealed
// i*StaggerStep after it is drawn, driven by a RevealTick command while any
// card is pending. A failed page replaces the grid with ErrorText until the
// next successful page, which redraws from the cache.
//
// # Commands and Messages
//
// Network work runs in tea.Cmd closures and comes back as typed messages:
// pageLoadedMsg, pageFailedMsg and descriptionMsg. catalog.ErrInFlight is
// ignored because the running fetch will report on its own. A descriptionMsg
// carries the entity id and is dropped unless that entity's panel is still
// open.
//
// # Overlays
//
// The detail panel, help and log overlays capture all input while shown, so
// the grid does not move underneath them. The detail panel closes with esc,
// x, a click on its [x] control or a click outside it.
//
// # Key Bindings
//
//   - /: Focus search (enter or esc leaves it)
//   - ] or tab / [ or shift+tab: Next / previous type
//   - h j k l or arrows: Move selection, g/G first/last card
//   - enter: Open details
//   - m: Load more
//   - L: Log overlay
//   - T: Cycle theme (saved to prefs)
//   - ?: Help
//   - q or ctrl+c: Quit
package ui
