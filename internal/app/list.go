package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/dexterm/internal/detail"
)

// ListOptions configure the headless list command.
type ListOptions struct {
	Pages    int
	Category string
	Search   string
	JSON     bool
}

// ListItem is one row of list output.
type ListItem struct {
	ID     int      `json:"id"`
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Image  string   `json:"image"`
}

// List fetches pages through the same pager as the TUI and writes the entities
// matching the filter to w.
func List(ctx context.Context, env *Env, opts ListOptions, w io.Writer) error {
	pages := opts.Pages
	if pages <= 0 {
		pages = 1
	}
	if _, err := env.State.SetCategory(opts.Category); err != nil {
		return err
	}
	env.State.SetSearch(opts.Search)

	for i := 0; i < pages && !env.State.Pager.Exhausted(); i++ {
		if _, err := env.State.Pager.FetchNext(ctx); err != nil {
			return fmt.Errorf("load page %d: %w", i+1, err)
		}
	}

	visible := env.State.Visible()
	env.Logger.Debug("list complete",
		zap.Int("cached", env.State.Cache.Len()),
		zap.Int("matched", len(visible)),
	)

	items := make([]ListItem, 0, len(visible))
	for _, e := range visible {
		items = append(items, ListItem{
			ID:     e.ID,
			Number: detail.Number(e.ID),
			Name:   detail.DisplayName(e.Name),
			Types:  e.Types,
			Image:  detail.ImageFor(e),
		})
	}
	return writeList(w, items, opts.JSON)
}

func writeList(w io.Writer, items []ListItem, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%-6s %-16s %s\n", it.Number, it.Name, strings.Join(it.Types, ", ")); err != nil {
			return err
		}
	}
	return nil
}
