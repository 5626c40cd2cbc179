// Package catalog holds the browsing state: the append-only entity cache, the
// query engine that derives the visible set, and the pager that loads the
// next batch from the API.
//
// # Concurrency Model
//
// Page loads run on a Bubble Tea command goroutine while the UI reads the
// cache from the update loop, so Cache uses a readers-writer lock and hands
// out copies. The Pager guards itself with a single-flight flag: a second
// FetchNext while one is outstanding returns ErrInFlight immediately.
//
// Within one page the detail requests fan out through an errgroup. Each
// result is written to its list index, so the appended batch is in page order
// no matter which request finishes first. Any failure aborts the page.
//
// # Query Semantics
//
//   - Category "all" matches everything, otherwise the entity's type list must
//     contain the tag exactly.
//   - The search term is trimmed and lower-cased; it matches the lower-cased
//     name or the decimal id as a substring.
//   - Both filters are ANDed. Query preserves cache order and has no side effects.
//
// # Ownership
//
// State is the one place the current filter lives. The UI is its only writer;
// the Pager is the only writer of the cache and offset.
package catalog
