package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/dexterm/internal/pokeapi"
)

const (
	// DefaultPageSize matches the list page the browser has always requested.
	DefaultPageSize = 20

	defaultDetailWorkers = 8
)

// ErrInFlight is returned when FetchNext is called while a page is loading.
// The call is dropped, not queued.
var ErrInFlight = errors.New("page fetch already in flight")

// PageError reports a failed page. The cache and offset were left untouched.
type PageError struct {
	Offset int
	Err    error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("load page at offset %d: %v", e.Offset, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// PagerOptions configure a Pager. Zero values pick defaults.
type PagerOptions struct {
	PageSize      int
	DetailWorkers int
	Logger        *zap.Logger
}

// Pager drives "load next batch": it lists a page of stubs, fetches every
// detail record and appends the page to the cache only if all of them succeed.
type Pager struct {
	fetcher  pokeapi.Fetcher
	cache    *Cache
	pageSize int
	workers  int
	logger   *zap.Logger

	inFlight atomic.Bool

	mu        sync.Mutex
	offset    int
	exhausted bool
}

// NewPager builds a Pager that appends into cache.
func NewPager(fetcher pokeapi.Fetcher, cache *Cache, opts PagerOptions) *Pager {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.DetailWorkers <= 0 {
		opts.DetailWorkers = defaultDetailWorkers
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Pager{
		fetcher:  fetcher,
		cache:    cache,
		pageSize: opts.PageSize,
		workers:  opts.DetailWorkers,
		logger:   opts.Logger,
	}
}

// PageSize returns the fixed page size.
func (p *Pager) PageSize() int { return p.pageSize }

// Offset returns the offset the next FetchNext will request.
func (p *Pager) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Exhausted reports whether the last successful page had no next link.
func (p *Pager) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exhausted
}

// Loading reports whether a fetch is outstanding.
func (p *Pager) Loading() bool {
	return p.inFlight.Load()
}

// FetchNext loads the page at the current offset. Detail requests run
// concurrently; the returned batch is always in list order. On success the
// newly cached entities are returned and the offset advances by one page. On
// failure a *PageError is returned and neither cache nor offset change. A
// detail record without an id takes it from its list entry's URL.
func (p *Pager) FetchNext(ctx context.Context) ([]Entity, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer p.inFlight.Store(false)

	offset := p.Offset()
	page, err := p.fetcher.FetchPage(ctx, offset, p.pageSize)
	if err != nil {
		return nil, p.fail(offset, fmt.Errorf("fetch list: %w", err))
	}

	batch := make([]Entity, len(page.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, stub := range page.Results {
		g.Go(func() error {
			mon, err := p.fetcher.FetchPokemon(gctx, stub.URL)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", stub.Name, err)
			}
			e := FromPokemon(mon)
			if e.ID == 0 {
				e.ID = pokeapi.IDFromRef(stub.URL)
			}
			batch[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, p.fail(offset, err)
	}

	added := p.cache.Append(batch)

	p.mu.Lock()
	p.offset = offset + p.pageSize
	p.exhausted = !page.HasNext()
	p.mu.Unlock()

	p.logger.Debug("page loaded",
		zap.Int("offset", offset),
		zap.Int("fetched", len(batch)),
		zap.Int("added", len(added)),
	)
	return added, nil
}

func (p *Pager) fail(offset int, err error) error {
	p.logger.Error("page load failed", zap.Int("offset", offset), zap.Error(err))
	return &PageError{Offset: offset, Err: err}
}
