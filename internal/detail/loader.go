package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/five82/dexterm/internal/catalog"
	"github.com/five82/dexterm/internal/pokeapi"
)

const (
	defaultLanguage  = "en"
	defaultCacheSize = 256
)

// errNoDescription marks a species without an entry in the wanted language.
var errNoDescription = errors.New("no description in language")

// SpeciesFetcher is the slice of the API the loader needs.
type SpeciesFetcher interface {
	FetchSpecies(ctx context.Context, ref string) (pokeapi.Species, error)
}

// Result is the outcome of one enrichment request. EntityID tags the request
// so the UI can drop results for a panel that is no longer open.
type Result struct {
	EntityID int
	Text     string
	Fallback bool
	Cached   bool
}

// LoaderOptions configure a Loader. Zero values pick defaults.
type LoaderOptions struct {
	Language  string
	CacheSize int
	Logger    *zap.Logger
}

// Loader resolves species descriptions and remembers them per entity.
type Loader struct {
	fetcher  SpeciesFetcher
	language string
	cache    *lru.Cache[int, string]
	logger   *zap.Logger
}

// NewLoader builds a Loader around fetcher.
func NewLoader(fetcher SpeciesFetcher, opts LoaderOptions) (*Loader, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("species fetcher is nil")
	}
	if strings.TrimSpace(opts.Language) == "" {
		opts.Language = defaultLanguage
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cache, err := lru.New[int, string](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create description cache: %w", err)
	}
	return &Loader{
		fetcher:  fetcher,
		language: opts.Language,
		cache:    cache,
		logger:   opts.Logger,
	}, nil
}

// Describe fetches the description for e. It never fails: a fetch error or a
// species without an entry in the loader's language yields the fallback text
// and a logged warning. Only real descriptions and confirmed misses are cached.
func (l *Loader) Describe(ctx context.Context, e catalog.Entity) Result {
	if text, ok := l.cache.Get(e.ID); ok {
		return Result{EntityID: e.ID, Text: text, Fallback: text == FallbackDescription, Cached: true}
	}

	text, err := l.fetch(ctx, e)
	switch {
	case err == nil:
		l.cache.Add(e.ID, text)
		return Result{EntityID: e.ID, Text: text}
	case errors.Is(err, errNoDescription):
		l.cache.Add(e.ID, FallbackDescription)
		l.logger.Warn("species has no description",
			zap.Int("id", e.ID),
			zap.String("language", l.language),
		)
	case pokeapi.IsNotFound(err):
		l.cache.Add(e.ID, FallbackDescription)
		l.logger.Warn("species not found",
			zap.Int("id", e.ID),
			zap.String("ref", e.SpeciesRef),
		)
	default:
		l.logger.Warn("species fetch failed",
			zap.Int("id", e.ID),
			zap.String("ref", e.SpeciesRef),
			zap.Error(err),
		)
	}
	return Result{EntityID: e.ID, Text: FallbackDescription, Fallback: true}
}

func (l *Loader) fetch(ctx context.Context, e catalog.Entity) (string, error) {
	if strings.TrimSpace(e.SpeciesRef) == "" {
		return "", fmt.Errorf("entity %d has no species reference", e.ID)
	}
	species, err := l.fetcher.FetchSpecies(ctx, e.SpeciesRef)
	if err != nil {
		return "", err
	}
	text, ok := SelectDescription(species, l.language)
	if !ok {
		return "", errNoDescription
	}
	return text, nil
}

// SelectDescription returns the first flavor text in lang with form feeds
// (a wrapping artifact of the source data) replaced by spaces.
func SelectDescription(species pokeapi.Species, lang string) (string, bool) {
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == lang {
			return strings.ReplaceAll(entry.FlavorText, "\f", " "), true
		}
	}
	return "", false
}
