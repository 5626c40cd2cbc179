package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the read operations the catalog needs from the API.
// It is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	FetchPage(ctx context.Context, offset, limit int) (Page, error)
	FetchPokemon(ctx context.Context, ref string) (Pokemon, error)
	FetchSpecies(ctx context.Context, ref string) (Species, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokéAPI HTTP endpoints.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public PokéAPI v2 root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "dexterm/0.1"
)

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// NewClient builds a Client rooted at baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.baseURL.String(), "/")
}

// FetchPage retrieves one page of stubs from the list endpoint.
func (c *Client) FetchPage(ctx context.Context, offset, limit int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if limit <= 0 {
		return Page{}, fmt.Errorf("page limit must be positive, got %d", limit)
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(max(offset, 0)))
	rel := &url.URL{Path: "pokemon", RawQuery: values.Encode()}

	var payload Page
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return Page{}, err
	}
	return payload, nil
}

// FetchPokemon retrieves a full detail record by reference. The reference is
// normally the absolute URL taken from a stub.
func (c *Client) FetchPokemon(ctx context.Context, ref string) (Pokemon, error) {
	if c == nil {
		return Pokemon{}, fmt.Errorf("client is nil")
	}
	rel, err := parseRef(ref)
	if err != nil {
		return Pokemon{}, err
	}
	var payload Pokemon
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return Pokemon{}, err
	}
	return payload, nil
}

// FetchSpecies retrieves the species resource a detail record points at.
func (c *Client) FetchSpecies(ctx context.Context, ref string) (Species, error) {
	if c == nil {
		return Species{}, fmt.Errorf("client is nil")
	}
	rel, err := parseRef(ref)
	if err != nil {
		return Species{}, err
	}
	var payload Species
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return Species{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Path: reqURL.Path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseRef(ref string) (*url.URL, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil, fmt.Errorf("resource reference is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse reference %q: %w", ref, err)
	}
	if !u.IsAbs() {
		// Relative references resolve under the API root, not the host root.
		u.Path = strings.TrimPrefix(u.Path, "/")
	}
	return u, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
