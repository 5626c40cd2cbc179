// Package pokeapi provides an HTTP client for the public PokéAPI.
//
// # Overview
//
// dexterm reads three resources: the paginated Pokémon list, the per-Pokémon
// detail record and the species record that carries localized descriptions.
// The client handles URL construction, JSON decoding and error wrapping; it
// keeps no state between calls.
//
// # Endpoints
//
//   - GET pokemon?limit=&offset=: a page of {name, url} stubs plus next/previous links
//   - GET pokemon/{id}/: types, stats, sprites, abilities, height, weight, species ref
//   - GET pokemon-species/{id}/: flavor_text_entries with language tags
//
// Detail and species requests take the reference URL exactly as the API hands
// it out. Relative references are resolved under the configured API root.
//
// # Error Handling
//
// Non-success statuses are returned as *StatusError so callers can branch on
// 404s. Network and decode failures are wrapped with fmt.Errorf:
//
//   - "execute request: dial tcp: connection refused"
//   - "api /api/v2/pokemon/1/ returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// # Thread Safety
//
// Client is safe for concurrent use; the catalog fans detail requests out on
// several goroutines through the same Client.
//
// # Testing Considerations
//
// Use httptest.Server and point NewClient at server.URL. References embedded in
// fake payloads should use server.URL so they resolve to the test server.
package pokeapi
