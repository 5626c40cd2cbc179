// Package config loads dexterm's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dexterm/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	api_url = "https://pokeapi.co/api/v2"
//	page_size = 20
//	request_timeout = 15   # seconds
//	log_file = "~/.local/state/dexterm/dexterm.log"
//
// Every field is optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors and values that
// fail Validate (for example a page_size above 200). A missing file is not an
// error.
package config
