// Package config loads artshelf's client configuration.
//
// The file lives at ~/.config/artshelf/config.toml unless a path is given.
// A missing file is not an error: every field has a default, so artshelf
// runs against the public mock catalog out of the box.
//
//	api_base_url = "http://127.0.0.1:8080/"   # catalog API root
//	data_dir = "~/.local/share/artshelf"     # store and log live here
//	request_timeout_seconds = 10
//	log_level = "info"
//	key_prefix = "artshelf/"                 # namespace for stored keys
//
// Values are trimmed and blank values fall back to their defaults. Paths
// starting with ~ are expanded and every path is made absolute.
package config
