// Package config handles loading the console's TOML configuration.
//
// The Load function resolves the config path (default
// ~/.config/douban-console/config.toml), expands tildes, and falls back to
// defaults when the file is missing so the console works out of the box
// against a daemon on 127.0.0.1:8080. A config file that exists but cannot
// be parsed is an error; absent fields keep their defaults.
//
// Example config.toml:
//
//	api_base = "127.0.0.1:8080"
//	page_size = 20
//	log_file = "~/.local/share/douban-console/console.log"
package config
