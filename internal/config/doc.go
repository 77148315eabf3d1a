// Package config loads the minifeed server configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources in that priority order on top of built-in defaults.
package config
