// Package config loads the logbook application configuration from
// environment variables, command-line flags and an optional JSON file,
// merging the sources in that priority order.
package config
