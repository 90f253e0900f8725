// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// logbook application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the time zone used
	// for day bucketing.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Capture holds configuration for the frame producer feeding the
	// plate scanner.
	Capture Capture `envPrefix:"CAPTURE_"`

	// Recognizer holds configuration for the external plate-recognition
	// service.
	Recognizer Recognizer `envPrefix:"RECOGNIZER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TimeZone is the IANA time zone name used when bucketing entries
	// and vehicles by calendar day (e.g. "Asia/Jakarta"). Empty means
	// the system local zone.
	// Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// Path is the SQLite database file path (e.g. "logbook.db").
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Capture holds settings for the frame producer.
type Capture struct {
	// FramesDir is a directory of image files replayed as camera frames.
	// Env: CAPTURE_FRAMES_DIR
	FramesDir string `env:"FRAMES_DIR"`

	// FPS is the frame publish rate of the producer.
	// Env: CAPTURE_FPS
	FPS int `env:"FPS"`
}

// Recognizer holds settings for the external text-recognition service.
type Recognizer struct {
	// Endpoint is the base URL of an OpenALPR-compatible HTTP service.
	// Env: RECOGNIZER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Timeout bounds a single recognition request (e.g. "5s").
	// Env: RECOGNIZER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// MinConfidence drops candidates below this confidence score.
	// Env: RECOGNIZER_MIN_CONFIDENCE
	MinConfidence float64 `env:"MIN_CONFIDENCE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
