// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallbacks applied after all sources are merged. Flags and env always win;
// these only fill gaps so the application can start with no configuration
// at all.
const (
	DefaultDBPath            = "logbook.db"
	DefaultFPS               = 10
	DefaultRecognizerTimeout = 5 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = DefaultDBPath
	}
	if cfg.Capture.FPS == 0 {
		cfg.Capture.FPS = DefaultFPS
	}
	if cfg.Recognizer.Timeout == 0 {
		cfg.Recognizer.Timeout = DefaultRecognizerTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Capture.FPS < 0 {
		return ErrInvalidCaptureConfigs
	}

	if cfg.Recognizer.MinConfidence < 0 || cfg.Recognizer.MinConfidence > 100 {
		return ErrInvalidRecognizerConfigs
	}

	if cfg.App.TimeZone != "" {
		if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

// Location resolves the configured time zone, falling back to the system
// local zone. validate has already guaranteed the name loads.
func (cfg *StructuredConfig) Location() *time.Location {
	if cfg.App.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
