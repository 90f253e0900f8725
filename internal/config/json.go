package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type, so config files can spell timeouts as
// "5s" instead of nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TimeZone string `json:"time_zone"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Capture struct {
		FramesDir string `json:"frames_dir"`
		FPS       int    `json:"fps"`
	} `json:"capture,omitempty"`

	Recognizer struct {
		Endpoint      string   `json:"endpoint"`
		Timeout       Duration `json:"timeout"`
		MinConfidence float64  `json:"min_confidence"`
	} `json:"recognizer,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TimeZone: jsonCfg.App.TimeZone,
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Capture: Capture{
			FramesDir: jsonCfg.Capture.FramesDir,
			FPS:       jsonCfg.Capture.FPS,
		},
		Recognizer: Recognizer{
			Endpoint:      jsonCfg.Recognizer.Endpoint,
			Timeout:       time.Duration(jsonCfg.Recognizer.Timeout),
			MinConfidence: jsonCfg.Recognizer.MinConfidence,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
