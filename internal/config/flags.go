package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-frames-dir directory of image frames for the scanner producer
//	-fps frame publish rate
//	-recognizer-endpoint base URL of the plate recognition service
//	-recognizer-timeout recognition request timeout (e.g., "5s")
//	-min-confidence minimum accepted candidate confidence
//	-tz IANA time zone for day grouping
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("logbook", flag.ContinueOnError)

	var dbPath string
	var framesDir string
	var fps int
	var recognizerEndpoint string
	var recognizerTimeout time.Duration
	var minConfidence float64
	var timeZone string
	var jsonConfigPath string

	fs.StringVar(&dbPath, "d", "", "Database file path")
	fs.StringVar(&framesDir, "frames-dir", "", "Directory of image frames for the scanner")
	fs.IntVar(&fps, "fps", 0, "Frame publish rate")
	fs.StringVar(&recognizerEndpoint, "recognizer-endpoint", "", "Plate recognition service URL")
	fs.DurationVar(&recognizerTimeout, "recognizer-timeout", 0, "Recognition request timeout (e.g., 5s)")
	fs.Float64Var(&minConfidence, "min-confidence", 0, "Minimum accepted candidate confidence")
	fs.StringVar(&timeZone, "tz", "", "IANA time zone for day grouping")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TimeZone: timeZone,
		},
		Storage: Storage{
			DB: DB{
				Path: dbPath,
			},
		},
		Capture: Capture{
			FramesDir: framesDir,
			FPS:       fps,
		},
		Recognizer: Recognizer{
			Endpoint:      recognizerEndpoint,
			Timeout:       recognizerTimeout,
			MinConfidence: minConfidence,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
